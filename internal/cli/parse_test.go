// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/monetgo/monet/argb"
	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	c, err := parseColor("#770099")
	assert.NoError(t, err)
	assert.Equal(t, argb.Color(0xff770099), c)

	c, err = parseColor("770099")
	assert.NoError(t, err)
	assert.Equal(t, argb.Color(0xff770099), c)

	c, err = parseColor("cornflowerblue")
	assert.NoError(t, err)
	assert.Equal(t, argb.Color(0xff6495ed), c)

	c, err = parseColor("Red")
	assert.NoError(t, err)
	assert.Equal(t, argb.Color(0xffff0000), c)

	_, err = parseColor("not-a-color")
	assert.Error(t, err)
}
