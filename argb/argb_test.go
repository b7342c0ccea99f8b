// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argb

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannels(t *testing.T) {
	c := FromRGB(119, 0, 153)
	assert.Equal(t, uint8(255), c.Alpha())
	assert.Equal(t, uint8(119), c.Red())
	assert.Equal(t, uint8(0), c.Green())
	assert.Equal(t, uint8(153), c.Blue())
	assert.True(t, c.IsOpaque())
	assert.False(t, From(160, 72, 102, 190).IsOpaque())
}

func TestHex(t *testing.T) {
	c, err := FromHex("#770099")
	require.NoError(t, err)
	assert.Equal(t, FromRGB(119, 0, 153), c)

	c, err = FromHex("709")
	require.NoError(t, err)
	assert.Equal(t, FromRGB(119, 0, 153), c)

	c, err = FromHex("#77009980")
	require.NoError(t, err)
	assert.Equal(t, From(128, 119, 0, 153), c)

	assert.Equal(t, "#770099", FromRGB(119, 0, 153).Hex())
	assert.Equal(t, "#77009980", From(128, 119, 0, 153).Hex())

	_, err = FromHex("#12345")
	assert.Error(t, err)
	_, err = FromHex("zzzzzz")
	assert.Error(t, err)
}

func TestStdColor(t *testing.T) {
	c := FromRGB(18, 201, 157)
	assert.Equal(t, color.RGBA{18, 201, 157, 255}, c.AsRGBA())
	assert.Equal(t, c, FromStdColor(c.AsRGBA()))
	assert.Equal(t, c, FromStdColor(c))

	r, g, b, a := c.RGBA()
	rr, gg, bb, aa := c.AsRGBA().RGBA()
	assert.Equal(t, rr, r)
	assert.Equal(t, gg, g)
	assert.Equal(t, bb, b)
	assert.Equal(t, aa, a)

	assert.Equal(t, Color(0), FromStdColor(color.RGBA{}))
}
