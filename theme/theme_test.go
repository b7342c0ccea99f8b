// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"testing"

	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/cie"
	"github.com/monetgo/monet/hct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSourceColor(t *testing.T) {
	th := FromSourceColor(0xff0000ff)
	assert.Equal(t, argb.Color(0xff0000ff), th.Source)
	require.NotNil(t, th.Schemes.Light)
	require.NotNil(t, th.Schemes.Dark)
	require.NotNil(t, th.Palettes)
	assert.Empty(t, th.Custom)

	assert.InDelta(t, 40, cie.LstarFromColor(th.Schemes.Light.Primary), 0.5)
	assert.InDelta(t, 80, cie.LstarFromColor(th.Schemes.Dark.Primary), 0.5)
}

func TestCustomColorBlend(t *testing.T) {
	th := FromSourceColor(0xff0000ff, CustomColor{
		Value: 0xffff0000,
		Name:  "alert",
		Blend: true,
	})
	require.Len(t, th.Custom, 1)
	group := th.Custom[0]
	assert.Equal(t, "alert", group.Color.Name)
	// Harmonizing rotates the red hue towards blue.
	assert.NotEqual(t, argb.Color(0xffff0000), group.Value)

	assert.InDelta(t, 40, cie.LstarFromColor(group.Light.Color), 0.5)
	assert.InDelta(t, 100, cie.LstarFromColor(group.Light.OnColor), 0.5)
	assert.InDelta(t, 90, cie.LstarFromColor(group.Light.ColorContainer), 0.5)
	assert.InDelta(t, 80, cie.LstarFromColor(group.Dark.Color), 0.5)
	assert.InDelta(t, 30, cie.LstarFromColor(group.Dark.ColorContainer), 0.5)
}

func TestCustomColorNoBlend(t *testing.T) {
	group := MakeCustomColor(CustomColor{Value: 0xffff0000, Name: "brand"}, 0xff0000ff)
	assert.Equal(t, argb.Color(0xffff0000), group.Value)
	h := hct.FromColor(group.Light.Color)
	src := hct.FromColor(argb.Color(0xffff0000))
	assert.InDelta(t, src.Hue(), h.Hue(), 4.0)
}
