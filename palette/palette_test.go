// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/hct"
	"github.com/stretchr/testify/assert"
)

func TestTonalExtremes(t *testing.T) {
	tp := NewTonal(210, 60)
	assert.Equal(t, argb.Color(0xff000000), tp.Tone(0))
	assert.Equal(t, argb.Color(0xffffffff), tp.Tone(100))
}

func TestTonalCaching(t *testing.T) {
	tp := NewTonal(120, 40)
	first := tp.Tone(50)
	assert.Equal(t, first, tp.Tone(50))
	assert.Len(t, tp.cache, 1)
	tp.Tone(60)
	assert.Len(t, tp.cache, 2)
}

func TestTonalHueChroma(t *testing.T) {
	tp := TonalFromColor(0xff0000ff)
	c := tp.Tone(50)
	h := hct.FromColor(c)
	assert.InDelta(t, tp.Hue(), h.Hue(), 4.0)
}

func TestCore(t *testing.T) {
	core := NewCore(0xff0000ff)
	assert.GreaterOrEqual(t, core.Primary.Chroma(), 48.0)
	assert.Equal(t, 16.0, core.Secondary.Chroma())
	assert.Equal(t, 24.0, core.Tertiary.Chroma())
	assert.Equal(t, 4.0, core.Neutral.Chroma())
	assert.Equal(t, 8.0, core.NeutralVariant.Chroma())
	assert.Equal(t, 25.0, core.Error.Hue())
	assert.Equal(t, 84.0, core.Error.Chroma())
	assert.InDelta(t, core.Primary.Hue()+60, core.Tertiary.Hue(), 1e-9)
}

func TestCoreContent(t *testing.T) {
	core := NewCoreContent(0xff0000ff)
	h := hct.FromColor(0xff0000ff)
	assert.InDelta(t, h.Chroma(), core.Primary.Chroma(), 1e-9)
	assert.InDelta(t, h.Chroma()/3, core.Secondary.Chroma(), 1e-9)
	assert.LessOrEqual(t, core.Neutral.Chroma(), 4.0)
	assert.LessOrEqual(t, core.NeutralVariant.Chroma(), 8.0)
}

func TestCoreDeterminism(t *testing.T) {
	a := NewCore(0xff770099)
	b := NewCore(0xff770099)
	for _, tone := range []int{0, 10, 20, 40, 80, 100} {
		assert.Equal(t, a.Primary.Tone(tone), b.Primary.Tone(tone))
	}
}
