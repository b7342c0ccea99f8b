// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package palette produces tonal palettes: families of colors sharing
// a hue and chroma, varying only in tone.
package palette

import (
	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/hct"
)

// Tonal is a set of colors that share hue and chroma and differ only
// in tone. Colors are solved lazily and cached per tone.
type Tonal struct {
	hue    float64
	chroma float64
	cache  map[int]argb.Color
}

// NewTonal returns a tonal palette with the given hue and chroma.
func NewTonal(hue, chroma float64) *Tonal {
	return &Tonal{hue: hue, chroma: chroma, cache: map[int]argb.Color{}}
}

// TonalFromColor returns the tonal palette of the given color's hue
// and chroma.
func TonalFromColor(c argb.Color) *Tonal {
	h := hct.FromColor(c)
	return NewTonal(h.Hue(), h.Chroma())
}

// Hue returns the hue of the palette in degrees.
func (tp *Tonal) Hue() float64 { return tp.hue }

// Chroma returns the chroma of the palette.
func (tp *Tonal) Chroma() float64 { return tp.chroma }

// Tone returns the color with the palette's hue and chroma at the
// given tone, 0 to 100. The chroma is clamped to the gamut maximum
// for that tone.
func (tp *Tonal) Tone(tone int) argb.Color {
	if c, ok := tp.cache[tone]; ok {
		return c
	}
	c := hct.New(tp.hue, tp.chroma, float64(tone)).Color()
	tp.cache[tone] = c
	return c
}
