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

// Package hct implements the HCT color system: CAM16 hue and chroma
// paired with L* tone from L*a*b*. Using L* links the color system to
// contrast and accessibility: a difference of 40 in tone guarantees a
// contrast ratio >= 3.0, and a difference of 50 guarantees >= 4.5.
//
// Unlike contrast ratio or Y, L* is linear in human perception of
// lightness, so tones of a color can be produced by simple arithmetic
// on one axis.
package hct

import (
	"fmt"
	"image/color"

	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/cam16"
	"github.com/monetgo/monet/cie"
)

// HCT is a color in hue, chroma, and tone coordinates, memoized
// together with the displayable ARGB color realizing them. The three
// scalars and the cached color are always mutually consistent: every
// constructor and mutator re-derives all four from the solver's
// result, never from the requested values, so the chroma held is the
// chroma actually achieved.
type HCT struct {
	hue    float64
	chroma float64
	tone   float64
	color  argb.Color
}

// New returns the HCT color for the given hue (0-360, wrapped),
// chroma (0 to a hue- and tone-dependent maximum), and tone (0-100,
// clamped). The chroma realized may be lower than requested when the
// request falls outside the displayable gamut for that hue and tone;
// compare [HCT.Chroma] against the request to detect clamping.
func New(hue, chroma, tone float64) HCT {
	return fromColor(Solve(hue, chroma, tone))
}

// FromColor decomposes a displayable color into its HCT coordinates
// under standard viewing conditions. No search is involved;
// decomposition is closed-form.
func FromColor(c argb.Color) HCT {
	return fromColor(c)
}

func fromColor(c argb.Color) HCT {
	cam := cam16.FromColor(c)
	return HCT{
		hue:    cam.Hue,
		chroma: cam.Chroma,
		tone:   cie.LstarFromColor(c),
		color:  c,
	}
}

// Hue returns the hue in degrees, in [0, 360).
func (h HCT) Hue() float64 { return h.hue }

// Chroma returns the realized chroma.
func (h HCT) Chroma() float64 { return h.chroma }

// Tone returns the L* tone, in [0, 100].
func (h HCT) Tone() float64 { return h.tone }

// Color returns the displayable ARGB color realizing the coordinates.
func (h HCT) Color() argb.Color { return h.color }

// SetHue sets the hue of this color. Chroma may decrease because
// chroma has a different maximum for any given hue and tone.
// 0 <= hue < 360; invalid values are corrected.
func (h *HCT) SetHue(hue float64) {
	*h = fromColor(Solve(hue, h.chroma, h.tone))
}

// SetChroma sets the chroma of this color, up to the maximum
// achievable for the current hue and tone; larger requests are
// silently clamped to that maximum.
func (h *HCT) SetChroma(chroma float64) {
	*h = fromColor(Solve(h.hue, chroma, h.tone))
}

// SetTone sets the tone of this color (0-100, clamped). Chroma may
// decrease because chroma has a different maximum for any given hue
// and tone.
func (h *HCT) SetTone(tone float64) {
	*h = fromColor(Solve(h.hue, h.chroma, tone))
}

// WithHue is like [HCT.SetHue] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithHue(hue float64) HCT {
	return fromColor(Solve(hue, h.chroma, h.tone))
}

// WithChroma is like [HCT.SetChroma] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithChroma(chroma float64) HCT {
	return fromColor(Solve(h.hue, chroma, h.tone))
}

// WithTone is like [HCT.SetTone] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithTone(tone float64) HCT {
	return fromColor(Solve(h.hue, h.chroma, tone))
}

// RGBA implements the [color.Color] interface.
func (h HCT) RGBA() (r, g, b, a uint32) {
	return h.color.RGBA()
}

// AsRGBA returns the color as a standard [color.RGBA].
func (h HCT) AsRGBA() color.RGBA {
	return h.color.AsRGBA()
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.hue, h.chroma, h.tone)
}
