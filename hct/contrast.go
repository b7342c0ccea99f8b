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

package hct

import (
	"math"

	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/cie"
	"github.com/monetgo/monet/num"
)

// ContrastRatio returns the contrast ratio between the given two colors.
// The contrast ratio will be between 1 and 21.
func ContrastRatio(a, b argb.Color) float64 {
	return ToneContrastRatio(cie.LstarFromColor(a), cie.LstarFromColor(b))
}

// ToneContrastRatio returns the contrast ratio between the given two
// tones. The contrast ratio will be between 1 and 21; tones outside
// 0-100 are clamped.
func ToneContrastRatio(a, b float64) float64 {
	a = num.Clamp(a, 0, 100)
	b = num.Clamp(b, 0, 100)
	return RatioOfYs(cie.YFromLstar(a), cie.YFromLstar(b))
}

// RatioOfYs returns the contrast ratio of two relative luminance values.
func RatioOfYs(a, b float64) float64 {
	lighter := math.Max(a, b)
	darker := math.Min(a, b)
	return (lighter + 5) / (darker + 5)
}

// ContrastColor returns a color whose contrast ratio against the given
// color meets the given ratio, keeping hue and chroma and moving only
// the tone. It returns 0, false if the ratio cannot be achieved. If the
// tone of the given color is greater than 50, darker tones are tried
// first, otherwise lighter tones are tried first.
func ContrastColor(c argb.Color, ratio float64) (argb.Color, bool) {
	h := FromColor(c)
	ct, ok := ContrastTone(h.Tone(), ratio)
	if !ok {
		return 0, false
	}
	return h.WithTone(ct).Color(), true
}

// ContrastColorUnsafe is like [ContrastColor], except that when the
// ratio cannot be achieved it returns the color with the highest
// achievable contrast instead of failing. The returned value may not
// satisfy the ratio requirement.
func ContrastColorUnsafe(c argb.Color, ratio float64) argb.Color {
	h := FromColor(c)
	return h.WithTone(ContrastToneUnsafe(h.Tone(), ratio)).Color()
}

// ContrastTone returns a tone whose contrast ratio against the given
// tone meets the given ratio. It returns -1, false if the ratio cannot
// be achieved. If the given tone is greater than 50, darker tones are
// tried first, otherwise lighter tones are tried first.
func ContrastTone(tone, ratio float64) (float64, bool) {
	if tone > 50 {
		if d, ok := Darker(tone, ratio); ok {
			return d, true
		}
		if l, ok := Lighter(tone, ratio); ok {
			return l, true
		}
		return -1, false
	}
	if l, ok := Lighter(tone, ratio); ok {
		return l, true
	}
	if d, ok := Darker(tone, ratio); ok {
		return d, true
	}
	return -1, false
}

// ContrastToneUnsafe is like [ContrastTone], except that when the
// ratio cannot be achieved it returns 0 or 100, whichever contrasts
// more with the given tone. The returned value may not satisfy the
// ratio requirement.
func ContrastToneUnsafe(tone, ratio float64) float64 {
	if ct, ok := ContrastTone(tone, ratio); ok {
		return ct
	}
	if ToneContrastRatio(tone, 0) > ToneContrastRatio(tone, 100) {
		return 0
	}
	return 100
}

// Lighter returns a tone greater than or equal to the given tone whose
// contrast ratio against it meets the given ratio. It returns -1, false
// if the ratio cannot be achieved. The tone must be between 0 and 100
// and the ratio between 1 and 21.
func Lighter(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	darkY := cie.YFromLstar(tone)
	lightY := ratio*(darkY+5) - 5
	realContrast := RatioOfYs(lightY, darkY)
	delta := math.Abs(realContrast - ratio)
	if realContrast < ratio && delta > 0.04 {
		return -1, false
	}

	// Nudge past the quantization error of 8-bit displayable colors so
	// the realized color still meets the ratio.
	ret := cie.LstarFromY(lightY) + 0.4
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// Darker returns a tone less than or equal to the given tone whose
// contrast ratio against it meets the given ratio. It returns -1, false
// if the ratio cannot be achieved. The tone must be between 0 and 100
// and the ratio between 1 and 21.
func Darker(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	lightY := cie.YFromLstar(tone)
	darkY := (lightY+5)/ratio - 5
	realContrast := RatioOfYs(lightY, darkY)
	delta := math.Abs(realContrast - ratio)
	if realContrast < ratio && delta > 0.04 {
		return -1, false
	}

	ret := cie.LstarFromY(darkY) - 0.4
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// LighterUnsafe is like [Lighter], except that it returns 100 when the
// ratio cannot be achieved. The returned value may not satisfy the
// ratio requirement.
func LighterUnsafe(tone, ratio float64) float64 {
	if safe, ok := Lighter(tone, ratio); ok {
		return safe
	}
	return 100
}

// DarkerUnsafe is like [Darker], except that it returns 0 when the
// ratio cannot be achieved. The returned value may not satisfy the
// ratio requirement.
func DarkerUnsafe(tone, ratio float64) float64 {
	if safe, ok := Darker(tone, ratio); ok {
		return safe
	}
	return 0
}
