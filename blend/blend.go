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

// Package blend mixes colors in perceptual color spaces, preserving
// the properties that matter for each kind of blend.
package blend

import (
	"math"

	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/cam16"
	"github.com/monetgo/monet/cie"
	"github.com/monetgo/monet/hct"
	"github.com/monetgo/monet/num"
)

// Harmonize shifts the hue of the design color towards the hue of the
// key color, by at most 15 degrees along the shorter arc, keeping the
// design color's chroma and tone. A design color already within 30
// degrees of the key moves proportionally less; identical hues are
// unchanged.
func Harmonize(design, key argb.Color) argb.Color {
	fromHCT := hct.FromColor(design)
	toHCT := hct.FromColor(key)
	diff := num.DifferenceDegrees(fromHCT.Hue(), toHCT.Hue())
	rotation := math.Min(diff*0.5, 15)
	outputHue := num.SanitizeDegrees(fromHCT.Hue() +
		rotation*num.RotationDirection(fromHCT.Hue(), toHCT.Hue()))
	return hct.New(outputHue, fromHCT.Chroma(), fromHCT.Tone()).Color()
}

// Hue blends the hue of from towards the hue of to, in CAM16-UCS so
// the interpolation follows the perceptually shortest path, keeping
// the chroma and tone of from. amount is in 0 to 1.
func Hue(from, to argb.Color, amount float64) argb.Color {
	ucs := CAM16UCS(from, to, amount)
	ucsCAM := cam16.FromColor(ucs)
	fromCAM := cam16.FromColor(from)
	return hct.New(ucsCAM.Hue, fromCAM.Chroma, cie.LstarFromColor(from)).Color()
}

// CAM16UCS blends from towards to in CAM16-UCS, interpolating all
// three axes. amount is in 0 to 1, where 0 returns from and 1 returns
// to (up to displayable rounding).
func CAM16UCS(from, to argb.Color, amount float64) argb.Color {
	fromJ, _, fromA, fromB := cam16.FromColor(from).UCS()
	toJ, _, toA, toB := cam16.FromColor(to).UCS()
	jstar := num.Lerp(fromJ, toJ, amount)
	astar := num.Lerp(fromA, toA, amount)
	bstar := num.Lerp(fromB, toB, amount)
	return cam16.FromUCS(jstar, astar, bstar).Color()
}
