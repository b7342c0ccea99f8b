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
	"github.com/monetgo/monet/cam16"
	"github.com/monetgo/monet/cie"
	"github.com/monetgo/monet/num"
)

// Solve returns the displayable color whose CAM16 hue and chroma best
// satisfy the request at the given L* tone under standard viewing
// conditions. Hue is wrapped into [0, 360) and tone clamped into
// [0, 100]. When the requested chroma exceeds the maximum achievable
// for that hue and tone, the gamut-boundary color is returned. Tones
// at the extremes resolve to pure black or white, since no chroma is
// displayable there. The search is deterministic with a fixed
// iteration bound.
func Solve(hue, chroma, tone float64) argb.Color {
	tone = num.Clamp(tone, 0, 100)
	if chroma < 1e-4 || tone < 1e-4 || tone > 99.9999 {
		return cie.ColorFromLstar(tone)
	}
	hueRad := num.SanitizeDegrees(hue) / 180 * math.Pi
	y := cie.YFromLstar(tone)
	if c, ok := findResultByJ(hueRad, chroma, y); ok {
		return c
	}
	return cie.ColorFromLinRGB(bisectToLimit(y, hueRad))
}

// findResultByJ is the exact phase of the solver: the target tone
// fixes CAM16 J up to the achromatic response, so it runs a bounded
// Newton iteration on J, inverting the appearance equations along the
// requested hue/chroma ray and checking the candidate's own relative
// luminance against the target. It reports false when the request
// leaves the displayable cube, handing over to the boundary phase.
func findResultByJ(hueRad, chroma, y float64) (argb.Color, bool) {
	// Initial estimate of J, fairly accurate at low chroma.
	j := math.Sqrt(y) * 11

	vw := cam16.StdView()
	tInnerCoeff := 1 / math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)
	eHue := 0.25 * (math.Cos(hueRad+2) + 3.8)
	p1 := eHue * (50000.0 / 13) * vw.NC * vw.NCB
	hSin := math.Sin(hueRad)
	hCos := math.Cos(hueRad)

	for round := 0; round < 5; round++ {
		jNorm := j / 100
		alpha := 0.0
		if chroma != 0 && j != 0 {
			alpha = chroma / math.Sqrt(jNorm)
		}
		t := math.Pow(alpha*tInnerCoeff, 1/0.9)

		ac := vw.AW * math.Pow(jNorm, 1/vw.C/vw.Z)
		p2 := ac / vw.NBB

		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403

		linrgb := num.MatMul([3]float64{
			cam16.InverseChromaticAdapt(rA),
			cam16.InverseChromaticAdapt(gA),
			cam16.InverseChromaticAdapt(bA),
		}, linRGBFromScaledDiscount)

		if linrgb[0] < 0 || linrgb[1] < 0 || linrgb[2] < 0 {
			return 0, false
		}
		fnj := yFromLinRGB[0]*linrgb[0] + yFromLinRGB[1]*linrgb[1] + yFromLinRGB[2]*linrgb[2]
		if fnj <= 0 {
			return 0, false
		}
		if round == 4 || math.Abs(fnj-y) < 0.002 {
			if linrgb[0] > 100.01 || linrgb[1] > 100.01 || linrgb[2] > 100.01 {
				return 0, false
			}
			return cie.ColorFromLinRGB(linrgb), true
		}
		// Newton step on J against the luminance residual.
		j -= (fnj - y) * j / (2 * fnj)
	}
	return 0, false
}
