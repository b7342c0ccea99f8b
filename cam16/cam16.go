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

// Package cam16 implements the CAM16 color appearance model: the
// forward transform from a color to its appearance correlates under
// given viewing conditions, and the inverse transform back to a
// displayable color. Both are pure functions over an immutable [View]
// parameter bundle.
package cam16

import (
	"math"

	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/cie"
	"github.com/monetgo/monet/num"
)

// CAM is a point in the CAM16 color model along six dimensions
// describing perceived hue, colorfulness, and brightness, similar to
// HSL but calibrated to actual human subjective judgments. A CAM is
// read-only after construction; build one with the From* constructors.
type CAM struct {

	// Hue (h) is the spectral identity of the color in degrees, [0, 360).
	Hue float64

	// Chroma (C) is the colorfulness relative to the white point;
	// grayscale colors have no chroma.
	Chroma float64

	// Colorfulness (M) is the absolute chromatic intensity.
	Colorfulness float64

	// Saturation (s) is the colorfulness relative to brightness.
	Saturation float64

	// Brightness (Q) is the apparent amount of light from the color.
	Brightness float64

	// Lightness (J) is the brightness relative to a reference white.
	Lightness float64
}

// FromColor returns the appearance of the given color under standard
// viewing conditions.
func FromColor(c argb.Color) *CAM {
	return FromColorView(c, StdView())
}

// FromColorView returns the appearance of the given color under the
// given viewing conditions.
func FromColorView(c argb.Color, vw *View) *CAM {
	x, y, z := cie.XYZFromColor(c)
	return FromXYZView(x, y, z, vw)
}

// FromXYZ returns the appearance of a 100-base XYZ coordinate under
// standard viewing conditions.
func FromXYZ(x, y, z float64) *CAM {
	return FromXYZView(x, y, z, StdView())
}

// FromXYZView is the forward CAM16 transform: it maps a 100-base XYZ
// coordinate to its appearance correlates under the given viewing
// conditions. Pure black yields all-zero correlates.
func FromXYZView(x, y, z float64, vw *View) *CAM {
	l, m, s := XYZToLMS(x, y, z)

	// discount the illuminant and apply the adaptation nonlinearity
	rA := ChromaticAdapt(vw.RGBD[0] * l * vw.FL / 100)
	gA := ChromaticAdapt(vw.RGBD[1] * m * vw.FL / 100)
	bA := ChromaticAdapt(vw.RGBD[2] * s * vw.FL / 100)

	// redness-greenness and yellowness-blueness opponent dimensions
	a := (11*rA - 12*gA + bA) / 11
	b := (rA + gA - 2*bA) / 9

	// auxiliary components and achromatic response
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	hue := num.SanitizeDegrees(180 / math.Pi * math.Atan2(b, a))

	ac := p2 * vw.NBB
	j := 100 * math.Pow(ac/vw.AW, vw.C*vw.Z)
	q := (4 / vw.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000.0 / 13 * eHue * vw.NC * vw.NCB
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)

	chroma := alpha * math.Sqrt(j/100)
	colorfulness := chroma * vw.FLRoot
	saturation := 50 * math.Sqrt(alpha*vw.C/(vw.AW+4))

	return &CAM{
		Hue:          hue,
		Chroma:       chroma,
		Colorfulness: colorfulness,
		Saturation:   saturation,
		Brightness:   q,
		Lightness:    j,
	}
}

// FromJCH returns the CAM with the given lightness (J), chroma (C),
// and hue (h) under standard viewing conditions.
func FromJCH(j, c, h float64) *CAM {
	return FromJCHView(j, c, h, StdView())
}

// FromJCHView returns the CAM with the given lightness (J), chroma
// (C), and hue (h) under the given viewing conditions, deriving the
// remaining correlates.
func FromJCHView(j, c, h float64, vw *View) *CAM {
	cam := &CAM{Lightness: j, Chroma: c, Hue: num.SanitizeDegrees(h)}
	cam.Brightness = (4 / vw.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot
	cam.Colorfulness = c * vw.FLRoot
	alpha := 0.0
	if j > 0 {
		alpha = c / math.Sqrt(j/100)
	}
	cam.Saturation = 50 * math.Sqrt(alpha*vw.C/(vw.AW+4))
	return cam
}

// UCS returns the CAM16-UCS coordinates of the appearance: J* and the
// compressed colorfulness M*, plus the cartesian a* and b* on the hue
// angle. Equal euclidean distances in (J*, a*, b*) approximate equal
// perceived color differences, so they are the coordinates to
// interpolate when blending.
func (cam *CAM) UCS() (jstar, mstar, astar, bstar float64) {
	jstar = (1 + 100*0.007) * cam.Lightness / (1 + 0.007*cam.Lightness)
	mstar = math.Log(1+0.0228*cam.Colorfulness) / 0.0228
	hueRad := cam.Hue * math.Pi / 180
	astar = mstar * math.Cos(hueRad)
	bstar = mstar * math.Sin(hueRad)
	return
}

// FromUCS returns the CAM for the given CAM16-UCS coordinates
// (J*, a*, b*) under standard viewing conditions.
func FromUCS(jstar, astar, bstar float64) *CAM {
	return FromUCSView(jstar, astar, bstar, StdView())
}

// FromUCSView returns the CAM for the given CAM16-UCS coordinates
// (J*, a*, b*) under the given viewing conditions.
func FromUCSView(jstar, astar, bstar float64, vw *View) *CAM {
	mstar := math.Hypot(astar, bstar)
	m := (math.Exp(mstar*0.0228) - 1) / 0.0228
	c := m / vw.FLRoot
	h := num.SanitizeDegrees(180 / math.Pi * math.Atan2(bstar, astar))
	j := jstar / (1 - (jstar-100)*0.007)
	return FromJCHView(j, c, h, vw)
}

// Color is the inverse transform under standard viewing conditions:
// the displayable color whose appearance this CAM describes.
func (cam *CAM) Color() argb.Color {
	return cam.ColorView(StdView())
}

// ColorView is the inverse ("viewed") CAM16 transform: it reconstructs
// the cone responses from the correlates, inverts the chromatic
// adaptation, and maps back through XYZ to an 8-bit color, rounding
// and clamping each channel. For a CAM produced by the forward
// transform under the same View, it reproduces the original color
// exactly.
func (cam *CAM) ColorView(vw *View) argb.Color {
	x, y, z := cam.XYZView(vw)
	return cie.ColorFromXYZ(x, y, z)
}

// XYZView returns the 100-base XYZ coordinates of the appearance
// under the given viewing conditions.
func (cam *CAM) XYZView(vw *View) (x, y, z float64) {
	alpha := 0.0
	if cam.Chroma != 0 && cam.Lightness != 0 {
		alpha = cam.Chroma / math.Sqrt(cam.Lightness/100)
	}
	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vw.N), 0.73), 1/0.9)

	hueRad := cam.Hue * math.Pi / 180
	eHue := 0.25 * (math.Cos(hueRad+2) + 3.8)
	ac := vw.AW * math.Pow(cam.Lightness/100, 1/vw.C/vw.Z)
	p1 := eHue * (50000.0 / 13) * vw.NC * vw.NCB
	p2 := ac / vw.NBB

	hSin := math.Sin(hueRad)
	hCos := math.Cos(hueRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rC := (100 / vw.FL) * InverseChromaticAdapt(rA)
	gC := (100 / vw.FL) * InverseChromaticAdapt(gA)
	bC := (100 / vw.FL) * InverseChromaticAdapt(bA)

	return LMSToXYZ(rC/vw.RGBD[0], gC/vw.RGBD[1], bC/vw.RGBD[2])
}
