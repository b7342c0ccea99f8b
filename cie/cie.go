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

// Package cie implements the standard CIE color-space conversions
// underlying the appearance model: sRGB to and from linear RGB, XYZ,
// and L*a*b*, and the L* <-> Y lightness relations. XYZ and linear RGB
// use the 100-base scale throughout.
package cie

import (
	"math"

	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/num"
)

// SRGBToXYZ maps 100-base linear sRGB to XYZ under D65.
var SRGBToXYZ = [3][3]float64{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// XYZToSRGB maps XYZ under D65 to 100-base linear sRGB.
var XYZToSRGB = [3][3]float64{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// WhiteD65 is the standard D65 white point; white on a sunny day.
var WhiteD65 = [3]float64{95.047, 100.0, 108.883}

// Linearize converts a gamma-corrected 8-bit sRGB channel into
// 100-base linear light.
func Linearize(comp uint8) float64 {
	return LinearizeFloat(float64(comp) / 255)
}

// LinearizeFloat converts a 0-1 normalized gamma-corrected sRGB value
// into 100-base linear light.
func LinearizeFloat(normalized float64) float64 {
	if normalized <= 0.040449936 {
		return normalized / 12.92 * 100
	}
	return math.Pow((normalized+0.055)/1.055, 2.4) * 100
}

// Delinearize converts 100-base linear light into a gamma-corrected
// 8-bit sRGB channel, rounding and clamping to [0, 255].
func Delinearize(comp float64) uint8 {
	d := DelinearizeFloat(comp)
	return uint8(num.Clamp(math.Round(d*255), 0, 255))
}

// DelinearizeFloat converts 100-base linear light into a 0-1
// normalized gamma-corrected sRGB value, without rounding or clamping.
func DelinearizeFloat(comp float64) float64 {
	normalized := comp / 100
	if normalized <= 0.0031308 {
		return normalized * 12.92
	}
	return 1.055*math.Pow(normalized, 1/2.4) - 0.055
}

// XYZFromColor converts a color to 100-base XYZ coordinates.
func XYZFromColor(c argb.Color) (x, y, z float64) {
	rgb := [3]float64{Linearize(c.Red()), Linearize(c.Green()), Linearize(c.Blue())}
	xyz := num.MatMul(rgb, SRGBToXYZ)
	return xyz[0], xyz[1], xyz[2]
}

// ColorFromXYZ converts 100-base XYZ coordinates to the nearest
// displayable opaque color, clamping each channel.
func ColorFromXYZ(x, y, z float64) argb.Color {
	rgb := num.MatMul([3]float64{x, y, z}, XYZToSRGB)
	return ColorFromLinRGB(rgb)
}

// ColorFromLinRGB converts 100-base linear RGB components to the
// nearest displayable opaque color, clamping each channel.
func ColorFromLinRGB(rgb [3]float64) argb.Color {
	return argb.FromRGB(Delinearize(rgb[0]), Delinearize(rgb[1]), Delinearize(rgb[2]))
}

// LabFromColor converts a color to L*a*b* coordinates under D65.
func LabFromColor(c argb.Color) (l, a, b float64) {
	x, y, z := XYZFromColor(c)
	fx := labF(x / WhiteD65[0])
	fy := labF(y / WhiteD65[1])
	fz := labF(z / WhiteD65[2])
	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

// ColorFromLab converts L*a*b* coordinates under D65 to the nearest
// displayable opaque color.
func ColorFromLab(l, a, b float64) argb.Color {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x := labInvF(fx) * WhiteD65[0]
	y := labInvF(fy) * WhiteD65[1]
	z := labInvF(fz) * WhiteD65[2]
	return ColorFromXYZ(x, y, z)
}

// LstarFromColor returns the L* (perceptual lightness) of a color.
func LstarFromColor(c argb.Color) float64 {
	_, y, _ := XYZFromColor(c)
	return LstarFromY(y)
}

// ColorFromLstar returns the grayscale color with the given L*.
func ColorFromLstar(lstar float64) argb.Color {
	w := Delinearize(YFromLstar(lstar))
	return argb.FromRGB(w, w, w)
}

// YFromLstar converts perceptual lightness L* to relative luminance Y.
func YFromLstar(lstar float64) float64 {
	return 100 * labInvF((lstar+16)/116)
}

// LstarFromY converts relative luminance Y to perceptual lightness L*.
func LstarFromY(y float64) float64 {
	return 116*labF(y/100) - 16
}

func labF(t float64) float64 {
	e := 216.0 / 24389.0
	if t > e {
		return math.Cbrt(t)
	}
	kappa := 24389.0 / 27.0
	return (kappa*t + 16) / 116
}

func labInvF(ft float64) float64 {
	e := 216.0 / 24389.0
	ft3 := ft * ft * ft
	if ft3 > e {
		return ft3
	}
	kappa := 24389.0 / 27.0
	return (116*ft - 16) / kappa
}
