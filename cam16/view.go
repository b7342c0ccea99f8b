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

package cam16

import (
	"math"

	"github.com/monetgo/monet/cie"
	"github.com/monetgo/monet/num"
)

// View represents the viewing conditions under which a color is
// perceived, which greatly affect its subjective appearance. A View is
// immutable once constructed and may be shared freely across any
// number of concurrent transforms. The derived fields cache every
// factor the CAM16 equations reuse.
type View struct {

	// WhitePoint is the reference white illuminant, typically [cie.WhiteD65].
	WhitePoint [3]float64

	// AdaptingLuminance is the luminance of the adapting field in cd/m2.
	AdaptingLuminance float64

	// BackgroundLstar is the L* of the background around the color.
	BackgroundLstar float64

	// Surround is the relative brightness of the environment, 0 (dark)
	// to 2 (average).
	Surround float64

	// Discounting reports whether the eye is assumed to be fully
	// adapted to the illuminant, discounting its color.
	Discounting bool

	// N is the background relative luminance over the white relative luminance.
	N float64

	// AW is the achromatic response to the white point.
	AW float64

	// NBB and NCB are the luminance-level induction factors.
	NBB, NCB float64

	// C is the exponential nonlinearity from the surround.
	C float64

	// NC is the chromatic induction factor.
	NC float64

	// FL is the luminance-level adaptation factor, and FLRoot its 1/4 power.
	FL, FLRoot float64

	// Z is the base exponential nonlinearity.
	Z float64

	// RGBD holds the cone responses to the white point, adjusted for
	// the degree of adaptation.
	RGBD [3]float64
}

// NewView derives the full set of viewing-condition factors from the
// physical parameters. Inputs outside their physical ranges are pulled
// to the nearest defined value rather than rejected: background L* is
// floored at 0.1 (a pure black background is non-physical and leads to
// infinities), surround is clamped to [0, 2], and the degree of
// adaptation to [0, 1]. The result is always finite.
func NewView(whitePoint [3]float64, adaptingLuminance, backgroundLstar, surround float64, discounting bool) *View {
	vw := &View{
		WhitePoint:        whitePoint,
		AdaptingLuminance: math.Max(adaptingLuminance, 1e-4),
		BackgroundLstar:   math.Max(0.1, backgroundLstar),
		Surround:          num.Clamp(surround, 0, 2),
		Discounting:       discounting,
	}

	rW, gW, bW := XYZToLMS(whitePoint[0], whitePoint[1], whitePoint[2])

	// Surround in (0, 2) maps to the CAM16 surround domain (0.8, 1.0).
	f := 0.8 + vw.Surround/10
	if f >= 0.9 {
		vw.C = num.Lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.C = num.Lerp(0.525, 0.59, (f-0.8)*10)
	}
	vw.NC = f

	d := 1.0
	if !discounting {
		d = f * (1 - (1/3.6)*math.Exp((-vw.AdaptingLuminance-42)/92))
	}
	d = num.Clamp(d, 0, 1)

	// Cone responses to the white point, adjusted for discounting.
	// 100 is used rather than the white point's relative luminance;
	// the scaling relative to the white point happens downstream.
	vw.RGBD = [3]float64{d*(100/rW) + 1 - d, d*(100/gW) + 1 - d, d*(100/bW) + 1 - d}

	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	vw.FL = k4*vw.AdaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5*vw.AdaptingLuminance)
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	n := cie.YFromLstar(vw.BackgroundLstar) / whitePoint[1]
	vw.N = n
	vw.Z = 1.48 + math.Sqrt(n)
	vw.NBB = 0.725 / math.Pow(n, 0.2)
	vw.NCB = vw.NBB

	rA := ChromaticAdapt(vw.RGBD[0] * rW * vw.FL / 100)
	gA := ChromaticAdapt(vw.RGBD[1] * gW * vw.FL / 100)
	bA := ChromaticAdapt(vw.RGBD[2] * bW * vw.FL / 100)
	vw.AW = (2*rA + gA + 0.05*bA) * vw.NBB

	return vw
}

// stdView is the standard-environment singleton: D65 white point,
// sRGB-calibrated ambient luminance, mid-gray background, average
// surround, no discounting. It is never mutated after construction.
var stdView = NewView(cie.WhiteD65, (200/math.Pi)*(cie.YFromLstar(50)/100), 50, 2, false)

// StdView returns the shared standard viewing conditions used as the
// default for all color <-> appearance conversions.
func StdView() *View {
	return stdView
}
