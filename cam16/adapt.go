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

import "math"

// XYZToLMS transforms 100-base XYZ coordinates into the CAM16
// cone-response ('rgb') space.
func XYZToLMS(x, y, z float64) (l, m, s float64) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// LMSToXYZ transforms CAM16 cone-response values back into
// 100-base XYZ coordinates.
func LMSToXYZ(l, m, s float64) (x, y, z float64) {
	x = 1.86206786*l - 1.01125463*m + 0.14918677*s
	y = 0.38752654*l + 0.62144744*m - 0.00897398*s
	z = -0.01584150*l - 0.03412294*m + 1.04996444*s
	return
}

// ChromaticAdapt applies the post-adaptation cone-response
// nonlinearity to one component.
func ChromaticAdapt(comp float64) float64 {
	af := math.Pow(math.Abs(comp), 0.42)
	return signum(comp) * 400 * af / (af + 27.13)
}

// InverseChromaticAdapt undoes [ChromaticAdapt], recovering the
// linear cone response from an adapted one.
func InverseChromaticAdapt(adapted float64) float64 {
	aAbs := math.Abs(adapted)
	base := math.Max(0, 27.13*aAbs/(400-aAbs))
	return signum(adapted) * math.Pow(base, 1/0.42)
}

// SanitizeRadians wraps an angle into [0, 2pi). The angle must be
// no less than -8pi.
func SanitizeRadians(angle float64) float64 {
	return math.Mod(angle+8*math.Pi, 2*math.Pi)
}

// InCyclicOrder reports whether the angle b is between a and c
// when traveling counterclockwise from a, in radians.
func InCyclicOrder(a, b, c float64) bool {
	return SanitizeRadians(b-a) < SanitizeRadians(c-a)
}

// signum returns -1, 0, or 1 by the sign of x. The zero case matters:
// the adaptation nonlinearities must map zero to exactly zero.
func signum(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
