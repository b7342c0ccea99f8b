// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides the small numeric helpers shared by the color
// packages: interpolation, angle sanitization, and 3-vector matrix
// multiplication.
package num

import "math"

// Lerp linearly interpolates between start and stop,
// returning start at amount = 0 and stop at amount = 1.
func Lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

// SanitizeDegrees wraps a degree measure into [0, 360).
func SanitizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// SanitizeDegreesInt wraps an integral degree measure into [0, 360).
func SanitizeDegreesInt(degrees int) int {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// DifferenceDegrees returns the distance between two angles
// on a circle, in degrees, always in [0, 180].
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// RotationDirection returns the sign of the shortest rotation from one
// angle to another: 1 if increasing from reaches to sooner, -1 if
// decreasing does. Angles exactly 180 degrees apart travel the same
// distance either way and return 1.
func RotationDirection(from, to float64) float64 {
	if SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}

// MatMul multiplies a row 3-vector by a 3x3 matrix.
func MatMul(row [3]float64, m [3][3]float64) [3]float64 {
	return [3]float64{
		row[0]*m[0][0] + row[1]*m[0][1] + row[2]*m[0][2],
		row[0]*m[1][0] + row[1]*m[1][1] + row[2]*m[1][2],
		row[0]*m[2][0] + row[1]*m[2][1] + row[2]*m[2][2],
	}
}

// Clamp restricts x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}
