// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.InDelta(t, 39.76777842, Lerp(12.34567, 34.5678, 1.234), 1e-9)
	assert.Equal(t, 3.0, Lerp(3, 7, 0))
	assert.Equal(t, 7.0, Lerp(3, 7, 1))
}

func TestSanitizeDegrees(t *testing.T) {
	assert.InDelta(t, 15.1234, SanitizeDegrees(15.1234), 1e-9)
	assert.InDelta(t, 263.6544, SanitizeDegrees(-96.3456), 1e-9)
	assert.InDelta(t, 80, SanitizeDegrees(800), 1e-9)
	assert.Equal(t, 15, SanitizeDegreesInt(15))
	assert.Equal(t, 264, SanitizeDegreesInt(-96))
	assert.Equal(t, 0, SanitizeDegreesInt(720))
}

func TestDifferenceDegrees(t *testing.T) {
	assert.InDelta(t, 100, DifferenceDegrees(12.34567, 112.34567), 1e-9)
	assert.InDelta(t, 20, DifferenceDegrees(350, 10), 1e-9)
}

func TestRotationDirection(t *testing.T) {
	assert.Equal(t, 1.0, RotationDirection(12.34567, 160.99876))
	assert.Equal(t, -1.0, RotationDirection(160.99876, 12.34567))
	assert.Equal(t, 1.0, RotationDirection(0, 180))
}

func TestMatMul(t *testing.T) {
	row := [3]float64{1.25, 2.5, 3.75}
	m := [3][3]float64{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}
	got := MatMul(row, m)
	assert.Equal(t, [3]float64{7.5, 15, 22.5}, got)
}
