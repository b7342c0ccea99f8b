// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToneContrastRatio(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 100, 21},
		{100, 0, 21},
		{50, 50, 1},
		{-10, 110, 21},
	}
	for i, test := range tests {
		assert.InDelta(t, test.want, ToneContrastRatio(test.a, test.b), 1e-9, "case %d", i)
	}
}

func TestLighterDarker(t *testing.T) {
	l, ok := Lighter(30, 3)
	if assert.True(t, ok) {
		assert.InDelta(t, 3, ToneContrastRatio(30, l), 0.1)
		assert.Greater(t, l, 30.0)
	}

	d, ok := Darker(80, 3)
	if assert.True(t, ok) {
		assert.InDelta(t, 3, ToneContrastRatio(80, d), 0.1)
		assert.Less(t, d, 80.0)
	}

	_, ok = Lighter(90, 10)
	assert.False(t, ok)
	_, ok = Darker(10, 10)
	assert.False(t, ok)

	assert.Equal(t, 100.0, LighterUnsafe(90, 10))
	assert.Equal(t, 0.0, DarkerUnsafe(10, 10))
}

func TestContrastTone(t *testing.T) {
	// A tone above 50 prefers going darker.
	ct, ok := ContrastTone(80, 3)
	if assert.True(t, ok) {
		assert.Less(t, ct, 80.0)
	}
	// A tone below 50 prefers going lighter.
	ct, ok = ContrastTone(20, 3)
	if assert.True(t, ok) {
		assert.Greater(t, ct, 20.0)
	}

	_, ok = ContrastTone(50, 21)
	assert.False(t, ok)
	assert.Contains(t, []float64{0, 100}, ContrastToneUnsafe(50, 21))
}

func TestContrastColor(t *testing.T) {
	c, ok := ContrastColor(0xff770099, 4.5)
	if assert.True(t, ok) {
		assert.GreaterOrEqual(t, ContrastRatio(0xff770099, c), 4.4)
	}
}
