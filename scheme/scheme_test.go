// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/cie"
	"github.com/monetgo/monet/hct"
	"github.com/stretchr/testify/assert"
)

func TestLightTones(t *testing.T) {
	s := Light(0xff0000ff)
	assert.InDelta(t, 40, cie.LstarFromColor(s.Primary), 0.5)
	assert.InDelta(t, 100, cie.LstarFromColor(s.OnPrimary), 0.5)
	assert.InDelta(t, 90, cie.LstarFromColor(s.PrimaryContainer), 0.5)
	assert.InDelta(t, 99, cie.LstarFromColor(s.Background), 0.5)
	assert.InDelta(t, 50, cie.LstarFromColor(s.Outline), 0.5)
	assert.Equal(t, argb.Color(0xff000000), s.Shadow)
	assert.Equal(t, argb.Color(0xff000000), s.Scrim)
}

func TestDarkTones(t *testing.T) {
	s := Dark(0xff0000ff)
	assert.InDelta(t, 80, cie.LstarFromColor(s.Primary), 0.5)
	assert.InDelta(t, 20, cie.LstarFromColor(s.OnPrimary), 0.5)
	assert.InDelta(t, 10, cie.LstarFromColor(s.Background), 0.5)
	assert.InDelta(t, 60, cie.LstarFromColor(s.Outline), 0.5)
	assert.Equal(t, argb.Color(0xff000000), s.Shadow)
}

func TestSchemeContrast(t *testing.T) {
	for _, s := range []*Scheme{Light(0xff770099), Dark(0xff770099)} {
		assert.GreaterOrEqual(t, hct.ContrastRatio(s.Primary, s.OnPrimary), 4.5)
		assert.GreaterOrEqual(t, hct.ContrastRatio(s.Background, s.OnBackground), 4.5)
	}
}

func TestSchemeDeterminism(t *testing.T) {
	a := Light(0xff123456)
	b := Light(0xff123456)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("scheme mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemeContent(t *testing.T) {
	s := LightContent(0xff0000ff)
	h := hct.FromColor(s.Primary)
	src := hct.FromColor(argb.Color(0xff0000ff))
	// Content schemes keep the source chroma instead of boosting it.
	assert.LessOrEqual(t, h.Chroma(), src.Chroma()+2.5)
	assert.NotNil(t, DarkContent(0xff0000ff))
}

func TestRoles(t *testing.T) {
	s := Light(0xff0000ff)
	assert.Equal(t, s.Primary, s.Color(Primary))
	assert.Equal(t, s.InversePrimary, s.Color(InversePrimary))
	assert.Equal(t, s.Outline, s.Color(Outline))
	assert.Equal(t, argb.Color(0), s.Color(RolesN))

	assert.Equal(t, "primary", Primary.String())
	assert.Equal(t, "inversePrimary", InversePrimary.String())
	assert.Equal(t, "onSurfaceVariant", OnSurfaceVariant.String())

	seen := map[string]bool{}
	for r := Primary; r < RolesN; r++ {
		name := r.String()
		assert.False(t, seen[name], "duplicate role name %q", name)
		seen[name] = true
	}
}
