// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"math"
	"testing"

	"github.com/monetgo/monet/argb"
	"github.com/stretchr/testify/assert"
)

const tol = 0.001

var (
	black = argb.FromRGB(0, 0, 0)
	white = argb.FromRGB(255, 255, 255)
	red   = argb.FromRGB(255, 0, 0)
	green = argb.FromRGB(0, 255, 0)
	blue  = argb.FromRGB(0, 0, 255)
)

func TestStdView(t *testing.T) {
	vw := StdView()
	assert.InDelta(t, 11.725676537, vw.AdaptingLuminance, tol)
	assert.InDelta(t, 50.0, vw.BackgroundLstar, tol)
	assert.InDelta(t, 2.0, vw.Surround, tol)
	assert.InDelta(t, 0.184186503, vw.N, tol)
	assert.InDelta(t, 29.981000900, vw.AW, tol)
	assert.InDelta(t, 1.016919255, vw.NBB, tol)
	assert.InDelta(t, 1.016919255, vw.NCB, tol)
	assert.InDelta(t, 0.69, vw.C, tol)
	assert.InDelta(t, 1.0, vw.NC, tol)
	assert.InDelta(t, 0.388481468, vw.FL, tol)
	assert.InDelta(t, 0.789482653, vw.FLRoot, tol)
	assert.InDelta(t, 1.909169555, vw.Z, tol)
	assert.InDelta(t, 1.021177769, vw.RGBD[0], tol)
	assert.InDelta(t, 0.986307740, vw.RGBD[1], tol)
	assert.InDelta(t, 0.933960497, vw.RGBD[2], tol)
}

func TestViewSurround(t *testing.T) {
	vw := NewView(StdView().WhitePoint, StdView().AdaptingLuminance, 50, 0.5, false)
	assert.InDelta(t, 0.5575, vw.C, tol)

	// out-of-range inputs still yield finite, defined factors
	vw = NewView(StdView().WhitePoint, -3, -20, 9, false)
	assert.False(t, math.IsNaN(vw.AW) || math.IsInf(vw.AW, 0))
	assert.InDelta(t, 0.1, vw.BackgroundLstar, tol)
	assert.InDelta(t, 2, vw.Surround, tol)
}

func TestCAMRed(t *testing.T) {
	cam := FromColor(red)
	assert.InDelta(t, 46.445, cam.Lightness, tol)
	assert.InDelta(t, 113.357, cam.Chroma, tol)
	assert.InDelta(t, 27.408, cam.Hue, tol)
	assert.InDelta(t, 89.494, cam.Colorfulness, tol)
	assert.InDelta(t, 91.889, cam.Saturation, tol)
	assert.InDelta(t, 105.988, cam.Brightness, tol)
}

func TestCAMGreen(t *testing.T) {
	cam := FromColor(green)
	assert.InDelta(t, 79.331, cam.Lightness, tol)
	assert.InDelta(t, 108.410, cam.Chroma, tol)
	assert.InDelta(t, 142.139, cam.Hue, tol)
	assert.InDelta(t, 85.587, cam.Colorfulness, tol)
	assert.InDelta(t, 78.604, cam.Saturation, tol)
	assert.InDelta(t, 138.520, cam.Brightness, tol)
}

func TestCAMBlue(t *testing.T) {
	cam := FromColor(blue)
	assert.InDelta(t, 25.465, cam.Lightness, tol)
	assert.InDelta(t, 87.230, cam.Chroma, tol)
	assert.InDelta(t, 282.788, cam.Hue, tol)
	assert.InDelta(t, 68.867, cam.Colorfulness, tol)
	assert.InDelta(t, 93.674, cam.Saturation, tol)
	assert.InDelta(t, 78.481, cam.Brightness, tol)
}

func TestCAMBlack(t *testing.T) {
	cam := FromColor(black)
	assert.Zero(t, cam.Lightness)
	assert.Zero(t, cam.Chroma)
	assert.Zero(t, cam.Hue)
	assert.Zero(t, cam.Colorfulness)
	assert.Zero(t, cam.Saturation)
	assert.Zero(t, cam.Brightness)
}

func TestCAMWhite(t *testing.T) {
	cam := FromColor(white)
	assert.InDelta(t, 100.0, cam.Lightness, tol)
	assert.InDelta(t, 2.869, cam.Chroma, tol)
	assert.InDelta(t, 209.492, cam.Hue, tol)
	assert.InDelta(t, 2.265, cam.Colorfulness, tol)
	assert.InDelta(t, 12.068, cam.Saturation, tol)
	assert.InDelta(t, 155.521, cam.Brightness, tol)
}

func TestReflexivity(t *testing.T) {
	colors := []argb.Color{red, green, blue, black, white,
		argb.FromRGB(119, 0, 153),
		argb.FromRGB(18, 201, 157),
		argb.FromRGB(1, 1, 1),
		argb.FromRGB(254, 254, 254),
	}
	for r := 0; r < 256; r += 37 {
		for g := 0; g < 256; g += 43 {
			for b := 0; b < 256; b += 51 {
				colors = append(colors, argb.FromRGB(uint8(r), uint8(g), uint8(b)))
			}
		}
	}
	vw := StdView()
	for _, c := range colors {
		cam := FromColorView(c, vw)
		assert.Equal(t, c, cam.ColorView(vw), "color %v", c)
	}
}

func TestUCSRoundTrip(t *testing.T) {
	for _, c := range []argb.Color{red, green, blue, white, argb.FromRGB(255, 255, 0)} {
		cam := FromColor(c)
		jstar, _, astar, bstar := cam.UCS()
		back := FromUCS(jstar, astar, bstar)
		assert.InDelta(t, cam.Lightness, back.Lightness, tol)
		assert.InDelta(t, cam.Chroma, back.Chroma, tol)
		assert.InDelta(t, cam.Hue, back.Hue, tol)
		assert.InDelta(t, cam.Colorfulness, back.Colorfulness, tol)
		assert.InDelta(t, cam.Saturation, back.Saturation, tol)
		assert.InDelta(t, cam.Brightness, back.Brightness, tol)
		assert.Equal(t, c, back.Color())
	}
}

func TestFromJCH(t *testing.T) {
	assert.Equal(t, FromJCHView(60, 50, 40, StdView()), FromJCH(60, 50, 40))
	cam := FromColor(red)
	re := FromJCH(cam.Lightness, cam.Chroma, cam.Hue)
	assert.InDelta(t, cam.Brightness, re.Brightness, tol)
	assert.InDelta(t, cam.Saturation, re.Saturation, tol)
	assert.InDelta(t, cam.Colorfulness, re.Colorfulness, tol)
	assert.Equal(t, red, re.Color())
}

func TestLMS(t *testing.T) {
	x, y, z := LMSToXYZ(XYZToLMS(30.0, 40.0, 50.0))
	assert.InDelta(t, 30, x, tol)
	assert.InDelta(t, 40, y, tol)
	assert.InDelta(t, 50, z, tol)

	assert.InDelta(t, 28.158, InverseChromaticAdapt(52.1), tol)
	assert.InDelta(t, 52.1, ChromaticAdapt(28.158047), tol)
	assert.Zero(t, ChromaticAdapt(0))
	assert.Zero(t, InverseChromaticAdapt(0))
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, math.Pi, SanitizeRadians(5*math.Pi), 1e-9)
	assert.InDelta(t, 0, SanitizeRadians(2*math.Pi), 1e-9)
	assert.True(t, InCyclicOrder(0, 1, 2))
	assert.False(t, InCyclicOrder(0, 2, 1))
	assert.True(t, InCyclicOrder(6, 0.1, 0.2))
}
