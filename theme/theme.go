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

// Package theme assembles complete themes: light and dark schemes,
// core palettes, and custom colors harmonized with the source.
package theme

import (
	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/blend"
	"github.com/monetgo/monet/palette"
	"github.com/monetgo/monet/scheme"
)

// Theme is the complete color system derived from a source color.
type Theme struct {
	Source   argb.Color
	Schemes  Schemes
	Palettes *palette.Core
	Custom   []CustomColorGroup
}

// Schemes holds the light and dark variants of a theme's scheme.
type Schemes struct {
	Light *scheme.Scheme
	Dark  *scheme.Scheme
}

// CustomColor is a named extra color to include in a theme. When
// Blend is set, its hue is harmonized towards the theme source.
type CustomColor struct {
	Value argb.Color
	Name  string
	Blend bool
}

// ColorGroup is the four standard role variations of a custom color.
type ColorGroup struct {
	Color            argb.Color
	OnColor          argb.Color
	ColorContainer   argb.Color
	OnColorContainer argb.Color
}

// CustomColorGroup is a custom color realized for light and dark use.
type CustomColorGroup struct {
	Color CustomColor
	Value argb.Color
	Light ColorGroup
	Dark  ColorGroup
}

// FromSourceColor returns the theme of the given source color, with
// the given custom colors attached.
func FromSourceColor(source argb.Color, custom ...CustomColor) *Theme {
	core := palette.NewCore(source)
	groups := make([]CustomColorGroup, len(custom))
	for i, c := range custom {
		groups[i] = MakeCustomColor(c, source)
	}
	return &Theme{
		Source: source,
		Schemes: Schemes{
			Light: scheme.LightFromCore(core),
			Dark:  scheme.DarkFromCore(core),
		},
		Palettes: core,
		Custom:   groups,
	}
}

// MakeCustomColor realizes a custom color against a theme source,
// harmonizing its hue towards the source when the color asks for it.
func MakeCustomColor(c CustomColor, source argb.Color) CustomColorGroup {
	value := c.Value
	if c.Blend {
		value = blend.Harmonize(value, source)
	}
	tp := palette.TonalFromColor(value)
	return CustomColorGroup{
		Color: c,
		Value: value,
		Light: ColorGroup{
			Color:            tp.Tone(40),
			OnColor:          tp.Tone(100),
			ColorContainer:   tp.Tone(90),
			OnColorContainer: tp.Tone(10),
		},
		Dark: ColorGroup{
			Color:            tp.Tone(80),
			OnColor:          tp.Tone(20),
			ColorContainer:   tp.Tone(30),
			OnColorContainer: tp.Tone(90),
		},
	}
}
