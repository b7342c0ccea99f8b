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

// Package scheme maps the tonal palettes of a source color onto named
// color roles for light and dark user interfaces.
package scheme

import (
	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/palette"
)

// Scheme assigns a color to every role of a user interface.
type Scheme struct {
	Primary            argb.Color
	OnPrimary          argb.Color
	PrimaryContainer   argb.Color
	OnPrimaryContainer argb.Color

	Secondary            argb.Color
	OnSecondary          argb.Color
	SecondaryContainer   argb.Color
	OnSecondaryContainer argb.Color

	Tertiary            argb.Color
	OnTertiary          argb.Color
	TertiaryContainer   argb.Color
	OnTertiaryContainer argb.Color

	Error            argb.Color
	OnError          argb.Color
	ErrorContainer   argb.Color
	OnErrorContainer argb.Color

	Background       argb.Color
	OnBackground     argb.Color
	Surface          argb.Color
	OnSurface        argb.Color
	SurfaceVariant   argb.Color
	OnSurfaceVariant argb.Color
	Outline          argb.Color
	OutlineVariant   argb.Color

	Shadow           argb.Color
	Scrim            argb.Color
	InverseSurface   argb.Color
	InverseOnSurface argb.Color
	InversePrimary   argb.Color
}

// Light returns the light scheme of the given source color.
func Light(c argb.Color) *Scheme {
	return LightFromCore(palette.NewCore(c))
}

// Dark returns the dark scheme of the given source color.
func Dark(c argb.Color) *Scheme {
	return DarkFromCore(palette.NewCore(c))
}

// LightContent returns the light content scheme of the given source
// color, staying closer to its chroma.
func LightContent(c argb.Color) *Scheme {
	return LightFromCore(palette.NewCoreContent(c))
}

// DarkContent returns the dark content scheme of the given source
// color, staying closer to its chroma.
func DarkContent(c argb.Color) *Scheme {
	return DarkFromCore(palette.NewCoreContent(c))
}

// LightFromCore returns the light scheme of the given core palettes.
func LightFromCore(core *palette.Core) *Scheme {
	return &Scheme{
		Primary:            core.Primary.Tone(40),
		OnPrimary:          core.Primary.Tone(100),
		PrimaryContainer:   core.Primary.Tone(90),
		OnPrimaryContainer: core.Primary.Tone(10),

		Secondary:            core.Secondary.Tone(40),
		OnSecondary:          core.Secondary.Tone(100),
		SecondaryContainer:   core.Secondary.Tone(90),
		OnSecondaryContainer: core.Secondary.Tone(10),

		Tertiary:            core.Tertiary.Tone(40),
		OnTertiary:          core.Tertiary.Tone(100),
		TertiaryContainer:   core.Tertiary.Tone(90),
		OnTertiaryContainer: core.Tertiary.Tone(10),

		Error:            core.Error.Tone(40),
		OnError:          core.Error.Tone(100),
		ErrorContainer:   core.Error.Tone(90),
		OnErrorContainer: core.Error.Tone(10),

		Background:       core.Neutral.Tone(99),
		OnBackground:     core.Neutral.Tone(10),
		Surface:          core.Neutral.Tone(99),
		OnSurface:        core.Neutral.Tone(10),
		SurfaceVariant:   core.NeutralVariant.Tone(90),
		OnSurfaceVariant: core.NeutralVariant.Tone(30),
		Outline:          core.NeutralVariant.Tone(50),
		OutlineVariant:   core.NeutralVariant.Tone(80),

		Shadow:           core.Neutral.Tone(0),
		Scrim:            core.Neutral.Tone(0),
		InverseSurface:   core.Neutral.Tone(20),
		InverseOnSurface: core.Neutral.Tone(95),
		InversePrimary:   core.Primary.Tone(80),
	}
}

// DarkFromCore returns the dark scheme of the given core palettes.
func DarkFromCore(core *palette.Core) *Scheme {
	return &Scheme{
		Primary:            core.Primary.Tone(80),
		OnPrimary:          core.Primary.Tone(20),
		PrimaryContainer:   core.Primary.Tone(30),
		OnPrimaryContainer: core.Primary.Tone(90),

		Secondary:            core.Secondary.Tone(80),
		OnSecondary:          core.Secondary.Tone(20),
		SecondaryContainer:   core.Secondary.Tone(30),
		OnSecondaryContainer: core.Secondary.Tone(90),

		Tertiary:            core.Tertiary.Tone(80),
		OnTertiary:          core.Tertiary.Tone(20),
		TertiaryContainer:   core.Tertiary.Tone(30),
		OnTertiaryContainer: core.Tertiary.Tone(90),

		Error:            core.Error.Tone(80),
		OnError:          core.Error.Tone(20),
		ErrorContainer:   core.Error.Tone(30),
		OnErrorContainer: core.Error.Tone(90),

		Background:       core.Neutral.Tone(10),
		OnBackground:     core.Neutral.Tone(90),
		Surface:          core.Neutral.Tone(10),
		OnSurface:        core.Neutral.Tone(90),
		SurfaceVariant:   core.NeutralVariant.Tone(30),
		OnSurfaceVariant: core.NeutralVariant.Tone(80),
		Outline:          core.NeutralVariant.Tone(60),
		OutlineVariant:   core.NeutralVariant.Tone(30),

		Shadow:           core.Neutral.Tone(0),
		Scrim:            core.Neutral.Tone(0),
		InverseSurface:   core.Neutral.Tone(90),
		InverseOnSurface: core.Neutral.Tone(20),
		InversePrimary:   core.Primary.Tone(40),
	}
}
