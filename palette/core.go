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

package palette

import (
	"math"

	"github.com/monetgo/monet/argb"
	"github.com/monetgo/monet/hct"
)

// Core is the set of tonal palettes a color scheme is built from, all
// derived from a single source color.
type Core struct {
	Primary        *Tonal
	Secondary      *Tonal
	Tertiary       *Tonal
	Neutral        *Tonal
	NeutralVariant *Tonal
	Error          *Tonal
}

// NewCore returns the core palettes of the given source color. The
// primary palette keeps the source hue at a chroma of at least 48; the
// secondary and neutral palettes reuse the hue at low chroma, and the
// tertiary palette rotates the hue by 60 degrees.
func NewCore(c argb.Color) *Core {
	return newCore(c, false)
}

// NewCoreContent returns content-style core palettes of the given
// source color. Content palettes preserve the source chroma instead of
// boosting it, for schemes that stay closer to the source.
func NewCoreContent(c argb.Color) *Core {
	return newCore(c, true)
}

func newCore(c argb.Color, content bool) *Core {
	h := hct.FromColor(c)
	hue := h.Hue()
	chroma := h.Chroma()
	if content {
		return &Core{
			Primary:        NewTonal(hue, chroma),
			Secondary:      NewTonal(hue, chroma/3),
			Tertiary:       NewTonal(hue+60, chroma/2),
			Neutral:        NewTonal(hue, math.Min(chroma/12, 4)),
			NeutralVariant: NewTonal(hue, math.Min(chroma/6, 8)),
			Error:          NewTonal(25, 84),
		}
	}
	return &Core{
		Primary:        NewTonal(hue, math.Max(48, chroma)),
		Secondary:      NewTonal(hue, 16),
		Tertiary:       NewTonal(hue+60, 24),
		Neutral:        NewTonal(hue, 4),
		NeutralVariant: NewTonal(hue, 8),
		Error:          NewTonal(25, 84),
	}
}
