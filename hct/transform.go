// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import "github.com/monetgo/monet/argb"

// Lighten returns a color that is lighter by the given absolute
// tone amount (0-100, clamped).
func Lighten(c argb.Color, amount float64) argb.Color {
	h := FromColor(c)
	h.SetTone(h.Tone() + amount)
	return h.Color()
}

// Darken returns a color that is darker by the given absolute
// tone amount (0-100, clamped).
func Darken(c argb.Color, amount float64) argb.Color {
	h := FromColor(c)
	h.SetTone(h.Tone() - amount)
	return h.Color()
}
