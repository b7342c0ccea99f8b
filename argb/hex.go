// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argb

import (
	"fmt"
	"strconv"
	"strings"
)

// FromHex parses a CSS-style hex color string. It accepts short RGB
// ("#FFF"), standard RRGGBB, and RRGGBBAA forms, with or without the
// leading #. Any alpha channel is the trailing pair, per CSS.
// This is the only fallible entry point in the module: every numeric
// API sanitizes its inputs instead of rejecting them.
func FromHex(hex string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(h) {
	case 3:
		h = h[0:1] + h[0:1] + h[1:2] + h[1:2] + h[2:3] + h[2:3]
		fallthrough
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("argb: invalid hex color %q: %w", hex, err)
		}
		return Color(0xff000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("argb: invalid hex color %q: %w", hex, err)
		}
		// RRGGBBAA on the wire; alpha-first in memory.
		return Color(uint32(v)>>8 | uint32(v)<<24), nil
	default:
		return 0, fmt.Errorf("argb: invalid hex color %q: must have 3, 6, or 8 digits", hex)
	}
}

// Hex returns the CSS hex string for the color: #rrggbb when fully
// opaque, #rrggbbaa otherwise.
func (c Color) Hex() string {
	if c.IsOpaque() {
		return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Red(), c.Green(), c.Blue(), c.Alpha())
}
