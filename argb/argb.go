// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argb provides the packed 8-bit ARGB color word used
// throughout monet, along with hex string parsing and formatting
// and interoperation with the standard [image/color] types.
package argb

import (
	"image/color"
)

// Color is a color packed into a single alpha-first 0xAARRGGBB word,
// with each channel an unsigned 8-bit value. It is an immutable value
// type: all operations return new values.
type Color uint32

// From returns the color with the given alpha, red, green,
// and blue channels.
func From(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromRGB returns the fully opaque color with the given red, green,
// and blue channels.
func FromRGB(r, g, b uint8) Color {
	return From(255, r, g, b)
}

// Alpha returns the alpha channel, 0 to 255.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel, 0 to 255.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel, 0 to 255.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel, 0 to 255.
func (c Color) Blue() uint8 { return uint8(c) }

// IsOpaque reports whether the alpha channel is 255.
func (c Color) IsOpaque() bool { return c.Alpha() == 255 }

// RGBA implements the [color.Color] interface, premultiplying
// the channels by alpha at this point.
func (c Color) RGBA() (r, g, b, a uint32) {
	na := uint32(c.Alpha())
	r = uint32(c.Red()) * 0x101 * na / 0xff
	g = uint32(c.Green()) * 0x101 * na / 0xff
	b = uint32(c.Blue()) * 0x101 * na / 0xff
	a = na * 0x101
	return
}

// AsRGBA returns the color as a premultiplied [color.RGBA].
func (c Color) AsRGBA() color.RGBA {
	a := uint16(c.Alpha())
	return color.RGBA{
		R: uint8(uint16(c.Red()) * a / 0xff),
		G: uint8(uint16(c.Green()) * a / 0xff),
		B: uint8(uint16(c.Blue()) * a / 0xff),
		A: uint8(a),
	}
}

// FromStdColor returns the [Color] for any standard [color.Color],
// un-premultiplying the channels. A fully transparent input maps to 0.
func FromStdColor(src color.Color) Color {
	if c, ok := src.(Color); ok {
		return c
	}
	r, g, b, a := src.RGBA()
	if a == 0 {
		return 0
	}
	return From(
		uint8(a>>8),
		uint8((r*0xffff/a)>>8),
		uint8((g*0xffff/a)>>8),
		uint8((b*0xffff/a)>>8),
	)
}

// String returns the hex representation of the color, per [Color.Hex].
func (c Color) String() string {
	return c.Hex()
}
