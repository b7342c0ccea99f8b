// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/monetgo/monet/argb"
	"github.com/muesli/termenv"
)

var output = termenv.DefaultOutput()

// swatch renders a small colored block for terminals that support it.
func swatch(c argb.Color) string {
	return output.String("  ").Background(output.Color(c.Hex())).String()
}
