// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/monetgo/monet/argb"
	"golang.org/x/image/colornames"
)

// parseColor accepts a hex string like #1b6ef3 or an SVG color name
// like cornflowerblue.
func parseColor(s string) (argb.Color, error) {
	if strings.HasPrefix(s, "#") {
		return argb.FromHex(s)
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return argb.FromStdColor(named), nil
	}
	if c, err := argb.FromHex(s); err == nil {
		return c, nil
	}
	return 0, fmt.Errorf("unknown color %q: expected a hex string or a CSS color name", s)
}
