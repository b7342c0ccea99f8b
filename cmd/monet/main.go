// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command monet converts colors through the HCT color space and
// derives tonal palettes, schemes, and themes from a source color.
package main

import "github.com/monetgo/monet/internal/cli"

func main() {
	cli.Execute()
}
