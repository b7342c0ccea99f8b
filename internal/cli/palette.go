// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/monetgo/monet/palette"
	"github.com/spf13/cobra"
)

var paletteTones = []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}

var paletteCmd = &cobra.Command{
	Use:   "palette <color>",
	Short: "Show the tonal palettes of a source color",
	Long:  `Show the core tonal palettes (primary, secondary, tertiary, neutral, neutral variant, error) of a source color at the standard tone stops.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	c, err := parseColor(args[0])
	if err != nil {
		return err
	}
	core := palette.NewCore(c)

	out := cmd.OutOrStdout()
	rows := []struct {
		name string
		tp   *palette.Tonal
	}{
		{"primary", core.Primary},
		{"secondary", core.Secondary},
		{"tertiary", core.Tertiary},
		{"neutral", core.Neutral},
		{"neutralVariant", core.NeutralVariant},
		{"error", core.Error},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%-15s", row.name)
		for _, tone := range paletteTones {
			fmt.Fprint(out, swatch(row.tp.Tone(tone)))
		}
		fmt.Fprintln(out)
	}
	return nil
}
