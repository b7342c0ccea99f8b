// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/monetgo/monet/scheme"
	"github.com/monetgo/monet/theme"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme <color>",
	Short: "Generate a full theme as JSON",
	Long: `Generate the complete theme of a source color as JSON: light and dark
schemes, tonal palettes, and any custom colors, harmonized towards
the source.`,
	Args: cobra.ExactArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)

	themeCmd.Flags().StringArray("custom", nil, "Custom color as name=hex, may be repeated")
	themeCmd.Flags().Bool("no-blend", false, "Do not harmonize custom colors towards the source")
}

func runTheme(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	c, err := parseColor(args[0])
	if err != nil {
		return err
	}
	customSpecs, err := cmd.Flags().GetStringArray("custom")
	if err != nil {
		return err
	}
	noBlend, err := cmd.Flags().GetBool("no-blend")
	if err != nil {
		return err
	}

	custom := make([]theme.CustomColor, 0, len(customSpecs))
	for _, spec := range customSpecs {
		name, hex, ok := strings.Cut(spec, "=")
		if !ok {
			return fmt.Errorf("invalid custom color %q: expected name=hex", spec)
		}
		value, err := parseColor(hex)
		if err != nil {
			return err
		}
		custom = append(custom, theme.CustomColor{
			Value: value,
			Name:  name,
			Blend: !noBlend,
		})
	}

	th := theme.FromSourceColor(c, custom...)
	logger.Debug("theme generated", "source", th.Source.Hex(), "custom", len(th.Custom))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(themeJSON(th))
}

// themeJSON flattens a theme into hex strings for output.
func themeJSON(th *theme.Theme) map[string]any {
	customs := make([]map[string]any, len(th.Custom))
	for i, g := range th.Custom {
		customs[i] = map[string]any{
			"name":  g.Color.Name,
			"value": g.Value.Hex(),
			"blend": g.Color.Blend,
			"light": groupJSON(g.Light),
			"dark":  groupJSON(g.Dark),
		}
	}
	return map[string]any{
		"source":       th.Source.Hex(),
		"schemes":      map[string]any{"light": schemeJSON(th.Schemes.Light), "dark": schemeJSON(th.Schemes.Dark)},
		"customColors": customs,
	}
}

func schemeJSON(s *scheme.Scheme) map[string]string {
	out := make(map[string]string, int(scheme.RolesN))
	for r := scheme.Primary; r < scheme.RolesN; r++ {
		out[r.String()] = s.Color(r).Hex()
	}
	return out
}

func groupJSON(g theme.ColorGroup) map[string]string {
	return map[string]string{
		"color":            g.Color.Hex(),
		"onColor":          g.OnColor.Hex(),
		"colorContainer":   g.ColorContainer.Hex(),
		"onColorContainer": g.OnColorContainer.Hex(),
	}
}
