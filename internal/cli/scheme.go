// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/monetgo/monet/scheme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var schemeCmd = &cobra.Command{
	Use:   "scheme <color>",
	Short: "Show the color scheme of a source color",
	Long:  `Show every color role of the scheme derived from a source color.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScheme,
}

func init() {
	rootCmd.AddCommand(schemeCmd)

	schemeCmd.Flags().Bool("dark", false, "Show the dark scheme instead of the light one")
	schemeCmd.Flags().Bool("content", false, "Use content palettes, keeping the source chroma")

	if err := viper.BindPFlag("scheme.dark", schemeCmd.Flags().Lookup("dark")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("scheme.content", schemeCmd.Flags().Lookup("content")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runScheme(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	c, err := parseColor(args[0])
	if err != nil {
		return err
	}
	dark := viper.GetBool("scheme.dark")
	content := viper.GetBool("scheme.content")

	var s *scheme.Scheme
	switch {
	case dark && content:
		s = scheme.DarkContent(c)
	case dark:
		s = scheme.Dark(c)
	case content:
		s = scheme.LightContent(c)
	default:
		s = scheme.Light(c)
	}

	out := cmd.OutOrStdout()
	for r := scheme.Primary; r < scheme.RolesN; r++ {
		v := s.Color(r)
		fmt.Fprintf(out, "%s %-22s %s\n", swatch(v), r, v.Hex())
	}
	return nil
}
