// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/monetgo/monet/cam16"
	"github.com/monetgo/monet/cie"
	"github.com/monetgo/monet/hct"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color to HCT, CAM16, and L*a*b*",
	Long:  `Convert a hex string or CSS color name to its HCT, CAM16, and CIELAB coordinates.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	c, err := parseColor(args[0])
	if err != nil {
		return err
	}
	logger.Debug("parsed color", "input", args[0], "argb", c.Hex())

	h := hct.FromColor(c)
	cam := cam16.FromColor(c)
	l, a, b := cie.LabFromColor(c)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", swatch(c), c.Hex())
	fmt.Fprintf(out, "  hct:   %.3f, %.3f, %.3f\n", h.Hue(), h.Chroma(), h.Tone())
	fmt.Fprintf(out, "  cam16: J=%.3f C=%.3f h=%.3f M=%.3f s=%.3f Q=%.3f\n",
		cam.Lightness, cam.Chroma, cam.Hue, cam.Colorfulness, cam.Saturation, cam.Brightness)
	fmt.Fprintf(out, "  lab:   %.3f, %.3f, %.3f\n", l, a, b)
	return nil
}
