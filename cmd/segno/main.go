// Command segno renders music notation. It exists mostly as a smoke
// test and showcase for the library: it can render a built-in demo
// score, inspect SMuFL glyph metadata, and list export backends.
package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/segnokit/segno/backend/pdfexport"
	_ "github.com/segnokit/segno/backend/raster"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "segno",
	Short:         "Music notation layout and rendering",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
