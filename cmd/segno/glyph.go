package main

import (
	"github.com/spf13/cobra"

	"github.com/segnokit/segno/smufl"
)

var glyphCmd = &cobra.Command{
	Use:   "glyph <name>",
	Short: "Print SMuFL metadata for a glyph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := smufl.Bravura().Glyph(args[0])
		if err != nil {
			return err
		}
		cmd.Printf("name:      %s\n", g.Name)
		cmd.Printf("codepoint: U+%04X\n", g.Codepoint)
		cmd.Printf("bbox:      NE (%g, %g)  SW (%g, %g)  [staff spaces]\n",
			g.BBox.NE[0], g.BBox.NE[1], g.BBox.SW[0], g.BBox.SW[1])
		if len(g.Anchors) > 0 {
			cmd.Println("anchors:")
			for name, a := range g.Anchors {
				cmd.Printf("  %-12s (%g, %g)\n", name, a[0], a[1])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(glyphCmd)
}
