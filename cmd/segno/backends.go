package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/segnokit/segno/backend"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List registered export backends",
	Long: "List registered export backends. The default backend is " +
		"marked with an asterisk; SEGNO_BACKEND and SEGNO_HEADLESS " +
		"influence the selection.",
	Run: func(cmd *cobra.Command, _ []string) {
		names := backend.Available()
		sort.Strings(names)

		defaultName := ""
		if b := backend.Default(); b != nil {
			defaultName = b.Name()
		}
		for _, name := range names {
			marker := " "
			if name == defaultName {
				marker = "*"
			}
			suffix := ""
			if b := backend.Get(name); b != nil && b.Headless() {
				suffix = " (headless)"
			}
			cmd.Printf("%s %s%s\n", marker, name, suffix)
		}
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
