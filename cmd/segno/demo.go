package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/segnokit/segno"
	"github.com/segnokit/segno/backend"
	"github.com/segnokit/segno/western"
)

var (
	demoFont    string
	demoOut     string
	demoBackend string
	demoDPI     float64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a built-in demo score",
	Long: "Render a short two-staff demo score exercising clefs, key " +
		"and time signatures, chords, a slur, and a dynamic. A SMuFL " +
		"music font file (such as Bravura) must be supplied.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		segno.RegisterFont("Bravura", demoFont)

		doc, err := buildDemoScore()
		if err != nil {
			return err
		}

		var b backend.RenderBackend
		if demoBackend != "" {
			if b = backend.Get(demoBackend); b == nil {
				return fmt.Errorf("unknown backend %q", demoBackend)
			}
			if err := b.Init(); err != nil {
				return err
			}
		} else {
			if b, err = backend.InitDefault(); err != nil {
				return err
			}
		}
		defer b.Close()

		if err := b.Export(doc, demoOut, backend.WithDPI(demoDPI)); err != nil {
			return err
		}
		cmd.Printf("wrote %s (%s backend)\n", demoOut, b.Name())
		return nil
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoFont, "font", "", "path to a SMuFL music font file (required)")
	demoCmd.Flags().StringVar(&demoOut, "out", "demo.pdf", "output file")
	demoCmd.Flags().StringVar(&demoBackend, "backend", "", "export backend (default: auto)")
	demoCmd.Flags().Float64Var(&demoDPI, "dpi", 300, "raster export resolution")
	_ = demoCmd.MarkFlagRequired("font")
	rootCmd.AddCommand(demoCmd)
}

// buildDemoScore assembles a grand staff with one melody measure over a
// sustained chord.
func buildDemoScore() (*segno.Document, error) {
	doc := segno.NewDocument(segno.PaperA4)
	length := segno.Mm(160)
	flow := segno.NewFlowable(segno.ORIGIN, doc.PageAt(0), length, segno.Mm(40))

	group := western.NewStaffGroup()
	upper, err := western.NewStaff(segno.ORIGIN, flow, length, western.WithStaffGroup(group))
	if err != nil {
		return nil, err
	}
	lower, err := western.NewStaff(segno.Pt(segno.ZERO, segno.Mm(16)), flow, length, western.WithStaffGroup(group))
	if err != nil {
		return nil, err
	}

	western.NewClef(segno.ZERO, upper, western.Treble)
	western.NewClef(segno.ZERO, lower, western.Bass)
	western.NewKeySignature(segno.ZERO, upper, western.DMajor)
	western.NewKeySignature(segno.ZERO, lower, western.DMajor)
	if _, err := western.NewTimeSignature(segno.ZERO, upper, western.CommonTime); err != nil {
		return nil, err
	}
	if _, err := western.NewTimeSignature(segno.ZERO, lower, western.CommonTime); err != nil {
		return nil, err
	}

	quarter := western.MustDuration(1, 4)
	melody := []string{"d'", "f'", "a'", "d''"}
	var first, last *western.Chordrest
	for i, p := range melody {
		cr, err := western.NewChordrest(upper.Unit(4+float64(i)*5), upper, []western.Pitch{western.MustPitch(p)}, quarter)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = cr
		}
		last = cr
	}

	whole := western.MustDuration(1, 1)
	chord := []western.Pitch{western.MustPitch("d,"), western.MustPitch("a,"), western.MustPitch("d")}
	if _, err := western.NewChordrest(lower.Unit(4), lower, chord, whole); err != nil {
		return nil, err
	}

	if _, err := western.NewSlur(
		first, segno.Pt(upper.Unit(0.5), upper.Unit(-1)),
		last, segno.Pt(upper.Unit(0.5), upper.Unit(-1)),
		segno.DirectionUp,
	); err != nil {
		return nil, err
	}

	if _, err := western.NewDynamic(segno.Pt(upper.Unit(4), upper.Unit(7)), upper, "mf"); err != nil {
		return nil, err
	}

	if _, err := western.NewBarLine(upper.Unit(24), group); err != nil {
		return nil, err
	}
	if _, err := western.NewBrace(group); err != nil {
		return nil, err
	}
	return doc, nil
}
