package smufl

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

// BravuraFamily is the font family name of the embedded reference
// metadata.
const BravuraFamily = "Bravura"

//go:embed glyphnames.json
var glyphNamesJSON []byte

//go:embed bravura_metadata.json
var bravuraJSON []byte

var (
	bravuraOnce sync.Once
	bravura     *Metadata
)

// Bravura returns the embedded Bravura-compatible metadata subset. It
// covers the glyphs used by the western notation package; full Bravura
// metadata can be loaded over it with Load and Register.
func Bravura() *Metadata {
	bravuraOnce.Do(func() {
		m, err := Load(bytes.NewReader(bravuraJSON))
		if err != nil {
			panic(fmt.Sprintf("smufl: embedded bravura metadata is invalid: %v", err))
		}
		bravura = m
	})
	return bravura
}

func init() {
	Register(BravuraFamily, Bravura())
}
