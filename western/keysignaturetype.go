package western

// sharpOrder and flatOrder are the letters altered by successive sharps
// and flats, in the order they are written in a key signature fringe.
var (
	sharpOrder = []rune{'f', 'c', 'g', 'd', 'a', 'e', 'b'}
	flatOrder  = []rune{'b', 'e', 'a', 'd', 'g', 'c', 'f'}
)

// KeySignatureType describes a key signature as the accidental it
// applies and the letters it applies it to, in written order.
type KeySignatureType struct {
	// Name is a human readable key name.
	Name string

	// Accidental is AccidentalSharp or AccidentalFlat. C major carries
	// neither and has no letters.
	Accidental AccidentalType

	// Letters are the altered pitch letters in fringe order.
	Letters []rune
}

func sharpKey(name string, count int) KeySignatureType {
	return KeySignatureType{Name: name, Accidental: AccidentalSharp, Letters: sharpOrder[:count]}
}

func flatKey(name string, count int) KeySignatureType {
	return KeySignatureType{Name: name, Accidental: AccidentalFlat, Letters: flatOrder[:count]}
}

// Major key signatures.
var (
	CMajor      = KeySignatureType{Name: "C major"}
	GMajor      = sharpKey("G major", 1)
	DMajor      = sharpKey("D major", 2)
	AMajor      = sharpKey("A major", 3)
	EMajor      = sharpKey("E major", 4)
	BMajor      = sharpKey("B major", 5)
	FSharpMajor = sharpKey("F sharp major", 6)
	CSharpMajor = sharpKey("C sharp major", 7)
	FMajor      = flatKey("F major", 1)
	BFlatMajor  = flatKey("B flat major", 2)
	EFlatMajor  = flatKey("E flat major", 3)
	AFlatMajor  = flatKey("A flat major", 4)
	DFlatMajor  = flatKey("D flat major", 5)
	GFlatMajor  = flatKey("G flat major", 6)
	CFlatMajor  = flatKey("C flat major", 7)
)

// AccidentalCount returns the number of written accidentals.
func (k KeySignatureType) AccidentalCount() int { return len(k.Letters) }

// fringePos returns the staff-unit position a key signature accidental
// for the given letter is written at, given the active clef's middle C
// position. Sharps occupy the octave window starting half a unit above
// the top staff line; flats the window starting half a unit below it.
// One octave spans 3.5 units, so each letter has exactly one position in
// its window.
func (k KeySignatureType) fringePos(letter rune, middleCStaffPos float64) float64 {
	windowStart := -0.5
	if k.Accidental == AccidentalFlat {
		windowStart = 0.5
	}
	pos := middleCStaffPos - float64(letterDegree(letter))*0.5
	for pos < windowStart {
		pos += 3.5
	}
	for pos >= windowStart+3.5 {
		pos -= 3.5
	}
	return pos
}
