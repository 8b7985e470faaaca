package yamlh

// Chomp selects how trailing line breaks of a block scalar are kept.
type Chomp int8

const (
	ChompClip  Chomp = iota // keep a single trailing break
	ChompStrip              // drop all trailing breaks
	ChompKeep               // keep all trailing breaks
)

// AtomStyle mirrors the scalar/comment style an Atom was captured under.
type AtomStyle int8

const (
	AtomPlain AtomStyle = iota
	AtomSingleQuoted
	AtomDoubleQuoted
	AtomLiteral
	AtomFolded
	AtomURI
	AtomComment
)

func AtomStyleFromScalar(s YamlScalarStyle) AtomStyle {
	switch s {
	case SINGLE_QUOTED_SCALAR_STYLE:
		return AtomSingleQuoted
	case DOUBLE_QUOTED_SCALAR_STYLE:
		return AtomDoubleQuoted
	case LITERAL_SCALAR_STYLE:
		return AtomLiteral
	case FOLDED_SCALAR_STYLE:
		return AtomFolded
	default:
		return AtomPlain
	}
}

// Atom is a non-owning view of the raw, undecoded bytes a scanner captured
// for one scalar or comment, plus enough style metadata for Format to turn
// it into the scalar's final content on demand.
//
// Input is scoped to the atom itself (the scanner's reader buffer slides
// and gets overwritten as it reads ahead, so an Atom cannot address the
// whole document by absolute offset); StartMark/EndMark index into that
// local capture, not into the original stream.
type Atom struct {
	Input     []byte
	StartMark Position
	EndMark   Position
	Style     AtomStyle
	Chomp     Chomp
	Increment int

	storageHint int
	hintValid   bool
}

func NewAtom(input []byte, startMark, endMark Position, style AtomStyle, chomp Chomp, increment int) Atom {
	return Atom{
		Input:     input,
		StartMark: startMark,
		EndMark:   endMark,
		Style:     style,
		Chomp:     chomp,
		Increment: increment,
	}
}

// Bytes returns the raw slice this atom spans.
func (a *Atom) Bytes() []byte {
	start, end := a.StartMark.Index, a.EndMark.Index
	if start < 0 {
		start = 0
	}
	if end > len(a.Input) {
		end = len(a.Input)
	}
	if start > end {
		return nil
	}
	return a.Input[start:end]
}

// StorageHint reports an upper bound on the decoded scalar's byte length,
// usable to size a buffer before calling Format. Folding and most escape
// decoding only shrink or preserve the raw span, so len(raw) bounds every
// style except double-quoted, where "\L" and "\P" decode two raw bytes to
// three; that style's bound is len(raw) * 3/2.
func (a *Atom) StorageHint() int {
	if !a.hintValid {
		n := len(a.Bytes())
		if a.Style == AtomDoubleQuoted {
			n += n / 2
		}
		a.storageHint = n
		a.hintValid = true
	}
	return a.storageHint
}
