package exercise

import "errors"

// Kind identifies one of the four exercise templates.
type Kind string

// Possible exercise kinds
const (
	KindWordTranslation        Kind = "word_translation"
	KindSourceToTargetSentence Kind = "source_to_target_sentence"
	KindTargetToSourceSentence Kind = "target_to_source_sentence"
	KindFillInBlank            Kind = "fill_in_blank"
)

// InputShape tells the presentation layer which input widget to render.
type InputShape string

// Possible input shapes
const (
	InputShort InputShape = "short"
	InputLong  InputShape = "long"
)

// ErrUnknownKind reports a kind that is not part of the catalog.
var ErrUnknownKind = errors.New("unknown exercise kind")

// kinds is the catalog order. Deck building iterates it, so it is fixed.
var kinds = []Kind{
	KindWordTranslation,
	KindSourceToTargetSentence,
	KindTargetToSourceSentence,
	KindFillInBlank,
}

// Kinds returns the four catalog kinds in catalog order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Valid reports whether k is one of the catalog kinds.
func (k Kind) Valid() bool {
	_, ok := catalog[k]
	return ok
}

// Prompt returns the static instruction shown above the question.
func (k Kind) Prompt() string {
	return definitionFor(k).prompt
}

// InputShape returns the input widget shape for the kind.
func (k Kind) InputShape() InputShape {
	return definitionFor(k).shape
}
