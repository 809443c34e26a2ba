package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/exercise"
	"github.com/phrazzld/vocab-drill/internal/vocab"
)

// Instance is one entry under one exercise kind at a fixed deck position.
type Instance struct {
	Entry    *domain.VocabularyEntry
	Kind     exercise.Kind
	Position int
}

// Key is the stable identity of the instance: entry, kind and position.
func (i Instance) Key() string {
	return fmt.Sprintf("%s-%s-%d", i.Entry.TargetWord, i.Kind, i.Position)
}

// Question returns the question text for the instance.
func (i Instance) Question() string {
	return exercise.Question(i.Kind, *i.Entry)
}

// ExpectedAnswer returns the reference answer for the instance.
func (i Instance) ExpectedAnswer() string {
	return exercise.ExpectedAnswer(i.Kind, *i.Entry)
}

// Check reports whether input answers the instance correctly.
func (i Instance) Check(input string) bool {
	return exercise.Check(i.Kind, *i.Entry, input)
}

// Deck is the ordered, immutable exercise sequence of one session.
type Deck struct {
	entries   []domain.VocabularyEntry
	instances []Instance
}

// Build creates the full entries x kinds cross-product and shuffles it with
// rng. The entries are copied; the deck never changes after Build returns.
//
// Returns a *domain.LoadError of kind Empty when entries is empty.
func Build(entries []domain.VocabularyEntry, rng *rand.Rand) (*Deck, error) {
	if len(entries) == 0 {
		return nil, domain.NewEmptyError(errors.New("no entries to build a deck from"))
	}
	if rng == nil {
		rng = NewRand(0)
	}

	d := &Deck{
		entries: make([]domain.VocabularyEntry, len(entries)),
	}
	copy(d.entries, entries)

	kinds := exercise.Kinds()
	d.instances = make([]Instance, 0, len(d.entries)*len(kinds))
	for i := range d.entries {
		for _, k := range kinds {
			d.instances = append(d.instances, Instance{Entry: &d.entries[i], Kind: k})
		}
	}

	Shuffle(d.instances, rng)
	for pos := range d.instances {
		d.instances[pos].Position = pos
	}

	return d, nil
}

// LoadDeck parses raw vocabulary text and builds a shuffled deck from it.
func LoadDeck(raw string, rng *rand.Rand) (*Deck, *vocab.ParseReport, error) {
	entries, report, err := vocab.ParseString(raw)
	if err != nil {
		return nil, report, err
	}

	d, err := Build(entries, rng)
	if err != nil {
		return nil, report, err
	}
	return d, report, nil
}

// Len returns the number of instances in the deck.
func (d *Deck) Len() int {
	return len(d.instances)
}

// EntryCount returns the number of entries the deck was built from.
func (d *Deck) EntryCount() int {
	return len(d.entries)
}

// At returns the instance at position pos.
func (d *Deck) At(pos int) (Instance, bool) {
	if pos < 0 || pos >= len(d.instances) {
		return Instance{}, false
	}
	return d.instances[pos], true
}

// Instances returns a copy of the deck order.
func (d *Deck) Instances() []Instance {
	out := make([]Instance, len(d.instances))
	copy(out, d.instances)
	return out
}

// Entries returns a copy of the entries the deck was built from.
func (d *Deck) Entries() []domain.VocabularyEntry {
	out := make([]domain.VocabularyEntry, len(d.entries))
	copy(out, d.entries)
	return out
}
