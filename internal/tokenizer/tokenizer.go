// Package tokenizer implements a character-level tokenizer: a
// frequency-ordered bidirectional mapping between single characters and
// integer ids, with two optional reserved entries for padding and
// unknown input.
package tokenizer

import (
	"fmt"
	"sort"
	"strings"
)

// Reserved vocabulary markers. When specials are requested at fit time
// they occupy ids 0 and 1, ahead of every corpus character.
const (
	PadToken = "<PAD>"
	UnkToken = "<UNK>"
)

// Codec is the minimal interface used by the CLI and the API server.
type Codec interface {
	Encode(text string, strict bool) ([]int, error)
	Decode(ids []int, skipSpecials bool) (string, error)
	VocabSize() (int, error)
	PadID() (int, bool)
	UnkID() (int, bool)
}

// CharTokenizer maps single characters to integer ids and back.
//
// An instance starts unfitted and becomes fitted exactly once, via Fit
// or Load. The vocabulary is immutable afterwards, so a fitted instance
// may be shared read-only across goroutines; fitting and loading are
// not safe to race with anything else.
type CharTokenizer struct {
	stoi      map[string]int
	itos      map[int]string
	padID     *int
	unkID     *int
	vocabSize int
}

func New() *CharTokenizer {
	return &CharTokenizer{}
}

// IsFitted reports whether a vocabulary has been built or loaded.
func (t *CharTokenizer) IsFitted() bool {
	return len(t.stoi) > 0 && len(t.itos) > 0
}

// Fit builds the vocabulary from src. Characters occurring fewer than
// minFreq times are dropped. With includeSpecials, PadToken and
// UnkToken take ids 0 and 1 and corpus characters start at 2; the
// specials are never subject to the frequency threshold. Ids are
// assigned by descending frequency, ties broken by ascending code
// point, so the mapping is reproducible for a given corpus.
func (t *CharTokenizer) Fit(src Source, includeSpecials bool, minFreq int) error {
	if t.IsFitted() {
		return fmt.Errorf("%w: create a new instance to refit", ErrAlreadyFitted)
	}
	if src == nil {
		return fmt.Errorf("%w: nil corpus source", ErrInvalidInput)
	}
	corpus, err := src.Corpus()
	if err != nil {
		return err
	}

	counts := make(map[rune]int)
	for _, r := range corpus {
		counts[r]++
	}
	kept := make([]rune, 0, len(counts))
	for r, n := range counts {
		if n >= minFreq {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 && !includeSpecials {
		return fmt.Errorf("%w: no characters meet the frequency threshold", ErrEmptyVocabulary)
	}
	sort.Slice(kept, func(i, j int) bool {
		if counts[kept[i]] != counts[kept[j]] {
			return counts[kept[i]] > counts[kept[j]]
		}
		return kept[i] < kept[j]
	})

	stoi := make(map[string]int, len(kept)+2)
	var padID, unkID *int
	next := 0
	if includeSpecials {
		p := next
		stoi[PadToken] = p
		padID = &p
		next++
		u := next
		stoi[UnkToken] = u
		unkID = &u
		next++
	}
	for _, r := range kept {
		stoi[string(r)] = next
		next++
	}

	// A bad inverse is silent data loss, so verify even though the
	// assignment above cannot produce duplicates.
	itos, err := invert(stoi, ErrInternalInconsistency)
	if err != nil {
		return err
	}

	t.stoi = stoi
	t.itos = itos
	t.padID = padID
	t.unkID = unkID
	t.vocabSize = len(stoi)
	return nil
}

// Encode maps text to one id per character, preserving order and
// length. In strict mode any out-of-vocabulary character fails with an
// UnknownCharacterError; otherwise the unknown id is substituted when
// the vocabulary has one, and absence of an unknown id falls back to
// strict behavior.
func (t *CharTokenizer) Encode(text string, strict bool) ([]int, error) {
	if !t.IsFitted() {
		return nil, fmt.Errorf("%w: call Fit or Load first", ErrNotFitted)
	}
	ids := make([]int, 0, len(text))
	pos := 0
	for _, r := range text {
		id, ok := t.stoi[string(r)]
		if !ok {
			if strict || t.unkID == nil {
				return nil, &UnknownCharacterError{Char: r, Pos: pos}
			}
			id = *t.unkID
		}
		ids = append(ids, id)
		pos++
	}
	return ids, nil
}

// Decode maps ids back to text. With skipSpecials, pad and unknown ids
// are omitted entirely when both are configured; without it every id is
// rendered literally, so specials appear as their marker strings. An id
// absent from the vocabulary fails with an UnknownIDError.
func (t *CharTokenizer) Decode(ids []int, skipSpecials bool) (string, error) {
	if !t.IsFitted() {
		return "", fmt.Errorf("%w: call Fit or Load first", ErrNotFitted)
	}
	skip := skipSpecials && t.padID != nil && t.unkID != nil
	var b strings.Builder
	b.Grow(len(ids))
	for pos, id := range ids {
		if skip && (id == *t.padID || id == *t.unkID) {
			continue
		}
		s, ok := t.itos[id]
		if !ok {
			return "", &UnknownIDError{ID: id, Pos: pos}
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// VocabSize returns the number of vocabulary entries, specials included.
func (t *CharTokenizer) VocabSize() (int, error) {
	if !t.IsFitted() {
		return 0, fmt.Errorf("%w: call Fit or Load first", ErrNotFitted)
	}
	return t.vocabSize, nil
}

// PadID returns the reserved padding id, if one is configured.
func (t *CharTokenizer) PadID() (int, bool) {
	if t.padID == nil {
		return 0, false
	}
	return *t.padID, true
}

// UnkID returns the reserved unknown id, if one is configured.
func (t *CharTokenizer) UnkID() (int, bool) {
	if t.unkID == nil {
		return 0, false
	}
	return *t.unkID, true
}

// Entry is a single vocabulary mapping.
type Entry struct {
	Token string
	ID    int
}

// Entries returns the vocabulary ordered by id.
func (t *CharTokenizer) Entries() ([]Entry, error) {
	if !t.IsFitted() {
		return nil, fmt.Errorf("%w: call Fit or Load first", ErrNotFitted)
	}
	out := make([]Entry, 0, len(t.stoi))
	for s, id := range t.stoi {
		out = append(out, Entry{Token: s, ID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// invert builds the id-to-string mapping and verifies both directions
// round-trip. Failures wrap sentinel, which differs between fit
// (ErrInternalInconsistency) and load (ErrCorruptState).
func invert(stoi map[string]int, sentinel error) (map[int]string, error) {
	itos := make(map[int]string, len(stoi))
	for s, id := range stoi {
		itos[id] = s
	}
	for s, id := range stoi {
		if got := itos[id]; got != s {
			return nil, fmt.Errorf("%w: id %d maps to both %q and %q", sentinel, id, got, s)
		}
	}
	return itos, nil
}
