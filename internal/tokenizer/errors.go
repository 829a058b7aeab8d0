package tokenizer

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyFitted is returned by Fit on an instance that already
	// holds a vocabulary.
	ErrAlreadyFitted = errors.New("tokenizer already fitted")
	// ErrNotFitted is returned by any read operation before Fit or Load.
	ErrNotFitted = errors.New("tokenizer not fitted")
	// ErrInvalidInput marks a malformed or missing corpus source.
	ErrInvalidInput = errors.New("invalid corpus input")
	// ErrEmptyVocabulary is returned when no character survives the
	// frequency filter and no specials were requested.
	ErrEmptyVocabulary = errors.New("empty vocabulary")
	// ErrInternalInconsistency signals that the forward and inverse
	// mappings disagree after Fit. It indicates a logic bug.
	ErrInternalInconsistency = errors.New("internal mapping inconsistency")
	// ErrUnknownCharacter marks a strict encode of a character that is
	// not in the vocabulary.
	ErrUnknownCharacter = errors.New("unknown character")
	// ErrUnknownID marks a decode of an id that is not in the vocabulary.
	ErrUnknownID = errors.New("unknown token id")
	// ErrCorruptState marks a persisted vocabulary that fails
	// structural validation or the inversion check.
	ErrCorruptState = errors.New("corrupt tokenizer state")
)

// UnknownCharacterError identifies the out-of-vocabulary character and
// its rune position in the input text.
type UnknownCharacterError struct {
	Char rune
	Pos  int
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("unknown character %q at position %d", e.Char, e.Pos)
}

func (e *UnknownCharacterError) Unwrap() error { return ErrUnknownCharacter }

// UnknownIDError identifies the out-of-vocabulary id and its position
// in the input sequence.
type UnknownIDError struct {
	ID  int
	Pos int
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown token id %d at position %d", e.ID, e.Pos)
}

func (e *UnknownIDError) Unwrap() error { return ErrUnknownID }
