package tokenizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Source supplies the corpus text a vocabulary is fitted on.
type Source interface {
	Corpus() (string, error)
}

// Text is an inline corpus string.
type Text string

func (t Text) Corpus() (string, error) { return string(t), nil }

// File is a path to a single UTF-8 text file.
type File string

func (f File) Corpus() (string, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: no such file %q", ErrInvalidInput, string(f))
		}
		return "", fmt.Errorf("read corpus %q: %w", string(f), err)
	}
	return string(data), nil
}

// Files is an ordered list of UTF-8 text file paths. The sources are
// joined with a single newline between them, preserving order.
type Files []string

func (f Files) Corpus() (string, error) {
	if len(f) == 0 {
		return "", fmt.Errorf("%w: no files provided to build a corpus", ErrInvalidInput)
	}
	parts := make([]string, 0, len(f))
	for _, path := range f {
		text, err := File(path).Corpus()
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}
