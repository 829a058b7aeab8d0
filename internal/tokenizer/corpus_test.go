package tokenizer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCorpusFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	path := writeCorpusFile(t, t.TempDir(), "corpus.txt", "hello file")
	got, err := File(path).Corpus()
	if err != nil {
		t.Fatalf("corpus: %v", err)
	}
	if got != "hello file" {
		t.Fatalf("corpus: got %q", got)
	}
}

func TestFileSourceMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.txt")
	_, err := File(missing).Corpus()
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if !strings.Contains(err.Error(), "nope.txt") {
		t.Fatalf("error does not name the entry: %v", err)
	}
}

func TestFilesSourceJoinsWithNewline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeCorpusFile(t, dir, "a.txt", "first")
	b := writeCorpusFile(t, dir, "b.txt", "second")

	got, err := Files{a, b}.Corpus()
	if err != nil {
		t.Fatalf("corpus: %v", err)
	}
	if got != "first\nsecond" {
		t.Fatalf("corpus: got %q, want %q", got, "first\nsecond")
	}
}

func TestFilesSourceMissingEntry(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeCorpusFile(t, dir, "a.txt", "first")
	missing := filepath.Join(dir, "missing.txt")

	_, err := Files{a, missing}.Corpus()
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.txt") {
		t.Fatalf("error does not name the entry: %v", err)
	}
}

func TestFilesSourceEmpty(t *testing.T) {
	t.Parallel()

	_, err := Files{}.Corpus()
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty list, got %v", err)
	}
}

func TestFitFromFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeCorpusFile(t, dir, "a.txt", "aa")
	b := writeCorpusFile(t, dir, "b.txt", "bb")

	tok := New()
	if err := tok.Fit(Files{a, b}, false, 1); err != nil {
		t.Fatalf("fit: %v", err)
	}
	// The join inserts a newline, which becomes a vocabulary entry.
	if _, err := tok.Encode("\n", true); err != nil {
		t.Fatalf("expected newline in vocabulary: %v", err)
	}
	size, _ := tok.VocabSize()
	if size != 3 {
		t.Fatalf("vocab size: got %d, want 3 (a, b, newline)", size)
	}
}
