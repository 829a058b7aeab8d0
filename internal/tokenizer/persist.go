package tokenizer

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// FormatVersion tags the persisted vocabulary format. Load rejects any
// other value so format changes never pass silently.
const FormatVersion = "char-tokenizer.v1"

type vocabFile struct {
	Version string         `json:"version"`
	Stoi    map[string]int `json:"stoi"`
	PadID   *int           `json:"pad_id"`
	UnkID   *int           `json:"unk_id"`
}

// Save writes the vocabulary to path as indented JSON with stable key
// order. The write is atomic: content is staged in a temporary sibling
// file and renamed into place, so a failure leaves any previous content
// at path intact. The temporary file is removed on every error path.
func (t *CharTokenizer) Save(path string) error {
	if !t.IsFitted() {
		return fmt.Errorf("%w: call Fit before Save", ErrNotFitted)
	}
	data, err := json.MarshalIndent(vocabFile{
		Version: FormatVersion,
		Stoi:    t.stoi,
		PadID:   t.padID,
		UnkID:   t.unkID,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vocabulary: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create vocabulary dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp_vocab_*.json")
	if err != nil {
		return fmt.Errorf("stage vocabulary: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write vocabulary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write vocabulary: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace vocabulary: %w", err)
	}
	return nil
}

// Load reads a saved vocabulary from path into this instance, replacing
// any existing state, fitted or not. The new state is validated in full
// before the instance is touched, so a failed load leaves prior state
// unchanged.
func (t *CharTokenizer) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read vocabulary %q: %w", path, err)
	}

	// Decode through a raw map first: pad_id/unk_id must be present as
	// keys even when their value is null, which a struct decode cannot
	// distinguish.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	var version string
	if v, ok := raw["version"]; ok {
		if err := json.Unmarshal(v, &version); err != nil {
			return fmt.Errorf("%w: malformed version tag", ErrCorruptState)
		}
	}
	if version != FormatVersion {
		return fmt.Errorf("%w: unsupported format version %q", ErrCorruptState, version)
	}
	rawStoi, ok := raw["stoi"]
	if !ok {
		return fmt.Errorf("%w: missing stoi mapping", ErrCorruptState)
	}
	var stoi map[string]int
	if err := json.Unmarshal(rawStoi, &stoi); err != nil {
		return fmt.Errorf("%w: malformed stoi mapping", ErrCorruptState)
	}
	if len(stoi) == 0 {
		return fmt.Errorf("%w: empty stoi mapping", ErrCorruptState)
	}
	for s, id := range stoi {
		if id < 0 {
			return fmt.Errorf("%w: negative id %d for %q", ErrCorruptState, id, s)
		}
	}
	padID, err := optionalID(raw, "pad_id")
	if err != nil {
		return err
	}
	unkID, err := optionalID(raw, "unk_id")
	if err != nil {
		return err
	}
	itos, err := invert(stoi, ErrCorruptState)
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

// FromFile constructs a tokenizer from a vocabulary file written by Save.
func FromFile(path string) (*CharTokenizer, error) {
	t := New()
	if err := t.Load(path); err != nil {
		return nil, err
	}
	return t, nil
}

func optionalID(raw map[string]json.RawMessage, key string) (*int, error) {
	v, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s field", ErrCorruptState, key)
	}
	var id *int
	if err := json.Unmarshal(v, &id); err != nil {
		return nil, fmt.Errorf("%w: malformed %s field", ErrCorruptState, key)
	}
	return id, nil
}
