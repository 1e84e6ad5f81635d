package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the favourites list as a pretty-printed JSON array.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Save replaces the file contents with list. The data goes to a temp file in
// the same directory first and is renamed into place, so readers never see
// a partial write.
func (s *FileStore) Save(list []Quote) error {
	if list == nil {
		list = []Quote{}
	}

	payload, err := EncodeQuotes(list)
	if err != nil {
		return NewError(KindDecode, "save", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return NewError(KindIO, "save", fmt.Errorf("failed to create directory: %w", err))
	}

	tmp, err := os.CreateTemp(dir, ".favourites-*.json")
	if err != nil {
		return NewError(KindIO, "save", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return NewError(KindIO, "save", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return NewError(KindIO, "save", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return NewError(KindIO, "save", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		os.Remove(tmpPath)
		return NewError(KindIO, "save", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return NewError(KindIO, "save", err)
	}
	return nil
}

// Load reads the favourites file. A missing file yields ErrNotFound.
func (s *FileStore) Load() ([]Quote, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewError(KindIO, "load", ErrNotFound)
		}
		return nil, NewError(KindIO, "load", err)
	}

	list, err := DecodeQuotes(raw)
	if err != nil {
		return nil, NewError(KindDecode, "load", err)
	}
	return list, nil
}

// EncodeQuotes renders list as an indented JSON array.
func EncodeQuotes(list []Quote) ([]byte, error) {
	if list == nil {
		list = []Quote{}
	}
	return json.MarshalIndent(list, "", "  ")
}

// DecodeQuotes parses a JSON array of quotes. Each element is decoded
// strictly and trailing data is rejected.
func DecodeQuotes(raw []byte) ([]Quote, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	var list []Quote
	if err := dec.Decode(&list); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after favourites array")
	}
	if list == nil {
		return nil, errors.New("favourites file does not contain an array")
	}
	return list, nil
}
