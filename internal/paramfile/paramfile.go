// Package paramfile loads and saves parameter values as JSON and keeps a
// store in step with a file on disk.
//
// A file is a flat object of parameter IDs to plain values:
//
//	{"Peak Freq": 1000, "Peak Gain": 4.5, "LowCut Slope": 2}
//
// Parameters missing from the file keep their current value.
package paramfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-eq/params"
)

// ErrNilStore is returned when no store is given.
var ErrNilStore = errors.New("paramfile: store is nil")

// Apply decodes data and sets every value into store. Unknown IDs reject
// the whole document before anything is set. It returns the number of
// values applied.
func Apply(data []byte, store *params.Store) (int, error) {
	if store == nil {
		return 0, ErrNilStore
	}

	var values map[string]float64
	if err := json.Unmarshal(data, &values); err != nil {
		return 0, fmt.Errorf("paramfile: decode: %w", err)
	}

	for id := range values {
		if _, ok := store.Index(id); !ok {
			return 0, fmt.Errorf("paramfile: %w: %q", params.ErrUnknownParameter, id)
		}
	}

	for id, v := range values {
		if err := store.Set(id, v); err != nil {
			return 0, fmt.Errorf("paramfile: %w", err)
		}
	}

	return len(values), nil
}

// Load reads path and applies it to store.
func Load(path string, store *params.Store) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("paramfile: %w", err)
	}

	return Apply(data, store)
}

// Encode returns every value of store as an indented JSON document.
func Encode(store *params.Store) ([]byte, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	values := make(map[string]float64, store.Len())
	for i, d := range store.Definitions() {
		values[d.ID] = store.ValueAt(i)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("paramfile: encode: %w", err)
	}

	return append(data, '\n'), nil
}

// Save writes every value of store to path. The file is replaced by a
// rename so a watcher never sees it half written.
func Save(path string, store *params.Store) error {
	data, err := Encode(store)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("paramfile: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("paramfile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("paramfile: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("paramfile: %w", err)
	}

	return nil
}
