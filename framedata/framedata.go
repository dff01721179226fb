// Package framedata persists the character -> move -> frame count knowledge
// base as a hand-editable JSON file.
package framedata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ErrStoreReset reports that the store file held invalid JSON and was reset
// to an empty object. The returned store is usable; callers should warn.
var ErrStoreReset = errors.New("frame data file was invalid JSON and has been reset")

// Store maps character names to move names to frame counts at 60fps.
// Lookups are exact and case-sensitive.
type Store map[string]map[string]int

// Load reads the store from path. A missing file is not an error: an empty
// JSON object is written so later saves target an existing file, and an
// empty store is returned. A corrupt file is rewritten as empty and
// reported via ErrStoreReset.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read frame data: %w", err)
		}
		store := Store{}
		if err := Save(store, path); err != nil {
			return nil, err
		}
		return store, nil
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil || store == nil {
		store = Store{}
		if saveErr := Save(store, path); saveErr != nil {
			return nil, saveErr
		}
		return store, ErrStoreReset
	}
	return store, nil
}

// Save writes the store to path as pretty-printed JSON.
func Save(store Store, path string) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("encode frame data: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write frame data: %w", err)
	}
	return nil
}

// Lookup returns the frame count for an exact character/move pair.
func (s Store) Lookup(character, move string) (int, bool) {
	moves, ok := s[character]
	if !ok {
		return 0, false
	}
	frames, ok := moves[move]
	return frames, ok
}

// Set records a frame count in memory. Characters are created on demand.
func (s Store) Set(character, move string, frames int) {
	moves, ok := s[character]
	if !ok {
		moves = map[string]int{}
		s[character] = moves
	}
	moves[move] = frames
}

// Remove deletes a move entry; an emptied character is dropped too. It
// reports whether the entry existed.
func (s Store) Remove(character, move string) bool {
	moves, ok := s[character]
	if !ok {
		return false
	}
	if _, ok := moves[move]; !ok {
		return false
	}
	delete(moves, move)
	if len(moves) == 0 {
		delete(s, character)
	}
	return true
}

// Moves returns the sorted move names stored for a character.
func (s Store) Moves(character string) []string {
	moves := make([]string, 0, len(s[character]))
	for move := range s[character] {
		moves = append(moves, move)
	}
	sort.Strings(moves)
	return moves
}

// Characters returns the sorted character names in the store.
func (s Store) Characters() []string {
	chars := make([]string, 0, len(s))
	for c := range s {
		chars = append(chars, c)
	}
	sort.Strings(chars)
	return chars
}
