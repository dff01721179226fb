package framedata

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFileCreatesEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame_data.json")

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if len(store) != 0 {
		t.Errorf("expected empty store, got %v", store)
	}

	// The file must now exist so later saves do not fail.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("store file not created: %v", err)
	}
	if string(data) != "{}\n" {
		t.Errorf("created file = %q, want empty JSON object", data)
	}
}

func TestLoad_CorruptFileResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := Load(path)
	if !errors.Is(err, ErrStoreReset) {
		t.Fatalf("Load error = %v, want ErrStoreReset", err)
	}
	if len(store) != 0 {
		t.Errorf("expected empty store after reset, got %v", store)
	}

	// Reloading the rewritten file must succeed cleanly.
	if _, err := Load(path); err != nil {
		t.Errorf("Load after reset error = %v", err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame_data.json")
	store := Store{
		"Donkey Kong": {"Forward Smash": 55, "Up Tilt": 38},
		"Mario":       {"Up Smash": 40},
	}
	if err := Save(store, path); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if !reflect.DeepEqual(loaded, store) {
		t.Errorf("round trip mismatch: got %v, want %v", loaded, store)
	}

	// Save(Load(path)) applied again yields the identical mapping.
	if err := Save(loaded, path); err != nil {
		t.Fatalf("second Save error = %v", err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("second Load error = %v", err)
	}
	if !reflect.DeepEqual(reloaded, store) {
		t.Errorf("second round trip mismatch: got %v, want %v", reloaded, store)
	}
}

func TestLookup_ExactMatchOnly(t *testing.T) {
	store := Store{"Donkey Kong": {"Forward Smash": 55}}

	if frames, ok := store.Lookup("Donkey Kong", "Forward Smash"); !ok || frames != 55 {
		t.Errorf("Lookup = (%d, %v), want (55, true)", frames, ok)
	}
	if _, ok := store.Lookup("donkey kong", "Forward Smash"); ok {
		t.Error("Lookup is case-sensitive, lowercase character must miss")
	}
	if _, ok := store.Lookup("Donkey Kong", "forwardsmash"); ok {
		t.Error("Lookup is exact, normalized move must miss")
	}
	if _, ok := store.Lookup("Fox", "Up Smash"); ok {
		t.Error("Lookup for unknown character must miss")
	}
}

func TestSet_VisibleWithoutPersistence(t *testing.T) {
	store := Store{}
	store.Set("Mario", "Up Smash", 40)

	if frames, ok := store.Lookup("Mario", "Up Smash"); !ok || frames != 40 {
		t.Errorf("Lookup after Set = (%d, %v), want (40, true)", frames, ok)
	}
}

func TestRemove(t *testing.T) {
	store := Store{"Mario": {"Up Smash": 40, "Up Tilt": 30}}

	if !store.Remove("Mario", "Up Tilt") {
		t.Error("Remove existing entry returned false")
	}
	if store.Remove("Mario", "Up Tilt") {
		t.Error("Remove missing entry returned true")
	}
	if !store.Remove("Mario", "Up Smash") {
		t.Error("Remove last entry returned false")
	}
	if _, ok := store["Mario"]; ok {
		t.Error("character with no moves left should be dropped")
	}
}

func TestSortedListings(t *testing.T) {
	store := Store{
		"Mario":       {"Up Smash": 40, "Down Tilt": 25, "Back Air": 33},
		"Donkey Kong": {"Forward Smash": 55},
	}

	wantMoves := []string{"Back Air", "Down Tilt", "Up Smash"}
	if got := store.Moves("Mario"); !reflect.DeepEqual(got, wantMoves) {
		t.Errorf("Moves = %v, want %v", got, wantMoves)
	}
	wantChars := []string{"Donkey Kong", "Mario"}
	if got := store.Characters(); !reflect.DeepEqual(got, wantChars) {
		t.Errorf("Characters = %v, want %v", got, wantChars)
	}
}
