package db

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "mirror.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenCreatesSchema(t *testing.T) {
	db := openTestDB(t)

	count, err := db.CountCards("german-a1")
	if err != nil {
		t.Fatalf("CountCards() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountCards() = %d, want 0", count)
	}
}

func TestOpenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := db.RecordCard(MirrorCard{
		RemoteID:     "c1",
		CollectionID: "german-a1",
		Name:         "laufen",
		CleanName:    "laufen",
		WordType:     "verb",
		RunID:        "run-1",
	}); err != nil {
		t.Fatalf("RecordCard() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopening must keep the existing rows, not reinitialize.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("Open() reopen error = %v", err)
	}
	defer db.Close()

	count, err := db.CountCards("german-a1")
	if err != nil {
		t.Fatalf("CountCards() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountCards() after reopen = %d, want 1", count)
	}
}

func TestCleanNamesScopedToCollection(t *testing.T) {
	db := openTestDB(t)

	cards := []MirrorCard{
		{RemoteID: "c1", CollectionID: "german-a1", Name: "das Haus", CleanName: "das haus", WordType: "noun", RunID: "run-1"},
		{RemoteID: "c2", CollectionID: "german-a1", Name: "laufen", CleanName: "laufen", WordType: "verb", RunID: "run-1"},
		{RemoteID: "c3", CollectionID: "german-b2", Name: "schnell", CleanName: "schnell", WordType: "adjective", RunID: "run-2"},
	}
	for _, card := range cards {
		if err := db.RecordCard(card); err != nil {
			t.Fatalf("RecordCard(%q) error = %v", card.Name, err)
		}
	}

	names, err := db.CleanNames("german-a1")
	if err != nil {
		t.Fatalf("CleanNames() error = %v", err)
	}
	want := []string{"das haus", "laufen"}
	if len(names) != len(want) {
		t.Fatalf("CleanNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("CleanNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestCleanNamesEmptyCollection(t *testing.T) {
	db := openTestDB(t)

	names, err := db.CleanNames("nothing-here")
	if err != nil {
		t.Fatalf("CleanNames() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("CleanNames() = %v, want empty", names)
	}
}
