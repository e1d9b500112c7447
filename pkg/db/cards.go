package db

import (
	"fmt"
)

// MirrorCard is one row of the local card mirror.
type MirrorCard struct {
	RemoteID     string
	CollectionID string
	Name         string
	CleanName    string
	WordType     string
	RunID        string
}

// RecordCard inserts a mirror row for a card created on the remote service.
func (db *DB) RecordCard(card MirrorCard) error {
	_, err := db.Exec(`
		INSERT INTO cards (remote_id, collection_id, name, clean_name, word_type, run_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, card.RemoteID, card.CollectionID, card.Name, card.CleanName, card.WordType, card.RunID)
	if err != nil {
		return fmt.Errorf("failed to record card %q: %w", card.Name, err)
	}
	return nil
}

// CleanNames returns the cleaned names of every mirrored card in a
// collection, for seeding the duplicate-detection set.
func (db *DB) CleanNames(collectionID string) ([]string, error) {
	rows, err := db.Query(`
		SELECT clean_name FROM cards WHERE collection_id = ? ORDER BY id
	`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clean names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan clean name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// CountCards returns the number of mirrored cards in a collection.
func (db *DB) CountCards(collectionID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM cards WHERE collection_id = ?`, collectionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return count, nil
}
