package database

import (
	"fmt"
	"strings"
)

// Metadata keys the browser relies on to populate its pick lists. The seeder
// writes them; the query core only reads.
const (
	MetadataKeyAllAuthors = "all_authors"
	MetadataKeyAllTags    = "all_tags"
)

// Metadata is one key→value-list row. The value list is stored as a single
// ", "-joined string, the same encoding as quote tags, with the same
// round-trip limitation.
type Metadata struct {
	ID       int64
	KeyName  string
	KeyValue []string
}

// NewMetadata validates the fields and builds a metadata row ready to save.
func NewMetadata(keyName string, values []string) (*Metadata, error) {
	m := &Metadata{KeyName: keyName, KeyValue: values}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the field shapes without touching the database.
func (m *Metadata) Validate() error {
	if m.ID < 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(m.KeyName) == "" {
		return ErrEmptyKeyName
	}
	return nil
}

// Save inserts the metadata row and writes the server-assigned id back onto
// it.
func (m *Metadata) Save(db *DB) error {
	if err := m.Validate(); err != nil {
		return err
	}

	result, err := db.Exec(`
		INSERT INTO metadata (key_name, key_value)
		VALUES (?, ?)
	`, m.KeyName, JoinList(m.KeyValue))
	if err != nil {
		return fmt.Errorf("failed to save metadata %s: %w", m.KeyName, err)
	}

	m.ID = result.LastInsertID
	return nil
}

// FetchMetadataByKey returns the stored value list for a key as rows with a
// single key_value column. Consumers split it with SplitList.
func FetchMetadataByKey(db *DB, keyName string) ([]Row, error) {
	rows, err := db.Query(`
	SELECT m.key_value AS key_value
	FROM metadata m
	WHERE m.key_name = ?`, keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata %s: %w", keyName, err)
	}
	return rows, nil
}
