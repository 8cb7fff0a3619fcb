package database

import (
	"fmt"
	"strings"
)

// Quote is one quotation row. Tags are held as an ordered list in memory and
// stored as a single ", "-joined string; a tag containing the separator does
// not survive a round trip.
type Quote struct {
	ID       int64
	Content  string
	AuthorID *int64 // nil until the quote is attributed
	Tags     []string
}

// NewQuote validates the fields and builds a quote ready to save.
func NewQuote(content string, authorID *int64, tags []string) (*Quote, error) {
	q := &Quote{Content: content, AuthorID: authorID, Tags: tags}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Validate checks the field shapes without touching the database.
func (q *Quote) Validate() error {
	if q.ID < 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(q.Content) == "" {
		return ErrEmptyContent
	}
	if q.AuthorID != nil && *q.AuthorID <= 0 {
		return ErrInvalidID
	}
	return nil
}

// Save inserts the quote and writes the server-assigned id back onto it.
func (q *Quote) Save(db *DB) error {
	if err := q.Validate(); err != nil {
		return err
	}

	result, err := db.Exec(`
		INSERT INTO quote (content, author_id, tags)
		VALUES (?, ?, ?)
	`, q.Content, q.AuthorID, JoinList(q.Tags))
	if err != nil {
		return fmt.Errorf("failed to save quote: %w", err)
	}

	q.ID = result.LastInsertID
	return nil
}

// quoteProjection is the joined quote+author shape every quote fetch returns.
// The column aliases are what the presentation layer keys on.
const quoteProjection = `
	SELECT q.id_quote, q.content AS content, a.name AS author_name, q.tags AS tags
	FROM quote q
	JOIN author a ON q.author_id = a.id_author`

// FetchAllQuotes returns every attributed quote joined to its author, in
// ascending id order (insertion order).
func FetchAllQuotes(db *DB) ([]Row, error) {
	rows, err := db.Query(quoteProjection + `
	ORDER BY q.id_quote ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}
	return rows, nil
}

// FetchQuoteByID returns the quote with the given id, joined to its author.
func FetchQuoteByID(db *DB, id int64) ([]Row, error) {
	rows, err := db.Query(quoteProjection+`
	WHERE q.id_quote = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote %d: %w", id, err)
	}
	return rows, nil
}

// FetchQuotesByTag matches the serialized tag string by substring. A tag
// that is a substring of another tag name will also match; the stored
// encoding cannot tell them apart.
func FetchQuotesByTag(db *DB, tag string) ([]Row, error) {
	rows, err := db.Query(quoteProjection+`
	WHERE q.tags LIKE ?
	ORDER BY q.id_quote ASC`, "%"+tag+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes by tag: %w", err)
	}
	return rows, nil
}

// FetchQuotesByAuthorName returns the quotes of authors whose name matches
// the LIKE pattern. The pattern is passed through unchanged, so exact names
// match case-insensitively and callers may use % wildcards.
func FetchQuotesByAuthorName(db *DB, name string) ([]Row, error) {
	rows, err := db.Query(quoteProjection+`
	WHERE a.name LIKE ?
	ORDER BY q.id_quote ASC`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes by author: %w", err)
	}
	return rows, nil
}
