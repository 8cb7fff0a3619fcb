package database

import (
	"fmt"
	"net/mail"
	"strings"
)

// Comment is one reader comment attached to a quote.
type Comment struct {
	ID        int64
	QuoteID   int64
	Title     string
	Details   string
	UserEmail string
}

// NewComment validates the fields and builds a comment ready to save.
func NewComment(quoteID int64, title, details, userEmail string) (*Comment, error) {
	c := &Comment{QuoteID: quoteID, Title: title, Details: details, UserEmail: userEmail}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the field shapes without touching the database. The email
// has to be a plain address, no display name.
func (c *Comment) Validate() error {
	if c.ID < 0 {
		return ErrInvalidID
	}
	if c.QuoteID <= 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}
	addr, err := mail.ParseAddress(c.UserEmail)
	if err != nil || addr.Address != c.UserEmail {
		return ErrInvalidEmail
	}
	return nil
}

// Save inserts the comment and writes the server-assigned id back onto it.
func (c *Comment) Save(db *DB) error {
	if err := c.Validate(); err != nil {
		return err
	}

	result, err := db.Exec(`
		INSERT INTO comment (quote_id, title, details, user_email)
		VALUES (?, ?, ?, ?)
	`, c.QuoteID, c.Title, c.Details, c.UserEmail)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	c.ID = result.LastInsertID
	return nil
}

// FetchCommentsByQuote returns every comment on the given quote, oldest
// first.
func FetchCommentsByQuote(db *DB, quoteID int64) ([]Row, error) {
	rows, err := db.Query(`
	SELECT c.title AS title, c.details AS details, c.user_email AS user_email
	FROM comment c
	WHERE c.quote_id = ?
	ORDER BY c.id_comment ASC`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments for quote %d: %w", quoteID, err)
	}
	return rows, nil
}
