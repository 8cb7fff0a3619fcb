package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteSaveAssignsID(t *testing.T) {
	db, mock := newMockDB(t)

	authorID := int64(3)
	quote, err := NewQuote("The secret of getting ahead is getting started.", &authorID, []string{"motivation", "work"})
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO quote \(content, author_id, tags\)`).
		WithArgs(quote.Content, authorID, "motivation, work").
		WillReturnResult(sqlmock.NewResult(7, 1))

	require.NoError(t, quote.Save(db))
	assert.Equal(t, int64(7), quote.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteSaveRejectsInvalidRecord(t *testing.T) {
	db, mock := newMockDB(t)

	quote := &Quote{Content: "   "}
	require.ErrorIs(t, quote.Save(db), ErrEmptyContent)

	// Nothing reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchQuoteByID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`WHERE q\.id_quote = \?`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id_quote", "content", "author_name", "tags"}).
			AddRow(int64(7), "C", "Maya Angelou", "a, b"))

	rows, err := FetchQuoteByID(db, 7)
	require.NoError(t, err)

	want := []Row{{
		"id_quote":    int64(7),
		"content":     "C",
		"author_name": "Maya Angelou",
		"tags":        "a, b",
	}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchQuotesByTagWrapsPattern(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`WHERE q\.tags LIKE \?`).
		WithArgs("%travel%").
		WillReturnRows(sqlmock.NewRows([]string{"id_quote", "content", "author_name", "tags"}).
			AddRow(int64(1), "A", "X", "travel").
			AddRow(int64(2), "B", "Y", "travel-logs"))

	rows, err := FetchQuotesByTag(db, "travel")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchQuotesByAuthorNamePassesPatternThrough(t *testing.T) {
	db, mock := newMockDB(t)

	// No wildcards are added around the name; an exact name matches
	// case-insensitively under the server's default collation.
	mock.ExpectQuery(`WHERE a\.name LIKE \?`).
		WithArgs("Maya Angelou").
		WillReturnRows(sqlmock.NewRows([]string{"id_quote", "content", "author_name", "tags"}))

	_, err := FetchQuotesByAuthorName(db, "Maya Angelou")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
