package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSampleDataIsValid runs every sample record through the same constructors
// Seed uses, so a bad edit to the dataset fails here instead of at seed time.
func TestSampleDataIsValid(t *testing.T) {
	names := make(map[string]bool, len(sampleAuthors))
	for _, sa := range sampleAuthors {
		birth, err := time.Parse("2006-01-02", sa.birthDate)
		require.NoError(t, err, "author %s", sa.name)

		_, err = NewAuthor(sa.name, birth, nullableString(sa.city), nullableString(sa.state), nullableString(sa.country), sa.description)
		require.NoError(t, err, "author %s", sa.name)
		names[sa.name] = true
	}

	authorID := int64(1)
	for i, sq := range sampleQuotes {
		assert.True(t, names[sq.author], "quote %d references unknown author %s", i, sq.author)

		_, err := NewQuote(sq.content, &authorID, sq.tags)
		require.NoError(t, err, "quote %d", i)

		for j, sc := range sq.comments {
			_, err := NewComment(1, sc.title, sc.details, sc.email)
			require.NoError(t, err, "quote %d comment %d", i, j)
		}
	}
}

func TestSeedSkipsWhenAlreadySeeded(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT m\.key_value AS key_value FROM metadata m`).
		WithArgs(MetadataKeyAllAuthors).
		WillReturnRows(sqlmock.NewRows([]string{"key_value"}).
			AddRow("Maya Angelou, Albert Einstein"))

	require.NoError(t, Seed(db))

	// No inserts follow the marker check.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedWritesMetadataAfterRecords(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT m\.key_value AS key_value FROM metadata m`).
		WithArgs(MetadataKeyAllAuthors).
		WillReturnRows(sqlmock.NewRows([]string{"key_value"}))

	id := int64(0)
	for range sampleAuthors {
		id++
		mock.ExpectExec(`INSERT INTO author`).WillReturnResult(sqlmock.NewResult(id, 1))
	}
	for _, sq := range sampleQuotes {
		id++
		mock.ExpectExec(`INSERT INTO quote`).WillReturnResult(sqlmock.NewResult(id, 1))
		for range sq.comments {
			id++
			mock.ExpectExec(`INSERT INTO comment`).WillReturnResult(sqlmock.NewResult(id, 1))
		}
	}
	// The pick lists are derived from the dataset: authors in insertion
	// order, tags ordered by first appearance with duplicates dropped.
	mock.ExpectExec(`INSERT INTO metadata`).
		WithArgs(MetadataKeyAllAuthors,
			"Maya Angelou, Albert Einstein, Oscar Wilde, Marie Curie, Mark Twain").
		WillReturnResult(sqlmock.NewResult(id+1, 1))
	mock.ExpectExec(`INSERT INTO metadata`).
		WithArgs(MetadataKeyAllTags,
			"change, attitude, kindness, hope, life, perseverance, imagination, knowledge, identity, humor, science, courage, curiosity, motivation, work").
		WillReturnResult(sqlmock.NewResult(id+2, 1))

	require.NoError(t, Seed(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
