// Package model exposes the named query operations the browser is built on.
// Each operation resolves to one or two SQL statements, executed through the
// database package one connection per call.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quoteworks/quoteshelf/internal/database"
)

// Operation names accepted by Run.
const (
	OpQuotesByAuthor      = "quotes_by_author"
	OpXQuotes             = "x_quotes"
	OpRandomQuote         = "random_quote"
	OpTotalQuotes         = "total_quotes"
	OpQuotesByTag         = "quotes_by_tag"
	OpTop5Authors         = "top5_authors"
	OpCommentsRandomQuote = "comments_random_quote"
	OpAuthorBio           = "author_bio"
	OpAllQuotes           = "all_quotes"
	OpMetadata            = "metadata"
)

// Operations returns every name Run accepts, in presentation order.
func Operations() []string {
	return []string{
		OpAllQuotes,
		OpQuotesByAuthor,
		OpQuotesByTag,
		OpXQuotes,
		OpRandomQuote,
		OpTotalQuotes,
		OpTop5Authors,
		OpCommentsRandomQuote,
		OpAuthorBio,
		OpMetadata,
	}
}

// Result carries the rows produced by one operation. CommentsRandomQuote
// fills Quote with the sampled quote and Rows with its comments; every other
// operation fills Rows only.
type Result struct {
	Rows  []database.Row `json:"rows"`
	Quote []database.Row `json:"quote,omitempty"`
}

// Queries dispatches named operations against one database.
type Queries struct {
	db     *database.DB
	logger zerolog.Logger
}

// Option configures a Queries.
type Option func(*Queries)

// WithLogger routes dispatch diagnostics through the given logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(q *Queries) { q.logger = logger }
}

// New builds a dispatcher over db.
func New(db *database.DB, opts ...Option) *Queries {
	q := &Queries{db: db, logger: log.Logger}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// handlers maps each operation name to its implementation. Dispatching
// through the map keeps the operation set closed in one place; names outside
// it are not an error, they produce an empty result, which is what the
// browser relies on.
var handlers = map[string]func(*Queries, string) (Result, error){
	OpQuotesByAuthor:      (*Queries).runQuotesByAuthor,
	OpXQuotes:             (*Queries).runXQuotes,
	OpRandomQuote:         (*Queries).runRandomQuote,
	OpTotalQuotes:         (*Queries).runTotalQuotes,
	OpQuotesByTag:         (*Queries).runQuotesByTag,
	OpTop5Authors:         (*Queries).runTop5Authors,
	OpCommentsRandomQuote: (*Queries).runCommentsRandomQuote,
	OpAuthorBio:           (*Queries).runAuthorBio,
	OpAllQuotes:           (*Queries).runAllQuotes,
	OpMetadata:            (*Queries).runMetadata,
}

// Run executes the named operation with an optional string value. Unknown
// names return an empty result and no error.
func (q *Queries) Run(operation, value string) (Result, error) {
	handler, ok := handlers[operation]
	if !ok {
		q.logger.Warn().Str("operation", operation).Msg("Unknown query operation")
		return Result{Rows: []database.Row{}}, nil
	}

	result, err := handler(q, value)
	if err != nil {
		q.logger.Error().Err(err).Str("operation", operation).Msg("Query operation failed")
		return Result{}, err
	}
	return result, nil
}

// Aggregate SQL owned by the dispatcher. The record fetches cover the keyed
// lookups; counting, random sampling and ranking are composed here.
const (
	randomQuotesSQL = `
	SELECT q.id_quote, q.content AS content, a.name AS author_name, q.tags AS tags
	FROM quote q
	JOIN author a ON q.author_id = a.id_author
	ORDER BY RAND()
	LIMIT ?`

	totalQuotesSQL = `SELECT COUNT(*) AS total_quotes FROM quote`

	top5AuthorsSQL = `
	SELECT a.name, COUNT(q.id_quote) AS quote_count
	FROM author a
	JOIN quote q ON q.author_id = a.id_author
	GROUP BY a.id_author, a.name
	ORDER BY quote_count DESC, a.name ASC
	LIMIT 5`

	randomQuoteIDSQL = `SELECT id_quote FROM quote ORDER BY RAND() LIMIT 1`
)

// QuotesByAuthor returns the joined quote projection for authors whose name
// matches the LIKE pattern.
func (q *Queries) QuotesByAuthor(name string) ([]database.Row, error) {
	return database.FetchQuotesByAuthorName(q.db, name)
}

// QuotesByTag returns the quotes whose serialized tag string contains tag.
func (q *Queries) QuotesByTag(tag string) ([]database.Row, error) {
	return database.FetchQuotesByTag(q.db, tag)
}

// XQuotes returns up to n quotes in server-side random order. Zero returns
// none; n beyond the table size returns all rows.
func (q *Queries) XQuotes(n int) ([]database.Row, error) {
	if n < 0 {
		return nil, fmt.Errorf("quote count must not be negative, got %d", n)
	}
	return q.db.Query(randomQuotesSQL, n)
}

// RandomQuote returns one quote chosen by the server.
func (q *Queries) RandomQuote() ([]database.Row, error) {
	return q.XQuotes(1)
}

// TotalQuotes returns a single row whose total_quotes column is the count.
func (q *Queries) TotalQuotes() ([]database.Row, error) {
	return q.db.Query(totalQuotesSQL)
}

// Top5Authors ranks authors by quote count descending, ties broken by name
// ascending.
func (q *Queries) Top5Authors() ([]database.Row, error) {
	return q.db.Query(top5AuthorsSQL)
}

// AuthorBio returns the bio rows for authors whose name matches the LIKE
// pattern.
func (q *Queries) AuthorBio(name string) ([]database.Row, error) {
	return database.FetchAuthorByName(q.db, name)
}

// AllQuotes returns every attributed quote, oldest first.
func (q *Queries) AllQuotes() ([]database.Row, error) {
	return database.FetchAllQuotes(q.db)
}

// Metadata returns the stored value list for a metadata key.
func (q *Queries) Metadata(keyName string) ([]database.Row, error) {
	return database.FetchMetadataByKey(q.db, keyName)
}

// CommentsRandomQuote samples one quote id, then fetches that quote and its
// comments. The two reads are not atomic; with a single interactive caller
// that is fine. An empty quote table produces an empty result, not an error.
func (q *Queries) CommentsRandomQuote() (Result, error) {
	idRows, err := q.db.Query(randomQuoteIDSQL)
	if err != nil {
		return Result{}, err
	}
	if len(idRows) == 0 {
		return Result{Rows: []database.Row{}}, nil
	}
	id := idRows[0].Int("id_quote")

	quote, err := database.FetchQuoteByID(q.db, id)
	if err != nil {
		return Result{}, err
	}
	comments, err := database.FetchCommentsByQuote(q.db, id)
	if err != nil {
		return Result{}, err
	}
	return Result{Rows: comments, Quote: quote}, nil
}

func (q *Queries) runQuotesByAuthor(value string) (Result, error) {
	rows, err := q.QuotesByAuthor(value)
	return Result{Rows: rows}, err
}

func (q *Queries) runXQuotes(value string) (Result, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return Result{}, fmt.Errorf("x_quotes wants a number, got %q: %w", value, err)
	}
	rows, err := q.XQuotes(n)
	return Result{Rows: rows}, err
}

func (q *Queries) runRandomQuote(string) (Result, error) {
	rows, err := q.RandomQuote()
	return Result{Rows: rows}, err
}

func (q *Queries) runTotalQuotes(string) (Result, error) {
	rows, err := q.TotalQuotes()
	return Result{Rows: rows}, err
}

func (q *Queries) runQuotesByTag(value string) (Result, error) {
	rows, err := q.QuotesByTag(value)
	return Result{Rows: rows}, err
}

func (q *Queries) runTop5Authors(string) (Result, error) {
	rows, err := q.Top5Authors()
	return Result{Rows: rows}, err
}

func (q *Queries) runCommentsRandomQuote(string) (Result, error) {
	return q.CommentsRandomQuote()
}

func (q *Queries) runAuthorBio(value string) (Result, error) {
	rows, err := q.AuthorBio(value)
	return Result{Rows: rows}, err
}

func (q *Queries) runAllQuotes(string) (Result, error) {
	rows, err := q.AllQuotes()
	return Result{Rows: rows}, err
}

func (q *Queries) runMetadata(value string) (Result, error) {
	rows, err := q.Metadata(value)
	return Result{Rows: rows}, err
}
