// Package render formats query results for the terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/quoteworks/quoteshelf/internal/database"
	"github.com/quoteworks/quoteshelf/internal/model"
)

// Quotes formats joined quote rows as numbered blocks.
func Quotes(rows []database.Row) string {
	if len(rows) == 0 {
		return "No quotes found.\n"
	}

	var b strings.Builder
	for i, row := range rows {
		fmt.Fprintf(&b, "------------ QUOTE %d ------------\n", i+1)
		fmt.Fprintf(&b, "%q\n", row.String("content"))
		fmt.Fprintf(&b, "    - %s\n", row.String("author_name"))
		if tags := row.String("tags"); tags != "" {
			fmt.Fprintf(&b, "tags: %s\n", tags)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// AuthorBio formats author bio rows: name, birth line, description.
func AuthorBio(rows []database.Row) string {
	if len(rows) == 0 {
		return "No matching author.\n"
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s\n", row.String("name"))

		born := formatDate(row["birth_date"])
		if place := birthPlace(row); place != "" {
			born = born + " in " + place
		}
		if born != "" {
			fmt.Fprintf(&b, "Born %s\n", born)
		}
		if desc := row.String("description"); desc != "" {
			fmt.Fprintf(&b, "%s\n", desc)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Comments formats a sampled quote together with its comments.
func Comments(quote, comments []database.Row) string {
	var b strings.Builder
	if len(quote) > 0 {
		fmt.Fprintf(&b, "%q\n", quote[0].String("content"))
		fmt.Fprintf(&b, "    - %s\n\n", quote[0].String("author_name"))
	}

	if len(comments) == 0 {
		b.WriteString("No comments yet.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Comments (%d):\n", len(comments))
	for i, row := range comments {
		fmt.Fprintf(&b, "[%d] %s (%s)\n", i+1, row.String("title"), row.String("user_email"))
		if details := row.String("details"); details != "" {
			fmt.Fprintf(&b, "    %s\n", details)
		}
	}
	return b.String()
}

// Ranking formats the top-author rows.
func Ranking(rows []database.Row) string {
	if len(rows) == 0 {
		return "No authors yet.\n"
	}

	var b strings.Builder
	b.WriteString("Top authors by quote count:\n")
	for i, row := range rows {
		fmt.Fprintf(&b, "%2d. %s (%s)\n", i+1, row.String("name"), plural(row.Int("quote_count"), "quote"))
	}
	return b.String()
}

// Count formats the total_quotes result.
func Count(rows []database.Row) string {
	if len(rows) == 0 {
		return "No quotes found.\n"
	}
	return fmt.Sprintf("The shelf holds %s.\n", plural(rows[0].Int("total_quotes"), "quote"))
}

// ValueList formats a list of values as a numbered pick list.
func ValueList(values []string) string {
	var b strings.Builder
	for i, v := range values {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, v)
	}
	return b.String()
}

// Result renders any operation's result, keyed by the operation name. Used
// by the one-shot query command.
func Result(operation string, res model.Result) string {
	switch operation {
	case model.OpTotalQuotes:
		return Count(res.Rows)
	case model.OpTop5Authors:
		return Ranking(res.Rows)
	case model.OpAuthorBio:
		return AuthorBio(res.Rows)
	case model.OpCommentsRandomQuote:
		return Comments(res.Quote, res.Rows)
	case model.OpMetadata:
		if len(res.Rows) == 0 {
			return "No such metadata key.\n"
		}
		return ValueList(database.SplitList(res.Rows[0].String("key_value")))
	default:
		return Quotes(res.Rows)
	}
}

func birthPlace(row database.Row) string {
	var parts []string
	for _, key := range []string{"birth_city", "birth_state", "birth_country"} {
		if v := row.String(key); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

func formatDate(v any) string {
	switch d := v.(type) {
	case time.Time:
		return d.Format("2 January 2006")
	case string:
		if t, err := time.Parse("2006-01-02", strings.TrimSuffix(d, " 00:00:00")); err == nil {
			return t.Format("2 January 2006")
		}
		return d
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func plural(n int64, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
