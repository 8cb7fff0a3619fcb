package database

import (
	"fmt"
	"slices"
	"time"
)

// seedAuthor, seedQuote and seedComment describe the built-in sample dataset
// loaded by Seed.
type seedAuthor struct {
	name        string
	birthDate   string
	city        string
	state       string
	country     string
	description string
}

type seedQuote struct {
	author   string
	content  string
	tags     []string
	comments []seedComment
}

type seedComment struct {
	title   string
	details string
	email   string
}

var sampleAuthors = []seedAuthor{
	{
		name:        "Maya Angelou",
		birthDate:   "1928-04-04",
		city:        "St. Louis",
		state:       "Missouri",
		country:     "United States",
		description: "American memoirist, poet and civil rights activist, best known for 'I Know Why the Caged Bird Sings'.",
	},
	{
		name:        "Albert Einstein",
		birthDate:   "1879-03-14",
		city:        "Ulm",
		country:     "Germany",
		description: "Theoretical physicist who developed the theory of relativity; Nobel laureate in Physics, 1921.",
	},
	{
		name:        "Oscar Wilde",
		birthDate:   "1854-10-16",
		city:        "Dublin",
		country:     "Ireland",
		description: "Irish poet and playwright, author of 'The Picture of Dorian Gray' and 'The Importance of Being Earnest'.",
	},
	{
		name:        "Marie Curie",
		birthDate:   "1867-11-07",
		city:        "Warsaw",
		country:     "Poland",
		description: "Physicist and chemist, pioneer of radioactivity research and the first person to win two Nobel Prizes.",
	},
	{
		name:        "Mark Twain",
		birthDate:   "1835-11-30",
		city:        "Florida",
		state:       "Missouri",
		country:     "United States",
		description: "American writer and humorist, author of 'The Adventures of Huckleberry Finn'.",
	},
}

var sampleQuotes = []seedQuote{
	{
		author:  "Maya Angelou",
		content: "If you don't like something, change it. If you can't change it, change your attitude.",
		tags:    []string{"change", "attitude"},
	},
	{
		author:  "Maya Angelou",
		content: "Try to be a rainbow in somebody else's cloud.",
		tags:    []string{"kindness", "hope"},
		comments: []seedComment{
			{title: "Morning ritual", details: "I read this one every morning before work.", email: "sunny@example.com"},
		},
	},
	{
		author:  "Albert Einstein",
		content: "Life is like riding a bicycle. To keep your balance, you must keep moving.",
		tags:    []string{"life", "perseverance"},
		comments: []seedComment{
			{title: "Keeps me going", details: "This one carries me through the hard weeks.", email: "reader1@example.com"},
			{title: "On the wall", details: "Printed and pinned above my desk.", email: "cyclist@example.net"},
		},
	},
	{
		author:  "Albert Einstein",
		content: "Imagination is more important than knowledge.",
		tags:    []string{"imagination", "knowledge"},
	},
	{
		author:  "Oscar Wilde",
		content: "Be yourself; everyone else is already taken.",
		tags:    []string{"identity", "humor"},
	},
	{
		author:  "Oscar Wilde",
		content: "We are all in the gutter, but some of us are looking at the stars.",
		tags:    []string{"hope", "humor"},
	},
	{
		author:  "Marie Curie",
		content: "Nothing in life is to be feared, it is only to be understood.",
		tags:    []string{"science", "courage"},
	},
	{
		author:  "Marie Curie",
		content: "Be less curious about people and more curious about ideas.",
		tags:    []string{"science", "curiosity"},
	},
	{
		author:  "Mark Twain",
		content: "The secret of getting ahead is getting started.",
		tags:    []string{"motivation", "work"},
		comments: []seedComment{
			{title: "Needed this today", details: "Closing the browser and starting now.", email: "deadline@example.net"},
		},
	},
	{
		author:  "Mark Twain",
		content: "Kindness is the language which the deaf can hear and the blind can see.",
		tags:    []string{"kindness", "life"},
	},
}

// Seed loads the built-in sample dataset through the record save path and
// writes the metadata side table (all_authors, all_tags) derived from it.
// Seeding is idempotent: a database that already has the all_authors key is
// left untouched.
func Seed(db *DB) error {
	existing, err := FetchMetadataByKey(db, MetadataKeyAllAuthors)
	if err != nil {
		return fmt.Errorf("failed to check for existing seed: %w", err)
	}
	if len(existing) > 0 {
		db.logger.Info().Msg("Sample data already present, skipping seed")
		return nil
	}

	authorIDs := make(map[string]int64, len(sampleAuthors))
	authorNames := make([]string, 0, len(sampleAuthors))
	for _, sa := range sampleAuthors {
		birth, err := time.Parse("2006-01-02", sa.birthDate)
		if err != nil {
			return fmt.Errorf("invalid sample birth date for %s: %w", sa.name, err)
		}
		author, err := NewAuthor(sa.name, birth, nullableString(sa.city), nullableString(sa.state), nullableString(sa.country), sa.description)
		if err != nil {
			return fmt.Errorf("invalid sample author %s: %w", sa.name, err)
		}
		if err := author.Save(db); err != nil {
			return err
		}
		authorIDs[sa.name] = author.ID
		authorNames = append(authorNames, sa.name)
	}

	var tags []string
	quoteCount := 0
	commentCount := 0
	for _, sq := range sampleQuotes {
		authorID, ok := authorIDs[sq.author]
		if !ok {
			return fmt.Errorf("sample quote references unknown author %s", sq.author)
		}
		quote, err := NewQuote(sq.content, &authorID, sq.tags)
		if err != nil {
			return fmt.Errorf("invalid sample quote by %s: %w", sq.author, err)
		}
		if err := quote.Save(db); err != nil {
			return err
		}
		quoteCount++

		for _, tag := range sq.tags {
			if !slices.Contains(tags, tag) {
				tags = append(tags, tag)
			}
		}

		for _, sc := range sq.comments {
			comment, err := NewComment(quote.ID, sc.title, sc.details, sc.email)
			if err != nil {
				return fmt.Errorf("invalid sample comment on quote %d: %w", quote.ID, err)
			}
			if err := comment.Save(db); err != nil {
				return err
			}
			commentCount++
		}
	}

	for _, entry := range []struct {
		key    string
		values []string
	}{
		{MetadataKeyAllAuthors, authorNames},
		{MetadataKeyAllTags, tags},
	} {
		meta, err := NewMetadata(entry.key, entry.values)
		if err != nil {
			return fmt.Errorf("invalid metadata %s: %w", entry.key, err)
		}
		if err := meta.Save(db); err != nil {
			return err
		}
	}

	db.logger.Info().
		Int("authors", len(authorNames)).
		Int("quotes", quoteCount).
		Int("comments", commentCount).
		Int("tags", len(tags)).
		Msg("Sample data loaded")
	return nil
}
