package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/quoteworks/quoteshelf/internal/database"
	"github.com/quoteworks/quoteshelf/internal/model"
	"github.com/quoteworks/quoteshelf/internal/render"
)

// browserCommands in help order, also used for tab completion.
var browserCommands = []string{
	"all", "author", "tag", "some", "random", "count",
	"top", "comments", "bio", "surprise", "clear", "help", "quit",
}

// browser is the interactive loop over the query dispatcher.
type browser struct {
	queries *model.Queries
	liner   *liner.State
}

func runBrowse(cmd *cobra.Command, args []string) error {
	db := requireStore()
	b := &browser{queries: model.New(db)}
	return b.run()
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quoteshelf_history")
}

func (b *browser) run() error {
	b.liner = liner.NewLiner()
	defer b.liner.Close()

	b.liner.SetCtrlCAborts(true)
	b.liner.SetCompleter(b.completer)

	if f, err := os.Open(historyFile()); err == nil {
		b.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("quoteshelf %s\n", version)
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()
	b.quoteOfTheDay()

	for {
		line, err := b.liner.Prompt("quoteshelf> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.liner.AppendHistory(line)

		parts := strings.Fields(line)
		command := strings.ToLower(parts[0])
		args := parts[1:]

		switch command {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			b.saveHistory()
			return nil

		case "help", "?":
			b.printHelp()

		case "all":
			b.show(model.OpAllQuotes, "")

		case "author":
			b.pickAndShow(database.MetadataKeyAllAuthors, "author", model.OpQuotesByAuthor)

		case "tag":
			b.pickAndShow(database.MetadataKeyAllTags, "tag", model.OpQuotesByTag)

		case "some":
			b.cmdSome(args)

		case "random":
			b.show(model.OpRandomQuote, "")

		case "count":
			b.show(model.OpTotalQuotes, "")

		case "top":
			b.show(model.OpTop5Authors, "")

		case "comments":
			b.show(model.OpCommentsRandomQuote, "")

		case "bio":
			b.pickAndShow(database.MetadataKeyAllAuthors, "author", model.OpAuthorBio)

		case "surprise":
			b.cmdSurprise()

		case "clear", "cls":
			fmt.Print("\033[H\033[2J")

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", command)
		}
	}

	b.saveHistory()
	return nil
}

// show runs one dispatcher operation and prints the rendered result. Failed
// operations have already been logged; the browser shows the same face for
// a failure as for no rows.
func (b *browser) show(operation, value string) {
	res, err := b.queries.Run(operation, value)
	if err != nil {
		fmt.Println("No results.")
		return
	}
	fmt.Print(render.Result(operation, res))
}

// pickAndShow lists the values stored under a metadata key, prompts for a
// choice and runs the operation with it.
func (b *browser) pickAndShow(metaKey, noun, operation string) {
	values := b.metadataValues(metaKey)
	if len(values) == 0 {
		fmt.Printf("No %ss available. Did you run 'quoteshelf seed'?\n", noun)
		return
	}

	fmt.Print(render.ValueList(values))
	idx, ok := b.pickIndex(fmt.Sprintf("Which %s? (1-%d): ", noun, len(values)), len(values))
	if !ok {
		return
	}
	fmt.Println()
	b.show(operation, values[idx])
}

func (b *browser) metadataValues(key string) []string {
	res, err := b.queries.Run(model.OpMetadata, key)
	if err != nil || len(res.Rows) == 0 {
		return nil
	}
	return database.SplitList(res.Rows[0].String("key_value"))
}

// pickIndex prompts for a number between 1 and n and returns the zero-based
// index.
func (b *browser) pickIndex(prompt string, n int) (int, bool) {
	line, err := b.liner.Prompt(prompt)
	if err != nil {
		return 0, false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 1 || idx > n {
		fmt.Printf("Expected a number between 1 and %d.\n", n)
		return 0, false
	}
	return idx - 1, true
}

func (b *browser) cmdSome(args []string) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		line, err := b.liner.Prompt("How many quotes? (1-100): ")
		if err != nil {
			return
		}
		raw = line
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > 100 {
		fmt.Println("Expected a number between 1 and 100.")
		return
	}
	b.show(model.OpXQuotes, strconv.Itoa(n))
}

// cmdSurprise picks a random author or tag and browses it.
func (b *browser) cmdSurprise() {
	authors := b.metadataValues(database.MetadataKeyAllAuthors)
	tags := b.metadataValues(database.MetadataKeyAllTags)
	if len(authors)+len(tags) == 0 {
		fmt.Println("Nothing to pick from. Did you run 'quoteshelf seed'?")
		return
	}

	i := rand.Intn(len(authors) + len(tags))
	if i < len(authors) {
		fmt.Printf("Surprise: quotes by %s\n\n", authors[i])
		b.show(model.OpQuotesByAuthor, authors[i])
		return
	}
	tag := tags[i-len(authors)]
	fmt.Printf("Surprise: quotes tagged %q\n\n", tag)
	b.show(model.OpQuotesByTag, tag)
}

func (b *browser) quoteOfTheDay() {
	res, err := b.queries.Run(model.OpRandomQuote, "")
	if err != nil || len(res.Rows) == 0 {
		return
	}
	fmt.Println("Quote of the day:")
	fmt.Printf("%q\n", res.Rows[0].String("content"))
	fmt.Printf("    - %s\n\n", res.Rows[0].String("author_name"))
}

func (b *browser) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  all            show every quote")
	fmt.Println("  author         pick an author and show their quotes")
	fmt.Println("  tag            pick a tag and show matching quotes")
	fmt.Println("  some [n]       show n random quotes (1-100)")
	fmt.Println("  random         show one random quote")
	fmt.Println("  count          show how many quotes the shelf holds")
	fmt.Println("  top            show the five most quoted authors")
	fmt.Println("  comments       show a random quote with its comments")
	fmt.Println("  bio            pick an author and show their bio")
	fmt.Println("  surprise       let the shelf pick an author or tag for you")
	fmt.Println("  clear          clear the screen")
	fmt.Println("  quit           leave")
}

func (b *browser) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		b.liner.WriteHistory(f)
		f.Close()
	}
}

// completer offers command-name completion for the first word.
func (b *browser) completer(line string) []string {
	prefix := strings.ToLower(line)
	var out []string
	for _, c := range browserCommands {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
