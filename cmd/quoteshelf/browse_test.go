package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The completer only reads browserCommands, so a zero-value browser is enough.
func TestCompleter(t *testing.T) {
	b := &browser{}

	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "prefix", line: "t", want: []string{"tag", "top"}},
		{name: "single match", line: "sur", want: []string{"surprise"}},
		{name: "case insensitive", line: "SOME", want: []string{"some"}},
		{name: "empty line offers everything", line: "", want: browserCommands},
		{name: "no match", line: "xyz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.completer(tt.line))
		})
	}
}

func TestCompleterCoversHelpCommands(t *testing.T) {
	// Every command the help screen advertises must tab-complete.
	for _, c := range []string{"all", "author", "tag", "some", "random", "count", "top", "comments", "bio", "surprise", "clear", "quit"} {
		assert.Contains(t, browserCommands, c)
	}
}
