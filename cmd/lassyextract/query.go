package main

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/urfave/cli/v2"

	"github.com/konstantinosKokos/lassy-tlg-extraction/storage"
)

// completionThreshold is the minimum prefix length before completion
// queries the database.
const completionThreshold = 2

var replCommands = []prompt.Suggest{
	{Text: ":stats", Description: "database totals"},
	{Text: ":quit", Description: "leave the prompt"},
}

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "interactive word lookups over a lexicon database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Required: true, Usage: "SQLite lexicon database `FILE`"},
		},
		Action: runQuery,
	}
}

func runQuery(c *cli.Context) error {
	store, err := storage.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Println("Type a word to look it up, :stats for totals, :quit to leave")

	history := []string{}
	for {
		in := strings.TrimSpace(prompt.Input("> ", completer(store),
			prompt.OptionTitle("lassyextract query"),
			prompt.OptionHistory(history),
			prompt.OptionMaxSuggestion(12),
		))
		if in == "" {
			continue
		}
		history = append(history, in)

		switch in {
		case ":quit", ":q":
			return nil
		case ":stats":
			st, err := store.Stats()
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("runs: %d\nsamples: %d\nentries: %d\ndistinct words: %d\n",
				st.Runs, st.Samples, st.Entries, st.Words)
		default:
			counts, err := store.LookupWord(in)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			if len(counts) == 0 {
				fmt.Printf("%s: not found\n", in)
				continue
			}
			for _, tc := range counts {
				fmt.Printf("%6d  %s\n", tc.Count, tc.Type)
			}
		}
	}
}

func completer(store *storage.Store) prompt.Completer {
	return func(in prompt.Document) []prompt.Suggest {
		word := in.GetWordBeforeCursor()
		if strings.HasPrefix(word, ":") {
			return prompt.FilterHasPrefix(replCommands, word, true)
		}
		if len(word) < completionThreshold {
			return nil
		}
		words, err := store.WordsWithPrefix(word, 12)
		if err != nil {
			return nil
		}

		suggestions := make([]prompt.Suggest, len(words))
		for i, w := range words {
			suggestions[i] = prompt.Suggest{Text: w}
		}
		return suggestions
	}
}
