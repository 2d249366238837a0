package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/memmark/pkg/core"
)

var (
	listJSON  bool
	listMatch string
)

type listEntry struct {
	Item  string `json:"item"`
	Mark  string `json:"mark"`
	Level int    `json:"level"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List marked items",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore(context.Background())
		if err != nil {
			fatal("Error opening marks", err)
		}

		entries, err := filterMarks(store, listMatch)
		if err != nil {
			fatal("Error filtering marks", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, e := range entries {
			fmt.Printf("%s %s\n", e.Mark, e.Item)
		}
	},
}

// filterMarks returns the marks whose identity matches the glob pattern.
func filterMarks(store *core.Store, pattern string) ([]listEntry, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	entries := []listEntry{}
	for _, k := range store.Keys() {
		if pattern != "" {
			ok, err := doublestar.Match(pattern, string(k))
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		m := store.GetKey(k)
		entries = append(entries, listEntry{Item: string(k), Mark: m.String(), Level: m.Level()})
	}
	return entries, nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only list identities matching a glob (e.g. 'mon_*')")
}
