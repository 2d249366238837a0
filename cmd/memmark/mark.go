package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/memmark/pkg/core"
)

// mutation applies one store operation and reports the resulting mark.
type mutation func(store *core.Store, it core.Item) core.Mark

func markCommand(use, short string, fn mutation) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <item>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			store, repo, err := openStore(ctx)
			if err != nil {
				fatal("Error opening marks", err)
			}

			it, err := lookupItem(args[0])
			if err != nil {
				fatal("Error resolving item", err)
			}

			m := fn(store, it)

			if !repo.SaveExists() {
				fmt.Fprintf(os.Stderr, "warning: %s does not exist yet, marks are not persisted\n", repo.Slot.SaveFile())
			}
			if _, err := store.Save(ctx); err != nil {
				fatal("Error saving marks", err)
			}

			fmt.Printf("%s [%s]\n", store.Resolver().Resolve(it), m)
		},
	}
}

var getCmd = &cobra.Command{
	Use:   "get <item>",
	Short: "Print the mark of an item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore(context.Background())
		if err != nil {
			fatal("Error opening marks", err)
		}
		it, err := lookupItem(args[0])
		if err != nil {
			fatal("Error resolving item", err)
		}
		fmt.Printf("%s [%s]\n", store.Resolver().Resolve(it), store.Get(it))
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every mark of the character",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, _, err := openStore(ctx)
		if err != nil {
			fatal("Error opening marks", err)
		}
		n := store.Len()
		store.Clear()
		if _, err := store.Save(ctx); err != nil {
			fatal("Error saving marks", err)
		}
		fmt.Printf("cleared %d marks\n", n)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(markCommand("inc", "Raise the mark of an item (9 wraps to 1)", (*core.Store).Increment))
	rootCmd.AddCommand(markCommand("dec", "Lower the mark of an item (1 wraps to 9)", (*core.Store).Decrement))
	rootCmd.AddCommand(markCommand("rm", "Remove the mark of an item", func(store *core.Store, it core.Item) core.Mark {
		store.Remove(it)
		return store.Get(it)
	}))
	rootCmd.AddCommand(clearCmd)
}
