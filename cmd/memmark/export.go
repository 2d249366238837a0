package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/memmark/pkg/adapters/fs"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the marks to stdout",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		codec, ok := fs.Codecs()[exportFormat]
		if !ok {
			fatal("Error exporting", fmt.Errorf("unknown format %q", exportFormat))
		}

		store, _, err := openStore(context.Background())
		if err != nil {
			fatal("Error opening marks", err)
		}

		data, err := codec.Encode(store.ToRecords())
		if err != nil {
			fatal("Error encoding marks", err)
		}
		os.Stdout.Write(data)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format (json, yaml)")
}
