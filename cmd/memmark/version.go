package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/memmark"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of memmark",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("memmark version %s\n", strings.TrimSpace(memmark.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
