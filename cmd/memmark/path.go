package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the side-file and save paths of the character",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := slot()
		if err != nil {
			fatal("Error resolving save", err)
		}
		fmt.Printf("marks: %s\n", s.SideFile())
		fmt.Printf("save:  %s\n", s.SaveFile())
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
