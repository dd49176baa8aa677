package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/vectorize"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of vectorize",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vectorize version %s\n", vectorize.Version)
		},
	}
}
