package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"klevant/internal/interfaces/cli/migrate"
	"klevant/internal/interfaces/cli/server"
)

func main() {
	root := &cobra.Command{
		Use:   "klevant",
		Short: "Klevant service-ticket and storefront backend",
	}

	root.AddCommand(server.NewCommand())
	root.AddCommand(migrate.NewCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
