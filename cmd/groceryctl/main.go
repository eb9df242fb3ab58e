package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sharmaeishan/Grocery-list-Manager/client"
)

// settings holds the persistent flags shared by every subcommand.
type settings struct {
	api    string
	output string
	out    io.Writer
}

func (s *settings) client() *client.Client { return client.New(s.api) }

func newRootCmd(out io.Writer) *cobra.Command {
	s := &settings{out: out}
	rootCmd := &cobra.Command{
		Use:           "groceryctl",
		Short:         "CLI client for the grocery list REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if s.output != "json" && s.output != "yaml" {
				return fmt.Errorf("--output must be json or yaml")
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVarP(&s.api, "api", "a", envOr("GROCERY_API", "http://localhost:8000"), "Grocery service base URL")
	rootCmd.PersistentFlags().StringVarP(&s.output, "output", "o", "json", "Output format: json or yaml")

	rootCmd.AddCommand(newListsCmd(s), newItemsCmd(s))
	return rootCmd
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
