// Package commands implements the CLI commands for the declgraph tool.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// CLI represents the command line interface for declgraph.
type CLI struct {
	rootCmd *cobra.Command
	out     io.Writer
}

// New creates a new CLI instance.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "declgraph",
		Short:         "Read C++ sources into a linked declaration graph",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "declgraph.yaml", "Path to configuration file")

	c := &CLI{
		rootCmd: rootCmd,
		out:     os.Stdout,
	}

	rootCmd.AddCommand(c.newReadCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}
