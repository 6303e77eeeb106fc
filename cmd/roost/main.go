package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"roost/internal/version"
)

// main runs the root command and turns its error into an exit status.
func main() {
	rootCmd := newRootCmd()
	rootCmd.Version = version.String(isTerminal(os.Stdout))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "roost: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roost",
		Short: "Print a made-up compiler error",
		Long: `roost asks for a line of code, the part of it to blame and a message,
then prints a convincing compiler error about it.

Everything besides --output is configured in roost.toml, looked up from
the working directory upwards.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		RunE:          runRoost,
	}
	cmd.SetVersionTemplate("roost {{.Version}}\n")
	cmd.Flags().StringP("output", "o", "", "write the message to this file instead of stdout")
	return cmd
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
