package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotCanonical = errors.New("markup is not canonical")

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalise HTML markup",
	Long: `Read HTML from a file or standard input and print its canonical form.

Use --check to test whether the input is already canonical; the command
exits non-zero when it is not. Use --explain to print the output of every
normalisation rule for one pass.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().Bool("check", false, "Exit non-zero if the input is not canonical")
	normalizeCmd.Flags().Bool("explain", false, "Print the output of every rule")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	if normaliseService == nil {
		return errNormaliseNotConfigured
	}

	markup, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	check, _ := cmd.Flags().GetBool("check")
	explain, _ := cmd.Flags().GetBool("explain")

	switch {
	case explain:
		input := markup
		for _, step := range normaliseService.Explain(markup) {
			mark := " "
			if step.Changed(input) {
				mark = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-22s %s\n", mark, step.Rule, step.Output)
			input = step.Output
		}
		return nil
	case check:
		canonical, ok := normaliseService.Check(markup)
		if ok {
			cmd.Println("canonical")
			return nil
		}
		cmd.Printf("not canonical, expected:\n%s\n", canonical)
		return errNotCanonical
	default:
		fmt.Fprintln(cmd.OutOrStdout(), normaliseService.Normalise(markup))
		return nil
	}
}

// readInput reads the named file, or standard input when no file is given.
// An interactive terminal on standard input is refused.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.New("no input: pass a file or pipe HTML on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
