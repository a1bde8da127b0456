package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/salesdash/scaffolder/internal/layout"
	"github.com/salesdash/scaffolder/internal/scaffold"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the component skeleton is present and empty",
	Long: `Compare the components/ directory in the current working directory with the
built-in layout. Exits non-zero when files are missing, non-empty, not regular
files, or when unexpected entries are present.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	l, err := layout.Default()
	if err != nil {
		return err
	}

	report, err := scaffold.Verify(cwd, l)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := message.NewPrinter(language.English)

	if report.OK() {
		p.Fprintf(out, "%s: %d files present, all empty.\n", l.BasePath, len(l.Files))
		return nil
	}

	if !report.DirExists {
		p.Fprintf(out, "%s: directory does not exist\n", l.BasePath)
		return errors.New("component skeleton not found")
	}

	printGroup(out, "Missing", report.Missing)
	printGroup(out, "Not a regular file", report.NotRegular)
	printGroup(out, "Not empty", report.NonEmpty)
	printGroup(out, "Unexpected", report.Extra)

	problems := len(report.Missing) + len(report.NotRegular) + len(report.NonEmpty) + len(report.Extra)
	return errors.New(p.Sprintf("component skeleton has %d problem(s)", problems))
}

func printGroup(w io.Writer, label string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n  %s\n", label, strings.Join(names, "\n  "))
}
