package cli

import (
	"fmt"
	"os"

	"github.com/salesdash/scaffolder/internal/config"
	"github.com/salesdash/scaffolder/internal/layout"
	"github.com/salesdash/scaffolder/internal/scaffold"
	"github.com/spf13/cobra"
)

const completionMessage = "Components folder and .jsx files created successfully!"

func runScaffold(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	l, err := layout.Default()
	if err != nil {
		return err
	}

	s := scaffold.New(cwd, l)
	if config.Verbose() {
		s.Progress = cmd.ErrOrStderr()
	}

	if _, err := s.Run(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), completionMessage)
	return nil
}
