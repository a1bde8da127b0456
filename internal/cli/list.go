package cli

import (
	"encoding/json"
	"fmt"

	"github.com/salesdash/scaffolder/internal/layout"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the built-in component layout",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listOutput is the JSON shape of the layout.
type listOutput struct {
	Version  string   `json:"version"`
	BasePath string   `json:"base_path"`
	Files    []string `json:"files"`
}

func runList(cmd *cobra.Command, args []string) error {
	l, err := layout.Default()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listJSON {
		data, err := json.MarshalIndent(listOutput{
			Version:  l.Version,
			BasePath: l.BasePath,
			Files:    l.Files,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling layout: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "%s/\n", l.BasePath)
	for _, name := range l.Files {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
