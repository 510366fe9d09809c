package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stylecs/internal/version"
)

var versionJSON bool

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "emit build metadata as JSON")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show stylecs build metadata",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		number := strings.TrimSpace(version.Version)
		if number == "" {
			number = "dev"
		}
		commit := strings.TrimSpace(version.GitCommit)
		date := strings.TrimSpace(version.BuildDate)

		if versionJSON {
			payload := struct {
				Version   string `json:"version"`
				GitCommit string `json:"git_commit,omitempty"`
				BuildDate string `json:"build_date,omitempty"`
			}{number, commit, date}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		}

		display := number
		if useColor(cmd) && number == version.Version {
			display = version.Colored()
		}
		fmt.Fprintf(out, "stylecs %s\n", display)
		if commit != "" {
			fmt.Fprintf(out, "commit: %s\n", commit)
		}
		if date != "" {
			fmt.Fprintf(out, "built:  %s\n", date)
		}
		return nil
	},
}
