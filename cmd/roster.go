package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type rosterEntryJSON struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Role                  string `json:"role"`
	BreakAllowanceMinutes int    `json:"break_allowance_minutes,omitempty"`
	MinShiftHours         int    `json:"min_shift_hours,omitempty"`
}

func newRosterCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Validate the roster and print it as a board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(cmd.Context(), root.configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.service.Close()

			entries := app.service.Board()
			if asJSON {
				out := make([]rosterEntryJSON, 0, len(entries))
				for _, entry := range entries {
					out = append(out, rosterEntryJSON{
						ID:                    string(entry.ID),
						Name:                  entry.Name,
						Role:                  string(entry.Role),
						BreakAllowanceMinutes: int(entry.BreakAllowance.Minutes()),
						MinShiftHours:         int(entry.MinimumShift.Hours()),
					})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			rendered, err := app.renderBoard(entries, app.service.Now())
			if err != nil {
				return fmt.Errorf("render board: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the roster as JSON")

	return cmd
}
