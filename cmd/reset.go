package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved progress, bookmarks and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.StateRepo().ClearState(cmd.Context()); err != nil {
			return fmt.Errorf("clear state: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved state cleared.")
		return nil
	},
}
