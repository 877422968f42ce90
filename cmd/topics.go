package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/views"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [query]",
	Short: "List topics, optionally filtered by a search query",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		pack, err := loadContent(cfg)
		if err != nil {
			return err
		}

		loc := i18n.LocaleZH
		if l, _ := cmd.Flags().GetString("lang"); l != "" {
			parsed, ok := i18n.ParseLocale(l)
			if !ok {
				return fmt.Errorf("unsupported language %q", l)
			}
			loc = parsed
		}

		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		entries := views.Filter(pack.Entries(), query)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-26s  %-13s  %-13s  %s\n", "ID", "Category", "Difficulty", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, e := range entries {
			fmt.Fprintf(out, "%-26s  %-13s  %-13s  %s\n", e.ID, e.Category, e.Difficulty, e.Title.In(loc))
		}
		fmt.Fprintf(out, "\n%d topics\n", len(entries))
		return nil
	},
}

func init() {
	topicsCmd.Flags().String("lang", "", "Title language (zh or en)")
}
