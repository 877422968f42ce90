package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/state"
	"github.com/skyguardian/uavacademy/internal/views"
)

// recentAttempts is how many attempts stats lists.
const recentAttempts = 5

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		pack, err := loadContent(cfg)
		if err != nil {
			return err
		}
		text, err := i18n.LoadEmbedded()
		if err != nil {
			return fmt.Errorf("load catalogs: %w", err)
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		data, err := st.StateRepo().LoadState(ctx)
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}
		// Unreadable state counts as a fresh start, same as the TUI.
		s, _ := state.Restore(data)

		loc := s.Locale
		if l, _ := cmd.Flags().GetString("lang"); l != "" {
			parsed, ok := i18n.ParseLocale(l)
			if !ok {
				return fmt.Errorf("unsupported language %q", l)
			}
			loc = parsed
		}

		attempts := st.AttemptRepo()
		summary, err := attempts.Stats(ctx)
		if err != nil {
			return fmt.Errorf("attempt stats: %w", err)
		}
		recent, err := attempts.Recent(ctx, recentAttempts)
		if err != nil {
			return fmt.Errorf("recent attempts: %w", err)
		}

		prog := views.ProgressOf(pack, s)
		p := message.NewPrinter(loc.Tag())
		out := cmd.OutOrStdout()
		t := func(k i18n.Key) string { return text.Lookup(k, loc) }

		p.Fprintf(out, "%s\n%s\n", t(i18n.KeyAppName), strings.Repeat("─", 32))
		p.Fprintf(out, "%-16s %d / %d (%d%%)\n", t(i18n.KeyStatsTopicsLearned), prog.Learned, prog.Total, prog.Percentage)
		p.Fprintf(out, "%-16s %d\n", t(i18n.KeyStatsBookmarks), prog.BookmarkCount)
		p.Fprintf(out, "%-16s %d\n", t(i18n.KeyStatsAttempts), summary.Count)
		if summary.Count > 0 {
			p.Fprintf(out, "%-16s %d\n", t(i18n.KeyStatsBestScore), summary.BestScore)
			fmt.Fprintln(out)
			for _, a := range recent {
				p.Fprintf(out, "  %s  %d / %d\n", a.FinishedAt.Local().Format("2006-01-02 15:04"), a.Score, a.Total)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("lang", "", "Output language (zh or en); defaults to the saved locale")
}
