package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parththirwani/tally/internal/models"
	"github.com/parththirwani/tally/internal/session"
	"github.com/parththirwani/tally/internal/timeutil"
	"github.com/parththirwani/tally/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current session status and today's total",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		engine := session.NewEngine(store, nil)
		result, err := engine.Status()
		if err != nil {
			return err
		}

		if result.Session == nil && result.TodaySessions == 0 {
			fmt.Println(subtleStyle.Render("No sessions today. Use 'tally start' to begin tracking."))
			return nil
		}

		if result.Session == nil {
			fmt.Println(subtleStyle.Render("No active session"))
			fmt.Println(totalStyle.Render(fmt.Sprintf("Today: %s across %d session(s)",
				timeutil.FormatDuration(result.TodaySeconds), result.TodaySessions)))
			return nil
		}

		live, _ := cmd.Flags().GetBool("live")
		if live && result.Session.Status == models.StatusRunning {
			return tui.RunStatusTUI(result.Session, result.TodaySeconds)
		}

		printStaticStatus(result)
		return nil
	},
}

func printStaticStatus(result *session.StatusResult) {
	sess := result.Session

	icon := "▶"
	style := successStyle
	if sess.Status == models.StatusPaused {
		icon = "⏸"
		style = warnStyle
	}

	fmt.Println(style.Render(fmt.Sprintf("%s  %s: %s (started at %s)",
		icon, titleCase(sess.Status),
		timeutil.FormatDuration(result.ElapsedSeconds),
		sess.StartedAt.Format("15:04"))))

	if sess.Project != "" {
		fmt.Println(subtleStyle.Render("   Project: " + sess.Project))
	}
	if sess.Tag != "" {
		fmt.Println(subtleStyle.Render("   Tag: " + sess.Tag))
	}
	if sess.Note != "" {
		fmt.Println(subtleStyle.Render("   Note: " + sess.Note))
	}

	fmt.Println(totalStyle.Render("   Today: " +
		timeutil.FormatDuration(result.TodaySeconds+result.ElapsedSeconds) + " total"))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func init() {
	statusCmd.Flags().BoolP("live", "l", false, "Show live updating timer")
}
