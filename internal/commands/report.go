package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/parththirwani/tally/internal/report"
	"github.com/parththirwani/tally/internal/timeutil"
)

var reportCmd = &cobra.Command{
	Use:   "report [period]",
	Short: "Generate work reports",
	Long: `Generate a report of completed sessions for a period.

Periods: today (default), yesterday, week, month, or a date as YYYY-MM-DD.

Examples:
  tally report
  tally report week -d
  tally report month --export csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		period := "today"
		if len(args) > 0 {
			period = args[0]
		}

		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		start, end, label := timeutil.DateRange(period, time.Now())
		sessions, err := store.CompletedInRange(start, end)
		if err != nil {
			return err
		}

		if len(sessions) == 0 {
			fmt.Println(subtleStyle.Render("No sessions found for " + label))
			return nil
		}

		rep := report.Build(sessions, label)

		if format, _ := cmd.Flags().GetString("export"); format != "" {
			return exportReport(rep, format)
		}

		fmt.Println()
		fmt.Println(titleStyle.Render("📊 Report for " + label))
		fmt.Println(subtleStyle.Render(strings.Repeat("─", 50)))

		detailed, _ := cmd.Flags().GetBool("detailed")
		if period == "week" || period == "month" {
			printGroupedReport(rep)
		} else {
			printDailyReport(rep, detailed)
		}

		fmt.Println(subtleStyle.Render(strings.Repeat("─", 50)))
		fmt.Println(totalStyle.Render(fmt.Sprintf("Total: %s (%.2f hours) across %d session(s)",
			timeutil.FormatDuration(rep.TotalSeconds),
			float64(rep.TotalSeconds)/3600,
			len(rep.Sessions))))
		fmt.Println()
		return nil
	},
}

func printDailyReport(rep *report.Report, detailed bool) {
	fmt.Println()
	for i, sess := range rep.Sessions {
		var total int64
		if sess.TotalSeconds != nil {
			total = *sess.TotalSeconds
		}

		if !detailed {
			projectInfo := ""
			if sess.Project != "" {
				projectInfo = accentStyle.Render("["+sess.Project+"]") + " "
			}
			fmt.Printf("  %s %s%s\n",
				subtleStyle.Render(sess.StartedAt.Format("15:04")),
				projectInfo,
				timeutil.FormatDuration(total))
			continue
		}

		end := "ongoing"
		if sess.EndedAt != nil {
			end = sess.EndedAt.Format("15:04")
		}

		fmt.Println(accentStyle.Render(fmt.Sprintf("Session %d:", i+1)))
		fmt.Println(subtleStyle.Render(fmt.Sprintf("  %s - %s", sess.StartedAt.Format("15:04"), end)))
		fmt.Println("  Duration: " + timeutil.FormatDuration(total))
		if sess.Project != "" {
			fmt.Println(subtleStyle.Render("  Project: " + sess.Project))
		}
		if sess.Tag != "" {
			fmt.Println(subtleStyle.Render("  Tag: " + sess.Tag))
		}
		if sess.Note != "" {
			fmt.Println(subtleStyle.Render("  Note: " + sess.Note))
		}
		fmt.Println()
	}
}

func printGroupedReport(rep *report.Report) {
	fmt.Println()
	for _, day := range report.GroupByDay(rep.Sessions) {
		plural := ""
		if len(day.Sessions) > 1 {
			plural = "s"
		}
		fmt.Printf("  %s %s: %s %s\n",
			subtleStyle.Render(day.Date.Format("Mon")),
			day.Date.Format("Jan 2"),
			totalStyle.Render(timeutil.FormatDuration(day.TotalSeconds)),
			subtleStyle.Render(fmt.Sprintf("(%d session%s)", len(day.Sessions), plural)))
	}
}

func exportReport(rep *report.Report, format string) error {
	exporter, err := report.NewExporter(format)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("tally-report-%s-%d.%s",
		strings.ReplaceAll(rep.Label, " ", "-"), time.Now().Unix(), exporter.Extension())

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := exporter.Export(rep, f); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	fmt.Println(successStyle.Render("✓ Report exported to " + filename))
	return nil
}

func init() {
	reportCmd.Flags().BoolP("detailed", "d", false, "Show detailed session breakdown")
	reportCmd.Flags().String("export", "", "Export format: json or csv")
}
