package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parththirwani/tally/internal/parser"
	"github.com/parththirwani/tally/internal/session"
	"github.com/parththirwani/tally/internal/timeutil"
)

var startCmd = &cobra.Command{
	Use:   "start [project]",
	Short: "Start a new work session",
	Long: `Start a new work session, optionally tagged with a project, tag and note.

The positional argument is either a bare project name or a descriptor with
@project and #tag markers; leftover text becomes the note.

Examples:
  tally start
  tally start consulting
  tally start "quarterly invoices @consulting #billing"
  tally start -p consulting -t billing -n "quarterly invoices"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := runRecovery(store); err != nil {
			return err
		}

		project, _ := cmd.Flags().GetString("project")
		tag, _ := cmd.Flags().GetString("tag")
		note, _ := cmd.Flags().GetString("note")
		if len(args) > 0 {
			parsed := parser.ParseStartInput(args[0])
			if project == "" {
				project = parsed.Project
			}
			if tag == "" {
				tag = parsed.Tag
			}
			if note == "" {
				note = parsed.Note
			}
		}
		if project == "" {
			project = cfg.DefaultProject
		}

		engine := session.NewEngine(store, nil)
		sess, err := engine.Start(project, tag, note)
		if err != nil {
			if errors.Is(err, session.ErrSessionActive) {
				fmt.Println(warnStyle.Render("Use 'tally stop' first or 'tally status' to check."))
			}
			return err
		}

		fmt.Println(successStyle.Render("✓ Session started!"))
		if sess.Project != "" {
			fmt.Println(subtleStyle.Render("  Project: " + sess.Project))
		}
		if sess.Tag != "" {
			fmt.Println(subtleStyle.Render("  Tag: " + sess.Tag))
		}
		if sess.Note != "" {
			fmt.Println(subtleStyle.Render("  Note: " + sess.Note))
		}
		fmt.Println(subtleStyle.Render("  Started at: " + sess.StartedAt.Format("15:04:05")))
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current work session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		note, _ := cmd.Flags().GetString("note")

		engine := session.NewEngine(store, nil)
		sess, err := engine.Stop(note)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("✓ Session stopped!"))
		if sess.Project != "" {
			fmt.Println(subtleStyle.Render("  Project: " + sess.Project))
		}
		fmt.Println(subtleStyle.Render("  Duration: " + timeutil.FormatDuration(*sess.TotalSeconds)))
		fmt.Println(subtleStyle.Render("  Ended at: " + sess.EndedAt.Format("15:04:05")))
		return nil
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the current work session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		engine := session.NewEngine(store, nil)
		result, err := engine.Pause()
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("⏸  Session paused"))
		if result.Session.Project != "" {
			fmt.Println(subtleStyle.Render("  Project: " + result.Session.Project))
		}
		fmt.Println(subtleStyle.Render("  Elapsed: " + timeutil.FormatDuration(result.ElapsedSeconds)))
		fmt.Println(subtleStyle.Render("  Use 'tally resume' to continue"))
		return nil
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused work session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := runRecovery(store); err != nil {
			return err
		}

		engine := session.NewEngine(store, nil)
		result, err := engine.Resume()
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("▶  Session resumed"))
		if result.Session.Project != "" {
			fmt.Println(subtleStyle.Render("  Project: " + result.Session.Project))
		}
		fmt.Println(subtleStyle.Render("  Paused for: " + timeutil.FormatDuration(result.PausedFor)))
		return nil
	},
}

func init() {
	startCmd.Flags().StringP("project", "p", "", "Project name")
	startCmd.Flags().StringP("tag", "t", "", "Tag for the session")
	startCmd.Flags().StringP("note", "n", "", "Note or description")
	stopCmd.Flags().StringP("note", "n", "", "Add a note when stopping")
}
