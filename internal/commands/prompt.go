package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/parththirwani/tally/internal/db"
	"github.com/parththirwani/tally/internal/models"
	"github.com/parththirwani/tally/internal/session"
	"github.com/parththirwani/tally/internal/timeutil"
)

// consolePrompter asks for an orphan disposition on standard input.
type consolePrompter struct {
	in  io.Reader
	out io.Writer
}

func (p consolePrompter) AskDisposition(orphan *models.Session, elapsedSeconds int64) (session.Disposition, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, warnStyle.Render(fmt.Sprintf("⚠️  Found an unfinished session from %s (%s)",
		orphan.StartedAt.Format("Jan 2, 2006"), timeutil.FormatDuration(elapsedSeconds))))
	if orphan.Project != "" {
		fmt.Fprintln(p.out, subtleStyle.Render("   Project: "+orphan.Project))
	}

	fmt.Fprint(p.out, "What would you like to do? [k]eep it as-is, [d]iscard it, or [s]top it at end of day: ")

	answer, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return session.DispositionKeep, err
	}

	disposition, ok := session.ParseDisposition(answer)
	if !ok {
		fmt.Fprintln(p.out, subtleStyle.Render("Invalid choice. Session kept as-is."))
	}

	return disposition, nil
}

// runRecovery reconciles any orphaned session before a state-changing
// command proceeds. Store failures abort the command.
func runRecovery(store *db.Store) error {
	reconciler := session.NewReconciler(store, nil, consolePrompter{in: os.Stdin, out: os.Stdout})

	result, err := reconciler.Reconcile()
	if err != nil {
		return fmt.Errorf("failed to recover unfinished session: %w", err)
	}
	if result == nil {
		return nil
	}

	switch result.Disposition {
	case session.DispositionDiscard:
		fmt.Println(successStyle.Render("✓ Session discarded."))
	case session.DispositionClose:
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ Session stopped at end of day (%s).",
			timeutil.FormatDuration(result.TotalSeconds))))
	default:
		fmt.Println(subtleStyle.Render("Session kept as-is."))
	}
	fmt.Println()

	return nil
}
