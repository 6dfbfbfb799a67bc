package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"wallcraft/internal/domain"
	"wallcraft/internal/fetch"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	likeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	nopeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// progressPrinter renders an in-place percentage line while pages are
// being gathered. Nil (no progress output) when stdout is not a terminal,
// e.g. under cron.
func progressPrinter(scope domain.Scope) fetch.ProgressFunc {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}
	return progressTo(os.Stdout, scope)
}

// progressTo serializes the concurrent progress callbacks and drops any
// that arrive after a higher percentage already printed, so the line only
// ever counts up and the final newline comes last.
func progressTo(w io.Writer, scope domain.Scope) fetch.ProgressFunc {
	var mu sync.Mutex
	last := -1
	return func(completed, total int) {
		mu.Lock()
		defer mu.Unlock()
		pct := 100 * completed / total
		if pct <= last {
			return
		}
		last = pct
		fmt.Fprintf(w, "\rGathering wallpapers %s: %d%%...", scope.Describe(), pct)
		if pct == 100 {
			fmt.Fprintln(w)
		}
	}
}

func printCount(count int, scope domain.Scope) {
	fmt.Printf("Found %d wallpapers %s.\n", count, scope.Describe())
}
