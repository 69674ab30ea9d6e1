// Package report renders pipeline progress as chronological styled lines.
// It is the linear counterpart of a full TUI: safe for CI logs, one line
// per stage transition.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/cuforge/internal/core/domain"
	"go.trai.ch/cuforge/internal/ui/output"
	"go.trai.ch/cuforge/internal/ui/style"
)

// Reporter implements ports.Reporter with line-oriented output.
type Reporter struct {
	mu  sync.Mutex
	w   io.Writer
	out *termenv.Output
}

// NewReporter creates a Reporter writing to w (stdout when nil).
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		w:   w,
		out: output.New(w),
	}
}

// StageStarted prints the stage banner line.
func (r *Reporter) StageStarted(stage domain.Stage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	icon := r.out.String(style.Dot).Foreground(r.out.Color(string(style.Yellow)))
	fmt.Fprintf(r.w, "%s %s\n", icon, stage)
}

// StageDone prints the stage outcome with its duration.
func (r *Reporter) StageDone(result domain.StageResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case result.Err != nil:
		icon := r.out.String(style.Cross).Foreground(r.out.Color(string(style.Red)))
		fmt.Fprintf(r.w, "%s %s failed after %s\n", icon, result.Stage, formatDuration(result.Duration))
	case result.Skipped:
		icon := r.out.String(style.Circle).Foreground(r.out.Color(string(style.Slate)))
		fmt.Fprintf(r.w, "%s %s (up to date)\n", icon, result.Stage)
	default:
		icon := r.out.String(style.Check).Foreground(r.out.Color(string(style.Green)))
		fmt.Fprintf(r.w, "%s %s (%s)\n", icon, result.Stage, formatDuration(result.Duration))
	}
}

// Summary enumerates the expected artifact locations. Informational only;
// the pipeline's exit status is already decided by the time this runs.
func (r *Reporter) Summary(buildDir string, installed bool, prefix string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := "build complete\n" +
		"  libraries: " + filepath.Join(buildDir, "lib") + "\n" +
		"  examples:  " + filepath.Join(buildDir, "examples") + "\n" +
		"  tests:     " + filepath.Join(buildDir, "tests")
	if installed {
		lines += "\n  installed: " + prefix
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Slate).
		Padding(0, 1)
	fmt.Fprintln(r.w, box.Render(lines))
}

func formatDuration(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}
