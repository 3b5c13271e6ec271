// Package ui renders reconciliation results for the terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/analyticsops/uaconf/internal/platform/analytics"
	"github.com/analyticsops/uaconf/internal/reconcile"
)

// kindOrder fixes how resource kinds are presented: parent resources first,
// their children after, matching pipeline order.
var kindOrder = []string{
	"webProperty",
	"customMetric",
	"customDimension",
	"view",
	"goal",
	"filter",
}

// Renderer writes human-readable reconciliation output. Styling is applied
// only when color is on; piped output stays plain.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

// IsInteractiveTTY reports whether stdout is a terminal.
func IsInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Summary renders the per-kind outcome table of one reconciliation run.
func (r *Renderer) Summary(s reconcile.Summary) {
	title := "Reconciliation summary"
	fmt.Fprintf(r.w, "  %s\n", r.style(titleStyle, title))
	fmt.Fprintln(r.w, "  "+strings.Repeat("─", len(title)))

	for _, kind := range orderedKinds(s) {
		fmt.Fprintf(r.w, "  %-18s %s\n", kind, r.outcomeCell(s, kind))
	}

	total := s.Total(reconcile.OutcomeInserted) + s.Total(reconcile.OutcomePatched)
	fmt.Fprintln(r.w)
	if total == 0 {
		fmt.Fprintf(r.w, "  %s\n", r.style(dimStyle, "no changes"))
		return
	}
	fmt.Fprintf(r.w, "  %d change(s) applied\n", total)
}

func (r *Renderer) outcomeCell(s reconcile.Summary, kind string) string {
	cells := []string{}
	if n := s.Count(kind, reconcile.OutcomeInserted); n > 0 {
		cells = append(cells, r.style(insertedStyle, fmt.Sprintf("%d inserted", n)))
	}
	if n := s.Count(kind, reconcile.OutcomePatched); n > 0 {
		cells = append(cells, r.style(patchedStyle, fmt.Sprintf("%d patched", n)))
	}
	if n := s.Count(kind, reconcile.OutcomeUnchanged); n > 0 {
		cells = append(cells, r.style(dimStyle, fmt.Sprintf("%d unchanged", n)))
	}
	if n := s.Count(kind, reconcile.OutcomeSkipped); n > 0 {
		cells = append(cells, r.style(skippedStyle, fmt.Sprintf("%d skipped", n)))
	}
	return strings.Join(cells, "  ")
}

// orderedKinds returns the kinds present in s, known kinds first in display
// order, unknown kinds after in lexical order.
func orderedKinds(s reconcile.Summary) []string {
	printed := make(map[string]bool)
	out := []string{}
	for _, kind := range kindOrder {
		if _, ok := s[kind]; ok {
			out = append(out, kind)
			printed[kind] = true
		}
	}
	rest := []string{}
	for kind := range s {
		if !printed[kind] {
			rest = append(rest, kind)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Plan renders the writes a dry run would have performed.
func (r *Renderer) Plan(actions []analytics.DryRunAction) {
	title := "Planned changes"
	fmt.Fprintf(r.w, "  %s\n", r.style(titleStyle, title))
	fmt.Fprintln(r.w, "  "+strings.Repeat("─", len(title)))

	if len(actions) == 0 {
		fmt.Fprintf(r.w, "  %s\n", r.style(dimStyle, "nothing to do"))
		return
	}

	for _, a := range actions {
		verb := a.Op
		style := patchedStyle
		if a.Op == "insert" {
			style = insertedStyle
		}
		label := a.Name
		if label == "" {
			label = a.ID
		} else if a.ID != "" {
			label = fmt.Sprintf("%s (%s)", a.Name, a.ID)
		}
		fmt.Fprintf(r.w, "  %s %-16s %s\n", r.style(style, verb), a.Kind, label)
	}
	fmt.Fprintf(r.w, "\n  %d write(s) pending\n", len(actions))
}
