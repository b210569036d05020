package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vvka-141/depmap/pkg/depmap"
)

const (
	MatchedHeader = "--- Matched Packages ---"
	NoMatches     = "No matching packages found."
)

// Ruler closes a section and is as wide as MatchedHeader.
var Ruler = strings.Repeat("-", len(MatchedHeader))

// Writer prints report sections to an output stream.
type Writer struct {
	out    io.Writer
	styled bool
}

// New creates a Writer. styled enables lipgloss rendering.
func New(out io.Writer, styled bool) *Writer {
	return &Writer{out: out, styled: styled}
}

// NewStdout creates a Writer on os.Stdout, styled when stdout is a terminal.
func NewStdout() *Writer {
	return New(os.Stdout, ColorEnabled(os.Stdout))
}

func (w *Writer) render(style lipgloss.Style, s string) string {
	if !w.styled {
		return s
	}
	return style.Render(s)
}

// Matched writes the matched-packages section. Names are sorted for
// presentation; the input slice is not modified.
func (w *Writer) Matched(names []string) error {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString(w.render(headerStyle, MatchedHeader) + "\n")
	if len(sorted) == 0 {
		b.WriteString(NoMatches + "\n")
	}
	for _, name := range sorted {
		b.WriteString(w.render(packageStyle, name) + ",\n")
	}
	b.WriteString(w.render(rulerStyle, Ruler) + "\n")

	_, err := io.WriteString(w.out, b.String())
	return err
}

// Resolutions writes one line per pair with the packages that provide it.
//
//	com.google.guava:guava -> libguava-java (32.1.2-1)
//	com.example:internal -> not-yet-packaged
func (w *Writer) Resolutions(resolutions []depmap.Resolution) error {
	var b strings.Builder
	b.WriteString(w.render(headerStyle, "--- Dependency Details ---") + "\n")
	for _, r := range resolutions {
		refs := make([]string, 0, len(r.Packages))
		for _, p := range r.Packages {
			refs = append(refs, w.packageRef(p))
		}
		fmt.Fprintf(&b, "%s -> %s\n", r.Pair, strings.Join(refs, ", "))
	}
	b.WriteString(w.render(rulerStyle, Ruler) + "\n")

	_, err := io.WriteString(w.out, b.String())
	return err
}

func (w *Writer) packageRef(p depmap.PackageRef) string {
	if p.Name == depmap.NotYetPackaged {
		return w.render(unpackagedStyle, p.Name)
	}
	s := w.render(packageStyle, p.Name)
	if p.Version != "" {
		s += " (" + p.Version + ")"
	}
	return s
}

// Pairs writes one group:artifact per line.
func (w *Writer) Pairs(pairs []depmap.ArtifactPair) error {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p.String() + "\n")
	}
	_, err := io.WriteString(w.out, b.String())
	return err
}

// References writes reference rows as aligned columns.
func (w *Writer) References(entries []depmap.ReferenceEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w.out, w.render(mutedStyle, "No reference entries found."))
		return err
	}

	width := 0
	for _, e := range entries {
		if n := len(coordinateOf(e)); n > width {
			width = n
		}
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%-*s  %s", width, coordinateOf(e), w.render(packageStyle, e.PackageName))
		if e.PackageVersion != "" {
			b.WriteString(" " + e.PackageVersion)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w.out, b.String())
	return err
}

func coordinateOf(e depmap.ReferenceEntry) string {
	if e.Version == "" {
		return e.Pair().String()
	}
	return e.Pair().String() + ":" + e.Version
}

// Summary writes a one-line conversion summary.
func (w *Writer) Summary(r depmap.ConvertReport) error {
	line := fmt.Sprintf("Converted %d version directories (%d files), skipped %d, failed %d",
		r.Count(depmap.StatusConverted), r.CopiedFiles(),
		r.Count(depmap.StatusSkipped), r.Count(depmap.StatusFailed))
	_, err := fmt.Fprintln(w.out, w.render(mutedStyle, line))
	return err
}
