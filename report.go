package diffbench

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Entry pairs a unit name with its best trial duration.
type Entry struct {
	Name string
	Best time.Duration
}

// Report is the outcome of one run: the workload shape plus one entry per
// unit, in unit registration order.
type Report struct {
	Elements int
	Deleted  int
	Inserted int
	Shuffled int
	Entries  []Entry
}

const (
	nameHeader = "Name"
	timeHeader = "Seconds"
)

// Render writes a title line describing the workload shape followed by a
// two-column Markdown table: left-aligned unit names sized to the longest
// name, right-aligned durations to 4 decimal places in seconds. Identical
// reports render byte-identically.
func (r *Report) Render(w io.Writer) error {
	nameWidth := len(nameHeader)
	for _, e := range r.Entries {
		if len(e.Name) > nameWidth {
			nameWidth = len(e.Name)
		}
	}
	durations := make([]string, len(r.Entries))
	timeWidth := len(timeHeader)
	for i, e := range r.Entries {
		durations[i] = fmt.Sprintf("%.4f", e.Best.Seconds())
		if len(durations[i]) > timeWidth {
			timeWidth = len(durations[i])
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d elements (delete %d, insert %d, shuffle %d)\n\n",
		r.Elements, r.Deleted, r.Inserted, r.Shuffled)
	fmt.Fprintf(&b, "| %-*s | %*s |\n", nameWidth, nameHeader, timeWidth, timeHeader)
	fmt.Fprintf(&b, "|:%s|%s:|\n",
		strings.Repeat("-", nameWidth+1), strings.Repeat("-", timeWidth+1))
	for i, e := range r.Entries {
		fmt.Fprintf(&b, "| %-*s | %*s |\n", nameWidth, e.Name, timeWidth, durations[i])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) String() string {
	var b strings.Builder
	_ = r.Render(&b)
	return b.String()
}
