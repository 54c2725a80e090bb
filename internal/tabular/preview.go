package tabular

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

const maxPreviewCell = 32

// Preview prints a titled, column-aligned view of the first n rows of t.
func Preview(out io.Writer, title string, t *model.Table, n int) {
	_, _ = fmt.Fprintf(out, "\n%s (%d rows x %d columns):\n", title, t.Len(), len(t.Columns()))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(clip(t.Columns()), "\t"))

	shown := min(n, t.Len())
	cells := make([]string, len(t.Columns()))
	for i := 0; i < shown; i++ {
		for j, v := range t.Row(i) {
			if v.IsNull() {
				cells[j] = "NaN"
			} else {
				cells[j] = v.Raw
			}
		}
		_, _ = fmt.Fprintln(w, strings.Join(clip(cells), "\t"))
	}
	_ = w.Flush()

	if t.Len() > shown {
		_, _ = fmt.Fprintf(out, "... %d more rows\n", t.Len()-shown)
	}
}

func clip(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		c = strings.NewReplacer("\n", " ", "\t", " ").Replace(c)
		if r := []rune(c); len(r) > maxPreviewCell {
			c = string(r[:maxPreviewCell-3]) + "..."
		}
		out[i] = c
	}
	return out
}
