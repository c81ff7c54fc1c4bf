package variants

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/promptvary/internal/variantgen"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))
)

// Report prints a numbered block per record.
func Report(w io.Writer, records []variantgen.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No variants generated.")
		return
	}

	for i, rec := range records {
		fmt.Fprintf(w, "\n%s\n", headerStyle.Render(fmt.Sprintf("--- Variant %d ---", i+1)))
		printField(w, "Requested difficulty", string(rec.RequestedDifficulty))
		printField(w, "Transformations used", strings.Join(rec.TransformationsUsed, ", "))
		printField(w, "Variant prompt", rec.Variant)
		printField(w, "Reasoning", rec.Reasoning)
		printField(w, "Evaluation", formatEvaluation(rec.Evaluation))
		printField(w, "Timestamp", rec.Timestamp)
	}
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), value)
}

func formatEvaluation(e *float64) string {
	if e == nil {
		return "null"
	}
	return strconv.FormatFloat(*e, 'f', -1, 64)
}
