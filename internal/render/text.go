package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// FindingBullet prefixes every finding line.
const FindingBullet = "• "

// WriteText writes a plain-text rendition of p, laid out like the web page.
func WriteText(w io.Writer, p *Page) error {
	bw := bufio.NewWriter(w)
	switch {
	case p.Overview != nil:
		writeOverviewText(bw, p.Overview)
	case p.Question != nil:
		writeQuestionText(bw, p.Question)
	default:
		return fmt.Errorf("page %s has no content", p.ID)
	}
	return bw.Flush()
}

func writeOverviewText(w *bufio.Writer, ov *Overview) {
	fmt.Fprintf(w, "%s\n\n", ov.Subheader)
	fmt.Fprintf(w, "%s\n", ov.Description)
	fmt.Fprintf(w, "Total records: %d\n\n", ov.TotalRecords)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(ov.Columns, "\t"))
	for _, row := range ov.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func writeQuestionText(w *bufio.Writer, q *Question) {
	fmt.Fprintf(w, "%s\n\n", q.Subheader)
	fmt.Fprintf(w, "Question: %s\n\n", q.Question)

	fmt.Fprintln(w, "Plot")
	switch q.Plot.Status {
	case PlotShown:
		fmt.Fprintf(w, "  %s\n", q.Plot.Path)
	case PlotMissing:
		fmt.Fprintf(w, "  Warning: %s\n", q.Plot.Message)
	default:
		fmt.Fprintf(w, "  Info: %s\n", q.Plot.Message)
	}

	fmt.Fprintln(w, "\nResult")
	for _, f := range q.Findings {
		fmt.Fprintf(w, "%s%s\n", FindingBullet, f)
	}
}
