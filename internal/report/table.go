package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/truth-table/internal/logic"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

const resultColumn = "Result"

// WriteTable prints the expression, its postfix form, every row of the table
// as 0/1 cells and the derived function vector, PDNF and PCNF.
func WriteTable(text string, expr logic.Expression, t *truthtable.Table, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Expression:\t%s\n", text)
	fmt.Fprintf(tw, "Postfix:\t%s\n\n", expr.String())
	tw.Flush()

	header := append(append([]string{}, t.Header...), resultColumn)
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, r := range t.Rows {
		cells := make([]string, 0, len(r.Values)+1)
		for _, v := range r.Values {
			cells = append(cells, bit(v))
		}
		cells = append(cells, bit(r.Result))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	fmt.Fprintln(tw)
	tw.Flush()

	fmt.Fprintf(tw, "Vector:\t%s\n", t.VectorString())
	fmt.Fprintf(tw, "PDNF:\t%s\n", orDash(t.PDNF))
	fmt.Fprintf(tw, "PCNF:\t%s\n", orDash(t.PCNF))
	tw.Flush()
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
