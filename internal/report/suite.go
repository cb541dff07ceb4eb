package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/truth-table/internal/suite"
)

func WriteSuite(r *suite.Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Suite)

	header := []string{"Case", "Expression", "Outcome", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join([]string{"---", "---", "---", "---"}, "\t"))

	for _, c := range r.Cases {
		outcome := c.Vector
		if c.Error != "" {
			outcome = c.Error
		}
		status := "PASS"
		if !c.Passed() {
			status = "FAIL"
		}
		fmt.Fprintln(tw, strings.Join([]string{c.ID, c.Expression, outcome, status}, "\t"))
	}
	fmt.Fprintln(tw)
	tw.Flush()

	for _, c := range r.Cases {
		for _, f := range c.Failures {
			fmt.Fprintf(w, "%s: %s\n", c.ID, f)
		}
	}

	fmt.Fprintf(w, "\nPassed: %d, Failed: %d\n", r.Passed, r.Failed)
}
