package report

import (
	"fmt"
	"io"

	"github.com/lerenn/model-analyzer/pkg/review"
)

// PrintReview writes the review list for the operator.
func PrintReview(w io.Writer, list *review.List) {
	fmt.Fprintln(w, "INSPECT LIST:")
	fmt.Fprintln(w, "------------")

	if list == nil || list.Len() == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}

	for i, entry := range list.Entries() {
		switch entry.Reason {
		case review.ReasonLowReferences:
			fmt.Fprintf(w, "  %d. %s (%d file references)\n", i+1, entry.Name, entry.Count)
		case review.ReasonError:
			fmt.Fprintf(w, "  %d. %s (error: %v)\n", i+1, entry.Name, entry.Err)
		default:
			fmt.Fprintf(w, "  %d. %s\n", i+1, entry.Name)
		}
	}
}
