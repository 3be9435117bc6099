package layout

import (
	"fmt"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
)

// Finalize returns a copy of doc with every page-number slot filled with
// "Page i of N". doc itself is not modified.
func Finalize(doc *entity.ReportDocument) *entity.ReportDocument {
	return FinalizeWith(doc, DefaultLabels().PageNumber)
}

// FinalizeWith is Finalize with a custom format taking page index and total.
func FinalizeWith(doc *entity.ReportDocument, format string) *entity.ReportDocument {
	total := len(doc.Pages)
	out := *doc
	out.Pages = make([]entity.Page, total)

	for i, page := range doc.Pages {
		ops := make([]entity.DrawOp, len(page.Ops))
		for j, op := range page.Ops {
			if tb, ok := op.(entity.TextBlock); ok && tb.Slot == entity.SlotPageNumber {
				tb.Text = fmt.Sprintf(format, i+1, total)
				op = tb
			}
			ops[j] = op
		}
		out.Pages[i] = entity.Page{Ops: ops}
	}

	out.Finished = true
	return &out
}
