package templates

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
)

// ReportTimeLayout is how the generation time appears in the default body.
const ReportTimeLayout = "2006-01-02 15:04:05"

// ReportEmail is the default HTML body sent with a generated deck.
func ReportEmail(businessName string, generated time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<html><body><h2>Report: "+
			templ.EscapeString(businessName)+
			"</h2><p>Please find the analysis report attached.</p><p><strong>Generated:</strong> "+
			templ.EscapeString(generated.Format(ReportTimeLayout))+
			"</p></body></html>")
		return err
	})
}
