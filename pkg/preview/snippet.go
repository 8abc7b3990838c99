package preview

import (
	"html"
	"time"

	"github.com/CTAG07/Sitewright/pkg/wizard"
	"github.com/dustin/go-humanize"
)

// Snippet returns the static HTML skeleton shown in the code pane. It embeds
// only the brand and tagline; the page body is a placeholder.
func Snippet(doc Document) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>` + html.EscapeString(doc.Brand) + `</title>
    <meta name="description" content="` + html.EscapeString(doc.Tagline) + `">
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body>
    <!-- Your generated website content -->
    <div class="website-container">
        <!-- Header, sections, and footer would be here -->
    </div>
</body>
</html>`
}

// Acknowledgement messages for the preview toolbar actions.
const (
	MsgExported      = "Website exported! Check your downloads."
	MsgOpeningInTab  = "Opening website in new tab..."
	justNowThreshold = time.Minute
)

// Export acknowledges an export request. Nothing is written.
func Export(n wizard.Notifier) {
	n.Success(MsgExported)
}

// OpenPreview acknowledges an open-in-new-tab request. Nothing is opened.
func OpenPreview(n wizard.Notifier) {
	n.Success(MsgOpeningInTab)
}

// Badges returns the labels shown above the preview. The first describes how
// long ago the document was generated relative to now.
func Badges(doc Document, now time.Time) []string {
	generated := "Generated just now"
	if at := doc.Source.GeneratedAt; !at.IsZero() && now.Sub(at) >= justNowThreshold {
		generated = "Generated " + humanize.RelTime(at, now, "ago", "from now")
	}
	return []string{generated, "Responsive Design", "SEO Optimized", "Mobile Ready"}
}
