package orgdocs

import "context"

// PreviewLength is the maximum length of a preview's content excerpt.
const PreviewLength = 500

// UntitledDocument is the title used when a page does not declare one.
const UntitledDocument = "Untitled Document"

// Preview summarizes a URL before it is added as a user doc.
type Preview struct {
	URL            string `json:"url"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	ContentPreview string `json:"contentPreview"`
}

// Previewer fetches a URL and summarizes its content.
type Previewer interface {
	Preview(ctx context.Context, url string) (*Preview, error)
}
