package styles

import "github.com/charmbracelet/glamour/v2"

// GetMarkdownRenderer returns a glamour renderer wrapped to the given
// width. Help pages go through this.
func GetMarkdownRenderer(width int) *glamour.TermRenderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	return r
}

// RenderMarkdown renders markdown for the output area, falling back to
// the raw text if rendering fails.
func RenderMarkdown(text string, width int) string {
	r := GetMarkdownRenderer(width)
	if r == nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
