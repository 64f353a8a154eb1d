package viz

import "github.com/charmbracelet/lipgloss"

// Palette holds the styles of one theme bound to one lipgloss renderer.
// The renderer detects the color profile of its output, so writers that
// are not terminals get plain text.
type Palette struct {
	Theme Theme

	Bar    lipgloss.Style
	Marker lipgloss.Style
	Text   lipgloss.Style
	Stats  lipgloss.Style
	Title  lipgloss.Style
	Done   lipgloss.Style
	Failed lipgloss.Style
	Help   lipgloss.Style
}

func newPalette(lr *lipgloss.Renderer, theme Theme) *Palette {
	return &Palette{
		Theme:  theme,
		Bar:    lr.NewStyle().Foreground(theme.Bar),
		Marker: lr.NewStyle().Foreground(theme.Marker).Bold(true),
		Text:   lr.NewStyle().Foreground(theme.Text),
		Stats:  lr.NewStyle().Foreground(theme.Muted),
		Title:  lr.NewStyle().Foreground(theme.Bar).Bold(true),
		Done:   lr.NewStyle().Foreground(theme.Success).Bold(true),
		Failed: lr.NewStyle().Foreground(theme.Error).Bold(true),
		Help:   lr.NewStyle().Foreground(theme.Muted).Italic(true),
	}
}
