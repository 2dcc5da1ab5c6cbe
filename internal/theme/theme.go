package theme

import "github.com/charmbracelet/lipgloss"

// Theme groups the lipgloss styles used by the task screen.
type Theme struct {
	Name      string
	Title     lipgloss.Style
	Clock     lipgloss.Style
	Filter    lipgloss.Style
	FilterOn  lipgloss.Style
	Row       lipgloss.Style
	Cursor    lipgloss.Style
	Done      lipgloss.Style
	Meta      lipgloss.Style
	Empty     lipgloss.Style
	Summary   lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	Prompt    lipgloss.Style
	Separator lipgloss.Style
}

func Light() Theme {
	return build("light", palette{
		fg:     lipgloss.Color("235"),
		muted:  lipgloss.Color("244"),
		accent: lipgloss.Color("62"),
		done:   lipgloss.Color("248"),
		bg:     lipgloss.Color("255"),
	})
}

func Dark() Theme {
	return build("dark", palette{
		fg:     lipgloss.Color("252"),
		muted:  lipgloss.Color("241"),
		accent: lipgloss.Color("212"),
		done:   lipgloss.Color("239"),
		bg:     lipgloss.Color("236"),
	})
}

// Toggle returns the other theme.
func Toggle(t Theme) Theme {
	if t.Name == "dark" {
		return Light()
	}
	return Dark()
}

type palette struct {
	fg, muted, accent, done, bg lipgloss.Color
}

func build(name string, p palette) Theme {
	base := lipgloss.NewStyle().Foreground(p.fg)
	return Theme{
		Name:      name,
		Title:     base.Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(p.accent),
		Filter:    lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		FilterOn:  lipgloss.NewStyle().Foreground(p.bg).Background(p.accent).Bold(true).Padding(0, 1),
		Row:       base,
		Cursor:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(p.done).Strikethrough(true),
		Meta:      lipgloss.NewStyle().Foreground(p.muted),
		Empty:     lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		Summary:   base,
		Status:    lipgloss.NewStyle().Foreground(p.muted),
		Help:      lipgloss.NewStyle().Foreground(p.muted),
		Prompt:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Separator: lipgloss.NewStyle().Foreground(p.muted),
	}
}
