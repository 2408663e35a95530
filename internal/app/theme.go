package app

import (
	"charm.land/lipgloss/v2"

	"notes/internal/session"
)

// palette holds every style the view uses for one theme.
type palette struct {
	dark bool

	header       lipgloss.Style
	themeHint    lipgloss.Style
	help         lipgloss.Style
	status       lipgloss.Style
	statusError  lipgloss.Style
	divider      lipgloss.Style
	sidebarTitle lipgloss.Style
	newNoteHint  lipgloss.Style
	itemTitle    lipgloss.Style
	itemSnippet  lipgloss.Style
	selected     lipgloss.Style
	empty        lipgloss.Style
	noteTitle    lipgloss.Style
	muted        lipgloss.Style
	errorText    lipgloss.Style
	label        lipgloss.Style
	button       lipgloss.Style
	welcome      lipgloss.Style
	footer       lipgloss.Style

	dialogBorder lipgloss.Style
	dialogHeader lipgloss.Style
	dialogBody   lipgloss.Style
	dialogActive lipgloss.Style
}

func newPalette(theme session.Theme) palette {
	if theme.IsDark() {
		return darkPalette()
	}
	return lightPalette()
}

func lightPalette() palette {
	return palette{
		header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		themeHint:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		help:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		status:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		statusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		divider:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		sidebarTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		newNoteHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		itemTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		itemSnippet:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("153")),
		empty:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		noteTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
		muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		errorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		label:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
		button:       lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")).Bold(true).Padding(0, 1),
		welcome:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		dialogBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("166")),
		dialogHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("254")).Bold(true),
		dialogBody:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("255")),
		dialogActive: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("153")),
	}
}

func darkPalette() palette {
	return palette{
		dark:         true,
		header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		themeHint:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		help:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		status:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		statusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		divider:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		sidebarTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		newNoteHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		itemTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		itemSnippet:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236")),
		empty:        lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		noteTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		errorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		label:        lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true),
		button:       lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		welcome:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		dialogBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")),
		dialogHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("251")).Background(lipgloss.Color("235")).Bold(true),
		dialogBody:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235")),
		dialogActive: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236")),
	}
}
