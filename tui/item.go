package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/vizor-cli/vizor/catalog"
	"github.com/vizor-cli/vizor/history"
	"github.com/vizor-cli/vizor/key"
	"github.com/vizor-cli/vizor/style"
)

// listItem implements the list.Item interface, wrapping catalog entries for terminal display.
type listItem struct {
	internal interface{}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case catalog.Video:
		title = e.Title
	case *history.SavedVideo:
		title = e.Title
	case string:
		title = e
	default:
		title = t.FilterValue()
	}
	return
}

// Description retrieves the secondary metadata for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case catalog.Video:
		if viper.GetBool(key.CatalogShowURLs) {
			description = style.Faint(e.URL())
		} else {
			description = style.Faint(e.ID)
		}

		if record := watchedRecord(e.ID); record != nil && record.WatchedPercentage > 0 {
			var progress string
			if record.WatchedPercentage >= 90 {
				progress = lipgloss.NewStyle().Foreground(style.Green).Render("Watched")
			} else {
				progress = lipgloss.NewStyle().Foreground(style.Yellow).Render(fmt.Sprintf("%.0f%%", record.WatchedPercentage))
			}
			description += " • " + progress
		}
	case *history.SavedVideo:
		description = e.String()
	}
	return
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case catalog.Video:
		return e.Title
	case *history.SavedVideo:
		return e.Title
	case string:
		return e
	default:
		return ""
	}
}

// watchedRecord looks a video up in the persisted history, swallowing
// storage errors for display purposes.
func watchedRecord(id string) *history.SavedVideo {
	saved, err := history.Get()
	if err != nil {
		return nil
	}
	return saved[id]
}
