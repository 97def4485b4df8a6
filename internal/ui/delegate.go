package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cakes/internal/cakes"
	"github.com/five82/cakes/internal/thumbnail"
)

// Thumbnail slot size in terminal cells. Each cell holds two pixel rows,
// so 8×4 cells show an 8×8 pixel image.
const (
	thumbCols = 8
	thumbRows = 4
	rowGap    = 2
	cursorW   = 2
)

// cakeItem adapts a record to list.Item.
type cakeItem struct {
	cakes.Record
}

func (i cakeItem) FilterValue() string { return i.Title }

// thumbSlots maps image URLs to rendered thumbnails. A present but empty
// entry is a failed load and stays blank.
type thumbSlots map[string]string

// rowDelegate draws one catalogue row: thumbnail, title, description.
type rowDelegate struct {
	styles Styles
	thumbs thumbSlots
}

func (d rowDelegate) Height() int { return thumbRows }

func (d rowDelegate) Spacing() int { return 1 }

func (d rowDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(cakeItem)
	if !ok {
		return
	}

	textWidth := m.Width() - cursorW - thumbCols - rowGap
	if textWidth < 10 {
		textWidth = 10
	}

	titleStyle, descStyle := d.styles.Title, d.styles.Description
	cursor := strings.Repeat(" ", cursorW)
	if index == m.Index() {
		titleStyle, descStyle = d.styles.SelectedTitle, d.styles.SelectedDesc
		cursor = d.styles.Cursor.Render("▌ ")
	}

	title := titleStyle.Render(truncate(it.Title, textWidth))
	desc := descStyle.Width(textWidth).MaxHeight(thumbRows - 1).Render(strings.TrimSpace(it.Description))
	text := lipgloss.JoinVertical(lipgloss.Left, title, desc)

	thumb := d.thumbs[it.ImageURL]
	if thumb == "" {
		thumb = thumbnail.Blank(thumbCols, thumbRows)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cursor, thumb, strings.Repeat(" ", rowGap), text)
	fmt.Fprint(w, lipgloss.NewStyle().MaxWidth(m.Width()).MaxHeight(thumbRows).Render(row))
}

func toItems(records []cakes.Record) []list.Item {
	items := make([]list.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, cakeItem{Record: rec})
	}
	return items
}
