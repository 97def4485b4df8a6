package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cakes/internal/cakes"
	"github.com/five82/cakes/internal/state"
)

const noConnectionMessage = "No network connection available"

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := lipgloss.Color(m.theme.Surface)
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	logo := styles.Logo.Render("cakes")
	status := m.renderStatus(styles)

	line := logo + sep + status
	return styles.Header.Width(max(m.width, 0)).MaxHeight(headerHeight).Render(line)
}

// renderStatus summarises the load phase in one short segment.
func (m Model) renderStatus(styles Styles) string {
	bg := lipgloss.Color(m.theme.Surface)
	snap := m.snapshot

	switch snap.Phase {
	case state.PhaseIdle, state.PhaseCheckingConnectivity, state.PhaseFetching, state.PhaseParsing:
		label := styles.MutedText.Background(bg).Render(" " + snap.Phase.String() + "…")
		return m.spinner.View() + label

	case state.PhaseDisplaying:
		count := styles.SuccessText.Background(bg).Render(pluralize(len(snap.Records), "cake", "cakes"))
		if snap.LastUpdated.IsZero() {
			return count
		}
		updated := styles.FaintText.Background(bg).Render(" · updated " + humanizeDuration(time.Since(snap.LastUpdated)))
		return count + updated

	case state.PhaseNoConnection:
		return styles.WarningText.Background(bg).Render("offline")

	case state.PhaseFailed:
		kind := failureLabel(snap.LastError)
		label := styles.DangerText.Background(bg).Render(kind)
		if snap.LastError == nil {
			return label
		}
		// Logo, separators and padding take the first columns.
		width := max(m.width-len(kind)-12, 10)
		detail := styles.MutedText.Background(bg).Render(" " + truncate(snap.LastError.Error(), width))
		return label + detail
	}
	return styles.MutedText.Background(bg).Render(snap.Phase.String())
}

func (m Model) renderContent() string {
	height := max(m.height-headerHeight, 0)
	if m.snapshot.Phase == state.PhaseNoConnection {
		msg := m.theme.Styles().WarningText.Render(noConnectionMessage)
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}
	return m.list.View()
}

func failureLabel(err error) string {
	switch cakes.Kind(err) {
	case "network":
		return "network error"
	case "empty":
		return "empty response"
	case "decode":
		return "decode error"
	}
	return "load failed"
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
