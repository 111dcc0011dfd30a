package tui

import (
	"fmt"
	"strings"

	"edmwatch/types"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("📰 Event Market Watch"))
	b.WriteString("\n")

	// Header line
	header := fmt.Sprintf("Showing %s | %d items", m.filterLabel(), len(m.Items))
	if m.LastUpdated != "" {
		header += " | updated " + m.LastUpdated
	}
	b.WriteString(InfoStyle.Render(header))
	b.WriteString("\n\n")

	// Current state
	if state := m.getStateText(); state != "" {
		b.WriteString(state)
		b.WriteString("\n\n")
	}

	if m.StatusLine != "" {
		b.WriteString(StatusStyle.Render(m.StatusLine))
		b.WriteString("\n\n")
	}

	// Item list
	if m.State == StateBrowsing || m.State == StateRefreshing {
		if len(m.Items) == 0 {
			b.WriteString(InfoStyle.Render("No items. Press 'r' to run the pipeline."))
			b.WriteString("\n")
		} else {
			end := m.Offset + visibleRows
			if end > len(m.Items) {
				end = len(m.Items)
			}
			for i := m.Offset; i < end; i++ {
				b.WriteString(m.renderRow(i))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")

		// Detail box for the selected item
		if item := m.selected(); item != nil {
			b.WriteString(BoxStyle.Render(formatDetail(item)))
			b.WriteString("\n")
		}
	}

	// Help text
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("↑/↓ navigate | 't' cycle tier filter | 'r' refresh | 'q' quit"))

	return b.String()
}

// renderRow formats a single feed item line
func (m Model) renderRow(i int) string {
	item := m.Items[i]

	line := fmt.Sprintf("[T%d] %s  %s", item.Tier, item.Date, item.Title)
	if item.State != "" {
		line += fmt.Sprintf(" (%s)", item.State)
	}

	if i == m.Cursor {
		return SelectedStyle.Render("▸ " + line)
	}

	switch item.Priority {
	case types.PriorityHigh:
		return HighPriorityStyle.Render("  " + line)
	case types.PriorityMedium:
		return MediumPriorityStyle.Render("  " + line)
	default:
		return "  " + line
	}
}

// formatDetail formats the selected item for the detail box
func formatDetail(item *types.Item) string {
	var b strings.Builder

	b.WriteString(HighlightStyle.Render(item.Title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Source:   %s\n", item.Source))
	b.WriteString(fmt.Sprintf("Category: %s | Tier %d | %s priority\n", item.Category, item.Tier, item.Priority))
	if item.State != "" {
		b.WriteString(fmt.Sprintf("State:    %s\n", item.State))
	}
	if item.NeedsPrimarySource {
		b.WriteString(ErrorStyle.Render("⚠ Secondary coverage: confirm against the primary source\n"))
	}
	b.WriteString(fmt.Sprintf("\n%s", InfoStyle.Render(item.URL)))

	return b.String()
}
