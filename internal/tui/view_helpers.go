package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const uiDivider = "──────────────────────────────────────────────────────"

// NoSelection disables row highlighting in [ContactTable].
const NoSelection = -1

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("q: quit"))

	return appStyle.Render(b.String())
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// fitText shortens v to at most max runes.
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// ContactTable renders contacts as a bordered table. The row at selected is
// highlighted; pass [NoSelection] for plain output.
func ContactTable(contacts []models.Contact, selected int) string {
	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			fitText(c.LastName+", "+c.FirstName, 32),
			fitText(c.CategoryName, 20),
			valueOrDash(c.Email),
			valueOrDash(c.Phone),
			valueOrDash(c.City),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Category", "Email", "Phone", "City").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == selected {
				return selectedStyle.Inherit(cellStyle)
			}
			return cellStyle
		})

	return t.String()
}

// CategoryTable renders categories as a bordered two-column table.
func CategoryTable(categories []models.Category) string {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name").
		Rows(rows...).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		String()
}

func contactDetail(c models.Contact) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(lipgloss.NewStyle().Width(12).Render(label))
		b.WriteString("│ ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	line("First name", c.FirstName)
	line("Last name", c.LastName)
	line("Category", c.CategoryName)
	line("Address", valueOrDash(c.Address))
	line("City", valueOrDash(c.City))
	line("Province", valueOrDash(c.Province))
	line("Postal code", valueOrDash(c.PostalCode))
	line("Phone", valueOrDash(c.Phone))
	line("Email", valueOrDash(c.Email))
	line("Created", c.CreatedAt.Local().Format("2006-01-02 15:04"))
	line("Owner", c.OwnerUserName)

	return strings.TrimRight(b.String(), "\n")
}
