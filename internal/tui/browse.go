// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 2 * time.Second

var sortCycle = []models.SortOrder{
	models.SortNameAsc,
	models.SortNameDesc,
	models.SortFirstNameAsc,
	models.SortFirstNameDesc,
	models.SortCreatedAsc,
	models.SortCreatedDesc,
}

type browseModel struct {
	ctx    context.Context
	source ContactSource

	query   models.ListQuery
	page    models.ContactPage
	idx     int
	loading bool
	spinner spinner.Model

	searching bool
	search    textinput.Model

	detail        bool
	confirmDelete bool

	status  string
	lastErr error

	copyFn func(string) error
}

func newBrowseModel(ctx context.Context, source ContactSource, pageSize int) browseModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "name, city, phone or email"
	search.CharLimit = 100
	search.Width = 40

	return browseModel{
		ctx:     ctx,
		source:  source,
		query:   models.ListQuery{Sort: models.DefaultSortOrder, Page: models.DefaultPage, PageSize: pageSize},
		loading: true,
		spinner: s,
		search:  search,
		copyFn:  clipboard.WriteAll,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPage(), m.spinner.Tick)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.page = msg.page
		m.query.Page = msg.page.Page
		if m.idx >= len(m.page.Items) {
			m.idx = max(len(m.page.Items)-1, 0)
		}
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.status = "Contact deleted"
		m.loading = true
		return m, tea.Batch(m.cmdLoadPage(), clearStatusAfter(statusTimeout))

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m browseModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}

	if m.confirmDelete {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmDelete = false
			m.detail = false
			if c, ok := m.current(); ok {
				return m, m.cmdDelete(c.ID)
			}
		case key.Matches(msg, keys.no):
			m.confirmDelete = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.detail {
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			m.detail = false
		case key.Matches(msg, keys.copy):
			return m.copyCurrent()
		case key.Matches(msg, keys.delete):
			m.confirmDelete = true
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.page.Items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.nextPage):
		if m.query.Page < m.page.TotalPages {
			m.query.Page++
			m.idx = 0
			return m.reload()
		}
	case key.Matches(msg, keys.prevPage):
		if m.query.Page > 1 {
			m.query.Page--
			m.idx = 0
			return m.reload()
		}
	case key.Matches(msg, keys.sort):
		m.query.Sort = nextSortOrder(m.query.Sort)
		m.query.Page = 1
		m.idx = 0
		return m.reload()
	case key.Matches(msg, keys.reload):
		return m.reload()
	case key.Matches(msg, keys.search):
		m.searching = true
		m.search.SetValue(m.query.Search)
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.detail = true
		}
	case key.Matches(msg, keys.copy):
		return m.copyCurrent()
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.confirmDelete = true
		}
	}

	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		m.query.Search = strings.TrimSpace(m.search.Value())
		m.query.Page = 1
		m.idx = 0
		return m.reload()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m browseModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.cmdLoadPage(), m.spinner.Tick)
}

func (m browseModel) copyCurrent() (tea.Model, tea.Cmd) {
	c, ok := m.current()
	if !ok {
		return m, nil
	}

	text, ok := copyValue(c)
	if !ok {
		m.lastErr = errNothingToCopy
		return m, nil
	}
	if err := m.copyFn(text); err != nil {
		m.lastErr = fmt.Errorf("copy to clipboard: %w", err)
		return m, nil
	}

	m.status = "Copied " + text
	return m, clearStatusAfter(statusTimeout)
}

func (m browseModel) current() (models.Contact, bool) {
	if len(m.page.Items) == 0 || m.idx < 0 || m.idx >= len(m.page.Items) {
		return models.Contact{}, false
	}
	return m.page.Items[m.idx], true
}

func (m browseModel) cmdLoadPage() tea.Cmd {
	ctx := m.ctx
	source := m.source
	query := m.query

	return func() tea.Msg {
		page, err := source.ListContacts(ctx, query)
		return pageLoadedMsg{page: page, err: err}
	}
}

func (m browseModel) cmdDelete(contactID int64) tea.Cmd {
	ctx := m.ctx
	source := m.source

	return func() tea.Msg {
		return deleteDoneMsg{err: source.DeleteContact(ctx, contactID)}
	}
}

func (m browseModel) View() string {
	if m.detail || m.confirmDelete {
		c, ok := m.current()
		if !ok {
			return renderPage("CONTACT", "Contact not found", "esc: back")
		}
		body := contactDetail(c)
		if m.confirmDelete {
			body += "\n\n" + confirmStyle.Render(fmt.Sprintf("Delete %s %s? (y/n)", c.FirstName, c.LastName))
		}
		if m.lastErr != nil {
			body += "\n\n" + errorStyle.Render("Error: "+humanizeError(m.lastErr))
		}
		if m.status != "" {
			body += "\n\n" + m.status
		}
		return renderPage("CONTACT", body, "esc: back │ c: copy │ ctrl+d: delete")
	}

	var b strings.Builder

	if m.searching {
		b.WriteString("Search: ")
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	} else if m.query.Search != "" {
		b.WriteString(fmt.Sprintf("Search: %q\n\n", m.query.Search))
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading contacts...\n")
	case len(m.page.Items) == 0:
		b.WriteString("No contacts\n")
	default:
		b.WriteString(ContactTable(m.page.Items, m.idx))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Page %d of %d │ %d contacts │ sort: %s\n",
			m.page.Page, max(m.page.TotalPages, 1), m.page.TotalCount, m.query.Sort))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + humanizeError(m.lastErr)))
		b.WriteString("\n")
	}

	return renderPage(
		"CONTACTS",
		strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ ←/→: page │ /: search │ s: sort │ enter: open │ c: copy │ ctrl+d: delete │ r: reload",
	)
}

func nextSortOrder(current models.SortOrder) models.SortOrder {
	for i, order := range sortCycle {
		if order == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return models.DefaultSortOrder
}

// copyValue prefers the email and falls back to the phone number.
func copyValue(c models.Contact) (string, bool) {
	if c.Email != nil && *c.Email != "" {
		return *c.Email, true
	}
	if c.Phone != nil && *c.Phone != "" {
		return *c.Phone, true
	}
	return "", false
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
