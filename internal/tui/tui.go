package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoContactSource = errors.New("contact source is not set")

// ContactSource is the part of the server adapter the browser needs.
type ContactSource interface {
	ListContacts(ctx context.Context, query models.ListQuery) (models.ContactPage, error)
	DeleteContact(ctx context.Context, contactID int64) error
}

type TUI struct {
	source ContactSource
	logger *logger.Logger
}

func New(source ContactSource, log *logger.Logger) (*TUI, error) {
	if source == nil {
		return nil, ErrNoContactSource
	}
	return &TUI{source: source, logger: log}, nil
}

// Browse runs the interactive contact browser until the user quits.
func (t *TUI) Browse(ctx context.Context, pageSize int) error {
	model := newBrowseModel(ctx, t.source, pageSize)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(browseModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.lastErr != nil {
		t.logger.Debug().Err(result.lastErr).Str("func", "TUI.Browse").Msg("browser closed after an error")
	}

	return nil
}
