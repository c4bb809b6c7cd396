// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// exportPageSize is a request hint; the loop follows TotalPages from the
// server, which may cap the page size lower.
const exportPageSize = 100

// importReport summarizes an import run.
type importReport struct {
	contactsCreated   int
	categoriesCreated int
	skipped           int
}

func (a *App) fileArg() (string, error) {
	if len(a.args) == 0 || strings.TrimSpace(a.args[0]) == "" {
		return "", fmt.Errorf("%w: file path", ErrMissingArgument)
	}
	return a.args[0], nil
}

func (a *App) export(ctx context.Context) error {
	path, err := a.fileArg()
	if err != nil {
		return err
	}

	data, err := a.collectExport(ctx)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err = os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "exported %d contacts and %d categories to %s\n",
		len(data.Contacts), len(data.Categories), path)
	return err
}

func (a *App) collectExport(ctx context.Context) (models.ContactExport, error) {
	categories, err := a.adapter.ListCategories(ctx)
	if err != nil {
		return models.ContactExport{}, fmt.Errorf("list categories: %w", err)
	}

	out := models.ContactExport{
		Version:    models.ExportVersion,
		Categories: categories,
		Contacts:   []models.Contact{},
	}

	for page := 1; ; page++ {
		result, err := a.adapter.ListContacts(ctx, models.ListQuery{
			Sort:     models.SortCreatedAsc,
			Page:     page,
			PageSize: exportPageSize,
		})
		if err != nil {
			return models.ContactExport{}, fmt.Errorf("list contacts page %d: %w", page, err)
		}

		out.Contacts = append(out.Contacts, result.Items...)
		if len(result.Items) == 0 || page >= result.TotalPages {
			break
		}
	}

	return out, nil
}

func (a *App) importFile(ctx context.Context) error {
	path, err := a.fileArg()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read export file: %w", err)
	}

	var data models.ContactExport
	if err = json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExportFile, err)
	}
	if data.Version != models.ExportVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidExportFile, data.Version)
	}

	report, err := a.importContacts(ctx, data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "imported %d contacts, created %d categories, skipped %d\n",
		report.contactsCreated, report.categoriesCreated, report.skipped)
	return err
}

// importContacts recreates data under the current account. Categories are
// matched by name; missing ones are created. Contacts the server rejects as
// invalid are skipped, any other error aborts the run.
func (a *App) importContacts(ctx context.Context, data models.ContactExport) (importReport, error) {
	var report importReport
	log := a.logger.With().Str("func", "App.importContacts").Logger()

	existing, err := a.adapter.ListCategories(ctx)
	if err != nil {
		return report, fmt.Errorf("list categories: %w", err)
	}

	byName := make(map[string]int64, len(existing))
	for _, c := range existing {
		byName[c.Name] = c.ID
	}

	resolve := func(name string) (int64, error) {
		if id, ok := byName[name]; ok {
			return id, nil
		}
		created, err := a.adapter.CreateCategory(ctx, models.CategoryInput{Name: name})
		if err != nil {
			return 0, fmt.Errorf("create category %q: %w", name, err)
		}
		byName[created.Name] = created.ID
		byName[name] = created.ID
		report.categoriesCreated++
		return created.ID, nil
	}

	for _, c := range data.Categories {
		if _, err = resolve(c.Name); err != nil {
			return report, err
		}
	}

	names := data.CategoryNames()
	for _, contact := range data.Contacts {
		name, ok := names[contact.CategoryID]
		if !ok {
			name = contact.CategoryName
		}
		if strings.TrimSpace(name) == "" {
			log.Warn().Int64("contact_id", contact.ID).Msg("contact has no category, skipped")
			report.skipped++
			continue
		}

		categoryID, err := resolve(name)
		if err != nil {
			return report, err
		}

		fields := contact.Fields()
		fields.CategoryID = categoryID

		if _, err = a.adapter.CreateContact(ctx, fields); err != nil {
			if errors.Is(err, adapter.ErrBadRequest) {
				log.Warn().Err(err).Int64("contact_id", contact.ID).Msg("contact rejected, skipped")
				report.skipped++
				continue
			}
			return report, fmt.Errorf("create contact %d: %w", contact.ID, err)
		}
		report.contactsCreated++
	}

	return report, nil
}
