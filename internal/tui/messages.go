package tui

import (
	"github.com/MKhiriev/go-contact-keeper/models"
)

type pageLoadedMsg struct {
	page models.ContactPage
	err  error
}

type deleteDoneMsg struct {
	err error
}

type clearStatusMsg struct{}
