// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the contact keeper.
//
// [App] logs in with the configured credentials and runs a single command
// against the server API through an [adapter.ServerAdapter]: listing
// categories and contacts, the home summary, deleting a contact, exporting
// all contacts to a JSON file and importing them back into another account.
// The browse command hands over to the interactive TUI.
package client
