package client

import "errors"

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrMissingArgument    = errors.New("missing command argument")
	ErrMissingCredentials = errors.New("login and password are required")
	ErrInvalidExportFile  = errors.New("invalid export file")

	errNoAdapter = errors.New("server adapter is not set")
	errNoConfig  = errors.New("client config is not set")
	errNoBrowser = errors.New("interactive browser is not available")
)
