// Package http implements the REST transport of the contact keeper.
//
// It wires the chi router, the request handlers for users, categories,
// contacts and the home summary, and the middleware that resolves the
// caller identity from a bearer token. Handlers never decide ownership:
// they pass the resolved [models.Identity] to the service layer and map
// the returned errors to HTTP statuses in one place.
package http
