// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"net/http"

	apperrors "github.com/mkowalczyk/flashcards/internal/errors"
)

// HandlerMapping declares the error kinds a boundary handler covers and the
// status it responds with. A zero Status defers to the status declared on the
// kind itself, then to the default status table.
type HandlerMapping struct {
	Kinds       []apperrors.Kind
	Status      int
	Description string
}

// StatusDescription pairs an HTTP status code with a human description. Used
// to enumerate possible error responses for API documentation.
type StatusDescription struct {
	Status      int
	Description string
}

// defaultStatusEntry is one row of the static default status table.
type defaultStatusEntry struct {
	kind        apperrors.Kind
	status      int
	description string
}

// defaultStatusTable maps malformed-input-like kinds to 400 and the generic
// catch-all to 500. Merged in after all explicit handler mappings, without
// overwriting already-resolved kinds.
var defaultStatusTable = []defaultStatusEntry{
	{apperrors.KindValidationFailed, http.StatusBadRequest, "Bad Request"},
	{apperrors.KindMalformedJSON, http.StatusBadRequest, "Bad Request"},
	{apperrors.KindUnhandled, http.StatusInternalServerError, "Internal Server Error"},
}

// StatusResolver maps error kinds to HTTP status codes. It is built once at
// startup and immutable thereafter; reads are lock-free.
type StatusResolver struct {
	statuses map[apperrors.Kind]int
	known    []StatusDescription
}

// NewStatusResolver builds the resolver from the declared handler mappings.
// Resolution order per kind: explicit handler status, then the status declared
// on the kind, then a walk of the kind's fallback chain through the default
// table. The first status registered for a kind wins; later declarations are
// ignored. Finally the default table is merged in for kinds still unresolved.
func NewStatusResolver(handlers []HandlerMapping) *StatusResolver {
	r := &StatusResolver{statuses: make(map[apperrors.Kind]int)}

	for _, handler := range handlers {
		for _, kind := range handler.Kinds {
			status := handler.Status
			if status == 0 {
				status = kind.DeclaredStatus()
			}
			if status == 0 {
				status = lookupDefaultStatus(kind)
			}
			if status == 0 {
				continue
			}
			r.register(kind, status, handler.Description)
		}
	}

	for _, entry := range defaultStatusTable {
		r.register(entry.kind, entry.status, entry.description)
	}

	return r
}

// NewDefaultStatusResolver builds the resolver from the application's handler
// declarations: the three registration rule violations respond with 422, the
// remaining kinds come from the default table.
func NewDefaultStatusResolver() *StatusResolver {
	return NewStatusResolver([]HandlerMapping{
		{
			Kinds: []apperrors.Kind{
				apperrors.KindUserAlreadyExists,
				apperrors.KindEmailAlreadyTaken,
				apperrors.KindWeakPassword,
			},
			Status:      http.StatusUnprocessableEntity,
			Description: "Unprocessable Entity",
		},
	})
}

// register records a kind resolution and the status description, both
// first-registered-wins. The known-status list keeps insertion order and is
// deduplicated by status code.
func (r *StatusResolver) register(kind apperrors.Kind, status int, description string) {
	if _, resolved := r.statuses[kind]; !resolved {
		r.statuses[kind] = status
	}
	for _, existing := range r.known {
		if existing.Status == status {
			return
		}
	}
	if description == "" {
		description = http.StatusText(status)
	}
	r.known = append(r.known, StatusDescription{Status: status, Description: description})
}

// StatusFor returns the HTTP status for the given error kind. Calling it on a
// resolver that was never built is a programming error and panics.
func (r *StatusResolver) StatusFor(kind apperrors.Kind) int {
	if r == nil || r.statuses == nil {
		panic("httputil: StatusFor called before the status resolver was built")
	}
	for current := kind; ; {
		if status, ok := r.statuses[current]; ok {
			return status
		}
		fallback, ok := current.Fallback()
		if !ok {
			break
		}
		current = fallback
	}
	return r.statuses[apperrors.KindUnhandled]
}

// KnownStatuses returns all status codes the resolver can produce, in
// registration order with first-wins descriptions. The returned slice is a
// copy; the resolver itself stays immutable.
func (r *StatusResolver) KnownStatuses() []StatusDescription {
	if r == nil || r.statuses == nil {
		panic("httputil: KnownStatuses called before the status resolver was built")
	}
	known := make([]StatusDescription, len(r.known))
	copy(known, r.known)
	return known
}

// lookupDefaultStatus walks the kind's fallback chain through the default
// status table, returning the first status found or 0.
func lookupDefaultStatus(kind apperrors.Kind) int {
	for current := kind; ; {
		for _, entry := range defaultStatusTable {
			if entry.kind == current {
				return entry.status
			}
		}
		fallback, ok := current.Fallback()
		if !ok {
			return 0
		}
		current = fallback
	}
}
