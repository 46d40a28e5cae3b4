package httputil

import (
	"log/slog"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	apperrors "github.com/mkowalczyk/flashcards/internal/errors"
	"github.com/mkowalczyk/flashcards/internal/i18n"
)

// APIError is the stable error response body. The code field is machine
// readable; the message is localized for display.
type APIError struct {
	Timestamp time.Time    `json:"timestamp"`
	Status    int          `json:"status"`
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Path      string       `json:"path"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponder shapes error responses at the HTTP boundary. It resolves the
// status through the StatusResolver, the message through the Translator using
// the request's negotiated locale, and owns all error logging: faults are
// logged at error level, malformed input at debug level, and expected domain
// errors not at all.
type ErrorResponder struct {
	resolver   *StatusResolver
	translator *i18n.Translator
	logger     *slog.Logger
}

// NewErrorResponder creates an ErrorResponder with its collaborators.
func NewErrorResponder(
	resolver *StatusResolver,
	translator *i18n.Translator,
	logger *slog.Logger,
) *ErrorResponder {
	return &ErrorResponder{
		resolver:   resolver,
		translator: translator,
		logger:     logger,
	}
}

// Error maps any error propagated out of a use case to a response. Domain
// errors keep their kind as the code; everything else is an unclassified
// fault answered with a generic message, full detail logged server-side only.
func (r *ErrorResponder) Error(c *gin.Context, err error) {
	if err == nil {
		return
	}
	locale := c.GetHeader("Accept-Language")

	var domainErr *apperrors.DomainError
	if apperrors.As(err, &domainErr) {
		status := r.resolver.StatusFor(domainErr.Kind)
		c.JSON(status, r.newAPIError(c, status, domainErr.Code(), domainErr.MessageKey, locale, nil))
		return
	}

	var fieldErrs validation.Errors
	if apperrors.As(err, &fieldErrs) {
		r.ValidationError(c, fieldErrs)
		return
	}

	if apperrors.Is(err, apperrors.ErrInvalidInput) {
		status := r.resolver.StatusFor(apperrors.KindValidationFailed)
		if r.logger != nil {
			r.logger.Debug("invalid input", slog.Any("error", err), slog.String("path", c.Request.URL.Path))
		}
		c.JSON(status, r.newAPIError(c, status, string(apperrors.KindValidationFailed), i18n.KeyValidationFailed, locale, nil))
		return
	}

	status := r.resolver.StatusFor(apperrors.KindUnhandled)
	if r.logger != nil {
		r.logger.Error("unhandled error",
			slog.Any("error", err),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)
	}
	c.JSON(status, r.newAPIError(c, status, string(apperrors.KindUnhandled), i18n.KeyInternalError, locale, nil))
}

// ValidationError answers a structural validation failure with per-field
// detail when the error carries it.
func (r *ErrorResponder) ValidationError(c *gin.Context, err error) {
	locale := c.GetHeader("Accept-Language")
	status := r.resolver.StatusFor(apperrors.KindValidationFailed)

	if r.logger != nil {
		r.logger.Debug("validation failed", slog.Any("error", err), slog.String("path", c.Request.URL.Path))
	}

	c.JSON(status, r.newAPIError(
		c, status, string(apperrors.KindValidationFailed), i18n.KeyValidationFailed, locale, fieldErrors(err),
	))
}

// BadRequest answers a request whose body could not be parsed as JSON.
func (r *ErrorResponder) BadRequest(c *gin.Context, err error) {
	locale := c.GetHeader("Accept-Language")
	status := r.resolver.StatusFor(apperrors.KindMalformedJSON)

	if r.logger != nil {
		r.logger.Debug("malformed request body", slog.Any("error", err), slog.String("path", c.Request.URL.Path))
	}

	c.JSON(status, r.newAPIError(c, status, string(apperrors.KindMalformedJSON), i18n.KeyMalformedJSON, locale, nil))
}

// newAPIError assembles the response body, translating the message key with
// the request's locale.
func (r *ErrorResponder) newAPIError(
	c *gin.Context,
	status int,
	code string,
	messageKey string,
	locale string,
	fields []FieldError,
) APIError {
	return APIError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Code:      code,
		Message:   r.translator.Translate(messageKey, locale),
		Path:      c.Request.URL.Path,
		Errors:    fields,
	}
}

// fieldErrors extracts per-field detail from a jellydator validation error.
// Fields are sorted by name so the response is deterministic.
func fieldErrors(err error) []FieldError {
	var errs validation.Errors
	if !apperrors.As(err, &errs) {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	result := make([]FieldError, 0, len(fields))
	for _, field := range fields {
		result = append(result, FieldError{Field: field, Message: errs[field].Error()})
	}
	return result
}
