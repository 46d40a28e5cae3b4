package errors

// Kind identifies a class of API-visible failures. The string value doubles as
// the stable machine-readable code clients branch on.
type Kind string

// Known failure kinds.
const (
	KindUserAlreadyExists Kind = "USER_ALREADY_EXISTS"
	KindEmailAlreadyTaken Kind = "EMAIL_ALREADY_TAKEN"
	KindWeakPassword      Kind = "WEAK_PASSWORD"
	KindValidationFailed  Kind = "VALIDATION_ERROR"
	KindMalformedJSON     Kind = "MALFORMED_JSON"
	KindUnhandled         Kind = "INTERNAL_ERROR"
)

// kindFallbacks names the fallback kind consulted when no status is declared
// for a kind. Resolution walks this chain until the default status table has
// an entry. Every chain terminates at KindUnhandled.
var kindFallbacks = map[Kind]Kind{
	KindUserAlreadyExists: KindValidationFailed,
	KindEmailAlreadyTaken: KindValidationFailed,
	KindWeakPassword:      KindValidationFailed,
	KindValidationFailed:  KindUnhandled,
	KindMalformedJSON:     KindUnhandled,
}

// kindStatuses holds statuses declared on the kind itself, consulted when a
// handler mapping names the kind without an explicit status.
var kindStatuses = map[Kind]int{}

// Fallback returns the kind's declared fallback kind, if any.
func (k Kind) Fallback() (Kind, bool) {
	fallback, ok := kindFallbacks[k]
	return fallback, ok
}

// DeclaredStatus returns the HTTP status declared on the kind itself, or 0.
func (k Kind) DeclaredStatus() int {
	return kindStatuses[k]
}

// DomainError is a typed failure representing a business-rule violation. It
// carries a stable kind (the wire code) and a locale-independent message key;
// the localized message and the HTTP status are resolved at the boundary.
type DomainError struct {
	Kind       Kind
	MessageKey string
}

// NewDomainError creates a DomainError for the given kind and message key.
func NewDomainError(kind Kind, messageKey string) *DomainError {
	return &DomainError{Kind: kind, MessageKey: messageKey}
}

// Error implements the error interface. The text is for logs only; clients
// receive the translated message key instead.
func (e *DomainError) Error() string {
	return string(e.Kind) + ": " + e.MessageKey
}

// Code returns the stable machine-readable code for the error.
func (e *DomainError) Code() string {
	return string(e.Kind)
}
