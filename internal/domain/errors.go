package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// IndexBuildErr is returned when the catalog index cannot be built. It is fatal at startup.
type IndexBuildErr struct {
	domainErr
	ItemID string
}

// NewIndexBuildErr creates a new IndexBuildErr for the given item.
func NewIndexBuildErr(itemID, reason string) *IndexBuildErr {
	msg := "catalog index build failed: " + reason
	if itemID != "" {
		msg = fmt.Sprintf("catalog index build failed for item %q: %s", itemID, reason)
	}
	return &IndexBuildErr{
		domainErr: domainErr{message: msg},
		ItemID:    itemID,
	}
}

// CacheCorruptionErr is returned when a stored cache entry cannot be decoded.
// Callers treat it as a cache miss.
type CacheCorruptionErr struct {
	domainErr
	Key string
}

// NewCacheCorruptionErr creates a new CacheCorruptionErr for the given key.
func NewCacheCorruptionErr(key string, cause error) *CacheCorruptionErr {
	return &CacheCorruptionErr{
		domainErr: domainErr{message: fmt.Sprintf("cache entry %s is corrupted: %v", key, cause)},
		Key:       key,
	}
}

// GatewayErrKind classifies generative service failures.
type GatewayErrKind string

const (
	GatewayErrKind_Timeout       GatewayErrKind = "timeout"
	GatewayErrKind_QuotaExceeded GatewayErrKind = "quota_exceeded"
	GatewayErrKind_ServiceError  GatewayErrKind = "service_error"
)

// GatewayErr is a failure of the generative service.
type GatewayErr struct {
	Kind  GatewayErrKind
	cause error
}

// NewGatewayErr creates a new GatewayErr of the given kind.
func NewGatewayErr(kind GatewayErrKind, cause error) *GatewayErr {
	return &GatewayErr{Kind: kind, cause: cause}
}

// Error returns the error message.
func (e *GatewayErr) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("generation %s", e.Kind)
	}
	return fmt.Sprintf("generation %s: %v", e.Kind, e.cause)
}

// Unwrap returns the underlying cause.
func (e *GatewayErr) Unwrap() error {
	return e.cause
}
