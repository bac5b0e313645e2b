package domain

import "fmt"

// ErrorKind classifies a provider failure
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnauthorized
	ErrNotFound
	ErrRateLimited
	ErrNetwork
)

// String returns the kind's name
func (k ErrorKind) String() string {
	switch k {
	case ErrUnauthorized:
		return "unauthorized"
	case ErrNotFound:
		return "not found"
	case ErrRateLimited:
		return "rate limited"
	case ErrNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// ProviderError is a classified failure from the catalog provider.
// Kind is derived from the HTTP status (401, 404, 429) or set to
// Network for transport failures.
type ProviderError struct {
	Kind    ErrorKind
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog provider error: %s", e.Kind)
	}
	return fmt.Sprintf("catalog provider error (%s): %s", e.Kind, e.Message)
}

// UserMessage returns a short, display-ready description
func (e *ProviderError) UserMessage() string {
	switch e.Kind {
	case ErrUnauthorized:
		return "API key rejected by the catalog provider"
	case ErrNotFound:
		return "Not found"
	case ErrRateLimited:
		return "Too many requests, slow down"
	case ErrNetwork:
		return "Could not reach the catalog provider"
	default:
		return "Catalog provider error"
	}
}
