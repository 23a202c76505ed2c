package intlai

import (
	"errors"
	"fmt"
)

var errNoGenerateFunc = errors.New("provider has no generation function")

// NoProviderError indicates that provider selection found zero eligible
// providers for a language/region pair. It is terminal for the request.
type NoProviderError struct {
	Language LanguageCode
	Region   RegionCode
}

func (e *NoProviderError) Error() string {
	return fmt.Sprintf("no provider available for language %q in region %q", e.Language, e.Region)
}

// ProviderCallError indicates that the chosen provider's generation call
// failed. It carries the provider's raw error and is terminal for the
// request; there is no automatic retry or fallback to another provider.
type ProviderCallError struct {
	Provider ProviderID
	Cause    error
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("provider %s call failed: %v", e.Provider, e.Cause)
}

func (e *ProviderCallError) Unwrap() error {
	return e.Cause
}

// RegistryError indicates an invalid provider registration.
type RegistryError struct {
	Message string
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry error: %s", e.Message)
}
