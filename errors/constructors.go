package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *MasonryError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *MasonryError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// UnresolvedType creates an error for a card type that maps to no renderer
func UnresolvedType(cardType string) *MasonryError {
	return New(ErrCodeUnresolvedType, fmt.Sprintf("unknown card type '%s'", cardType)).
		WithDetail("type", cardType)
}

// UnknownTheme creates an error for a theme id missing from the theme table
func UnknownTheme(id string) *MasonryError {
	return New(ErrCodeUnknownTheme, fmt.Sprintf("theme '%s' not found", id)).
		WithDetail("theme", id)
}

// StateInvalid creates an error for an unreadable application state document
func StateInvalid(path string, err error) *MasonryError {
	return Wrap(err, ErrCodeStateInvalid, "failed to load application state").
		WithDetail("path", path)
}

// FeedFailed creates a state feed failure error
func FeedFailed(source string, err error) *MasonryError {
	return Wrap(err, ErrCodeFeedFailed, fmt.Sprintf("state feed failed: %s", source)).
		WithDetail("source", source)
}
