package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/masonry/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}

	masonryErr := asMasonryError(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(out, "❌ No dashboard file found. Create masonry.yml or pass --config.\n")

	case errors.ErrCodeConfigValidation, errors.ErrCodeConfigInvalid:
		fmt.Fprintf(out, "❌ Dashboard file is invalid: %v\n", err)
		if masonryErr != nil && masonryErr.Details["path"] != nil {
			fmt.Fprintf(out, "Check %v. 'masonry schema' prints the expected format.\n", masonryErr.Details["path"])
		}

	case errors.ErrCodeStateInvalid:
		fmt.Fprintf(out, "❌ Could not read the state file: %v\n", err)

	case errors.ErrCodeFeedFailed:
		if masonryErr != nil {
			fmt.Fprintf(out, "❌ State feed '%v' failed: %v\n", masonryErr.Details["source"], err)
		} else {
			fmt.Fprintf(out, "❌ State feed failed: %v\n", err)
		}

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(out, "❌ %v\n", err)

	default:
		fmt.Fprintf(out, "❌ Error: %v\n", err)
	}

	if h.Verbose && masonryErr != nil {
		fmt.Fprintf(out, "\nError details:\n%s\n", masonryErr.ToJSON())
	}
	return err
}

func asMasonryError(err error) *errors.MasonryError {
	for err != nil {
		if mErr, ok := err.(*errors.MasonryError); ok {
			return mErr
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}
