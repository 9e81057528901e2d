package config

import (
	"fmt"

	"github.com/grovetools/masonry/errors"
)

// Validate checks what the schema cannot express. Card types are not
// checked; unknown types are skipped at layout time.
func (c *Config) Validate() error {
	if err := validateSettings(&c.Settings); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid settings configuration")
	}

	seen := make(map[string]int)
	for i, view := range c.Views {
		if view.Path == "" {
			continue
		}
		if prev, ok := seen[view.Path]; ok {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("views %d and %d share the path '%s'", prev+1, i+1, view.Path)).
				WithDetail("path", view.Path)
		}
		seen[view.Path] = i
	}

	return nil
}

func validateSettings(s *Settings) error {
	if s.Columns < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "settings.columns cannot be negative").
			WithDetail("columns", s.Columns)
	}
	if s.ColumnWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "settings.column_width must be positive").
			WithDetail("column_width", s.ColumnWidth)
	}
	if s.MaxColumns < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "settings.max_columns must be positive").
			WithDetail("max_columns", s.MaxColumns)
	}
	return nil
}
