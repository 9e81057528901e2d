package config

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

const (
	defaultVersion     = "1.0"
	defaultColumnWidth = 40
	defaultMaxColumns  = 4
)

// Config is a parsed dashboard file: global settings plus an ordered list of views.
type Config struct {
	Version  string       `yaml:"version" json:"version" jsonschema:"description=Configuration version (e.g. '1.0')"`
	Title    string       `yaml:"title,omitempty" json:"title,omitempty" jsonschema:"description=Dashboard title shown above the view tabs"`
	Settings Settings     `yaml:"settings,omitempty" json:"settings,omitempty" jsonschema:"description=Column layout settings"`
	Views    []ViewConfig `yaml:"views,omitempty" json:"views,omitempty" jsonschema:"description=Views of the dashboard in tab order"`

	// Extensions holds every unrecognised top-level section (logging, tui, ...).
	Extensions map[string]interface{} `yaml:"-" json:"-" jsonschema:"-"`
}

// Settings controls how many columns a view is balanced across.
type Settings struct {
	Columns     int `yaml:"columns,omitempty" json:"columns,omitempty" jsonschema:"minimum=0,description=Fixed column count; 0 derives the count from the terminal width"`
	ColumnWidth int `yaml:"column_width,omitempty" json:"column_width,omitempty" jsonschema:"minimum=1,description=Terminal cells per column when deriving the column count"`
	MaxColumns  int `yaml:"max_columns,omitempty" json:"max_columns,omitempty" jsonschema:"minimum=1,description=Upper bound for the derived column count"`
}

// ColumnCount returns the number of columns to balance cards across for a
// terminal of the given width.
func (s Settings) ColumnCount(width int) int {
	if s.Columns > 0 {
		return s.Columns
	}
	colWidth := s.ColumnWidth
	if colWidth <= 0 {
		colWidth = defaultColumnWidth
	}
	maxCols := s.MaxColumns
	if maxCols <= 0 {
		maxCols = defaultMaxColumns
	}
	n := width / colWidth
	if n < 1 {
		n = 1
	}
	if n > maxCols {
		n = maxCols
	}
	return n
}

// ViewConfig is a single view: an ordered card list and an optional theme.
type ViewConfig struct {
	Title string       `yaml:"title,omitempty" json:"title,omitempty" jsonschema:"description=Tab title"`
	Path  string       `yaml:"path,omitempty" json:"path,omitempty" jsonschema:"description=Short name used to select the view from the command line"`
	Theme string       `yaml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Theme applied while this view is shown"`
	Cards []CardConfig `yaml:"cards,omitempty" json:"cards,omitempty" jsonschema:"description=Cards in display order"`
}

// HasTheme reports whether the view asks for a theme. An empty name counts
// as none.
func (v *ViewConfig) HasTheme() bool {
	return v != nil && v.Theme != ""
}

// Name returns the title, path or positional fallback for display.
func (v *ViewConfig) Name(index int) string {
	switch {
	case v.Title != "":
		return v.Title
	case v.Path != "":
		return v.Path
	default:
		return fmt.Sprintf("View %d", index+1)
	}
}

// CardConfig is one card entry. Type selects the renderer; every other key of
// the card mapping is kept verbatim in Options for the renderer to decode.
type CardConfig struct {
	Type    string                 `yaml:"type" json:"type"`
	Options map[string]interface{} `yaml:"options,omitempty" json:"options,omitempty"`
}

// Decode decodes the card options into target, a pointer to a struct with
// yaml tags. Scalars are weakly converted (a single string fills a []string).
func (c CardConfig) Decode(target interface{}, hooks ...mapstructure.DecodeHookFunc) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	}
	if len(hooks) > 0 {
		cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(c.Options); err != nil {
		return fmt.Errorf("failed to decode options for card '%s': %w", c.Type, err)
	}
	return nil
}

// Flatten returns the card in its file form: type plus options at one level.
func (c CardConfig) Flatten() map[string]interface{} {
	out := make(map[string]interface{}, len(c.Options)+1)
	for k, v := range c.Options {
		out[k] = v
	}
	out["type"] = c.Type
	return out
}

// MarshalYAML writes the card back in its flat file form.
func (c CardConfig) MarshalYAML() (interface{}, error) {
	return c.Flatten(), nil
}

// MarshalJSON writes the card in its flat file form.
func (c CardConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Flatten())
}

// JSONSchema describes a card: a required-by-convention type string plus
// arbitrary renderer options.
func (CardConfig) JSONSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()
	props.Set("type", &jsonschema.Schema{
		Type:        "string",
		Description: "Card type: a built-in name or custom:<renderer>",
	})
	return &jsonschema.Schema{
		Type:                 "object",
		Description:          "A card and its renderer-specific options",
		Properties:           props,
		AdditionalProperties: jsonschema.TrueSchema,
	}
}

// cardFromMap splits a raw card mapping into its type and options.
func cardFromMap(raw map[string]interface{}) map[string]interface{} {
	options := make(map[string]interface{}, len(raw))
	var cardType interface{} = ""
	for k, v := range raw {
		if k == "type" {
			cardType = v
			continue
		}
		options[k] = v
	}
	return map[string]interface{}{
		"type":    cardType,
		"options": options,
	}
}

var cardConfigType = reflect.TypeOf(CardConfig{})

// cardDecodeHook routes flat card mappings through cardFromMap.
func cardDecodeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != cardConfigType {
		return data, nil
	}
	raw, ok := data.(map[string]interface{})
	if !ok {
		return data, nil
	}
	return cardFromMap(raw), nil
}

// SetDefaults fills unset settings.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = defaultVersion
	}
	if c.Settings.ColumnWidth == 0 {
		c.Settings.ColumnWidth = defaultColumnWidth
	}
	if c.Settings.MaxColumns == 0 {
		c.Settings.MaxColumns = defaultMaxColumns
	}
}

// View returns the view at index, or nil when out of range.
func (c *Config) View(index int) *ViewConfig {
	if c == nil || index < 0 || index >= len(c.Views) {
		return nil
	}
	return &c.Views[index]
}

// ViewIndex finds a view by path or title. It returns -1 when none matches.
func (c *Config) ViewIndex(name string) int {
	if c == nil {
		return -1
	}
	for i := range c.Views {
		if c.Views[i].Path == name || c.Views[i].Title == name {
			return i
		}
	}
	return -1
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded dashboard file into the provided target struct. The target must be a
// pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// A missing section leaves the target zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
