package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for dashboard files. Top-level
// sections other than the known ones are extensions and stay allowed.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
		DoNotReference:            true,
	}

	s := r.Reflect(&Config{})
	s.Title = "Masonry Dashboard Configuration"
	s.Description = "Schema for masonry.yml dashboard files."
	s.Version = "http://json-schema.org/draft-07/schema#"
	s.AdditionalProperties = jsonschema.TrueSchema

	return json.MarshalIndent(s, "", "  ")
}
