package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
)

// Schema describes the YAML document as JSON Schema for editor completion.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.Reflect(&Config{})
	s.Title = "Walden config"
	s.Description = "Window, world layout, logging and frame clock settings."
	return s
}

func WriteSchema(w io.Writer) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal schema: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
