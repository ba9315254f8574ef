// Package schema provides utilities for working with JSON schemas.
package schema

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/yeisme/linelens/pkg/configs"
	"github.com/yeisme/linelens/pkg/models"
)

// GenConfigSchema generates the JSON schema for the entire application configuration and writes it to the provided writer.
func GenConfigSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "mapstructure",
	}
	configSchema := reflector.Reflect(configs.Config{})
	schemaJSON, err := json.MarshalIndent(configSchema, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(out, string(schemaJSON))
	return nil
}

// GenResultSchema generates the JSON schema for the analysis result emitted by
// the json output format and writes it to the provided writer.
func GenResultSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}
	resultSchema := reflector.Reflect(models.AnalysisResult{})
	schemaJSON, err := json.MarshalIndent(resultSchema, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(out, string(schemaJSON))
	return nil
}
