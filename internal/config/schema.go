package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// SchemaJSON generates the JSON schema for the configuration as
// pretty-printed JSON.
func SchemaJSON() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/74587/srec-dash/config.schema.json"
	schema.Title = "srec-dash Configuration"
	schema.Description = "Configuration schema for the srec-dash recording-session dashboard"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to the config file
// so editors can offer completion.
func GenerateSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}

	data, err := SchemaJSON()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("write schema file: %w", err)
	}
	return schemaFile, nil
}
