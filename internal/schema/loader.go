package schema

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPackage is used when the schema file declares no package name.
const DefaultPackage = "divisible"

// Load reads and parses a schema file from disk.
func Load(path string) (*SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return file, nil
}

// Parse decodes schema YAML. Unknown keys are rejected so that a misspelled
// declaration fails loudly instead of silently dropping out.
func Parse(data []byte) (*SchemaFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file SchemaFile
	if err := dec.Decode(&file); err != nil {
		return nil, err
	}

	if file.Package == "" {
		file.Package = DefaultPackage
	}

	// An absent capabilities list means just the base capability.
	for i := range file.Records {
		if file.Records[i].Capabilities.IsEmpty() {
			file.Records[i].Capabilities = StringOrArray{CapabilityDivisible}
		}
	}

	return &file, nil
}

// Save writes the schema back to disk, preserving the YAML layout rules of
// the custom marshalers.
func Save(file *SchemaFile, path string) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing schema file: %w", err)
	}

	return nil
}
