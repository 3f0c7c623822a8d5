// Package taskfile reads benchmark task files. A task file is a small YAML
// document whose description field becomes the text handed to the agent.
package taskfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Schema is the JSON schema every task file must satisfy. Unknown keys are
// tolerated so richer task documents still load.
const Schema = `{
	"type": "object",
	"properties": {
		"id": {"type": "string"},
		"description": {"type": "string", "minLength": 1},
		"tags": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["description"]
}`

// Task is one benchmark task. Description is untrusted free text; whoever
// places it on a command line must shell-escape it.
type Task struct {
	ID          string   `yaml:"id,omitempty" json:"id,omitempty"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Load reads and parses the task file at path.
func Load(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	task, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return task, nil
}

// Parse decodes a YAML task document and validates it against Schema.
func Parse(data []byte) (*Task, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var task Task
	if err := yaml.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}

	if strings.TrimSpace(task.Description) == "" {
		return nil, ErrNoDescription
	}

	return &task, nil
}

// validate checks the YAML document against Schema. The document is
// converted to JSON first because the schema validator only reads JSON.
func validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse task file: %w", err)
	}

	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert task file to JSON: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(Schema)
	docLoader := gojsonschema.NewBytesLoader(jsonDoc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate task file: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrSchemaInvalid, strings.Join(errs, "; "))
}
