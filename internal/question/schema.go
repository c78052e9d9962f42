package question

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.schema.json
var catalogSchemaJSON string

const catalogSchemaURL = "https://schemas.quizapp.dev/catalog.schema.json"

var catalogSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(catalogSchemaURL, strings.NewReader(catalogSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add catalog schema: %w", err)
	}
	schema, err := compiler.Compile(catalogSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return schema, nil
})

// validateAgainstSchema checks the structure of a raw catalog document.
func validateAgainstSchema(data []byte, isJSON bool) error {
	schema, err := catalogSchema()
	if err != nil {
		return err
	}
	if !isJSON {
		data, err = yamlToJSON(data)
		if err != nil {
			return err
		}
	}
	var instance any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&instance); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	normalizeSchemaTypes(instance)
	if err := schema.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if !errors.As(err, &validationErr) {
			return fmt.Errorf("validate catalog schema: %w", err)
		}
		collector := &issueCollector{}
		collectSchemaIssues(collector, validationErr)
		return collector.result()
	}
	return nil
}

// normalizeSchemaTypes trims and lower-cases question type values in a
// decoded document so the type enum matches what NormalizeDocument accepts.
func normalizeSchemaTypes(instance any) {
	doc, ok := instance.(map[string]any)
	if !ok {
		return
	}
	questions, ok := doc["questions"].([]any)
	if !ok {
		return
	}
	for _, item := range questions {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if kind, ok := entry["type"].(string); ok {
			entry["type"] = strings.ToLower(strings.TrimSpace(kind))
		}
	}
}

// yamlToJSON re-encodes a single YAML document as JSON for schema checks.
func yamlToJSON(data []byte) ([]byte, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	encoded, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return encoded, nil
}

// collectSchemaIssues flattens the leaf causes of a schema failure.
func collectSchemaIssues(collector *issueCollector, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		collector.add(fieldFromPointer(err.InstanceLocation), err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaIssues(collector, cause)
	}
}

// fieldFromPointer turns "/questions/0/type" into "questions[0].type".
func fieldFromPointer(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return "catalog"
	}
	var builder strings.Builder
	for i, part := range strings.Split(pointer, "/") {
		if isIndex(part) {
			builder.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			builder.WriteString(".")
		}
		builder.WriteString(part)
	}
	return builder.String()
}

func isIndex(part string) bool {
	if part == "" {
		return false
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
