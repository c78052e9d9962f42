package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads, validates and freezes a catalog file. Files ending in
// .json are parsed as JSON, everything else as YAML.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question catalog: %w", err)
	}
	return ParseCatalog(data, isJSONPath(path))
}

// ParseCatalog validates raw catalog bytes and builds a catalog from them.
func ParseCatalog(data []byte, isJSON bool) (*Catalog, error) {
	if err := validateAgainstSchema(data, isJSON); err != nil {
		return nil, err
	}
	var doc Document
	var err error
	if isJSON {
		doc, err = parseJSONDocument(data)
	} else {
		doc, err = parseYAMLDocument(data)
	}
	if err != nil {
		return nil, err
	}
	normalized, err := NormalizeDocument(doc)
	if err != nil {
		return nil, err
	}
	return normalized.Catalog()
}

// WriteYAML renders a catalog document as YAML.
func WriteYAML(w io.Writer, doc Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return encoder.Close()
}

func isJSONPath(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

func parseJSONDocument(data []byte) (Document, error) {
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

func parseYAMLDocument(data []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	return doc, nil
}
