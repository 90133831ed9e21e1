// Package catalog loads, validates and indexes the read-only stack catalog.
// Documents come from the binary, a directory of JSON or YAML files, or a
// remote endpoint, and are schema-checked before anything is indexed.
package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// Kind names one of the three catalog documents.
type Kind string

const (
	KindStacks   Kind = "stacks"
	KindTools    Kind = "tools"
	KindUseCases Kind = "usecases"
)

// Kinds lists the documents in load order.
var Kinds = []Kind{KindStacks, KindTools, KindUseCases}

// Format is the encoding of a document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

var compileSchemas = sync.OnceValues(func() (map[Kind]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	out := make(map[Kind]*jsonschema.Schema, len(Kinds))

	for _, kind := range Kinds {
		name := string(kind) + ".schema.json"

		raw, err := schemaFS.ReadFile(path.Join("schema", name))
		if err != nil {
			return nil, err
		}

		if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("add %s schema: %w", kind, err)
		}

		schema, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", kind, err)
		}

		out[kind] = schema
	}

	return out, nil
})

// toJSON normalises a document to JSON bytes.
func toJSON(raw []byte, format Format) ([]byte, error) {
	if format != FormatYAML {
		return raw, nil
	}

	var doc any

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return json.Marshal(doc)
}

// ValidateDocument checks raw against the schema for kind.
func ValidateDocument(kind Kind, raw []byte, format Format) error {
	_, err := normalise(kind, raw, format)
	return err
}

func normalise(kind Kind, raw []byte, format Format) ([]byte, error) {
	schemas, err := compileSchemas()
	if err != nil {
		return nil, err
	}

	schema, ok := schemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown catalog document %q", kind)
	}

	data, err := toJSON(raw, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%s: parse json: %w", kind, err)
	}

	if err := schema.Validate(v); err != nil {
		return nil, domain.NewValidationError(string(kind), strings.TrimSpace(err.Error()))
	}

	return data, nil
}

// Decode validates one document and merges it into docs.
func Decode(docs *ports.CatalogDocuments, kind Kind, raw []byte, format Format) error {
	data, err := normalise(kind, raw, format)
	if err != nil {
		return err
	}

	var envelope struct {
		Stacks   []domain.Stack         `json:"stacks"`
		Tools    []domain.DirectoryTool `json:"tools"`
		UseCases []domain.UseCase       `json:"usecases"`
	}

	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}

	switch kind {
	case KindStacks:
		docs.Stacks = envelope.Stacks
	case KindTools:
		docs.Tools = envelope.Tools
	case KindUseCases:
		docs.UseCases = envelope.UseCases
	}

	return nil
}

// FormatFor picks the format from a file extension.
func FormatFor(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}
