package jsonls

import "errors"

// === Schema decode errors ===
var (
	// ErrSchemaDecode is returned when a schema value is empty; other decode
	// failures are returned as the JSON decoder reports them.
	ErrSchemaDecode = errors.New("schema decode failed")

	// ErrInvalidSchemaType is returned when a "type" keyword value is neither a string nor a list of strings.
	ErrInvalidSchemaType = errors.New("invalid schema type value")
)

// === Demo tooling errors (cmd/jsonlsdemo) ===
var (
	// ErrNoInputFile is returned when the demo tool is invoked without a document to read.
	ErrNoInputFile = errors.New("no input file given")

	// ErrUnsupportedSchemaFormat is returned when a schema file is neither JSON nor YAML.
	ErrUnsupportedSchemaFormat = errors.New("unsupported schema file format")
)
