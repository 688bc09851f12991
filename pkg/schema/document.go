// Package schema reads the model document produced by the host schema compiler.
//
// Only two facts are used: the ordered list of models under datamodel.models,
// and each model's name and optional documentation. Everything else in the
// document is kept verbatim so it participates in the content hash.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Model is a single model of the data model.
type Model struct {
	Name          string `json:"name"`
	Documentation string `json:"documentation,omitempty"`
}

// Datamodel holds the ordered models.
type Datamodel struct {
	Models []Model `json:"models"`
}

// Document is the structured description of the whole data model.
type Document struct {
	Datamodel Datamodel `json:"datamodel"`

	raw []byte // compact JSON of the full source document
}

// Decoder turns the bytes of a model document file into JSON.
type Decoder func(data []byte) ([]byte, error)

// DefaultDecoders returns the supported decoders keyed by file extension.
func DefaultDecoders() map[string]Decoder {
	return map[string]Decoder{
		".json": decodeJSON,
		".yaml": decodeYAML,
		".yml":  decodeYAML,
	}
}

// New builds a Document from models. Its JSON form is the encoding of the
// document itself.
func New(models ...Model) *Document {
	return &Document{Datamodel: Datamodel{Models: models}}
}

// ReadFile reads and parses a model document, choosing the decoder by extension.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model document: %w", err)
	}
	doc, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a model document. Unknown extensions are treated as JSON.
func Parse(data []byte, ext string) (*Document, error) {
	decode, ok := DefaultDecoders()[strings.ToLower(ext)]
	if !ok {
		decode = decodeJSON
	}

	compact, err := decode(data)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	if err := json.Unmarshal(compact, doc); err != nil {
		return nil, fmt.Errorf("invalid model document: %w", err)
	}
	doc.raw = compact
	return doc, nil
}

// JSON returns the serialized form of the document used for hashing.
func (d *Document) JSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	if d.raw != nil {
		return d.raw, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Models returns the models in document order.
func (d *Document) Models() []Model {
	return d.Datamodel.Models
}

func decodeJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeYAML(data []byte) ([]byte, error) {
	var payload map[string]interface{}
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("yaml document is not representable as json: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
