// Package core holds the domain types shared by the annotation pipeline.
package core

import "encoding/json"

// Arguments represents the loosely typed key-value pairs parsed from an annotation call.
type Arguments map[string]any

// RawAnnotation is the untyped result of parsing a single annotation line.
// Kind is not yet checked against the registry.
type RawAnnotation struct {
	Kind string
	Args Arguments
}

// Record is a validated annotation. The set of variants is closed:
// only types in this package implement it.
type Record interface {
	// Kind returns the discriminator the record was validated against.
	Kind() string
	// Owner returns the name of the model that carries the annotation.
	Owner() string
	// WithOwner returns a copy of the record tagged with the owning model.
	WithOwner(model string) Record

	isRecord()
}

// KindIndex is the discriminator of IndexRecord.
const KindIndex = "index"

// IndexType enumerates the kinds of index an annotation may request.
type IndexType string

const (
	IndexTypeID     IndexType = "id"
	IndexTypeUnique IndexType = "unique"
	IndexTypeNormal IndexType = "normal"
)

// IndexRecord is the validated form of an @<prefix>.index(...) annotation.
// Optional arguments are nil when absent; an explicit empty string is kept.
type IndexRecord struct {
	Model  string     `json:"model"`
	Name   *string    `json:"name,omitempty"`
	Fields []string   `json:"fields"`
	Type   *IndexType `json:"type,omitempty"`
	// Where is a raw predicate expression, passed through uninterpreted.
	Where *string `json:"where,omitempty"`
}

func (r IndexRecord) Kind() string  { return KindIndex }
func (r IndexRecord) Owner() string { return r.Model }

func (r IndexRecord) WithOwner(model string) Record {
	r.Model = model
	r.Fields = append([]string(nil), r.Fields...)
	return r
}

func (IndexRecord) isRecord() {}

// MarshalJSON writes the record with its "kind" discriminator first.
func (r IndexRecord) MarshalJSON() ([]byte, error) {
	type plain IndexRecord
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{Kind: KindIndex, plain: plain(r)})
}

var _ Record = IndexRecord{}

// Snapshot is the persisted state of one generation run.
// It is never mutated after construction.
type Snapshot struct {
	GeneratedAt string        `json:"generatedAt"`
	SchemaHash  string        `json:"schemaHash"`
	Indexes     []IndexRecord `json:"indexes"`
}
