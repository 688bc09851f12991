// Package registry maps annotation kinds to the contracts that validate them.
//
// The table is built once at package initialization and never modified.
// Supporting a new kind means adding a contract type and an entry to
// contracts; the parser is unaffected.
package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sabinadams/schematic/pkg/core"
)

// Validator turns a raw annotation of a known kind into a validated record.
type Validator func(raw core.RawAnnotation) (core.Record, error)

// contracts is the kind -> validator table.
var contracts = map[string]Validator{
	core.KindIndex: validateIndex,
}

// validate is shared by all contracts; it reports fields by their json name.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Lookup returns the validator registered for kind.
// Kinds are case-sensitive and not normalized.
func Lookup(kind string) (Validator, bool) {
	v, ok := contracts[kind]
	return v, ok
}

// Kinds lists the registered kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(contracts))
	for k := range contracts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Validate looks up raw.Kind and validates raw against its contract.
func Validate(raw core.RawAnnotation) (core.Record, error) {
	v, ok := Lookup(raw.Kind)
	if !ok {
		return nil, &core.UnknownKindError{Kind: raw.Kind}
	}
	return v(raw)
}

// decodeStrict fills contract from args, rejecting keys the contract does not
// declare, explicit nulls and values of the wrong JSON type.
func decodeStrict(kind string, args core.Arguments, contract any) error {
	known := jsonFields(reflect.TypeOf(contract).Elem())
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !known[k] {
			return &core.ValidationError{Kind: kind, Field: k, Constraint: "unknown", Message: "field is not allowed"}
		}
		if args[k] == nil {
			return &core.ValidationError{Kind: kind, Field: k, Constraint: "type", Message: "must not be null"}
		}
	}

	data, err := json.Marshal(args)
	if err != nil {
		return &core.ValidationError{Kind: kind, Constraint: "type", Message: err.Error()}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(contract); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &core.ValidationError{
				Kind:       kind,
				Field:      typeErr.Field,
				Constraint: "type",
				Message:    fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		return &core.ValidationError{Kind: kind, Constraint: "type", Message: err.Error()}
	}
	return nil
}

// checkConstraints runs the validate tags of contract and reports the first violation.
func checkConstraints(kind string, contract any) error {
	err := validate.Struct(contract)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &core.ValidationError{
			Kind:       kind,
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Message:    constraintMessage(fe),
		}
	}
	return &core.ValidationError{Kind: kind, Message: err.Error()}
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s element(s)", fe.Param())
	case "unique":
		return "must not contain duplicates"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// jsonFields returns the set of json names declared by a struct type.
func jsonFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		fields[name] = true
	}
	return fields
}
