// Package annotation parses `@<prefix>.<kind>(<args>)` lines found in model documentation.
package annotation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sabinadams/schematic/pkg/core"
)

// DefaultPrefix is the annotation prefix used when none is configured.
const DefaultPrefix = "schematic"

// callPattern matches `<identifier>(<anything>)`; the argument span may contain newlines.
var callPattern = regexp.MustCompile(`(?s)^(\w+)\((.*)\)$`)

// Parser parses annotation lines for a fixed prefix.
type Parser struct {
	prefix string
}

// NewParser creates a Parser for the given prefix. An empty prefix selects DefaultPrefix.
func NewParser(prefix string) *Parser {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Parser{prefix: prefix}
}

// Prefix returns the annotation prefix without the leading '@'.
func (p *Parser) Prefix() string {
	return p.prefix
}

// Matches reports whether the trimmed line looks like an annotation for this prefix.
// A matching line may still fail to parse.
func (p *Parser) Matches(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "@"+p.prefix)
}

// Parse parses one annotation line.
func (p *Parser) Parse(line string) (core.RawAnnotation, error) {
	return Parse(line, p.prefix)
}

// Parse parses one annotation line into its kind and arguments.
// Either the whole line parses or a *core.FormatError is returned.
func Parse(line, prefix string) (core.RawAnnotation, error) {
	trimmed := strings.TrimSpace(line)
	head := "@" + prefix + "."
	if !strings.HasPrefix(trimmed, head) {
		return core.RawAnnotation{}, &core.FormatError{
			Line:   line,
			Reason: fmt.Sprintf("must start with %s", head),
		}
	}

	m := callPattern.FindStringSubmatch(strings.TrimPrefix(trimmed, head))
	if m == nil {
		return core.RawAnnotation{}, &core.FormatError{
			Line:   line,
			Reason: fmt.Sprintf("invalid annotation format, expected @%s.<kind>(<args>)", prefix),
		}
	}

	args := make(core.Arguments)
	for _, segment := range SplitArguments(m[2]) {
		key, value, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		args[strings.TrimSpace(key)] = ParseValue(value)
	}

	return core.RawAnnotation{Kind: m[1], Args: args}, nil
}
