package annotation

import "strings"

// SplitArguments splits an argument list into its `key: value` segments.
//
// Commas separate segments only outside quotes and at bracket depth zero, so
// `columns: ["a,b", "c,d"], type: "btree"` yields two segments. Quote and
// bracket characters stay in the segment text. Blank segments are dropped.
func SplitArguments(text string) []string {
	var (
		segments []string
		current  strings.Builder
		quote    rune
		depth    int
	)

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			segments = append(segments, s)
		}
		current.Reset()
	}

	for _, ch := range text {
		switch {
		case ch == '"' || ch == '\'':
			if quote == 0 {
				quote = ch
			} else if quote == ch {
				quote = 0
			}
		case quote == 0 && (ch == '[' || ch == '{'):
			depth++
		case quote == 0 && (ch == ']' || ch == '}'):
			depth--
		case quote == 0 && depth == 0 && ch == ',':
			flush()
			continue
		}
		current.WriteRune(ch)
	}
	flush()

	return segments
}
