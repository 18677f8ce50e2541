package parser

import (
	"strings"
)

// FlatMapping maps dotted key paths such as "config.oauth.clientId" to the
// literal found on that key's line.
type FlatMapping map[string]Literal

// Keys returns the mapping's paths in no particular order.
func (m FlatMapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Parser flattens a JS-object-literal-like document into a FlatMapping.
type Parser interface {
	Parse(document string) (FlatMapping, error)
}

type parserImpl struct{}

// New returns the default line-based parser.
func New() Parser {
	return &parserImpl{}
}

// Parse is shorthand for New().Parse(document).
func Parse(document string) (FlatMapping, error) {
	return New().Parse(document)
}

// Parse reads one token per line. Lines without a colon are skipped. A line
// with '{' pushes the key before its first colon, a line with '}' (and no
// '{') pops, and anything else is a key: value pair whose value is split off
// at the first colon only. A key outside any object is stored under its bare
// name ("enabled", not ".enabled"). Any failure discards the whole mapping.
func (p *parserImpl) Parse(document string) (FlatMapping, error) {
	out := FlatMapping{}
	var path []string

	for i, line := range strings.Split(document, "\n") {
		line = strings.TrimSuffix(line, "\r")

		key, rest, isKeyVal := strings.Cut(line, ":")
		if !isKeyVal {
			continue
		}
		key = strings.TrimSpace(key)

		switch {
		case strings.Contains(line, "{"):
			path = append(path, key)
		case strings.Contains(line, "}"):
			if len(path) == 0 {
				return nil, &LineError{Line: i + 1, Text: line, Err: ErrUnbalancedPath}
			}
			path = path[:len(path)-1]
		default:
			lit, err := Scan(strings.TrimSpace(rest))
			if err != nil {
				return nil, &LineError{Line: i + 1, Text: line, Err: err}
			}
			out[joinPath(path, key)] = lit
		}
	}
	return out, nil
}

func joinPath(path []string, key string) string {
	if len(path) == 0 {
		return key
	}
	return strings.Join(path, ".") + "." + key
}
