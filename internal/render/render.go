// Package render performs literal placeholder substitution. The
// template language is a single construct: `{{ name }}` with exactly
// one space on each side of the name. There is no escaping, nesting,
// or control flow; values that carry markup are inserted verbatim.
package render

import (
	"fmt"
	"os"
	"strings"
)

// LoadTemplate reads the template document. Failure here is fatal for
// the whole run: without a template nothing meaningful can be
// rendered, so callers must stop and write no output.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("template %s not readable: %w", path, err)
	}
	return string(data), nil
}

// Render replaces every occurrence of each bound placeholder with its
// value. Entries are applied in insertion order, each replacement
// rescanning the result, which matches the sequential substitution
// the template contract documents. Placeholders without a binding
// are left in the output untouched.
func Render(template string, ctx *Context) string {
	out := template
	for _, e := range ctx.Entries() {
		out = strings.ReplaceAll(out, Placeholder(e.Key), e.Value)
	}
	return out
}

// Placeholder returns the literal template form of a key.
func Placeholder(key string) string {
	return "{{ " + key + " }}"
}
