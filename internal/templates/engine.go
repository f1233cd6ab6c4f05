package templates

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"text/template"
	"unicode"

	oerrors "github.com/stackgen/cli/internal/errors"
)

// Marker is the file suffix that marks a file for rendering.
const Marker = ".tmpl"

// Engine renders template text strictly: referencing a missing key is an error.
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates an engine with the standard function map.
func NewEngine() *Engine {
	return &Engine{funcs: FuncMap()}
}

// FuncMap returns the functions available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"lower":  strings.ToLower,
		"upper":  strings.ToUpper,
		"title":  title,
		"snake":  snake,
		"pascal": pascal,
		"join":   func(sep string, items []string) string { return strings.Join(items, sep) },
		"has":    func(items []string, v string) bool { return slices.Contains(items, v) },
	}
}

// Render parses text under name and executes it with data.
func (e *Engine) Render(name string, text []byte, data any) ([]byte, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(e.funcs).
		Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, oerrors.ErrTemplate, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, oerrors.ErrTemplate, err)
	}
	return buf.Bytes(), nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// snake turns a project name into a Rust crate identifier: "my-app" becomes "my_app".
func snake(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "-", "_"))
}

// pascal turns "my-axum_app" into "MyAxumApp".
func pascal(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(title(p))
	}
	return b.String()
}
