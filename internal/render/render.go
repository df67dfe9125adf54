// Package render prints tokens, statements and errors as text, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	"github.com/msto63/minipy/foundation/minipy/ast"
	"github.com/msto63/minipy/foundation/minipy/lexer"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options configures a Printer
type Options struct {
	Format string // text, json or yaml (default: text)
	Color  string // auto, always or never (default: auto)
	Indent int    // spaces per level for json and yaml (default: 2)
}

// Printer writes results to one output
type Printer struct {
	out    io.Writer
	format string
	indent int
	styles Styles
}

// Document is the structured form of one parsed source
type Document struct {
	Source     string                   `json:"source" yaml:"source"`
	Statements []map[string]interface{} `json:"statements" yaml:"statements"`
}

// TokenEntry is the structured form of one token
type TokenEntry struct {
	Kind  string      `json:"kind" yaml:"kind"`
	Text  string      `json:"text" yaml:"text"`
	Value interface{} `json:"value,omitempty" yaml:"value,omitempty"`
}

// New creates a printer writing to out
func New(out io.Writer, opts Options) (*Printer, error) {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.Color == "" {
		opts.Color = ColorAuto
	}
	if opts.Indent <= 0 {
		opts.Indent = 2
	}

	switch opts.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, mdwerror.Newf("unknown output format %q", opts.Format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("render.New").
			WithDetail("format", opts.Format)
	}

	renderer := lipgloss.NewRenderer(out)
	switch opts.Color {
	case ColorAuto:
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	default:
		return nil, mdwerror.Newf("unknown color mode %q", opts.Color).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("render.New").
			WithDetail("color", opts.Color)
	}

	return &Printer{
		out:    out,
		format: opts.Format,
		indent: opts.Indent,
		styles: NewStyles(renderer),
	}, nil
}

// Statements prints the top-level statements of source
func (p *Printer) Statements(source string, nodes []ast.Node) error {
	if p.format != FormatText {
		doc := Document{Source: source, Statements: make([]map[string]interface{}, len(nodes))}
		for i, node := range nodes {
			doc.Statements[i] = ast.Dump(node)
		}
		return p.encode(doc)
	}

	if source != "" {
		if _, err := fmt.Fprintln(p.out, p.styles.Title.Render(source)); err != nil {
			return err
		}
	}
	for _, node := range nodes {
		if _, err := fmt.Fprintln(p.out, node.String()); err != nil {
			return err
		}
	}
	return nil
}

// Tokens prints a token sequence, one token per line in text format
func (p *Printer) Tokens(tokens []lexer.Token) error {
	if p.format != FormatText {
		entries := make([]TokenEntry, len(tokens))
		for i, tok := range tokens {
			entries[i] = Entry(tok)
		}
		return p.encode(entries)
	}

	for _, tok := range tokens {
		if _, err := fmt.Fprintln(p.out, p.Token(tok)); err != nil {
			return err
		}
	}
	return nil
}

// Token returns the styled text form of tok
func (p *Printer) Token(tok lexer.Token) string {
	text := tok.String()
	switch tok.(type) {
	case lexer.Keyword:
		return p.styles.Keyword.Render(text)
	case lexer.Name:
		return p.styles.Name.Render(text)
	case lexer.Literal:
		return p.styles.Literal.Render(text)
	case lexer.Symbol:
		return p.styles.Symbol.Render(text)
	case lexer.Comment:
		return p.styles.Comment.Render(text)
	case lexer.Indent:
		return p.styles.Indent.Render(text)
	}
	return text
}

// Error prints err with its code and details
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.out, p.styles.Error.Render("error: "+err.Error()))

	var e *mdwerror.Error
	if !errors.As(err, &e) {
		return
	}
	if code := e.Code(); code != "" {
		fmt.Fprintln(p.out, p.styles.Detail.Render("code: "+string(code)))
	}

	details := e.Details()
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintln(p.out, p.styles.Detail.Render(fmt.Sprintf("%s: %v", k, details[k])))
	}
}

func (p *Printer) encode(v interface{}) error {
	indent := strings.Repeat(" ", p.indent)

	if p.format == FormatJSON {
		encoder := json.NewEncoder(p.out)
		encoder.SetIndent("", indent)
		return encoder.Encode(v)
	}

	encoder := yaml.NewEncoder(p.out)
	encoder.SetIndent(p.indent)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// Entry returns the structured form of tok
func Entry(tok lexer.Token) TokenEntry {
	entry := TokenEntry{Text: tok.String()}

	switch t := tok.(type) {
	case lexer.Keyword:
		entry.Kind = "keyword"
		entry.Text = string(t)
	case lexer.Name:
		entry.Kind = "name"
		entry.Text = t.Value
	case lexer.Literal:
		entry.Kind = "literal"
		entry.Text = t.Repr()
		entry.Value = t.Value
	case lexer.Symbol:
		entry.Kind = "symbol"
		entry.Text = string(t)
	case lexer.Comment:
		entry.Kind = "comment"
		entry.Text = t.Text
	case lexer.Indent:
		entry.Kind = "indent"
		entry.Value = t.Depth
	default:
		entry.Kind = "none"
	}
	return entry
}
