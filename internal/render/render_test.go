package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	"github.com/msto63/minipy/foundation/minipy/ast"
	"github.com/msto63/minipy/foundation/minipy/lexer"
)

func sampleNodes() []ast.Node {
	return []ast.Node{
		&ast.Set{
			Name:  ast.NewName("x"),
			Value: &ast.Literal{Value: lexer.IntegerLiteral(1)},
		},
		&ast.Call{
			Head: ast.NewName("print"),
			Args: []ast.Expr{ast.NewName("x")},
		},
	}
}

func newPrinter(t *testing.T, buf *bytes.Buffer, opts Options) *Printer {
	t.Helper()
	p, err := New(buf, opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"format", Options{Format: "xml"}},
		{"color", Options{Color: "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&bytes.Buffer{}, tt.opts)
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Errorf("New() error = %v, want code %v", err, mdwerror.CodeInvalidInput)
			}
		})
	}
}

func TestPrinter_StatementsText(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(t, &buf, Options{Color: ColorNever})

	if err := p.Statements("main.py", sampleNodes()); err != nil {
		t.Fatalf("Statements() error = %v", err)
	}

	want := "main.py\nSet(Name(x), Literal(1))\nCall(Name(print), [Name(x)])\n"
	if buf.String() != want {
		t.Errorf("Statements() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestPrinter_StatementsJSON(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(t, &buf, Options{Format: FormatJSON, Indent: 4})

	if err := p.Statements("main.py", sampleNodes()); err != nil {
		t.Fatalf("Statements() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\n    \"source\"") {
		t.Errorf("expected four space indent:\n%s", buf.String())
	}

	var doc struct {
		Source     string                   `json:"source"`
		Statements []map[string]interface{} `json:"statements"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Source != "main.py" || len(doc.Statements) != 2 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.Statements[0]["node"] != "Set" || doc.Statements[1]["node"] != "Call" {
		t.Errorf("unexpected statements: %v", doc.Statements)
	}
}

func TestPrinter_StatementsYAML(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(t, &buf, Options{Format: FormatYAML})

	if err := p.Statements("main.py", sampleNodes()); err != nil {
		t.Fatalf("Statements() error = %v", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	statements, ok := doc["statements"].([]interface{})
	if !ok || len(statements) != 2 {
		t.Fatalf("unexpected document: %v", doc)
	}
}

func TestPrinter_Tokens(t *testing.T) {
	tokens := []lexer.Token{
		lexer.KeywordDef,
		lexer.Name{Value: "f"},
		lexer.LeftParenthesis,
		lexer.StringLiteral("s"),
		lexer.Comment{Text: "note"},
		lexer.Indent{Depth: 4},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		p := newPrinter(t, &buf, Options{Color: ColorNever})
		if err := p.Tokens(tokens); err != nil {
			t.Fatalf("Tokens() error = %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != len(tokens) {
			t.Fatalf("expected %d lines, got %q", len(tokens), buf.String())
		}
		for i, tok := range tokens {
			if lines[i] != tok.String() {
				t.Errorf("line %d = %q, want %q", i, lines[i], tok.String())
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		p := newPrinter(t, &buf, Options{Format: FormatJSON})
		if err := p.Tokens(tokens); err != nil {
			t.Fatalf("Tokens() error = %v", err)
		}
		var entries []TokenEntry
		if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		kinds := []string{"keyword", "name", "symbol", "literal", "comment", "indent"}
		for i, kind := range kinds {
			if entries[i].Kind != kind {
				t.Errorf("entry %d kind = %q, want %q", i, entries[i].Kind, kind)
			}
		}
	})
}

func TestEntry(t *testing.T) {
	tests := []struct {
		name string
		tok  lexer.Token
		want TokenEntry
	}{
		{"keyword", lexer.KeywordIf, TokenEntry{Kind: "keyword", Text: "if"}},
		{"name", lexer.Name{Value: "x"}, TokenEntry{Kind: "name", Text: "x"}},
		{"integer", lexer.IntegerLiteral(7), TokenEntry{Kind: "literal", Text: "7", Value: int64(7)}},
		{"string", lexer.StringLiteral("a"), TokenEntry{Kind: "literal", Text: `"a"`, Value: "a"}},
		{"symbol", lexer.StarStar, TokenEntry{Kind: "symbol", Text: "**"}},
		{"indent", lexer.Indent{Depth: 2}, TokenEntry{Kind: "indent", Text: "Indent(2)", Value: 2}},
		{"none", lexer.None{}, TokenEntry{Kind: "none", Text: "<none>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Entry(tt.tok); got != tt.want {
				t.Errorf("Entry() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPrinter_Color(t *testing.T) {
	tests := []struct {
		color     string
		wantColor bool
	}{
		{ColorAlways, true},
		{ColorNever, false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			var buf bytes.Buffer
			p := newPrinter(t, &buf, Options{Color: tt.color})

			got := strings.Contains(p.Token(lexer.KeywordDef), "\x1b[")
			if got != tt.wantColor {
				t.Errorf("styled = %q, want color %v", p.Token(lexer.KeywordDef), tt.wantColor)
			}
		})
	}
}

func TestPrinter_Error(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(t, &buf, Options{Color: ColorNever})

	err := mdwerror.New("expecting ':', found Name(x)").
		WithCode(mdwerror.CodeUnexpectedToken).
		WithDetail("offset", 3)
	p.Error(mdwerror.Wrap(err, "failed to parse main.py"))

	out := buf.String()
	for _, want := range []string{"error: failed to parse main.py", "code: MINIPY_UNEXPECTED_TOKEN", "offset: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Error() output missing %q:\n%s", want, out)
		}
	}
}
