package minipy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	mdwlog "github.com/msto63/minipy/foundation/core/log"
	"github.com/msto63/minipy/foundation/minipy/lexer"
	"github.com/msto63/minipy/foundation/minipy/parser"
)

const helloWorld = `# greeting
from sys import argv

def main(name: str) -> None:
    message = "hello " + name
    print(message)

main(argv)
`

func quietEngine(opts Options) *Engine {
	opts.Logger = mdwlog.Discard()
	return New(opts)
}

func TestEngine_ParseString(t *testing.T) {
	nodes, err := quietEngine(Options{}).ParseString(helloWorld)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	want := []string{
		"Comment(greeting)",
		"From(Name(sys), [Name(argv)])",
		`Def(Name(main), [Name(name: Name(str))], -> Name(None), Body[Set(Name(message), BinaryOperation(+, Literal("hello "), Name(name))); Call(Name(print), [Name(message)])])`,
		"Call(Name(main), [Name(argv)])",
	}
	if len(nodes) != len(want) {
		t.Fatalf("got %d statements %v, want %d", len(nodes), nodes, len(want))
	}
	for i := range want {
		if nodes[i].String() != want[i] {
			t.Errorf("statement %d = %s\n want %s", i, nodes[i], want[i])
		}
	}
}

func TestEngine_PromoteConstants(t *testing.T) {
	nodes, err := quietEngine(Options{PromoteConstants: true}).ParseString("x = None")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if got := nodes[0].String(); got != "Set(Name(x), Literal(None))" {
		t.Errorf("statement = %s", got)
	}
}

func TestEngine_Tokens(t *testing.T) {
	var tokens []lexer.Token
	for tok, err := range quietEngine(Options{}).Tokens(strings.NewReader("a1 = 2")) {
		if err != nil {
			t.Fatalf("Tokens() error = %v", err)
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) != 4 {
		t.Errorf("got %v, want Name, Literal, Symbol, Literal", tokens)
	}
}

func TestEngine_ParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello_world.py")
	if err := os.WriteFile(path, []byte(helloWorld), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := quietEngine(Options{}).ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if result.Source != path || len(result.Nodes) != 4 {
		t.Errorf("result = %s with %d nodes", result.Source, len(result.Nodes))
	}

	_, err = quietEngine(Options{}).ParseFile(filepath.Join(dir, "missing.py"))
	if !mdwerror.HasCode(err, mdwerror.CodeIO) {
		t.Errorf("missing file error = %v, want code %v", err, mdwerror.CodeIO)
	}
}

func TestEngine_ParseReaderKeepsCause(t *testing.T) {
	_, err := quietEngine(Options{}).ParseReader("inline", strings.NewReader("f(1 2)"))
	if !errors.Is(err, parser.ErrUnexpectedOperator) {
		t.Fatalf("error = %v, want ErrUnexpectedOperator", err)
	}
	if mdwerror.GetCode(err) != mdwerror.CodeUnexpectedOperator {
		t.Errorf("code = %v", mdwerror.GetCode(err))
	}
}
