package ast

import (
	"encoding/json"
	"testing"

	"github.com/msto63/minipy/foundation/minipy/lexer"
)

func intLit(i int64) *Literal { return &Literal{Value: lexer.IntegerLiteral(i)} }

func sampleDef() *Def {
	return &Def{
		Name:   NewName("add"),
		Params: []*Name{NewName("a").WithHint(NewName("int")), NewName("b")},
		Hint:   NewName("int"),
		Body: &Body{Lines: []Node{
			&Return{Value: &BinaryOperation{Operator: lexer.Plus, Left: NewName("a"), Right: NewName("b")}},
		}},
	}
}

func TestNode_String(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"set", &Set{Name: NewName("x"), Operator: lexer.Equal, Value: &BinaryOperation{
			Operator: lexer.Plus, Left: intLit(1), Right: intLit(2),
		}}, "Set(Name(x), BinaryOperation(+, Literal(1), Literal(2)))"},
		{"compound set", &Set{Name: NewName("x"), Operator: lexer.PlusEqual, Value: intLit(1)},
			"Set(Name(x), +=, Literal(1))"},
		{"hinted name", NewName("x").WithHint(NewName("int")), "Name(x: Name(int))"},
		{"call", &Call{Head: NewName("f"), Args: []Expr{intLit(1), &Literal{Value: lexer.StringLiteral("a")}}},
			`Call(Name(f), [Literal(1), Literal("a")])`},
		{"unary", &UnaryOperation{Operator: lexer.Minus, Operand: intLit(3)}, "UnaryOperation(-, Literal(3))"},
		{"atom", &Atom{Token: lexer.KeywordPass}, "pass"},
		{"bare return", &Return{}, "Return()"},
		{"from", &From{Head: NewName("os"), Names: []*Name{NewName("path"), NewName("sep")}},
			"From(Name(os), [Name(path), Name(sep)])"},
		{"if", &If{Head: NewName("x"), Body: &Body{Lines: []Node{&Atom{Token: lexer.KeywordPass}}}},
			"If(Name(x), Body[pass])"},
		{"def", sampleDef(),
			"Def(Name(add), [Name(a: Name(int)), Name(b)], -> Name(int), Body[Return(BinaryOperation(+, Name(a), Name(b)))])"},
		{"class", &Class{Name: NewName("A"), Bases: []*Name{NewName("B")}, Body: &Body{}},
			"Class(Name(A), [Name(B)], Body[])"},
		{"comment", &Comment{Text: "note"}, "Comment(note)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestName_WithHintKeepsOriginal(t *testing.T) {
	base := NewName("x")
	annotated := base.WithHint(NewName("int"))

	if base.Hint != nil {
		t.Error("WithHint() should not modify the receiver")
	}
	if annotated.Value != "x" || annotated.Hint == nil {
		t.Errorf("annotated = %v", annotated)
	}
}

func TestInspect(t *testing.T) {
	var names []string
	Inspect(sampleDef(), func(n Node) bool {
		if name, ok := n.(*Name); ok {
			names = append(names, name.Value)
		}
		return true
	})

	want := []string{"add", "a", "int", "b", "int", "a", "b"}
	if len(names) != len(want) {
		t.Fatalf("visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestInspect_SkipChildren(t *testing.T) {
	count := 0
	Inspect(sampleDef(), func(n Node) bool {
		if n == nil {
			return false
		}
		count++
		_, isBody := n.(*Body)
		return !isBody
	})

	// Def, add, a, int, b, int, Body
	if count != 7 {
		t.Errorf("visited %d nodes, want 7", count)
	}
}

func TestChildren_OptionalFields(t *testing.T) {
	def := &Def{Name: NewName("f"), Body: &Body{}}
	if got := len(Children(def)); got != 2 {
		t.Errorf("Children() = %d nodes, want 2", got)
	}
	if got := len(Children(&Return{})); got != 0 {
		t.Errorf("Children(bare return) = %d nodes, want 0", got)
	}
}

func TestDump(t *testing.T) {
	data, err := json.Marshal(Dump(sampleDef()))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded["node"] != "Def" {
		t.Errorf("node = %v, want Def", decoded["node"])
	}
	params, ok := decoded["params"].([]interface{})
	if !ok || len(params) != 2 {
		t.Fatalf("params = %v", decoded["params"])
	}
	first := params[0].(map[string]interface{})
	if first["value"] != "a" || first["hint"].(map[string]interface{})["value"] != "int" {
		t.Errorf("first param = %v", first)
	}

	set := Dump(&Set{Name: NewName("x"), Value: intLit(1)})
	if set["operator"] != "=" {
		t.Errorf("default operator = %v, want =", set["operator"])
	}
	if lit := set["value"].(map[string]interface{}); lit["type"] != "integer" || lit["value"] != int64(1) {
		t.Errorf("literal dump = %v", lit)
	}
}
