package sexpr

import "testing"

func TestParseTerm_Atom(t *testing.T) {
	term, err := ParseTerm("a")
	if err != nil {
		t.Fatal(err)
	}
	if term.Op != "a" || len(term.Children) != 0 {
		t.Errorf("expected leaf a, got %+v", term)
	}
}

func TestParseTerm_Nested(t *testing.T) {
	term, err := ParseTerm("(+ a (* b c))")
	if err != nil {
		t.Fatal(err)
	}
	if term.Op != "+" || len(term.Children) != 2 {
		t.Fatalf("unexpected shape: %+v", term)
	}
	if term.Children[1].Op != "*" || len(term.Children[1].Children) != 2 {
		t.Errorf("unexpected nested shape: %+v", term.Children[1])
	}
}

func TestParseTerm_RoundTrip(t *testing.T) {
	cases := []string{
		"a",
		"(f a)",
		"(+ a b)",
		"(/ (* a 2) 2)",
		"(f (g x) (h y z))",
	}
	for _, src := range cases {
		term, err := ParseTerm(src)
		if err != nil {
			t.Fatalf("parsing %q: %v", src, err)
		}
		got := PrintTerm(term)
		if got != src {
			t.Errorf("round trip mismatch: parse(%q) then print = %q", src, got)
		}
	}
}

func TestParsePattern_RoundTrip(t *testing.T) {
	cases := []string{
		"?x",
		"(+ ?x ?y)",
		"(f ?x ?x)",
		"(/ (* ?x 2) 2)",
	}
	for _, src := range cases {
		p, err := ParsePattern(src)
		if err != nil {
			t.Fatalf("parsing %q: %v", src, err)
		}
		got := PrintPattern(p)
		if got != src {
			t.Errorf("round trip mismatch: parse(%q) then print = %q", src, got)
		}
	}
}

func TestParsePattern_VariableLeaf(t *testing.T) {
	p, err := ParsePattern("?foo")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsVar || p.Var != "foo" {
		t.Errorf("expected variable foo, got %+v", p)
	}
}

func TestParseTerm_RejectsVariable(t *testing.T) {
	_, err := ParseTerm("?x")
	if err == nil {
		t.Fatal("expected an error parsing a variable as a term")
	}
}

func TestParseTerm_RejectsVariableOperator(t *testing.T) {
	_, err := ParseTerm("(?x a b)")
	if err == nil {
		t.Fatal("expected an error for a variable in operator position")
	}
}

func TestParse_ErrorTaxonomy(t *testing.T) {
	cases := map[string]string{
		"":        "empty input",
		"()":      "empty list",
		"(a b":    "unterminated list",
		")":       "unexpected ')'",
		"a)":      "trailing tokens (stray ')')",
		"(a) (b)": "trailing tokens",
	}
	for src, desc := range cases {
		if _, err := ParseTerm(src); err == nil {
			t.Errorf("case %q (%s): expected an error, got none", src, desc)
		}
	}
}

func TestPrintTerm_Atom(t *testing.T) {
	if got := PrintTerm(&Term{Op: "a"}); got != "a" {
		t.Errorf("expected \"a\", got %q", got)
	}
}
