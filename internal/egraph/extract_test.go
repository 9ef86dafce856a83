package egraph

import "testing"

func TestExtract_Leaf(t *testing.T) {
	g := New()
	root := g.AddTerm(Leaf("a"))
	term, size, err := g.ExtractSmallest(root)
	if err != nil {
		t.Fatal(err)
	}
	if size != 1 || term.Op != "a" || len(term.Children) != 0 {
		t.Errorf("expected leaf a of size 1, got %+v size %d", term, size)
	}
}

func TestExtract_Minimality(t *testing.T) {
	g := New()
	root := g.AddTerm(NewTerm("+", Leaf("a"), Leaf("b")))

	// Add an equivalent but larger term into the same class.
	bigger := g.AddTerm(NewTerm("+", NewTerm("+", Leaf("a"), Leaf("z")), Leaf("b")))
	g.Merge(root, bigger)

	term, size, err := g.ExtractSmallest(root)
	if err != nil {
		t.Fatal(err)
	}
	if size != 3 {
		t.Errorf("expected minimum size 3 (+ a b), got size %d term %+v", size, term)
	}
}

func TestExtract_CycleSafe(t *testing.T) {
	g := New()
	a := g.Add(NewENode("a", nil))
	f := g.Add(NewENode("f", []EClassId{a}))
	// Force a into f's class, creating f(f) ... a cycle through congruence:
	// merging a and f makes f's own child point back into its own class.
	g.Merge(a, f)

	// The class now contains both a leaf "a" node and a self-referential
	// "f" node; extraction must still succeed by picking the acyclic leaf.
	term, _, err := g.ExtractSmallest(g.Find(a))
	if err != nil {
		t.Fatalf("expected extraction to find the acyclic leaf witness, got error: %v", err)
	}
	if term.Op != "a" {
		t.Errorf("expected the acyclic leaf witness \"a\", got %+v", term)
	}
}

func TestExtract_TieBreakDoesNotMatter(t *testing.T) {
	g := New()
	a := g.Add(NewENode("a", nil))
	b := g.Add(NewENode("b", nil))
	sum1 := g.Add(NewENode("+", []EClassId{a, b}))
	sum2 := g.Add(NewENode("+", []EClassId{b, a}))
	g.Merge(sum1, sum2)

	_, size, err := g.ExtractSmallest(sum1)
	if err != nil {
		t.Fatal(err)
	}
	if size != 3 {
		t.Errorf("expected size 3 regardless of which equal-size node wins the tie, got %d", size)
	}
}
