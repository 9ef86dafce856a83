package egraph

import "fmt"

// errNoWitness is the internal control-flow signal for "no acyclic witness
// under this path or within this bound." It is never returned to a caller
// of ExtractSmallest except in the should-never-happen case described
// there; extract's recursion uses it the way a parser might use a
// sentinel error to unwind a failed alternative.
var errNoWitness = fmt.Errorf("egraph: no acyclic witness")

// ExtractSmallest returns a minimum-node-count term in e's equivalence
// class, along with that term's size. Cost of a term is 1 plus the sum of
// its children's costs; every node weighs one regardless of operator.
//
// Extraction is guaranteed to succeed for any class reachable from an
// AddTerm of a ground term, since the term originally added is itself an
// acyclic witness. The error return exists only to report the otherwise
// unreachable case of a class with no acyclic witness at all.
func (g *EGraph) ExtractSmallest(e EClassId) (*Term, int, error) {
	t, size, err := g.extract(map[EClassId]struct{}{}, 1<<30, e)
	if err != nil {
		return nil, 0, fmt.Errorf("extracting class %d: %w", g.Find(e), err)
	}
	return t, size, nil
}

// extract implements the cycle-guarded, bound-pruned search from the
// design: visited blocks revisiting an e-class on the current path (cycle
// guard), and bound caps the cost any candidate may still spend (upper
// bound pruning). Iteration order over an e-class's node set is
// unspecified, so ties on size are broken arbitrarily.
func (g *EGraph) extract(visited map[EClassId]struct{}, bound int, e EClassId) (*Term, int, error) {
	e = g.Find(e)
	if _, cyclic := visited[e]; cyclic || bound < 0 {
		return nil, 0, errNoWitness
	}

	class := g.classes[e]
	if class == nil {
		return nil, 0, errNoWitness
	}

	nextVisited := make(map[EClassId]struct{}, len(visited)+1)
	for k := range visited {
		nextVisited[k] = struct{}{}
	}
	nextVisited[e] = struct{}{}

	var best *Term
	bestSize := bound

	for _, n := range class.Nodes {
		kids := make([]*Term, len(n.Children))
		acc := 1
		ok := true
		for i, c := range n.Children {
			t, s, err := g.extract(nextVisited, bestSize-acc, c)
			if err != nil {
				ok = false
				break
			}
			acc += s
			kids[i] = t
		}
		if !ok {
			continue
		}
		if best == nil || acc < bestSize {
			best = &Term{Op: n.Op, Children: kids}
			bestSize = acc
		}
	}

	if best == nil {
		return nil, 0, errNoWitness
	}
	return best, bestSize, nil
}
