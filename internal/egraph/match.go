package egraph

// Match is one result of Ematch: a substitution binding every variable in
// the pattern to an e-class id, together with the e-class whose node set
// contains a node structurally conforming to the pattern under that
// substitution.
type Match struct {
	Subst map[string]EClassId
	Class EClassId
}

// Ematch finds every (substitution, e-class) pair where some node in the
// e-class structurally matches p under the substitution. It enumerates
// eagerly and returns a snapshot slice (the "collect everything before any
// merge" strategy): the saturation driver applies a whole rule's matches
// before mutating the e-graph, so a live, mutation-tolerant iterator is
// unnecessary here and a plain slice is simpler.
//
// Repeated occurrences of the same pattern variable must bind to the same
// canonical e-class id (linear-by-use); the pattern is free to reuse a
// variable across positions, e.g. (f ?x ?x).
func (g *EGraph) Ematch(p *Pattern) []Match {
	var out []Match
	for e := range g.classes {
		for _, subst := range g.walk(p, e, map[string]EClassId{}) {
			out = append(out, Match{Subst: subst, Class: e})
		}
	}
	return out
}

// walk returns every substitution extending seed under which p matches
// some node reachable from e.
func (g *EGraph) walk(p *Pattern, e EClassId, seed map[string]EClassId) []map[string]EClassId {
	e = g.Find(e)

	if p.IsVar {
		if bound, ok := seed[p.Var]; ok {
			if bound == e {
				return []map[string]EClassId{seed}
			}
			return nil
		}
		next := cloneSubst(seed)
		next[p.Var] = e
		return []map[string]EClassId{next}
	}

	class := g.classes[e]
	if class == nil {
		return nil
	}

	var results []map[string]EClassId
	for _, n := range class.Nodes {
		if n.Op != p.Op || n.Arity() != len(p.Children) {
			continue
		}
		candidates := []map[string]EClassId{seed}
		for i, kid := range p.Children {
			if len(candidates) == 0 {
				break
			}
			child := n.Children[i]
			var next []map[string]EClassId
			for _, cand := range candidates {
				next = append(next, g.walk(kid, child, cand)...)
			}
			candidates = next
		}
		results = append(results, candidates...)
	}
	return results
}

func cloneSubst(s map[string]EClassId) map[string]EClassId {
	out := make(map[string]EClassId, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	return out
}
