package egraph

// Stats summarizes one Saturate run, consumed by the CLI's run report.
type Stats struct {
	Iterations   int
	FinalClasses int
	FinalNodes   int
	Converged    bool
}

// DefaultMaxIter is the saturation driver's default safety cap, used when
// the caller has no stronger preference (e.g. the CLI's --max-iter flag
// defaults to this).
const DefaultMaxIter = 16

// Saturate builds an e-graph from term, repeatedly applies every rewrite
// in rewrites (in order) until a full sweep changes neither the e-class
// count nor the e-node count, or until maxIter sweeps have run, then
// returns a minimum-size term extracted from term's root class.
//
// The progress criterion is sufficient because AddPattern and Merge are
// the only operations that can change either count. maxIter is an
// independent safety cap: a rule like "x = x+0" would not otherwise
// terminate.
func Saturate(term *Term, rewrites []Rewrite, maxIter int) (*Term, Stats, error) {
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	g := New()
	root := g.AddTerm(term)

	stats := Stats{}
	for i := 0; i < maxIter; i++ {
		stats.Iterations = i + 1
		c0, n0 := g.ClassCount(), g.NodeCount()

		for _, rw := range rewrites {
			for _, m := range g.Ematch(rw.LHS) {
				rhs := g.AddPattern(m.Subst, rw.RHS)
				g.Merge(m.Class, rhs)
			}
		}

		if g.ClassCount() == c0 && g.NodeCount() == n0 {
			stats.Converged = true
			break
		}
	}

	stats.FinalClasses = g.ClassCount()
	stats.FinalNodes = g.NodeCount()

	t, _, err := g.ExtractSmallest(root)
	if err != nil {
		return nil, stats, err
	}
	return t, stats, nil
}
