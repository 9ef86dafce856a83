package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"eqsat/internal/egraph"
	"eqsat/internal/ruleset"
	"eqsat/internal/sexpr"
)

var (
	runTerm    string
	runRules   string
	runMaxIter int
	runFormat  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Saturate a term under a rule set and extract the smallest equivalent term",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runTerm, "term", "", "term to saturate, as an S-expression (required)")
	runCmd.Flags().StringVar(&runRules, "rules", "", "path to a rule file (lhs -> rhs per line); falls back to a built-in demonstration rule set if omitted")
	runCmd.Flags().IntVar(&runMaxIter, "max-iter", egraph.DefaultMaxIter, "maximum number of saturation sweeps")
	runCmd.Flags().StringVar(&runFormat, "format", "sexpr", "output format: sexpr or json")
}

// runResult is the JSON shape for --format json.
type runResult struct {
	RunID      string `json:"run_id"`
	Term       string `json:"term"`
	Size       int    `json:"size"`
	Iterations int    `json:"iterations"`
	Converged  bool   `json:"converged"`
	Classes    int    `json:"classes"`
	Nodes      int    `json:"nodes"`
}

func runRun(cmd *cobra.Command, args []string) error {
	if runTerm == "" {
		return fmt.Errorf("--term is required")
	}

	termSrc, err := sexpr.ParseTerm(runTerm)
	if err != nil {
		return fmt.Errorf("parsing --term: %w", err)
	}

	var rewrites []egraph.Rewrite
	if runRules != "" {
		rewrites, err = ruleset.Load(runRules)
		if err != nil {
			return err
		}
	} else {
		rewrites = builtinDemoRules()
	}

	runID := uuid.NewString()
	start := time.Now()

	term := toEGraphTerm(termSrc)
	extracted, stats, err := egraph.Saturate(term, rewrites, runMaxIter)
	if err != nil {
		return fmt.Errorf("saturating: %w", err)
	}

	elapsed := time.Since(start)
	printed := sexpr.PrintTerm(toSexprTerm(extracted))

	switch runFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runResult{
			RunID:      runID,
			Term:       printed,
			Size:       termSize(extracted),
			Iterations: stats.Iterations,
			Converged:  stats.Converged,
			Classes:    stats.FinalClasses,
			Nodes:      stats.FinalNodes,
		})
	default:
		fmt.Println(printed)
	}

	fmt.Fprintf(os.Stderr, "run %s: %s sweeps, %s e-classes, %s e-nodes, converged=%v, took %s\n",
		runID, humanize.Comma(int64(stats.Iterations)), humanize.Comma(int64(stats.FinalClasses)),
		humanize.Comma(int64(stats.FinalNodes)), stats.Converged, elapsed)
	return nil
}

func termSize(t *egraph.Term) int {
	size := 1
	for _, c := range t.Children {
		size += termSize(c)
	}
	return size
}

// builtinDemoRules is the fixed example used when no --rules file is
// given: the strength-reduction rule set that turns (/ (* a 2) 2) into a.
func builtinDemoRules() []egraph.Rewrite {
	mustPattern := func(src string) *egraph.Pattern {
		p, err := sexpr.ParsePattern(src)
		if err != nil {
			panic(fmt.Sprintf("egraph: invalid built-in pattern %q: %v", src, err))
		}
		return toEGraphPattern(p)
	}
	rule := func(lhs, rhs string) egraph.Rewrite {
		return egraph.Rewrite{Name: lhs + " -> " + rhs, LHS: mustPattern(lhs), RHS: mustPattern(rhs)}
	}
	return []egraph.Rewrite{
		rule("(* ?x 2)", "(<< ?x 1)"),
		rule("(/ (* ?x ?y) ?z)", "(* ?x (/ ?y ?z))"),
		rule("(/ ?x ?x)", "1"),
		rule("(* ?x 1)", "?x"),
	}
}

func toEGraphTerm(t *sexpr.Term) *egraph.Term {
	children := make([]*egraph.Term, len(t.Children))
	for i, c := range t.Children {
		children[i] = toEGraphTerm(c)
	}
	return &egraph.Term{Op: t.Op, Children: children}
}

func toSexprTerm(t *egraph.Term) *sexpr.Term {
	children := make([]*sexpr.Term, len(t.Children))
	for i, c := range t.Children {
		children[i] = toSexprTerm(c)
	}
	return &sexpr.Term{Op: t.Op, Children: children}
}

func toEGraphPattern(p *sexpr.Pattern) *egraph.Pattern {
	if p.IsVar {
		return egraph.PatternVar(p.Var)
	}
	children := make([]*egraph.Pattern, len(p.Children))
	for i, c := range p.Children {
		children[i] = toEGraphPattern(c)
	}
	return egraph.PatternNode(p.Op, children...)
}
