// Package ruleset loads rewrite rules from a text file into the e-graph
// core's Rewrite type. This is ordinary CLI input plumbing, not the
// e-graph-state persistence the core specification excludes as a
// non-goal: a rule file describes a fixed input to one run, the same way
// a config file or a command-line flag does, and is read with a plain
// os.ReadFile the way the CLI reads any other input.
package ruleset

import (
	"fmt"
	"os"
	"strings"

	"eqsat/internal/egraph"
	"eqsat/internal/sexpr"
)

// Load reads a rule file from path. Each non-blank, non-comment line has
// the form "<lhs s-expr> -> <rhs s-expr>"; lines beginning with '#' (after
// leading whitespace) are comments and blank lines are skipped.
func Load(path string) ([]egraph.Rewrite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file %s: %w", path, err)
	}
	rules, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing rule file %s: %w", path, err)
	}
	return rules, nil
}

// Parse parses rule-file text directly, independent of the filesystem, so
// callers and tests can exercise it without writing a temp file.
func Parse(text string) ([]egraph.Rewrite, error) {
	var rules []egraph.Rewrite
	for lineNo, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lhsSrc, rhsSrc, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("line %d: missing '->' separator: %q", lineNo+1, rawLine)
		}
		lhsSrc = strings.TrimSpace(lhsSrc)
		rhsSrc = strings.TrimSpace(rhsSrc)

		lhs, err := sexpr.ParsePattern(lhsSrc)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing left-hand side: %w", lineNo+1, err)
		}
		rhs, err := sexpr.ParsePattern(rhsSrc)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing right-hand side: %w", lineNo+1, err)
		}

		rules = append(rules, egraph.Rewrite{
			Name: line,
			LHS:  toEGraphPattern(lhs),
			RHS:  toEGraphPattern(rhs),
		})
	}
	return rules, nil
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
