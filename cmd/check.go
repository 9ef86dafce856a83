package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"eqsat/internal/ruleset"
	"eqsat/internal/sexpr"
)

var (
	checkTerm  string
	checkRules string
)

// checkCmd is a thin diagnostic wrapper over internal/sexpr and
// internal/ruleset: it reports syntax errors without running saturation,
// mirroring the teacher's habit of pairing a lightweight diagnostic
// subcommand alongside the command that does the real work.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse a term or rule file and report syntax errors without saturating",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkTerm, "term", "", "term to syntax-check, as an S-expression")
	checkCmd.Flags().StringVar(&checkRules, "rules", "", "path to a rule file to syntax-check")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkTerm == "" && checkRules == "" {
		return fmt.Errorf("one of --term or --rules is required")
	}

	if checkTerm != "" {
		term, err := sexpr.ParseTerm(checkTerm)
		if err != nil {
			return fmt.Errorf("--term: %w", err)
		}
		fmt.Printf("term OK: %s\n", sexpr.PrintTerm(term))
	}

	if checkRules != "" {
		rules, err := ruleset.Load(checkRules)
		if err != nil {
			return fmt.Errorf("--rules: %w", err)
		}
		fmt.Printf("rules OK: %d rule(s) loaded from %s\n", len(rules), checkRules)
	}
	return nil
}
