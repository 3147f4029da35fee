package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"healthplan-backend/internal/plan"
)

type planOptions struct {
	age       string
	lifestyle string
	symptoms  []string
	goals     []string
	count     int
	asJSON    bool
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print a rules-based health plan",
		Long: `Plan runs the deterministic rules engine locally and prints the result.

Symptoms and goals accept comma separated values or repeated flags.`,
		Example: `  healthplan plan --age 70 --lifestyle "desk job" --symptoms fatigue,headache --goals sleep --count 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.age, "age", "", "Age in years")
	flags.StringVar(&opts.lifestyle, "lifestyle", "", "Free-text lifestyle description")
	flags.StringSliceVar(&opts.symptoms, "symptoms", nil, "Symptoms to address")
	flags.StringSliceVar(&opts.goals, "goals", nil, "Health goals")
	flags.IntVar(&opts.count, "count", 0, "Maximum number of suggestions (0 for no cap)")
	flags.BoolVar(&opts.asJSON, "json", false, "Print the plan as JSON")
	return cmd
}

func runPlan(out io.Writer, opts *planOptions) error {
	in := plan.Input{
		Lifestyle: opts.lifestyle,
		Symptoms:  opts.symptoms,
		Goals:     opts.goals,
		Count:     plan.ParseCount(opts.count),
	}
	if strings.TrimSpace(opts.age) != "" {
		in.Age = plan.ParseAge(opts.age)
	}
	p := plan.Generate(in)

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(p)
	}
	return writePlan(out, p)
}

func writePlan(out io.Writer, p plan.Plan) error {
	var b strings.Builder
	b.WriteString(p.Message)
	b.WriteString("\n\nSuggestions:\n")
	for i, s := range p.Suggestions {
		fmt.Fprintf(&b, "  %d. %s: %s\n", i+1, s.Title, s.Detail)
	}
	fmt.Fprintf(&b, "\nTips: %s\n", strings.Join(p.Tips, ", "))
	fmt.Fprintf(&b, "Caution: %s\n", p.Caution)
	_, err := io.WriteString(out, b.String())
	return err
}
