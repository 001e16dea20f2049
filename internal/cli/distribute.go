package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-rayzer/internal/constraint"
	"github.com/grindlemire/go-rayzer/internal/ctxlog"
	"github.com/grindlemire/go-rayzer/internal/distribute"
)

type distributeFlags struct {
	strict bool
}

// NewDistributeCommand creates the "distribute" command.
func NewDistributeCommand() *cobra.Command {
	flags := &distributeFlags{}

	cmd := &cobra.Command{
		Use:   "distribute BUDGET TOKEN...",
		Short: "Distribute a budget across constraints",
		Long: `Distribute BUDGET across the given constraint tokens and print one part
per constraint. Unclaimed space is printed as an extra leftover part
unless a minimum absorbs it or --strict is set.

Examples:
  rayzer distribute 100 10 '>=5' 25% :1
  rayzer distribute 100 10 10 --strict
  rayzer distribute 80 '<=30' :1 --json`,

		Args: cobra.MinimumNArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistribute(cmd.Context(), cmd.OutOrStdout(), flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail when the constraints leave space unclaimed")

	return cmd
}

func runDistribute(ctx context.Context, out io.Writer, flags *distributeFlags, args []string) error {
	logger := ctxlog.FromContext(ctx)

	budget, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return WrapCLIError(ExitInvalidInput, fmt.Sprintf("invalid budget %q", args[0]), err)
	}

	cs, err := constraint.ParseAll(tokens(args[1:])...)
	if err != nil {
		return WrapCLIError(ExitInvalidInput, "invalid constraint", err)
	}

	mode := distribute.Tolerant
	if flags.strict {
		mode = distribute.Strict
	}

	parts, err := distribute.Constraints(budget, cs, mode)
	if err != nil {
		return WrapCLIError(exitCodeFor(err), "distribution failed", err)
	}
	logger.Debug("Distributed budget.", "budget", budget, "constraints", len(cs), "parts", len(parts))

	if IsJSONOutput() {
		return printDistributionJSON(out, budget, cs, parts)
	}
	return printDistributionText(out, cs, parts)
}

// tokens converts command line arguments into parser inputs.
func tokens(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

type partJSON struct {
	Constraint string  `json:"constraint,omitempty"`
	Kind       string  `json:"kind"`
	Size       float64 `json:"size"`
}

func printDistributionJSON(out io.Writer, budget float64, cs []constraint.Constraint, parts []float64) error {
	result := struct {
		Budget float64    `json:"budget"`
		Parts  []partJSON `json:"parts"`
	}{
		Budget: budget,
		Parts:  make([]partJSON, 0, len(parts)),
	}
	for i, p := range parts {
		if i < len(cs) {
			result.Parts = append(result.Parts, partJSON{Constraint: cs[i].String(), Kind: cs[i].Kind().String(), Size: p})
		} else {
			result.Parts = append(result.Parts, partJSON{Kind: "leftover", Size: p})
		}
	}
	return writeJSON(out, result)
}

// printDistributionText prints an aligned table:
//
//	#  CONSTRAINT  KIND      SIZE
//	0  10          fixed     10
//	1  :1          ratio     90
func printDistributionText(out io.Writer, cs []constraint.Constraint, parts []float64) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCONSTRAINT\tKIND\tSIZE")
	for i, p := range parts {
		token, kind := "-", "leftover"
		if i < len(cs) {
			token, kind = cs[i].String(), cs[i].Kind().String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, token, kind, formatFloat(p))
	}
	return w.Flush()
}
