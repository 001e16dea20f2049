package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-rayzer/internal/ctxlog"
	"github.com/grindlemire/go-rayzer/internal/layout"
)

type splitFlags struct {
	rect   string
	rows   bool
	cols   bool
	strict bool
	names  []string
	tty    bool
}

// NewSplitCommand creates the "split" command.
func NewSplitCommand() *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split (--rows|--cols) TOKEN...",
		Short: "Split a rectangle once and print its children",
		Long: `Split a rectangle into rows or columns sized by the given constraint
tokens and print the resulting children.

The rectangle comes from --rect, or from the terminal size with --tty.
--names binds names to children by position; leave a name empty to skip it.

Examples:
  rayzer split --rect 0,0,100,100 --rows 10 '>=0' 10 --names header,main,footer
  rayzer split --tty --cols 30% :1
  rayzer split --rect 0,0,80,24 --cols 20 20 --strict --json`,

		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd.Context(), cmd.OutOrStdout(), flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.rect, "rect", "", "Rectangle to split as x,y,width,height")
	cmd.Flags().BoolVar(&flags.rows, "rows", false, "Stack children top to bottom")
	cmd.Flags().BoolVar(&flags.cols, "cols", false, "Place children left to right")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail when the constraints leave space unclaimed")
	cmd.Flags().StringSliceVar(&flags.names, "names", nil, "Positional child names, comma separated")
	cmd.Flags().BoolVar(&flags.tty, "tty", false, "Use the terminal size as the rectangle")

	cmd.MarkFlagsMutuallyExclusive("rows", "cols")
	cmd.MarkFlagsOneRequired("rows", "cols")
	cmd.MarkFlagsMutuallyExclusive("rect", "tty")

	return cmd
}

func runSplit(ctx context.Context, out io.Writer, flags *splitFlags, args []string) error {
	logger := ctxlog.FromContext(ctx)

	var rect layout.Rect
	switch {
	case flags.tty:
		w, h := terminalSize(int(os.Stdout.Fd()))
		rect = layout.NewRect(0, 0, float64(w), float64(h))
		logger.Debug("Using terminal size.", "width", w, "height", h)
	case flags.rect != "":
		r, err := parseRect(flags.rect)
		if err != nil {
			return WrapCLIError(ExitInvalidInput, fmt.Sprintf("invalid --rect %q", flags.rect), err)
		}
		rect = r
	default:
		return NewCLIError(ExitInvalidInput, "one of --rect or --tty is required")
	}

	axis := layout.Rows
	if flags.cols {
		axis = layout.Cols
	}

	var opts []layout.SplitOption
	if flags.strict {
		opts = append(opts, layout.Strict())
	}
	if len(flags.names) > 0 {
		opts = append(opts, layout.WithNames(flags.names...))
	}

	root := layout.NewNode(rect.X, rect.Y, rect.Width, rect.Height)
	if _, err := root.Split(axis, tokens(args), opts...); err != nil {
		return WrapCLIError(exitCodeFor(err), "split failed", err)
	}

	rows := flatten("root", root)
	if IsJSONOutput() {
		return writeJSON(out, struct {
			Nodes []nodeJSON `json:"nodes"`
		}{Nodes: rowsJSON(rows)})
	}
	return printRowsText(out, rows)
}

// parseRect parses "x,y,width,height".
func parseRect(s string) (layout.Rect, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return layout.Rect{}, fmt.Errorf("want 4 comma separated numbers, got %d", len(fields))
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return layout.Rect{}, err
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return layout.Rect{}, fmt.Errorf("width and height must not be negative")
	}
	return layout.NewRect(v[0], v[1], v[2], v[3]), nil
}
