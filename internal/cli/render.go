package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-rayzer/internal/blueprint"
	"github.com/grindlemire/go-rayzer/internal/ctxlog"
	"github.com/grindlemire/go-rayzer/internal/layout"
)

type renderFlags struct {
	tty bool
}

// NewRenderCommand creates the "render" command.
func NewRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Build layout trees from blueprint files",
		Long: `Load each blueprint (.yaml, .yml, .json, .jsonc or .hcl), build its
layout tree and print every node with its path, kind and rectangle.
Files are loaded concurrently and printed in argument order.

With --tty the root rectangle of every blueprint is replaced by the
terminal size.

Examples:
  rayzer render page.yaml
  rayzer render page.hcl dashboard.jsonc --json
  rayzer render page.yaml --tty`,

		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.tty, "tty", false, "Use the terminal size as every root rectangle")

	return cmd
}

// rendered is one built blueprint.
type rendered struct {
	name string
	path string
	root *layout.Node
}

func runRender(ctx context.Context, out io.Writer, flags *renderFlags, paths []string) error {
	logger := ctxlog.FromContext(ctx)

	var width, height int
	if flags.tty {
		width, height = terminalSize(int(os.Stdout.Fd()))
	}

	results := make([]rendered, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			bp, err := blueprint.Load(gctx, path)
			if err != nil {
				return err
			}
			if flags.tty {
				bp.X, bp.Y = 0, 0
				bp.Width, bp.Height = float64(width), float64(height)
			}
			root, err := blueprint.Build(gctx, bp)
			if err != nil {
				return err
			}
			results[i] = rendered{name: bp.Name, path: path, root: root}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		code := exitCodeFor(err)
		if code == ExitGeneralError {
			code = ExitBlueprintFailed
		}
		return WrapCLIError(code, "render failed", err)
	}
	logger.Debug("Rendered blueprints.", "count", len(results))

	if IsJSONOutput() {
		type blueprintJSON struct {
			Name  string     `json:"name"`
			File  string     `json:"file"`
			Nodes []nodeJSON `json:"nodes"`
		}
		result := struct {
			Blueprints []blueprintJSON `json:"blueprints"`
		}{Blueprints: make([]blueprintJSON, 0, len(results))}
		for _, r := range results {
			result.Blueprints = append(result.Blueprints, blueprintJSON{
				Name:  r.name,
				File:  r.path,
				Nodes: rowsJSON(flatten(r.name, r.root)),
			})
		}
		return writeJSON(out, result)
	}

	for i, r := range results {
		if i > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
		if err := printRowsText(out, flatten(r.name, r.root)); err != nil {
			return err
		}
	}
	return nil
}
