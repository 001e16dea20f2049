package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/grindlemire/go-rayzer/internal/layout"
)

// IsJSONOutput reports whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type rectJSON struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type nodeJSON struct {
	Path  string   `json:"path"`
	Names []string `json:"names,omitempty"`
	Kind  string   `json:"kind"`
	Depth int      `json:"depth"`
	Rect  rectJSON `json:"rect"`
}

// nodeRow is one printable node of a layout tree.
type nodeRow struct {
	path  string
	names []string
	depth int
	node  *layout.Node
}

// segment names node within its parent: its first bound name, or its index.
func segment(node *layout.Node) string {
	if parent := node.Parent(); parent != nil {
		if names := parent.NamesOf(node); len(names) > 0 {
			return names[0]
		}
	}
	return strconv.Itoa(node.Index())
}

// flatten lists root and its descendants in depth-first order with their
// slash-separated paths.
func flatten(rootName string, root *layout.Node) []nodeRow {
	var rows []nodeRow
	paths := map[*layout.Node]string{root: rootName}
	_ = layout.Walk(root, func(node *layout.Node, depth int) error {
		path := paths[node]
		var names []string
		if parent := node.Parent(); parent != nil && depth > 0 {
			path = paths[parent] + "/" + segment(node)
			paths[node] = path
			names = parent.NamesOf(node)
		}
		rows = append(rows, nodeRow{path: path, names: names, depth: depth, node: node})
		return nil
	})
	return rows
}

func rowsJSON(rows []nodeRow) []nodeJSON {
	out := make([]nodeJSON, 0, len(rows))
	for _, r := range rows {
		rect := r.node.Rect()
		out = append(out, nodeJSON{
			Path:  r.path,
			Names: r.names,
			Kind:  r.node.Kind().String(),
			Depth: r.depth,
			Rect:  rectJSON{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height},
		})
	}
	return out
}

// printRowsText prints an aligned table of nodes:
//
//	PATH         KIND           NAMES   RECT
//	page         row-container          [0, 0, 100, 100]
//	page/header  leaf           header  [0, 0, 100, 10]
func printRowsText(out io.Writer, rows []nodeRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tKIND\tNAMES\tRECT")
	for _, r := range rows {
		names := strings.Join(r.names, ",")
		if names == "" {
			names = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.path, r.node.Kind(), names, r.node.Rect())
	}
	return w.Flush()
}
