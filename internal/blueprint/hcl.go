package blueprint

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclBlueprint is the HCL shape of a Blueprint. The axis is the split
// block's label:
//
//	split "rows" {
//	  constraints = [10, ">=0", 10]
//	  names       = ["header", "main", "footer"]
//
//	  split "cols" {
//	    target      = "main"
//	    constraints = ["30%"]
//	  }
//	}
type hclBlueprint struct {
	Name   string    `hcl:"name,optional"`
	X      float64   `hcl:"x,optional"`
	Y      float64   `hcl:"y,optional"`
	Width  float64   `hcl:"width"`
	Height float64   `hcl:"height"`
	Split  *hclSplit `hcl:"split,block"`
}

type hclSplit struct {
	Axis        string            `hcl:"axis,label"`
	Target      string            `hcl:"target,optional"`
	Strict      bool              `hcl:"strict,optional"`
	Constraints hcl.Expression    `hcl:"constraints"`
	Names       []string          `hcl:"names,optional"`
	NameAt      map[string]string `hcl:"name_at,optional"`
	Splits      []*hclSplit       `hcl:"split,block"`
}

func decodeHCL(data []byte, filename string) (*Blueprint, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	var raw hclBlueprint
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	bp := &Blueprint{
		Name:   raw.Name,
		X:      raw.X,
		Y:      raw.Y,
		Width:  raw.Width,
		Height: raw.Height,
	}
	if raw.Split != nil {
		split, diags := raw.Split.toSplit()
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
		}
		bp.Split = &split
	}
	return bp, nil
}

func (s *hclSplit) toSplit() (Split, hcl.Diagnostics) {
	out := Split{
		Target: s.Target,
		Axis:   s.Axis,
		Strict: s.Strict,
		Names:  s.Names,
	}

	constraints, diags := constraintValues(s.Constraints)
	out.Constraints = constraints

	if len(s.NameAt) > 0 {
		out.NameAt = make(map[int]string, len(s.NameAt))
		for key, name := range s.NameAt {
			i, err := strconv.Atoi(key)
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid name_at key",
					Detail:   fmt.Sprintf("The name_at key %q must be a child index.", key),
				})
				continue
			}
			out.NameAt[i] = name
		}
	}

	for _, child := range s.Splits {
		split, childDiags := child.toSplit()
		diags = append(diags, childDiags...)
		out.Splits = append(out.Splits, split)
	}
	return out, diags
}

// constraintValues evaluates a constraints expression into numbers and
// token strings.
func constraintValues(expr hcl.Expression) ([]any, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	invalid := func(detail string) hcl.Diagnostics {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid constraints value",
			Detail:   detail,
			Subject:  expr.Range().Ptr(),
		})
	}

	if val.IsNull() || !val.IsKnown() {
		return nil, invalid("The 'constraints' attribute must be a list.")
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, invalid("The 'constraints' attribute must be a list.")
	}

	out := make([]any, 0, val.LengthInt())
	it := val.ElementIterator()
	for it.Next() {
		_, v := it.Element()
		switch {
		case v.IsNull():
			return nil, invalid("Constraints must not be null.")
		case v.Type() == cty.Number:
			f, _ := v.AsBigFloat().Float64()
			out = append(out, f)
		case v.Type() == cty.String:
			out = append(out, v.AsString())
		default:
			return nil, invalid("Each constraint must be a number or a token string.")
		}
	}
	return out, diags
}
