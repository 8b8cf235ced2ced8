// Package renderer renders coordinates and sensitivity netting as markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/simm"
)

// CoordinateMarkdown renders the axes of a coordinate and both of its bucket views.
func CoordinateMarkdown(c simm.Coordinate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Coordinate\n\n")
	fmt.Fprintln(&b, "| Axis | Value |")
	fmt.Fprintln(&b, "|:---|:---|")
	row := func(axis string, value any) {
		fmt.Fprintf(&b, "| %s | %s |\n", axis, cell(fmt.Sprint(value)))
	}
	row("Risk Class", c.RiskClass())
	row("Risk Type", c.RiskType())
	row("Product Class", c.ProductClass())
	row("Qualifier", c.Qualifier())
	row("Tenor", c.Vertex())
	row("Sub-Curve", optional(c.SubCurve()))
	row("Bucket", optional(c.BucketKey()))
	row("CRIF Bucket", optional(c.CrifBucket()))
	row("SIMM Bucket", optional(c.SimmBucket()))
	fmt.Fprintf(&b, "\nHash: `%016x`\n", c.Hash())
	return b.String()
}

// optional renders absent values as "-".
func optional[T comparable](o simm.Optional[T]) string {
	v, ok := o.Get()
	if !ok {
		return "-"
	}
	s := fmt.Sprint(v)
	if s == "" {
		return `""`
	}
	return s
}

// cell escapes pipes so that a value never breaks a table row.
func cell(s string) string {
	if s == "" {
		return " "
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
