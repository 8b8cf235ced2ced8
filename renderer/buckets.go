package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/simm"
)

// BucketsMarkdown renders the net amount per bucket of one risk class.
// 'view' names the bucket numbering, e.g. "SIMM" or "CRIF".
func BucketsMarkdown(rc simm.RiskClass, view string, net map[string]simm.Money) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s net sensitivities per %s bucket\n\n", rc, view)
	if len(net) == 0 {
		fmt.Fprintln(&b, "No sensitivities.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Bucket | Net Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, bucket := range simm.Buckets(net) {
		name := bucket
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", cell(name), net[bucket].SignedString())
	}
	return b.String()
}
