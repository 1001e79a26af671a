package icp

import (
	"fmt"
	"strings"

	"github.com/sells-group/icp-autopilot/internal/model"
)

// FormatReport renders segments as a plain-text export artifact, one block
// per segment.
func FormatReport(segments []model.ICPSegment) string {
	var b strings.Builder

	b.WriteString("# Ideal Customer Profiles\n\n")
	for i, seg := range segments {
		fmt.Fprintf(&b, "## %d. %s", i+1, seg.Name)
		if seg.IsTop {
			b.WriteString(" (Top ICP)")
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "Confidence: %d%%\n", seg.Confidence)
		fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(seg.Tags, ", "))
		fmt.Fprintf(&b, "Why it performs best:\n%s\n\n", seg.WhyPerforms)
		fmt.Fprintf(&b, "Who to deprioritize:\n%s\n\n", seg.WhoToDeprioritize)
	}

	return b.String()
}
