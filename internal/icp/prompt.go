package icp

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/icp-autopilot/internal/model"
)

const sampleLimit = 10

// buildPrompt summarizes the batch into a RevOps analysis request with a
// strict JSON output contract.
func buildPrompt(records []model.EnrichedRecord) string {
	var b strings.Builder

	b.WriteString("You are an expert RevOps analyst. Analyze this enriched user data and identify 3 distinct Ideal Customer Profiles (ICPs).\n\n")

	b.WriteString("Data Summary:\n")
	fmt.Fprintf(&b, "- Total users: %d\n", len(records))
	fmt.Fprintf(&b, "- Industries: %s\n", strings.Join(distinctIndustries(records), ", "))
	fmt.Fprintf(&b, "- Seniorities: %s\n", strings.Join(distinctSeniorities(records), ", "))
	fmt.Fprintf(&b, "- Company sizes: %s\n", strings.Join(distinctSizes(records), ", "))
	fmt.Fprintf(&b, "- Funding stages: %s\n", strings.Join(distinctFundings(records), ", "))
	fmt.Fprintf(&b, "- Average engagement: %d%%\n\n", averageEngagement(records))

	b.WriteString("Sample data:\n")
	for i, r := range records {
		if i >= sampleLimit {
			break
		}
		fmt.Fprintf(&b, "- %s at %s (%s, %s, %s) - Engagement: %d%%\n",
			r.Title, r.Company, r.CompanySize, r.Industry, r.FundingStage, r.Engagement)
	}

	b.WriteString(`
Return ONLY a valid JSON object with this exact structure (no markdown, no explanation):
{
  "icps": [
    {
      "name": "ICP Name",
      "confidence": 85,
      "tags": ["tag1", "tag2", "tag3", "tag4"],
      "whyPerforms": "Detailed explanation of why this segment performs well",
      "whoToDeprioritize": "Who to avoid in this segment"
    }
  ]
}

Requirements:
1. Identify 3 ICPs ranked by confidence (highest first)
2. Confidence scores between 75-95
3. Each ICP should have 4-6 tags
4. Focus on actionable insights
5. Be specific and data-driven`)

	return b.String()
}

func averageEngagement(records []model.EnrichedRecord) int {
	sum := 0
	for _, r := range records {
		sum += r.Engagement
	}
	return int(math.Round(float64(sum) / float64(len(records))))
}

func distinctIndustries(records []model.EnrichedRecord) []string {
	return distinct(records, func(r model.EnrichedRecord) string { return r.Industry })
}

func distinctSeniorities(records []model.EnrichedRecord) []string {
	return distinct(records, func(r model.EnrichedRecord) string { return string(r.Seniority) })
}

func distinctSizes(records []model.EnrichedRecord) []string {
	return distinct(records, func(r model.EnrichedRecord) string { return string(r.CompanySize) })
}

func distinctFundings(records []model.EnrichedRecord) []string {
	return distinct(records, func(r model.EnrichedRecord) string { return string(r.FundingStage) })
}

// distinct collects unique values in first-encountered order.
func distinct(records []model.EnrichedRecord, key func(model.EnrichedRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
