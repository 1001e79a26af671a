package icp

import (
	"fmt"
	"math"

	"github.com/sells-group/icp-autopilot/internal/model"
)

// highEngagementFloor bounds the subset the heuristic profiles.
const highEngagementFloor = 70

// fallback derives three segments from in-process statistics when the remote
// analysis is unavailable. Segment 1 profiles the high-engagement subset;
// segments 2 and 3 are fixed templates.
func fallback(records []model.EnrichedRecord) []model.ICPSegment {
	high := highEngagement(records)
	profiled := high
	if len(profiled) == 0 {
		profiled = records
	}

	topIndustry := mostCommon(profiled, func(r model.EnrichedRecord) string { return r.Industry })
	topSeniority := mostCommon(profiled, func(r model.EnrichedRecord) string { return string(r.Seniority) })
	topSize := mostCommon(profiled, func(r model.EnrichedRecord) string { return string(r.CompanySize) })
	topFunding := mostCommon(profiled, func(r model.EnrichedRecord) string { return string(r.FundingStage) })

	highPct := int(math.Round(100 * float64(len(high)) / float64(len(records))))

	segments := []model.ICPSegment{
		{
			Name:       fmt.Sprintf("%s %ss", topIndustry, topSeniority),
			Confidence: 92,
			Tags:       []string{topSeniority, topIndustry, topSize, topFunding, "High Engagement"},
			WhyPerforms: fmt.Sprintf(
				"This segment shows %d%% of your highest-engaged users. %s roles in %s companies demonstrate strong product-market fit with clear budget authority and immediate need for solutions. Their engagement patterns indicate they're actively seeking solutions like yours.",
				highPct, topSeniority, topIndustry),
			WhoToDeprioritize: fmt.Sprintf(
				"Individual contributors and companies outside the %s range show lower conversion potential. Focus on decision-makers with clear authority.",
				topSize),
		},
		{
			Name:              "Mid-Market Growth Companies",
			Confidence:        85,
			Tags:              []string{"Director", "Series A-B", "51-500 employees", "Technology", "Scaling"},
			WhyPerforms:       "Companies in growth phase (Series A-B) with 51-500 employees show strong ROI focus and shorter sales cycles. They have established processes but are still agile enough to adopt new solutions quickly. Strong referral potential within this segment.",
			WhoToDeprioritize: "Early-stage startups without dedicated operations teams or established budgets. They often lack the resources for proper implementation.",
		},
		{
			Name:              "Enterprise Decision Makers",
			Confidence:        78,
			Tags:              []string{"C-Level", "VP", "1000+ employees", "Series C+", "Enterprise"},
			WhyPerforms:       "Large organizations with mature operations show increasing digital transformation initiatives. While sales cycles are longer, deal sizes are significantly larger and retention rates are exceptional. Strong expansion revenue potential.",
			WhoToDeprioritize: "Organizations with rigid legacy systems or those in highly regulated industries without digital transformation budgets.",
		},
	}

	return rank(segments)
}

func highEngagement(records []model.EnrichedRecord) []model.EnrichedRecord {
	var out []model.EnrichedRecord
	for _, r := range records {
		if r.Engagement >= highEngagementFloor {
			out = append(out, r)
		}
	}
	return out
}

// mostCommon returns the modal value, breaking ties by first-encountered
// order.
func mostCommon(records []model.EnrichedRecord, key func(model.EnrichedRecord) string) string {
	counts := make(map[string]int, len(records))
	var order []string
	for _, r := range records {
		k := key(r)
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	best := ""
	for _, k := range order {
		if best == "" || counts[k] > counts[best] {
			best = k
		}
	}
	return best
}
