package main

import "github.com/sells-group/icp-autopilot/internal/model"

func segmentsForTest(top string) []model.ICPSegment {
	return []model.ICPSegment{
		{ID: "icp-1", Name: top, Confidence: 92, Tags: []string{"a", "b", "c", "d"}, IsTop: true},
		{ID: "icp-2", Name: "Mid-Market Growth Companies", Confidence: 85, Tags: []string{"a", "b", "c", "d"}},
		{ID: "icp-3", Name: "Enterprise Decision Makers", Confidence: 78, Tags: []string{"a", "b", "c", "d"}},
	}
}
