package model

// Action is one suggested go-to-market step.
type Action struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ActionSection groups related actions by the team that owns them.
type ActionSection struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Actions []Action `json:"actions"`
}

// ActionCatalog is the fixed set of suggested go-to-market actions presented
// after an analysis run. Activation flags in AppState key off these IDs.
var ActionCatalog = []ActionSection{
	{
		ID:    "sales",
		Title: "Sales",
		Actions: []Action{
			{ID: "sales-1", Title: "Update lead scoring model", Description: "Prioritize your top ICP segment with 2x weight in your CRM scoring algorithm"},
			{ID: "sales-2", Title: "Create targeted outreach sequences", Description: "Build personalized email sequences for each ICP segment with relevant case studies"},
			{ID: "sales-3", Title: "Train sales team on ICP insights", Description: "Schedule training sessions to align team on new ICP priorities and objection handling"},
		},
	},
	{
		ID:    "marketing",
		Title: "Marketing",
		Actions: []Action{
			{ID: "marketing-1", Title: "Launch ICP-specific ad campaigns", Description: "Create LinkedIn and Google Ads targeting your highest-confidence segments"},
			{ID: "marketing-2", Title: "Develop segment-specific content", Description: "Produce whitepapers and case studies tailored to each ICP's pain points"},
			{ID: "marketing-3", Title: "Optimize website messaging", Description: "Update homepage and landing pages to speak directly to top ICP segments"},
		},
	},
	{
		ID:    "product",
		Title: "Product",
		Actions: []Action{
			{ID: "product-1", Title: "Prioritize enterprise features", Description: "Fast-track features most requested by your top ICP segment"},
			{ID: "product-2", Title: "Create ICP-specific onboarding", Description: "Build customized onboarding flows for each high-value segment"},
			{ID: "product-3", Title: "Develop segment analytics", Description: "Add tracking to measure engagement and success metrics by ICP"},
		},
	},
	{
		ID:    "revops",
		Title: "RevOps",
		Actions: []Action{
			{ID: "revops-1", Title: "Update CRM segmentation", Description: "Tag all contacts with their ICP classification for better reporting"},
			{ID: "revops-2", Title: "Create ICP dashboards", Description: "Build executive dashboards showing performance metrics by ICP segment"},
			{ID: "revops-3", Title: "Implement ICP-based routing", Description: "Route high-value ICP leads to senior sales reps automatically"},
		},
	},
}

// AllActionIDs returns every action ID in the catalog, in display order.
func AllActionIDs() []string {
	var ids []string
	for _, section := range ActionCatalog {
		for _, a := range section.Actions {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// ValidActionID reports whether id names an action in the catalog.
func ValidActionID(id string) bool {
	for _, section := range ActionCatalog {
		for _, a := range section.Actions {
			if a.ID == id {
				return true
			}
		}
	}
	return false
}
