package model

// Seniority buckets a contact's role level.
type Seniority string

const (
	SeniorityCLevel   Seniority = "C-Level"
	SeniorityVP       Seniority = "VP"
	SeniorityDirector Seniority = "Director"
	SeniorityManager  Seniority = "Manager"
	SeniorityIC       Seniority = "Individual Contributor"
	SenioritySenior   Seniority = "Senior"
	SeniorityUnknown  Seniority = "Unknown"
)

// CompanySize buckets a company's employee count.
type CompanySize string

const (
	SizeTiny       CompanySize = "1-50"
	SizeSmall      CompanySize = "51-200"
	SizeMid        CompanySize = "201-1000"
	SizeLarge      CompanySize = "1001-5000"
	SizeEnterprise CompanySize = "5000+"
	SizeUnknown    CompanySize = "Unknown"
)

// FundingStage describes how a company is funded.
type FundingStage string

const (
	FundingSeed         FundingStage = "Seed"
	FundingSeriesA      FundingStage = "Series A"
	FundingSeriesB      FundingStage = "Series B"
	FundingSeriesC      FundingStage = "Series C"
	FundingPublic       FundingStage = "Public"
	FundingBootstrapped FundingStage = "Bootstrapped"
	FundingUnknown      FundingStage = "Unknown"
)

// EnrichedRecord is one enriched contact, keyed by email address. Fields that
// the enrichment lookup could not resolve carry the "Unknown" sentinel rather
// than being absent.
type EnrichedRecord struct {
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Company      string       `json:"company"`
	Title        string       `json:"title"`
	Seniority    Seniority    `json:"seniority"`
	CompanySize  CompanySize  `json:"companySize"`
	Industry     string       `json:"industry"`
	FundingStage FundingStage `json:"fundingStage"`
	Technologies []string     `json:"technologies,omitempty"`
	LinkedInURL  string       `json:"linkedinUrl,omitempty"`
	Engagement   int          `json:"engagement"`
}

// ICPSegment is one ranked ideal-customer-profile segment. An analysis run
// produces exactly three, ranked descending by confidence, with IsTop set on
// the first.
type ICPSegment struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Confidence        int      `json:"confidence"`
	Tags              []string `json:"tags"`
	WhyPerforms       string   `json:"whyPerforms"`
	WhoToDeprioritize string   `json:"whoToDeprioritize"`
	IsTop             bool     `json:"isTop,omitempty"`
}
