// Package enrich resolves firmographic profiles for email addresses and
// drives batch enrichment.
package enrich

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/icp-autopilot/internal/model"
	"github.com/sells-group/icp-autopilot/pkg/fullenrich"
)

// Pools for the synthetic profile generator. The lookup fallback draws
// uniformly from these so demo output stays plausible without credentials.
var (
	mockCompanies = []string{
		"Acme Corp", "TechStart Inc", "Global Solutions", "Innovation Labs",
		"Enterprise Co", "DataFlow Systems", "CloudScale", "NextGen Analytics",
	}
	mockTitles = []string{
		"CEO", "VP Sales", "Director of Marketing", "Product Manager",
		"Head of Growth", "CTO", "VP Operations", "Director of RevOps",
	}
	mockSeniorities = []model.Seniority{
		model.SeniorityCLevel, model.SeniorityVP, model.SeniorityDirector,
		model.SeniorityManager, model.SenioritySenior,
	}
	mockSizes = []model.CompanySize{
		model.SizeTiny, model.SizeSmall, model.SizeMid, model.SizeLarge, model.SizeEnterprise,
	}
	mockIndustries = []string{
		"Technology", "Finance", "Healthcare", "Retail", "Manufacturing", "SaaS", "E-commerce",
	}
	mockFundingStages = []model.FundingStage{
		model.FundingSeed, model.FundingSeriesA, model.FundingSeriesB,
		model.FundingSeriesC, model.FundingPublic, model.FundingBootstrapped,
	}
	mockTechStacks = [][]string{
		{"Salesforce", "HubSpot", "Slack"},
		{"AWS", "Docker", "Kubernetes"},
		{"React", "Node.js", "PostgreSQL"},
		{"Stripe", "Intercom", "Segment"},
		{"Google Analytics", "Mixpanel", "Amplitude"},
	}
)

// Enricher resolves a firmographic profile for a single email address. A nil
// lookup client skips the remote call entirely and always synthesizes.
type Enricher struct {
	client fullenrich.Client
	rng    *rand.Rand
}

// New creates an Enricher. rng may be nil, in which case a time-seeded source
// is used; tests inject a fixed seed for deterministic profiles.
func New(client fullenrich.Client, rng *rand.Rand) *Enricher {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Enricher{client: client, rng: rng}
}

// Enrich resolves a profile for email. Any lookup failure, including transport
// errors and malformed responses, falls back to a synthetic profile; the
// method never fails outward.
func (e *Enricher) Enrich(ctx context.Context, email string) model.EnrichedRecord {
	if e.client != nil {
		resp, err := e.client.Enrich(ctx, email)
		if err == nil {
			return e.fromResponse(email, resp)
		}
		zap.L().Debug("enrich: lookup failed, using synthetic profile",
			zap.String("email", email),
			zap.Error(err),
		)
	}
	return e.synthetic(email)
}

// fromResponse maps a lookup result onto a record, defaulting missing fields
// to the Unknown sentinel.
func (e *Enricher) fromResponse(email string, resp *fullenrich.EnrichResponse) model.EnrichedRecord {
	name := resp.FullName
	if name == "" && (resp.FirstName != "" || resp.LastName != "") {
		name = strings.TrimSpace(resp.FirstName + " " + resp.LastName)
	}
	if name == "" {
		first, last := nameFromEmail(email)
		name = first + " " + last
	}

	rec := model.EnrichedRecord{
		Email:        email,
		Name:         name,
		Company:      resp.Company,
		Title:        resp.Title,
		Seniority:    model.Seniority(resp.Seniority),
		CompanySize:  model.CompanySize(resp.CompanySize),
		Industry:     resp.Industry,
		FundingStage: model.FundingStage(resp.FundingStage),
		Technologies: resp.Technologies,
		LinkedInURL:  resp.LinkedInURL,
	}
	if rec.Company == "" {
		rec.Company = "Unknown"
	}
	if rec.Title == "" {
		rec.Title = "Unknown"
	}
	if rec.Seniority == "" {
		rec.Seniority = model.SeniorityUnknown
	}
	if rec.CompanySize == "" {
		rec.CompanySize = model.SizeUnknown
	}
	if rec.Industry == "" {
		rec.Industry = "Unknown"
	}
	if rec.FundingStage == "" {
		rec.FundingStage = model.FundingUnknown
	}
	return rec
}

// synthetic generates a plausible pseudo-random profile from the address.
func (e *Enricher) synthetic(email string) model.EnrichedRecord {
	first, last := nameFromEmail(email)

	return model.EnrichedRecord{
		Email:        email,
		Name:         first + " " + last,
		Company:      mockCompanies[e.rng.Intn(len(mockCompanies))],
		Title:        mockTitles[e.rng.Intn(len(mockTitles))],
		Seniority:    mockSeniorities[e.rng.Intn(len(mockSeniorities))],
		CompanySize:  mockSizes[e.rng.Intn(len(mockSizes))],
		Industry:     mockIndustries[e.rng.Intn(len(mockIndustries))],
		FundingStage: mockFundingStages[e.rng.Intn(len(mockFundingStages))],
		Technologies: mockTechStacks[e.rng.Intn(len(mockTechStacks))],
		LinkedInURL:  fmt.Sprintf("https://linkedin.com/in/%s-%s", strings.ToLower(first), strings.ToLower(last)),
	}
}

// nameFromEmail derives a first/last name from the local part of an address,
// splitting on "." and title-casing each piece. A single-token local part gets
// the surname "User".
func nameFromEmail(email string) (first, last string) {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	parts := strings.Split(local, ".")

	// Casers are stateful, so build one per call.
	caser := cases.Title(language.English)
	first = caser.String(parts[0])
	last = "User"
	if len(parts) > 1 && parts[1] != "" {
		last = caser.String(parts[1])
	}
	return first, last
}
