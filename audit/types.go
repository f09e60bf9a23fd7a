package audit

import "time"

// Archetype is the detected site category. It drives which integration
// rubric variant applies and how GEO/AEO blend into the overall score.
type Archetype string

const (
	ArchetypeSaaSAPI          Archetype = "saas-api"
	ArchetypeEcommerce        Archetype = "ecommerce"
	ArchetypeLocalBusiness    Archetype = "local-business"
	ArchetypeContentPublisher Archetype = "content-publisher"
	ArchetypeGeneral          Archetype = "general"
)

// Status is the outcome of a single rubric check.
type Status string

const (
	StatusPass    Status = "pass"
	StatusPartial Status = "partial"
	StatusFail    Status = "fail"
)

// PageSnapshot is one already-fetched page, supplied by the crawl layer.
// The audit never re-fetches or mutates it.
type PageSnapshot struct {
	URL      string            `json:"url"`
	HTML     string            `json:"html"`
	Title    string            `json:"title"`
	Headers  map[string]string `json:"headers,omitempty"`
	LoadTime int               `json:"loadTime"` // milliseconds
}

// SiteResources bundles the sitewide files the crawl layer retrieved.
// Any of the texts may be empty when the file was absent.
type SiteResources struct {
	Origin      string `json:"origin"`
	RobotsTxt   string `json:"robotsTxt,omitempty"`
	LLMSTxt     string `json:"llmsTxt,omitempty"`
	LLMSFullTxt string `json:"llmsFullTxt,omitempty"`
	OpenAPIDoc  string `json:"openapiDoc,omitempty"`
}

// Finding is one atomic check result. PageURLs is only populated when the
// finding survived aggregation across more than one page.
type Finding struct {
	Check     string   `json:"check"`
	Status    Status   `json:"status"`
	Detail    string   `json:"detail"`
	Points    int      `json:"points"`
	MaxPoints int      `json:"maxPoints"`
	PageURLs  []string `json:"pageUrls,omitempty"`
}

// CategoryScore rolls one rubric category up into a 0-100 score.
type CategoryScore struct {
	Score           int       `json:"score"`
	Grade           string    `json:"grade"`
	Weight          float64   `json:"weight"`
	Findings        []Finding `json:"findings"`
	Recommendations []string  `json:"recommendations,omitempty"`
}

// ContentProfile holds the eleven fixed content categories that make up
// the GEO dimension. Weights across the eleven sum to 1.0.
type ContentProfile struct {
	ContentStructure   CategoryScore `json:"contentStructure"`
	StructuredData     CategoryScore `json:"structuredData"`
	TopicalAuthority   CategoryScore `json:"topicalAuthority"`
	CitationWorthiness CategoryScore `json:"citationWorthiness"`
	Freshness          CategoryScore `json:"freshness"`
	LanguagePatterns   CategoryScore `json:"languagePatterns"`
	MetaInformation    CategoryScore `json:"metaInformation"`
	TechnicalHealth    CategoryScore `json:"technicalHealth"`
	ContentUniqueness  CategoryScore `json:"contentUniqueness"`
	MultiFormat        CategoryScore `json:"multiFormat"`
	TrustSignals       CategoryScore `json:"trustSignals"`
}

// IntegrationProfile holds the AEO dimension. The category set depends on
// the archetype; iteration order comes from the variant table, not the map.
type IntegrationProfile struct {
	Archetype  Archetype                `json:"archetype"`
	Categories map[string]CategoryScore `json:"categories"`
}

// PageAnalysis is the content profile of a single crawled page.
type PageAnalysis struct {
	URL     string         `json:"url"`
	Title   string         `json:"title"`
	Content ContentProfile `json:"content"`
}

// Priority ranks how urgently a recommendation should be addressed.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Effort estimates the work a recommendation takes.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// Dimension says which half of the audit a recommendation targets.
type Dimension string

const (
	DimensionContent     Dimension = "content"
	DimensionIntegration Dimension = "integration"
)

// Snippet is a ready-to-paste remediation template.
type Snippet struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Label    string `json:"label"`
}

// Recommendation is one ranked remediation action.
type Recommendation struct {
	Category       string    `json:"category"`
	Dimension      Dimension `json:"dimension"`
	Priority       Priority  `json:"priority"`
	Effort         Effort    `json:"effort"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CurrentScore   int       `json:"currentScore"`
	PotentialScore int       `json:"potentialScore"`
	Impact         string    `json:"impact"`
	Snippet        *Snippet  `json:"snippet,omitempty"`
}

// SiteAnalysis is the complete audit result and the serialization contract
// consumed by the report renderer. Built once per run, never mutated.
type SiteAnalysis struct {
	URL             string             `json:"url"`
	AnalyzedAt      time.Time          `json:"analyzedAt"`
	PageCount       int                `json:"pageCount"`
	Archetype       Archetype          `json:"archetype"`
	Pages           []PageAnalysis     `json:"pages"`
	GEOScore        int                `json:"geoScore"`
	GEOGrade        string             `json:"geoGrade"`
	AEOScore        int                `json:"aeoScore"`
	AEOGrade        string             `json:"aeoGrade"`
	OverallScore    int                `json:"overallScore"`
	OverallGrade    string             `json:"overallGrade"`
	Content         ContentProfile     `json:"content"`
	Integration     IntegrationProfile `json:"integration"`
	Recommendations []Recommendation   `json:"recommendations"`
	Insights        string             `json:"insights,omitempty"`
}
