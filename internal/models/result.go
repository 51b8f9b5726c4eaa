package models

// URLFeatures holds the lexical and structural attributes extracted from a URL
type URLFeatures struct {
	URLLength               int    `json:"url_length"`
	HasHTTPS                bool   `json:"has_https"`
	HasIP                   bool   `json:"has_ip"`
	Domain                  string `json:"domain"`
	Subdomain               string `json:"subdomain"`
	Suffix                  string `json:"suffix"`
	SubdomainCount          int    `json:"subdomain_count"`
	AtCount                 int    `json:"at_count"`
	HyphenCount             int    `json:"hyphen_count"`
	UnderscoreCount         int    `json:"underscore_count"`
	SpecialCharsCount       int    `json:"special_chars_count"`
	DotsCount               int    `json:"dots_count"`
	SlashesCount            int    `json:"slashes_count"`
	SuspiciousKeywordsCount int    `json:"suspicious_keywords_count"`
	DomainLength            int    `json:"domain_length"`
	PathLength              int    `json:"path_length"`
	QueryLength             int    `json:"query_length"`
	IsIDN                   bool   `json:"is_idn"`
}

// AnalysisResult is the classifier output for a single URL
type AnalysisResult struct {
	URL             string      `json:"url"`
	IsSafe          bool        `json:"is_safe"`
	RiskLevel       RiskLevel   `json:"risk_level"`
	Score           int         `json:"score"`
	Warnings        []string    `json:"warnings"`
	Recommendations []string    `json:"recommendations"`
	Features        URLFeatures `json:"features"`
}

// NewAnalysisResult returns a result in its initial state: safe, low risk, score 0
func NewAnalysisResult(url string) AnalysisResult {
	return AnalysisResult{
		URL:             url,
		IsSafe:          true,
		RiskLevel:       RiskLow,
		Score:           0,
		Warnings:        []string{},
		Recommendations: []string{},
	}
}
