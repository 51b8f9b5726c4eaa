package analyzer

// Signal weights added to the risk score on the heuristic path.
const (
	WeightLongURL        = 10
	WeightNoHTTPS        = 20
	WeightIPAddress      = 25
	WeightManySubdomains = 10
	WeightPerKeyword     = 8
	WeightHomoglyph      = 40
	WeightTyposquat      = 35

	LongURLThreshold    = 100
	SubdomainCountLimit = 2
)

// Fixed scores for the terminal branches.
const (
	KnownPhishingScore = 95
	KnownSafeScore     = 5
	FailureScore       = 100
)

const (
	msgKnownPhishing  = "Domain is on the list of known phishing domains"
	msgLongURL        = "URL is unusually long (may be suspicious)"
	msgNoHTTPS        = "URL does not use HTTPS (insecure)"
	msgIPAddress      = "URL uses an IP address instead of a domain name"
	msgManySubdomains = "Unusually high number of subdomains"
	msgKeywordsFmt    = "Contains %d suspicious keyword(s) in the path/query"
	msgHomoglyph      = "Domain contains look-alike characters (homoglyphs)"
	msgTyposquatFmt   = "Domain is similar to a known domain: %s"
	msgFailureFmt     = "Error analyzing URL: %v"

	recAvoidPhishing = "Avoid this link entirely"
	recKnownSafe     = "Domain is known and safe"
	recHighRisk      = "Avoid this link - very high risk"
	recMediumRisk    = "Be cautious with this link - medium risk"
	recLowRisk       = "The link looks relatively safe"
	recFailure       = "Unable to analyze the link - avoid it"
)
