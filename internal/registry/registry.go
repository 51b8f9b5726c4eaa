// Package registry holds the known-safe and known-phishing domain lists.
//
// A Registry is built once from the built-in lists plus any entries loaded
// from an external file, and is read-only afterwards. It is safe for
// concurrent use without locking.
package registry

// Lists is the on-disk shape of the domain list file
type Lists struct {
	Safe     []string `json:"safe"`
	Phishing []string `json:"phishing"`
}

// BuiltinSafe is the default set of trusted registrable domains.
// Order matters: typosquat checks walk it front to back.
var BuiltinSafe = []string{
	"google.com",
	"facebook.com",
	"twitter.com",
	"linkedin.com",
	"github.com",
	"stackoverflow.com",
	"wikipedia.org",
}

// BuiltinPhishing is the default set of known-malicious registrable domains
var BuiltinPhishing = []string{
	"faceb00k.com",
	"twiter.com",
	"linkedln.com",
	"githup.com",
	"stackoverfl0w.com",
}

// Registry answers exact, case-sensitive membership queries
type Registry struct {
	safe      map[string]struct{}
	safeOrder []string
	phishing  map[string]struct{}
	phishList []string
}

// New builds a registry from the built-in lists unioned with extra.
// A domain present in both lists is treated as phishing only.
func New(extra ...Lists) *Registry {
	r := &Registry{
		safe:     make(map[string]struct{}),
		phishing: make(map[string]struct{}),
	}

	phishing := append([]string{}, BuiltinPhishing...)
	safe := append([]string{}, BuiltinSafe...)
	for _, l := range extra {
		phishing = append(phishing, l.Phishing...)
		safe = append(safe, l.Safe...)
	}

	for _, d := range phishing {
		if d == "" {
			continue
		}
		if _, ok := r.phishing[d]; ok {
			continue
		}
		r.phishing[d] = struct{}{}
		r.phishList = append(r.phishList, d)
	}

	for _, d := range safe {
		if d == "" {
			continue
		}
		if _, ok := r.phishing[d]; ok {
			continue
		}
		if _, ok := r.safe[d]; ok {
			continue
		}
		r.safe[d] = struct{}{}
		r.safeOrder = append(r.safeOrder, d)
	}

	return r
}

// IsKnownSafe reports whether domain is on the safe list
func (r *Registry) IsKnownSafe(domain string) bool {
	_, ok := r.safe[domain]
	return ok
}

// IsKnownPhishing reports whether domain is on the phishing list
func (r *Registry) IsKnownPhishing(domain string) bool {
	_, ok := r.phishing[domain]
	return ok
}

// SafeDomains returns the safe list in insertion order
func (r *Registry) SafeDomains() []string {
	out := make([]string, len(r.safeOrder))
	copy(out, r.safeOrder)
	return out
}

// PhishingDomains returns the phishing list in insertion order
func (r *Registry) PhishingDomains() []string {
	out := make([]string, len(r.phishList))
	copy(out, r.phishList)
	return out
}

// Counts returns the sizes of the safe and phishing lists
func (r *Registry) Counts() (safe, phishing int) {
	return len(r.safeOrder), len(r.phishList)
}
