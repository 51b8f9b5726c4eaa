// Package features turns a raw URL string into the lexical and structural
// attributes the risk aggregator scores.
package features

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hakim/fahis/internal/models"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// ErrUnparseable is returned when a URL string cannot be parsed at all.
var ErrUnparseable = errors.New("url cannot be parsed")

// SuspiciousKeywords are matched case-insensitively against path and query only.
var SuspiciousKeywords = []string{
	"login", "secure", "account", "verify", "update", "confirm",
	"bank", "paypal", "amazon", "google", "microsoft", "apple",
	"security", "suspended", "limited", "urgent", "immediate",
}

// ipv4Pattern flags any dotted-quad shaped substring. Octet ranges are not checked.
var ipv4Pattern = regexp.MustCompile(`\d+\.\d+\.\d+\.\d+`)

// HostParts is the public-suffix-aware decomposition of a hostname
type HostParts struct {
	Subdomain string
	Domain    string
	Suffix    string
}

// Registrable returns domain + "." + suffix, or the bare domain when there is no suffix
func (h HostParts) Registrable() string {
	if h.Suffix == "" {
		return h.Domain
	}
	return h.Domain + "." + h.Suffix
}

// Extract parses rawURL and computes its features.
// Malformed input yields best-effort fields (empty domain, zero counts).
// Strings net/url rejects are split leniently; ErrUnparseable is returned
// only when even that fails, as with an unclosed IPv6 literal.
func Extract(rawURL string) (models.URLFeatures, error) {
	f := models.URLFeatures{
		URLLength: utf8.RuneCountInString(rawURL),
		HasHTTPS:  strings.HasPrefix(rawURL, "https://"),
		HasIP:     ipv4Pattern.MatchString(rawURL),
	}

	u, err := splitURL(rawURL)
	if err != nil {
		return f, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	host := u.host
	parts := SplitHost(host)

	f.Domain = parts.Registrable()
	f.Subdomain = parts.Subdomain
	f.Suffix = parts.Suffix
	if parts.Subdomain != "" {
		f.SubdomainCount = len(strings.Split(parts.Subdomain, "."))
	}
	f.IsIDN = isIDN(host)

	f.AtCount = strings.Count(rawURL, "@")
	f.HyphenCount = strings.Count(rawURL, "-")
	f.UnderscoreCount = strings.Count(rawURL, "_")
	f.SpecialCharsCount = f.AtCount + f.HyphenCount + f.UnderscoreCount
	f.DotsCount = strings.Count(rawURL, ".")
	f.SlashesCount = strings.Count(rawURL, "/")

	path, query := u.path, u.query
	f.SuspiciousKeywordsCount = CountKeywords(path + query)

	f.DomainLength = utf8.RuneCountInString(f.Domain)
	f.PathLength = utf8.RuneCountInString(path)
	f.QueryLength = utf8.RuneCountInString(query)

	return f, nil
}

// CountKeywords returns how many distinct suspicious keywords occur in s
func CountKeywords(s string) int {
	lower := strings.ToLower(s)
	count := 0
	for _, kw := range SuspiciousKeywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}

// SplitHost decomposes host into subdomain, domain label and ICANN public suffix.
// Case is preserved in the output; suffix lookup uses a lowercased copy.
// IP literals are returned whole as the domain with no suffix.
func SplitHost(host string) HostParts {
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return HostParts{}
	}
	if net.ParseIP(host) != nil {
		return HostParts{Domain: host}
	}

	suffixLen := len(icannSuffix(strings.ToLower(host)))
	if suffixLen == 0 {
		return splitLabels(host, "")
	}
	if suffixLen >= len(host) {
		return HostParts{Suffix: host}
	}

	suffix := host[len(host)-suffixLen:]
	rest := host[:len(host)-suffixLen-1]
	return splitLabels(rest, suffix)
}

// splitLabels takes the last label of rest as the domain, the remainder as subdomain
func splitLabels(rest, suffix string) HostParts {
	i := strings.LastIndexByte(rest, '.')
	if i < 0 {
		return HostParts{Domain: rest, Suffix: suffix}
	}
	return HostParts{
		Subdomain: rest[:i],
		Domain:    rest[i+1:],
		Suffix:    suffix,
	}
}

// icannSuffix returns the ICANN public suffix of name. Private suffixes fall
// back to their ICANN parent; unknown TLDs yield "".
func icannSuffix(name string) string {
	for {
		suffix, icann := publicsuffix.PublicSuffix(name)
		if icann {
			return suffix
		}
		i := strings.IndexByte(suffix, '.')
		if i < 0 {
			return ""
		}
		name = suffix[i+1:]
	}
}

// urlParts holds the pieces of a URL the extractor scores
type urlParts struct {
	host  string
	path  string
	query string
}

// splitURL parses raw with net/url, treating schemeless input such as
// "example.com/x" as an authority. Input net/url rejects goes to lenientSplit.
func splitURL(raw string) (urlParts, error) {
	u, err := url.Parse(raw)
	if err == nil && raw != "" && u.Scheme == "" && u.Host == "" && !strings.HasPrefix(raw, "/") {
		u, err = url.Parse("//" + raw)
	}
	if err != nil {
		return lenientSplit(raw)
	}
	return urlParts{host: u.Hostname(), path: rawPath(u), query: u.RawQuery}, nil
}

// lenientSplit cuts raw into scheme, authority, path and query by their
// delimiters alone. Userinfo and port are dropped from the authority.
func lenientSplit(raw string) (urlParts, error) {
	rest := raw
	if i := strings.Index(rest, "://"); i > 0 && !strings.ContainsAny(rest[:i], "/?#") {
		rest = rest[i+3:]
	} else {
		rest = strings.TrimPrefix(rest, "//")
	}

	authority, tail := rest, ""
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		authority, tail = rest[:i], rest[i:]
	}
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		authority = authority[i+1:]
	}

	host, err := stripPort(authority)
	if err != nil {
		return urlParts{}, err
	}

	tail, _, _ = strings.Cut(tail, "#")
	path, query, _ := strings.Cut(tail, "?")
	return urlParts{host: host, path: path, query: query}, nil
}

// stripPort returns the host of an authority without its port
func stripPort(authority string) (string, error) {
	if strings.HasPrefix(authority, "[") {
		end := strings.IndexByte(authority, ']')
		if end < 0 {
			return "", fmt.Errorf("missing ']' in host %q", authority)
		}
		return authority[1:end], nil
	}
	host, _, _ := strings.Cut(authority, ":")
	return host, nil
}

// rawPath returns the path as written in the URL, without percent-decoding
func rawPath(u *url.URL) string {
	if u.Opaque != "" {
		return u.Opaque
	}
	if u.RawPath != "" {
		return u.RawPath
	}
	return u.Path
}

func isIDN(host string) bool {
	if host == "" {
		return false
	}
	for _, label := range strings.Split(strings.ToLower(host), ".") {
		if strings.HasPrefix(label, "xn--") {
			return true
		}
	}
	ascii, err := idna.Lookup.ToASCII(host)
	return err == nil && ascii != strings.ToLower(host)
}
