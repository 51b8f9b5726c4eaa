package detect

// TyposquatThreshold is the similarity a candidate must exceed to match
const TyposquatThreshold = 0.8

// Similarity is the Jaccard index of the unique characters of a and b.
// It ignores order and repetition, so anagrams score 1.0.
func Similarity(a, b string) float64 {
	setA := runeSet(a)
	setB := runeSet(b)

	intersection := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// TyposquatDetector compares candidates against an ordered safe list
type TyposquatDetector struct {
	safe []string
}

// NewTyposquatDetector copies safe so later changes by the caller are not seen
func NewTyposquatDetector(safe []string) *TyposquatDetector {
	return &TyposquatDetector{safe: append([]string(nil), safe...)}
}

// FindTyposquat returns the first safe domain that domain resembles.
// Identical strings never match. The first hit in list order wins, not the closest.
func (d *TyposquatDetector) FindTyposquat(domain string) (bool, string) {
	for _, safe := range d.safe {
		if domain != safe && Similarity(domain, safe) > TyposquatThreshold {
			return true, safe
		}
	}
	return false, ""
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
