package analyzer

import "strings"

var knownSchemes = []string{"http://", "https://", "ftp://"}

// EnsureScheme trims input and prefixes "http://" unless it already starts
// with http://, https:// or ftp://. Analyze itself never rewrites its input.
func EnsureScheme(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return input
	}
	for _, s := range knownSchemes {
		if strings.HasPrefix(input, s) {
			return input
		}
	}
	return "http://" + input
}
