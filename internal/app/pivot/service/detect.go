package pivot_service

import "strings"

// Recognized employee identifier headers. Matching is exact, evaluated
// against columns in position order.
var identifierNames = map[string]bool{
	"Employee Name":        true,
	"Name of the Official": true,
	"Name":                 true,
	"Employee":             true,
}

// columnRule is one heuristic matcher. Rules are explicit so detection
// stays an ordered first-match scan instead of buried fallback chains.
type columnRule func(name string) bool

// firstColumn returns the first column (by position) whose name
// satisfies the rule.
func firstColumn(names []string, rule columnRule) (int, bool) {
	for i, name := range names {
		if rule(name) {
			return i, true
		}
	}
	return 0, false
}

func isIdentifierName(name string) bool {
	return identifierNames[name]
}

func isDivisionName(name string) bool {
	low := strings.ToLower(name)
	return strings.Contains(low, "division") || strings.Contains(low, "unit")
}

// Metadata columns are never counted as courses on the CSV path.
func isMetadataName(name string) bool {
	low := strings.ToLower(name)
	return strings.Contains(low, "s.no") || strings.Contains(low, "employee no") || strings.Contains(low, "emp no")
}

func hasUnnamedPrefix(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "unnamed")
}
