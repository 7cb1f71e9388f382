package lint

import "strings"

// IgnoreToken suppresses rule-engine warnings on the line that carries
// it. It is matched case-insensitively anywhere in the raw line,
// including inside comment text.
const IgnoreToken = "ignore-warning"

func hasIgnoreToken(rawLine string) bool {
	return strings.Contains(strings.ToLower(rawLine), IgnoreToken)
}
