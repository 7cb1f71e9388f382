package lint

import "fmt"

// ConfigError reports a rule whose pattern failed to compile. It
// surfaces on the rule's first use and fails the whole file's
// inspection; no partial warning list is returned in its place.
type ConfigError struct {
	Rule string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rule %s: invalid pattern: %v", e.Rule, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
