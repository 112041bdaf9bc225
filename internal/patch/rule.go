// Package patch applies ordered, regex-based substitution rules to file
// contents. Rules are plain text transforms: no parsing, no syntax awareness,
// and no validation of the rewritten output beyond "did the bytes change".
package patch

import (
	"regexp"
	"strings"
)

// Rule is one immutable substitution: a compiled match pattern and its
// replacement template. Templates use regexp expansion syntax (${1}).
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply runs the rule over content and returns the rewritten text.
// Content without a match is returned unchanged.
func (r Rule) Apply(content string) string {
	return r.Pattern.ReplaceAllString(content, r.Replacement)
}

// Matches reports whether the rule's pattern occurs anywhere in content.
func (r Rule) Matches(content string) bool {
	return r.Pattern.MatchString(content)
}

// RuleSet is an ordered sequence of rules behind an optional guard.
// When Guard is non-empty and already present in the content as a plain
// substring, no rule runs. The guard is a textual proxy for "already
// patched", so it can both under- and over-trigger; that is accepted.
type RuleSet struct {
	Guard string
	Rules []Rule
}

// Apply runs every rule in order and reports whether the content changed.
// The guard is checked once, against the original content only.
func (rs RuleSet) Apply(content string) (string, bool) {
	if rs.Guard != "" && strings.Contains(content, rs.Guard) {
		return content, false
	}

	patched := content
	for _, rule := range rs.Rules {
		patched = rule.Apply(patched)
	}

	return patched, patched != content
}
