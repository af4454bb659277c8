// Package heuristic derives activation and context triggers from the free
// text of an agent profile. Every function here is pure.
package heuristic

import (
	"strings"
	"unicode/utf8"

	"github.com/lucaschallamel/BMAD-METHOD/internal/descriptor"
)

// minFragmentLen is the shortest whenToUse fragment kept as a trigger.
const minFragmentLen = 4

// ContextRule maps a keyword found in a role definition to a context tag.
type ContextRule struct {
	Keyword string
	Tag     string
}

// ContextRules are evaluated in order; output follows this order.
var ContextRules = []ContextRule{
	{Keyword: "architecture", Tag: "system-design-needed"},
	{Keyword: "development", Tag: "implementation-required"},
	{Keyword: "testing", Tag: "quality-assurance-needed"},
}

// ExtractTriggers splits the lowercased whenToUse text on commas, semicolons
// and periods, keeps trimmed fragments of at least four characters, appends
// the explicit keywords, and removes duplicates keeping the first occurrence.
func ExtractTriggers(p descriptor.Profile) []string {
	var triggers []string

	if p.WhenToUse != "" {
		triggers = append(triggers, SplitFragments(strings.ToLower(p.WhenToUse))...)
	}
	triggers = append(triggers, p.Keywords...)

	return dedupe(triggers)
}

// SplitFragments splits text on ',', ';' and '.', trims each piece and drops
// pieces shorter than four characters.
func SplitFragments(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '.'
	})
	var out []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) >= minFragmentLen {
			out = append(out, part)
		}
	}
	return out
}

// ExtractContextTriggers returns the tag of every ContextRule whose keyword
// appears in the role definition. Matching is case-sensitive.
func ExtractContextTriggers(p descriptor.Profile) []string {
	tags := []string{}
	if p.RoleDefinition == "" {
		return tags
	}
	for _, rule := range ContextRules {
		if strings.Contains(p.RoleDefinition, rule.Keyword) {
			tags = append(tags, rule.Tag)
		}
	}
	return tags
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
