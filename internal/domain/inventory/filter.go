package inventory

import "github.com/andrescamacho/outpost-go/internal/domain/catalog"

// Rule allows or denies an item name, or every item of a category when
// IsCategory is set
type Rule struct {
	Name       string
	Allowed    bool
	IsCategory bool
}

// ItemFilter is an ordered allow/deny list; the first matching rule wins
type ItemFilter struct {
	AllowedByDefault bool
	rules            []Rule
}

// NewItemFilter creates a filter with no rules
func NewItemFilter(allowedByDefault bool) *ItemFilter {
	return &ItemFilter{AllowedByDefault: allowedByDefault}
}

// Rules returns a copy of the rules in evaluation order
func (f *ItemFilter) Rules() []Rule {
	out := make([]Rule, len(f.rules))
	copy(out, f.rules)
	return out
}

// IsAllowed evaluates the rules for an item name and category
func (f *ItemFilter) IsAllowed(name string, category catalog.Category) bool {
	for _, rule := range f.rules {
		if rule.IsCategory {
			if rule.Name == string(category) {
				return rule.Allowed
			}
			continue
		}
		if rule.Name == name {
			return rule.Allowed
		}
	}
	return f.AllowedByDefault
}

// IsItemAllowed evaluates the rules for a catalog record
func (f *ItemFilter) IsItemAllowed(item catalog.ItemData) bool {
	return f.IsAllowed(item.Name, item.Category)
}

// AddOrUpdateRule overwrites the first rule with the same name in place, kind
// included, or appends a new one. Returns true when a rule was appended.
func (f *ItemFilter) AddOrUpdateRule(name string, allowed, isCategory bool) bool {
	for i := range f.rules {
		if f.rules[i].Name == name {
			f.rules[i].Allowed = allowed
			f.rules[i].IsCategory = isCategory
			return false
		}
	}
	f.rules = append(f.rules, Rule{Name: name, Allowed: allowed, IsCategory: isCategory})
	return true
}

// RemoveRule deletes the first rule with the given name
func (f *ItemFilter) RemoveRule(name string) bool {
	for i, rule := range f.rules {
		if rule.Name == name {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return true
		}
	}
	return false
}

// ClearRules removes every rule
func (f *ItemFilter) ClearRules() {
	f.rules = nil
}

// SetAllowedByDefault changes the verdict when no rule matches
func (f *ItemFilter) SetAllowedByDefault(allowed bool) {
	f.AllowedByDefault = allowed
}

// AllowOnly resets the filter to deny everything except the given names
func (f *ItemFilter) AllowOnly(names ...string) {
	f.AllowedByDefault = false
	f.rules = nil
	for _, name := range names {
		f.AddOrUpdateRule(name, true, false)
	}
}

// DenyAll resets the filter to reject everything
func (f *ItemFilter) DenyAll() {
	f.AllowOnly()
}
