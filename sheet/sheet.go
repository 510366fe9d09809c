// Package sheet layers rule-based selection on top of stylecs: a
// StyleSheet holds style rules selected by element id or classes and
// gated on interaction state, and resolves the effective style for an
// element by merging matching rules under the element's own components.
package sheet

import (
	"context"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"stylecs"
)

// ID tags an element with a unique identifier. Not inherited.
type ID string

var idName = stylecs.MustPrivateName("id")

func (ID) StyleName() stylecs.Name { return idName }
func (ID) Inherited() bool         { return false }

// Classes tags an element with class names. Not inherited.
type Classes []string

var classesName = stylecs.MustPrivateName("classes")

func (Classes) StyleName() stylecs.Name { return classesName }
func (Classes) Inherited() bool         { return false }

// Clone deep-copies the class list.
func (c Classes) Clone() Classes { return slices.Clone(c) }

// Merge unions both class lists, keeping c's order and appending the
// classes only other has.
func (c Classes) Merge(other Classes) Classes {
	merged := slices.Clone(c)
	for _, class := range other {
		if !slices.Contains(merged, class) {
			merged = append(merged, class)
		}
	}
	return merged
}

// State captures an element's interaction state.
type State struct {
	// Hovered reports whether the pointer is over the element.
	Hovered bool
	// Focused reports whether the element has keyboard focus.
	Focused bool
	// Active reports whether the element is actively engaged, such as a
	// button being depressed.
	Active bool
}

// Selector picks the elements a Rule applies to, by ID or by classes.
type Selector struct {
	kind    selectorKind
	id      string
	classes []string
}

type selectorKind uint8

const (
	selectByID selectorKind = iota
	selectByClasses
)

// SelectID matches elements whose ID component equals id.
func SelectID(id string) Selector {
	return Selector{kind: selectByID, id: id}
}

// SelectClasses matches elements via the class index.
func SelectClasses(classes ...string) Selector {
	return Selector{kind: selectByClasses, classes: classes}
}

// ID returns the selected id when the selector matches by id.
func (s Selector) ID() (string, bool) {
	return s.id, s.kind == selectByID
}

// Classes returns the selected classes when the selector matches by
// class names.
func (s Selector) Classes() ([]string, bool) {
	return s.classes, s.kind == selectByClasses
}

// String renders the selector in CSS-like notation: "#id" or
// ".class.other".
func (s Selector) String() string {
	if s.kind == selectByID {
		return "#" + s.id
	}
	var b strings.Builder
	for _, class := range s.classes {
		b.WriteByte('.')
		b.WriteString(class)
	}
	return b.String()
}

// Rule pairs a selector and optional state conditions with the style to
// apply when they match.
type Rule struct {
	// Selector picks the elements this rule applies to.
	Selector Selector
	// Hovered, Focused and Active, when set, gate the rule on the
	// matching State field. Only the first set condition is consulted.
	Hovered *bool
	Focused *bool
	Active  *bool
	// Style holds the components the rule contributes.
	Style stylecs.Style
}

// ForID returns a rule selecting by element id.
func ForID(id string) Rule {
	return Rule{Selector: SelectID(id)}
}

// ForClasses returns a rule selecting by class names.
func ForClasses(classes ...string) Rule {
	return Rule{Selector: SelectClasses(classes...)}
}

func boolCondition(v bool) *bool { return &v }

// WhenHovered gates the rule on the element being hovered.
func (r Rule) WhenHovered() Rule { r.Hovered = boolCondition(true); return r }

// WhenNotHovered gates the rule on the element not being hovered.
func (r Rule) WhenNotHovered() Rule { r.Hovered = boolCondition(false); return r }

// WhenFocused gates the rule on the element being focused.
func (r Rule) WhenFocused() Rule { r.Focused = boolCondition(true); return r }

// WhenNotFocused gates the rule on the element not being focused.
func (r Rule) WhenNotFocused() Rule { r.Focused = boolCondition(false); return r }

// WhenActive gates the rule on the element being active.
func (r Rule) WhenActive() Rule { r.Active = boolCondition(true); return r }

// WhenNotActive gates the rule on the element not being active.
func (r Rule) WhenNotActive() Rule { r.Active = boolCondition(false); return r }

// WithStyle passes the rule's current style through fn and stores the
// result.
func (r Rule) WithStyle(fn func(stylecs.Style) stylecs.Style) Rule {
	r.Style = fn(r.Style)
	return r
}

// String renders the rule's selector and conditions in CSS-like
// notation, such as "#save_button:hover".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector.String())
	condition := func(v *bool, name string) {
		if v == nil {
			return
		}
		b.WriteByte(':')
		if !*v {
			b.WriteString("not-")
		}
		b.WriteString(name)
	}
	condition(r.Hovered, "hover")
	condition(r.Focused, "focus")
	condition(r.Active, "active")
	return b.String()
}

// Applies reports whether the rule's state conditions hold. Conditions
// are checked in hovered, focused, active order and the first one set
// decides; a rule with no conditions always applies.
func (r Rule) Applies(state State) bool {
	if r.Hovered != nil {
		return *r.Hovered == state.Hovered
	}
	if r.Focused != nil {
		return *r.Focused == state.Focused
	}
	if r.Active != nil {
		return *r.Active == state.Active
	}
	return true
}

// StyleSheet is an ordered collection of rules with id and class
// indexes. Rules pushed later take priority over earlier ones.
type StyleSheet struct {
	rules []Rule

	rulesByID    map[string][]int
	rulesByClass map[string][]int
}

// NewStyleSheet returns an empty sheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{
		rulesByID:    make(map[string][]int),
		rulesByClass: make(map[string][]int),
	}
}

// Len returns the number of rules.
func (s *StyleSheet) Len() int { return len(s.rules) }

// Rules returns the rules in push order. Read-only.
func (s *StyleSheet) Rules() []Rule { return s.rules }

// Push appends rule to the sheet and indexes its selector.
func (s *StyleSheet) Push(rule Rule) {
	index := len(s.rules)
	switch rule.Selector.kind {
	case selectByID:
		s.rulesByID[rule.Selector.id] = append(s.rulesByID[rule.Selector.id], index)
	case selectByClasses:
		for _, class := range rule.Selector.classes {
			s.rulesByClass[class] = append(s.rulesByClass[class], index)
		}
	}
	s.rules = append(s.rules, rule)
}

// With is the builder form of Push.
func (s *StyleSheet) With(rule Rule) *StyleSheet {
	s.Push(rule)
	return s
}

// EffectiveStyleFor resolves the style for an element. Any ID and
// Classes components in style select candidate rules; each matching,
// applicable rule's style is merged beneath the element's own
// components, later-pushed rules first, so explicit components always
// win and higher-priority rules fill gaps before lower-priority ones.
func (s *StyleSheet) EffectiveStyleFor(style stylecs.Style, state State) stylecs.Style {
	matched := make(map[int]struct{})
	if id, ok := stylecs.Get[ID](&style); ok {
		for _, index := range s.rulesByID[string(id)] {
			matched[index] = struct{}{}
		}
	}
	if classes, ok := stylecs.Get[Classes](&style); ok {
		for _, class := range classes {
			for _, index := range s.rulesByClass[class] {
				matched[index] = struct{}{}
			}
		}
	}

	indexes := make([]int, 0, len(matched))
	for index := range matched {
		indexes = append(indexes, index)
	}
	slices.Sort(indexes)
	for i := len(indexes) - 1; i >= 0; i-- {
		rule := &s.rules[indexes[i]]
		if rule.Applies(state) {
			style = style.MergedWith(rule.Style)
		}
	}
	return style
}

// MergeWith combines two sheets into a new one whose rules from s take
// priority over other's.
func (s *StyleSheet) MergeWith(other *StyleSheet) *StyleSheet {
	combined := NewStyleSheet()
	combined.rules = make([]Rule, 0, len(s.rules)+len(other.rules))
	combined.rules = append(combined.rules, other.rules...)
	combined.rules = append(combined.rules, s.rules...)

	for key, indexes := range other.rulesByID {
		combined.rulesByID[key] = slices.Clone(indexes)
	}
	for key, indexes := range other.rulesByClass {
		combined.rulesByClass[key] = slices.Clone(indexes)
	}
	offset := len(other.rules)
	for key, indexes := range s.rulesByID {
		for _, index := range indexes {
			combined.rulesByID[key] = append(combined.rulesByID[key], index+offset)
		}
	}
	for key, indexes := range s.rulesByClass {
		for _, index := range indexes {
			combined.rulesByClass[key] = append(combined.rulesByClass[key], index+offset)
		}
	}
	return combined
}

// ResolveAll resolves the effective style for every element
// concurrently. The sheet is only read, and each result slot is written
// by exactly one goroutine, so no locking is needed.
func (s *StyleSheet) ResolveAll(ctx context.Context, elements []stylecs.Style, state State) ([]stylecs.Style, error) {
	results := make([]stylecs.Style, len(elements))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), max(len(elements), 1)))
	for i, element := range elements {
		i, element := i, element
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = s.EffectiveStyleFor(element, state)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
