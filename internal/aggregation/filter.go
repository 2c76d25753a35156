package aggregation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AllSentinel disables filtering on an id dimension.
const AllSentinel = "all"

// Criteria narrows a record set. Zero values match everything; every
// populated predicate must hold for a record to pass.
type Criteria struct {
	Period     *Period
	Kind       Kind
	CategoryID string
	AccountID  string
	CardID     string
	// TagIDs matches records carrying at least one of the listed tags.
	TagIDs     []string
	SearchText string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// Filter returns the records that satisfy c, preserving input order.
// The input slice is not modified.
func Filter(records []Record, c Criteria) []Record {
	m := c.matcher()
	out := make([]Record, 0, len(records))
	for i := range records {
		if m.match(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// Matches reports whether a single record satisfies c.
func (c Criteria) Matches(r Record) bool {
	return c.matcher().match(&r)
}

type matcher struct {
	c      Criteria
	tags   map[string]struct{}
	needle string
}

func (c Criteria) matcher() matcher {
	m := matcher{c: c, needle: strings.ToLower(strings.TrimSpace(c.SearchText))}
	if len(c.TagIDs) > 0 {
		m.tags = make(map[string]struct{}, len(c.TagIDs))
		for _, id := range c.TagIDs {
			if id == "" || id == AllSentinel {
				continue
			}
			m.tags[id] = struct{}{}
		}
	}
	return m
}

func (m matcher) match(r *Record) bool {
	c := m.c
	if c.Period != nil && !c.Period.Contains(r.Date) {
		return false
	}
	if c.Kind != "" && string(c.Kind) != AllSentinel && r.Kind != c.Kind {
		return false
	}
	if !matchID(c.CategoryID, r.CategoryID) ||
		!matchID(c.AccountID, r.AccountID) ||
		!matchID(c.CardID, r.CardID) {
		return false
	}
	if c.MinAmount != nil && r.Amount.LessThan(*c.MinAmount) {
		return false
	}
	if c.MaxAmount != nil && r.Amount.GreaterThan(*c.MaxAmount) {
		return false
	}
	if len(m.tags) > 0 && !m.hasAnyTag(r) {
		return false
	}
	if m.needle != "" && !m.textMatches(r) {
		return false
	}
	return true
}

func matchID(want, got string) bool {
	return want == "" || want == AllSentinel || want == got
}

func (m matcher) hasAnyTag(r *Record) bool {
	for _, t := range r.Tags {
		if _, ok := m.tags[t.ID]; ok {
			return true
		}
	}
	return false
}

func (m matcher) textMatches(r *Record) bool {
	if strings.Contains(strings.ToLower(r.Description), m.needle) ||
		strings.Contains(strings.ToLower(r.Notes), m.needle) {
		return true
	}
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t.Name), m.needle) {
			return true
		}
	}
	return false
}
