package grammar

import (
	"bytes"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// RuleSet is a set of productions of a single grammar, ordered by serial
// number. Filter queries accumulate their active productions into a RuleSet.
//
// A RuleSet is not safe for concurrent modification.
type RuleSet struct {
	set *treeset.Set
}

// We need this for sets of productions. It sorts productions by serial number.
func productionComparator(p1, p2 interface{}) int {
	return utils.IntComparator(p1.(*Production).Serial, p2.(*Production).Serial)
}

// NewRuleSet creates a rule set, optionally with initial productions.
func NewRuleSet(prods ...*Production) *RuleSet {
	rs := &RuleSet{set: treeset.NewWith(productionComparator)}
	rs.Add(prods...)
	return rs
}

// Add adds productions to the set.
func (rs *RuleSet) Add(prods ...*Production) {
	for _, p := range prods {
		if p != nil {
			rs.set.Add(p)
		}
	}
}

// AddAll adds all productions of another set.
func (rs *RuleSet) AddAll(other *RuleSet) {
	if other == nil {
		return
	}
	it := other.set.Iterator()
	for it.Next() {
		rs.set.Add(it.Value())
	}
}

// Contains is true if p is a member of the set.
func (rs *RuleSet) Contains(p *Production) bool {
	if rs == nil || p == nil {
		return false
	}
	return rs.set.Contains(p)
}

// Size returns the number of productions in the set.
func (rs *RuleSet) Size() int {
	if rs == nil {
		return 0
	}
	return rs.set.Size()
}

// Empty is true for a set without productions.
func (rs *RuleSet) Empty() bool {
	return rs.Size() == 0
}

// Values returns the productions of the set, ordered by serial number.
func (rs *RuleSet) Values() []*Production {
	if rs == nil {
		return nil
	}
	prods := make([]*Production, 0, rs.set.Size())
	it := rs.set.Iterator()
	for it.Next() {
		prods = append(prods, it.Value().(*Production))
	}
	return prods
}

// Difference returns the productions of rs which are not contained in other.
func (rs *RuleSet) Difference(other *RuleSet) []*Production {
	var diff []*Production
	for _, p := range rs.Values() {
		if !other.Contains(p) {
			diff = append(diff, p)
		}
	}
	return diff
}

// Equals is true if both sets contain the same productions.
func (rs *RuleSet) Equals(other *RuleSet) bool {
	if rs.Size() != other.Size() {
		return false
	}
	return len(rs.Difference(other)) == 0
}

func (rs *RuleSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, p := range rs.Values() {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(" }")
	return b.String()
}
