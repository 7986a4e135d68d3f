// Package query describes entity predicates as data so that every storage
// driver can evaluate or translate the same filter.
package query

import (
	"fmt"
	"strings"
)

// Op is a comparison operator.
type Op int

const (
	// OpEq is exact equality.
	OpEq Op = iota
	// OpEqFold is case-insensitive string equality.
	OpEqFold
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "eq"
	case OpEqFold:
		return "eq_fold"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Cond compares one field against a value.
type Cond struct {
	Field string
	Op    Op
	Value any
}

// Filter is a conjunction of conditions. A nil or empty Filter matches everything.
type Filter []Cond

// All matches every entity.
func All() Filter { return nil }

// Eq matches entities whose field equals v.
func Eq(field string, v any) Filter {
	return Filter{{Field: field, Op: OpEq, Value: v}}
}

// EqFold matches entities whose string field equals v ignoring case.
func EqFold(field, v string) Filter {
	return Filter{{Field: field, Op: OpEqFold, Value: v}}
}

// And returns a filter matching both f and g.
func (f Filter) And(g Filter) Filter {
	out := make(Filter, 0, len(f)+len(g))
	out = append(out, f...)
	return append(out, g...)
}

// Match evaluates the filter against an entity's field values.
// A condition on a field missing from fields never matches.
func (f Filter) Match(fields map[string]any) bool {
	for _, c := range f {
		v, ok := fields[c.Field]
		if !ok {
			return false
		}
		if !c.match(v) {
			return false
		}
	}
	return true
}

func (c Cond) match(v any) bool {
	switch c.Op {
	case OpEq:
		return v == c.Value
	case OpEqFold:
		s, ok := v.(string)
		want, wok := c.Value.(string)
		return ok && wok && strings.EqualFold(s, want)
	default:
		return false
	}
}

func (f Filter) String() string {
	if len(f) == 0 {
		return "all"
	}
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = fmt.Sprintf("%s %s %v", c.Field, c.Op, c.Value)
	}
	return strings.Join(parts, " and ")
}
