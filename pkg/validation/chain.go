package validation

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/docmodel/pkg/validator"
)

var (
	presence = validator.Default().MustLookup(validator.Presence)
	absence  = validator.Default().MustLookup(validator.Absence)
)

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithStopOnFailure sets whether the chain stops at the first failing unit.
// Chains stop by default.
func WithStopOnFailure(stop bool) ChainOption {
	return func(c *Chain) { c.stopOnFailure = stop }
}

// IfPresent runs the chain only when every named attribute is present.
func IfPresent(attrs ...string) ChainOption {
	return func(c *Chain) { c.ifPresent = append(c.ifPresent, attrs...) }
}

// IfAbsent runs the chain only when every named attribute is absent.
func IfAbsent(attrs ...string) ChainOption {
	return func(c *Chain) { c.ifAbsent = append(c.ifAbsent, attrs...) }
}

// Chain is an ordered, conditionally gated list of units.
type Chain struct {
	units         []Unit
	stopOnFailure bool
	ifPresent     []string
	ifAbsent      []string
}

// NewChain creates an empty chain that stops at the first failure unless
// WithStopOnFailure(false) is given.
func NewChain(opts ...ChainOption) *Chain {
	c := &Chain{stopOnFailure: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends units in order. Nil units and units that contain the chain
// itself are rejected with a *UnitTypeError and nothing is added.
func (c *Chain) Add(units ...Unit) error {
	for _, u := range units {
		switch x := u.(type) {
		case nil:
			return &UnitTypeError{Type: "<nil>", Reason: "unit is nil"}
		case *Validation:
			if x == nil {
				return &UnitTypeError{Type: fmt.Sprintf("%T", u), Reason: "unit is nil"}
			}
		case *Chain:
			if x == nil {
				return &UnitTypeError{Type: fmt.Sprintf("%T", u), Reason: "unit is nil"}
			}
			if x.contains(c) {
				return &UnitTypeError{Type: fmt.Sprintf("%T", u), Reason: "chain cannot contain itself"}
			}
		}
	}
	c.units = append(c.units, units...)
	return nil
}

// MustAdd is like Add but panics on error.
func (c *Chain) MustAdd(units ...Unit) *Chain {
	if err := c.Add(units...); err != nil {
		panic(err)
	}
	return c
}

func (c *Chain) contains(target *Chain) bool {
	if c == target {
		return true
	}
	for _, u := range c.units {
		if nested, ok := u.(*Chain); ok && nested.contains(target) {
			return true
		}
	}
	return false
}

// Units returns a copy of the units in run order.
func (c *Chain) Units() []Unit { return slices.Clone(c.units) }

// Len returns the number of direct units.
func (c *Chain) Len() int { return len(c.units) }

// StopOnFailure reports whether the chain stops at the first failing unit.
func (c *Chain) StopOnFailure() bool { return c.stopOnFailure }

func (c *Chain) unit() {}

// Attributes lists the attributes read by the chain, its conditions
// included, without duplicates.
func (c *Chain) Attributes() []string {
	var out []string
	add := func(names []string) {
		for _, name := range names {
			if !slices.Contains(out, name) {
				out = append(out, name)
			}
		}
	}
	add(c.ifPresent)
	add(c.ifAbsent)
	for _, u := range c.units {
		add(u.Attributes())
	}
	return out
}

// Run evaluates the chain. When a condition does not hold the chain is
// skipped and passes without recording anything. Otherwise units run in
// order and the result is true only if all of them passed.
func (c *Chain) Run(t Target) bool {
	if !c.Applies(t) {
		return true
	}
	ok := true
	for _, u := range c.units {
		if u.Run(t) {
			continue
		}
		ok = false
		if c.stopOnFailure {
			break
		}
	}
	return ok
}

// Applies reports whether the chain's conditions hold for t.
func (c *Chain) Applies(t Target) bool {
	return holds(t, presence, c.ifPresent) && holds(t, absence, c.ifAbsent)
}

func holds(t Target, v validator.Validator, attrs []string) bool {
	for _, name := range attrs {
		value, _ := t.Read(name)
		if !v.Validate(nil, value).Valid {
			return false
		}
	}
	return true
}
