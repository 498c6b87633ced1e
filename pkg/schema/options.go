package schema

import "github.com/dmitrymomot/docmodel/pkg/types"

// KeyOption configures a key definition.
type KeyOption func(*keyConfig)

type keyConfig struct {
	alias  string
	params types.Params
}

// WithAlias sets the storage identifier. Defaults to the key name.
func WithAlias(alias string) KeyOption {
	return func(c *keyConfig) { c.alias = alias }
}

// Required makes the key generate a presence validation.
func Required() KeyOption {
	return WithParam(types.ParamRequired, true)
}

// WithDefault sets the value adopted when input has no entry for the key.
// A func() any is called once per document.
func WithDefault(v any) KeyOption {
	return WithParam(types.ParamDefault, v)
}

// WithLength limits the length of the value. A negative max means no upper
// bound.
func WithLength(min, max int) KeyOption {
	return WithParam(types.ParamLength, [2]int{min, max})
}

// WithFormat sets a preset, a preset name or a pattern (string or
// *regexp.Regexp).
func WithFormat(format any) KeyOption {
	return WithParam(types.ParamFormat, format)
}

// WithIn restricts values to a range or an enumeration.
func WithIn(in any) KeyOption {
	return WithParam(types.ParamIn, in)
}

// WithNotIn forbids values from a range or an enumeration.
func WithNotIn(notIn any) KeyOption {
	return WithParam(types.ParamNotIn, notIn)
}

// WithParam sets an arbitrary parameter, overriding the type default.
func WithParam(name string, value any) KeyOption {
	return func(c *keyConfig) {
		if c.params == nil {
			c.params = types.Params{}
		}
		c.params[name] = value
	}
}

// Option configures a schema.
type Option func(*Schema)

// WithRegistry resolves key types through reg instead of types.Default().
func WithRegistry(reg *types.Registry) Option {
	return func(s *Schema) {
		if reg != nil {
			s.registry = reg
		}
	}
}
