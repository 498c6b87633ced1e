package document

import (
	"log/slog"

	"github.com/dmitrymomot/docmodel/pkg/attributes"
	"github.com/dmitrymomot/docmodel/pkg/logger"
	"github.com/dmitrymomot/docmodel/pkg/schema"
	"github.com/dmitrymomot/docmodel/pkg/types"
	"github.com/dmitrymomot/docmodel/pkg/validation"
	"github.com/dmitrymomot/docmodel/pkg/validator"
)

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. Models log nothing by default.
func WithLogger(log *slog.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.logger = log
		}
	}
}

// WithTypes resolves key kinds through reg.
func WithTypes(reg *types.Registry) Option {
	return func(m *Model) {
		if reg != nil {
			m.types = reg
		}
	}
}

// WithValidators resolves validator names through reg.
func WithValidators(reg *validator.Registry) Option {
	return func(m *Model) {
		if reg != nil {
			m.validators = reg
		}
	}
}

// WithCollection sets the storage collection. It defaults to the model name.
func WithCollection(name string) Option {
	return func(m *Model) {
		if name != "" {
			m.collection = name
		}
	}
}

// keyRules are the validations generated from one key's options, in the
// order they run.
var keyRules = []struct {
	param     string
	validator string
}{
	{types.ParamRequired, validator.Presence},
	{types.ParamLength, validator.Length},
	{types.ParamFormat, validator.Format},
	{types.ParamIn, validator.Inclusion},
	{types.ParamNotIn, validator.Exclusion},
}

// Model describes a kind of document.
type Model struct {
	name       string
	collection string
	types      *types.Registry
	validators *validator.Registry
	logger     *slog.Logger

	schema    *schema.Schema
	keyChains []*validation.Chain
	units     []validation.Unit
}

// NewModel creates a model without keys. The collection defaults to the name.
func NewModel(name string, opts ...Option) *Model {
	m := &Model{
		name:       name,
		collection: name,
		types:      types.Default(),
		validators: validator.Default(),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.schema = schema.New(schema.WithRegistry(m.types))
	return m
}

// Name returns the model name used in logs and as the default collection.
func (m *Model) Name() string { return m.name }

// Collection returns the MongoDB collection documents are stored in.
func (m *Model) Collection() string { return m.collection }

// Schema returns the key definitions.
func (m *Model) Schema() *schema.Schema { return m.schema }

// Logger returns the model logger.
func (m *Model) Logger() *slog.Logger { return m.logger }

// Types returns the registry keys are resolved against.
func (m *Model) Types() *types.Registry { return m.types }

// Validators returns the registry validations are resolved against.
func (m *Model) Validators() *validator.Registry { return m.validators }

// Key defines a key and the validations its options ask for. Nothing is
// added when the definition or one of its validations is invalid.
func (m *Model) Key(name string, kind types.Kind, opts ...schema.KeyOption) (*schema.Key, error) {
	key, err := m.schema.Prepare(name, kind, opts...)
	if err != nil {
		return nil, m.definitionError(err, name)
	}
	chain, err := m.keyChain(key)
	if err != nil {
		return nil, m.definitionError(err, name)
	}
	if err := m.schema.Add(key); err != nil {
		return nil, m.definitionError(err, name)
	}
	if chain.Len() > 0 {
		m.keyChains = append(m.keyChains, chain)
	}
	return key, nil
}

// MustKey is like Key but panics on definition errors.
func (m *Model) MustKey(name string, kind types.Kind, opts ...schema.KeyOption) *Model {
	if _, err := m.Key(name, kind, opts...); err != nil {
		panic(err)
	}
	return m
}

func (m *Model) keyChain(key *schema.Key) (*validation.Chain, error) {
	chain := validation.NewChain()
	params := key.Params()
	for _, rule := range keyRules {
		value, ok := params[rule.param]
		if !ok || value == nil || value == false {
			continue
		}
		p := types.Params{rule.param: value}
		if msg, ok := params[validator.ParamMessage]; ok {
			p[validator.ParamMessage] = msg
		}
		v, err := validation.NewFrom(m.validators, rule.validator, p, key.Name())
		if err != nil {
			return nil, err
		}
		if err := chain.Add(v); err != nil {
			return nil, err
		}
	}
	return chain, nil
}

// Validates declares a validation of the named validator over attrs.
func (m *Model) Validates(name string, params types.Params, attrs ...string) error {
	v, err := validation.NewFrom(m.validators, name, params, attrs...)
	if err != nil {
		return m.definitionError(err, attrs...)
	}
	return m.Validate(v)
}

// Validate declares validations or chains. Every attribute they read must
// be a key of the model.
func (m *Model) Validate(units ...validation.Unit) error {
	// Add rejects nil units
	if err := validation.NewChain().Add(units...); err != nil {
		return m.definitionError(err)
	}
	for _, u := range units {
		for _, attr := range u.Attributes() {
			if _, ok := m.schema.Key(attr); !ok {
				return m.definitionError(unknownAttribute(m.name, attr), attr)
			}
		}
	}
	m.units = append(m.units, units...)
	return nil
}

// MustValidates is like Validates but panics on definition errors.
func (m *Model) MustValidates(name string, params types.Params, attrs ...string) *Model {
	if err := m.Validates(name, params, attrs...); err != nil {
		panic(err)
	}
	return m
}

func (m *Model) definitionError(err error, fields ...string) error {
	m.logger.Error("invalid model definition",
		logger.Model(m.name),
		logger.Fields(fields),
		logger.Error(err),
	)
	return err
}

// Chain returns the model chain: every key chain followed by the declared
// validations, run without stopping at failures.
func (m *Model) Chain() *validation.Chain {
	chain := validation.NewChain(validation.WithStopOnFailure(false))
	for _, kc := range m.keyChains {
		chain.MustAdd(kc)
	}
	chain.MustAdd(m.units...)
	return chain
}

// New builds a document that has not been stored.
func (m *Model) New(raw map[string]any) *Document {
	return m.build(raw, false)
}

// Load builds a document from stored data.
func (m *Model) Load(raw map[string]any) *Document {
	return m.build(raw, true)
}

func (m *Model) build(raw map[string]any, persisted bool) *Document {
	store := attributes.Build(m.schema, raw)
	if removed := store.RemovedKeys(); len(removed) > 0 {
		m.logger.Debug("unknown keys dropped",
			logger.Model(m.name),
			logger.Fields(removed),
		)
	}
	return &Document{
		model:     m,
		attrs:     store,
		report:    validation.NewReport(),
		persisted: persisted,
	}
}
