package document

import (
	"log/slog"

	"github.com/dmitrymomot/docmodel/pkg/attributes"
	"github.com/dmitrymomot/docmodel/pkg/logger"
	"github.com/dmitrymomot/docmodel/pkg/types"
	"github.com/dmitrymomot/docmodel/pkg/validation"
)

// IDAlias is the storage identifier of the primary key.
const IDAlias = "_id"

// Document is one record of a Model. It is not safe for concurrent use.
type Document struct {
	model     *Model
	attrs     *attributes.Store
	report    *validation.Report
	state     State
	persisted bool
}

// Model returns the model the document belongs to.
func (d *Document) Model() *Model { return d.model }

// Attributes exposes the attribute store.
func (d *Document) Attributes() *attributes.Store { return d.attrs }

// IsNew reports whether the document has never been stored.
func (d *Document) IsNew() bool { return !d.persisted }

// ID returns the value of the key stored as _id, or nil.
func (d *Document) ID() any {
	key, ok := d.model.schema.ByAlias(IDAlias)
	if !ok {
		return nil
	}
	v, _ := d.attrs.Read(key.Name())
	return v
}

// Get returns the current value of a key.
func (d *Document) Get(name string) (any, error) { return d.attrs.Read(name) }

// Read is Get; it lets validations run against the document.
func (d *Document) Read(name string) (any, error) { return d.attrs.Read(name) }

// Value returns the typed value of a key.
func (d *Document) Value(name string) (types.Value, bool) { return d.attrs.Value(name) }

// Set assigns raw to a key, converting it to the key's type.
func (d *Document) Set(name string, raw any) error {
	return d.mutated(d.attrs.Write(name, raw))
}

// Push appends values to a collection key.
func (d *Document) Push(name string, values ...any) error {
	return d.mutated(d.attrs.Push(name, values...))
}

// Pull removes values from a collection key.
func (d *Document) Pull(name string, values ...any) error {
	return d.mutated(d.attrs.Pull(name, values...))
}

// Increment adds amount to a numeric key; nil adds one.
func (d *Document) Increment(name string, amount any) error {
	return d.mutated(d.attrs.Increment(name, amount))
}

// Restore reverts a key to its load-time value.
func (d *Document) Restore(name string) error {
	return d.mutated(d.attrs.Restore(name))
}

func (d *Document) mutated(err error) error {
	if err == nil {
		d.state = Unvalidated
	}
	return err
}

// Changed lists the keys changed since load.
func (d *Document) Changed() []string { return d.attrs.Changed() }

// IsChanged reports whether a key changed since load.
func (d *Document) IsChanged(name string) bool { return d.attrs.IsChanged(name) }

// Was returns the load-time value of a changed key. The boolean is false
// when the key did not change.
func (d *Document) Was(name string) (any, bool) { return d.attrs.ChangeSet().Before(name) }

// Changes maps changed keys to [before, current] pairs.
func (d *Document) Changes() map[string]attributes.Change { return d.attrs.Changes() }

// NewKeys lists keys that were missing from the input and got their default.
func (d *Document) NewKeys() []string { return d.attrs.NewKeys() }

// RemovedKeys lists input keys the schema does not know.
func (d *Document) RemovedKeys() []string { return d.attrs.RemovedKeys() }

// Failures is the report of the last validation.
func (d *Document) Failures() *validation.Report { return d.report }

// Err returns the failures of the last validation as an error, or nil.
func (d *Document) Err() error { return d.report.Err() }

// State returns the validation state.
func (d *Document) State() State { return d.state }

// Valid reports whether the last validation passed and nothing changed
// since.
func (d *Document) Valid() bool { return d.state == Valid }

// Validate clears the report and runs the model chain.
func (d *Document) Validate() bool {
	d.report.Clear()
	ok := d.model.Chain().Run(d)
	if ok {
		d.state = Valid
	} else {
		d.state = Invalid
	}
	d.model.logger.Debug("document validated",
		logger.Model(d.model.name),
		slog.String("state", d.state.String()),
		logger.Failures(d.report.Len()),
		logger.Fields(d.report.Keys()),
	)
	return ok
}

// Commit marks the current state as stored: the change set, new and removed
// keys and collection baselines are reset.
func (d *Document) Commit() {
	d.attrs.Commit()
	d.persisted = true
}

// Map returns the current values keyed by name.
func (d *Document) Map() map[string]any { return d.attrs.Attributes() }

// Names returns the key names in definition order.
func (d *Document) Names() []string { return d.model.schema.Names() }
