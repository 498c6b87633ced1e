// Package types implements the typed values stored in a document's
// attributes together with the registry that maps a kind name to its
// constructor.
//
// Every Value wraps a single field. Assigning input through Set never fails:
// input that cannot be converted to the declared kind leaves the value nil,
// deferring any complaint to validation.
//
// # Kinds
//
// Scalar kinds:
//   - Boolean   – nil stays nil, bool is kept, everything else is true
//   - String    – textual representation of the input
//   - Integer   – int64, tracks an increment delta
//   - Float     – float64, tracks an increment delta
//   - Decimal   – shopspring decimal, tracks an increment delta
//   - Time      – time.Time from time values, unix timestamps or date strings
//   - ObjectID  – bson.ObjectID from ids or legal hex strings
//
// Collection kinds:
//   - Array – ordered, duplicates allowed
//   - Set   – unordered, deduplicated
//
// Collections remember the value they were loaded with and the elements
// pushed and pulled since then. ChangedBy reports whether the current state
// is explained by those incremental edits (ChangedByModifier) or has to be
// treated as a full replacement (ChangedBySetter).
//
// # Registry
//
// Kinds are looked up through a Registry populated at construction with the
// built-in kinds. Each Type has a parent; Params merges the parameter
// defaults of the whole ancestry with the closest ancestor winning.
//
//	reg := types.NewRegistry()
//	t, err := reg.Lookup(types.KindInteger)
//	if err != nil {
//	    // errors.Is(err, types.ErrUnknownType)
//	}
//	v := t.Create("42")
//	v.Get() // int64(42)
//
// # Concurrency
//
// Values are not safe for concurrent mutation. A Registry is safe for
// concurrent lookups once registration is finished.
package types
