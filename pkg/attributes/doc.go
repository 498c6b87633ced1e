// Package attributes holds the typed values of one document together with
// its change history.
//
// Build walks the schema in definition order and adopts, for every key, the
// input entry stored under its alias, else the entry stored under its name,
// else the key's default. Keys that were not found under their alias are
// reported by NewKeys, since they must be written under the alias on the
// next persist; input entries matching no name or alias are reported by
// RemovedKeys. Both lists describe the load and are never recomputed.
//
// Write records the value a field had at load time the first time the field
// changes; later writes keep that first recorded value.
//
//	store := attributes.Build(s, map[string]any{"t": "Hello", "junk": 1})
//	store.NewKeys()     // keys filled from defaults or names
//	store.RemovedKeys() // ["junk"]
//	_ = store.Write("title", "Bye")
//	store.Changes()     // {"title": ["Hello", "Bye"]}
package attributes
