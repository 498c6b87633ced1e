// Package schema defines the keys of a document type.
//
// A Key binds a canonical name and a storage alias to a value type from a
// types.Registry, together with a parameter bag built from the type's
// defaults overlaid with per-key options. A Schema is append-only: every
// Define call checks that the new name and alias do not collide with any
// existing name or alias, in either direction.
//
//	s := schema.New()
//	s.MustDefine("title", types.KindString,
//	    schema.WithAlias("t"),
//	    schema.Required(),
//	    schema.WithLength(1, 10),
//	)
//
//	key, ok := s.Resolve("t") // by alias or name
//
// Definition errors (DuplicateKeyError, DuplicateAliasError,
// types.UnknownTypeError) describe defects in calling code. MustDefine
// panics on them.
package schema
