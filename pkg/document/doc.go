// Package document composes the typed attribute engine into records.
//
// A Model owns a schema, the implicit validations generated from key options
// (required, length, format, in, not_in) and the validations declared by the
// caller. A Document is one record of a model: it owns an attribute store
// with its change set, a failure report and a validity state.
//
//	posts := document.NewModel("post", document.WithLogger(log))
//	posts.MustKey("title", types.KindString, schema.Required(), schema.WithLength(1, 10))
//	posts.MustKey("tags", types.KindSet, schema.WithAlias("tg"))
//
//	doc := posts.New(map[string]any{"title": ""})
//	if !doc.Validate() {
//	    fmt.Println(doc.Failures().List()) // title: presence/empty
//	}
//
// Each key's implicit validations run as one chain that stops at its first
// failure, so an empty required title is reported as empty and not as too
// short. The model chain then runs every key chain and every declared
// validation, collecting all failures.
//
// # Lifecycle
//
// A document starts Unvalidated. Validate moves it to Valid or Invalid after
// rebuilding the report from scratch; any later write moves it back to
// Unvalidated.
//
// # Persistence
//
// BSON returns the full stored shape keyed by alias. Update returns the
// update document for the changes since load, using $inc for pure
// increments and $push, $addToSet or $pullAll for collections modified
// element-wise. Commit marks the current state as stored.
package document
