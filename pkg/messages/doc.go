// Package messages provides a translation catalog for validation failures.
//
// A Catalog holds one nested message tree per language, loaded from YAML or
// JSON files whose top-level keys are language codes:
//
//	en:
//	  validation:
//	    required: "is required"
//	    between: "must be between %{min} and %{max}"
//
// Keys use dot notation ("validation.between") and templates use named
// placeholders filled from the values of a failure. English messages for all
// built-in validators are embedded; Load and LoadDir layer custom files over
// them.
//
// # Usage
//
//	catalog, err := messages.New(ctx, messages.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//	if err := catalog.LoadDir(ctx, "./locales"); err != nil {
//	    return err
//	}
//	msg := catalog.T("de", "validation.between", map[string]any{"min": 1, "max": 10})
//
// Catalog implements validation.Translator, so a report can be rendered with
// report.Localize(catalog, lang).
package messages
