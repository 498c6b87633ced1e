// Package validation composes validators into runnable units and collects
// their failures.
//
// A Validation binds one validator to one or more attribute names and a
// prepared parameter bag. A Chain runs an ordered list of units (validations
// or nested chains), either stopping at the first failing unit or running
// all of them, and can be gated on the presence or absence of attributes.
// Failures are appended to the target's Report: under the attribute name for
// single-attribute validations, under ModelKey otherwise.
//
// Assembly errors (unknown validator, wrong arity, malformed parameters) are
// returned by New and Chain.Add; a failing value is never an error.
//
// # Usage
//
//	title := validation.MustNew(validator.Presence, nil, "title")
//	size := validation.MustNew(validator.Length, types.Params{"length": validator.Between(1, 10)}, "title")
//
//	chain := validation.NewChain()
//	if err := chain.Add(title, size); err != nil {
//	    return err
//	}
//	ok := chain.Run(doc)
//	if !ok {
//	    for key, failures := range doc.Failures().List() {
//	        // ...
//	    }
//	}
package validation
