// Package validator provides the stateless rule evaluators used by document
// validation: Presence, Absence, Length, Format, Inclusion, Exclusion and
// ValueMatch, plus a Registry that resolves them by name.
//
// A Validator declares how many values it checks (Arity), normalizes and
// checks its parameters once at assembly time (Prepare) and evaluates values
// (Validate). Validate returns a Result carrying the pass/fail flag together
// with an error code, a formatted message and translation metadata, so no
// per-validator error state survives between calls.
//
// # Architecture
//
// Each source file groups one family of validators (`presence.go`,
// `length.go`, `format.go`, `membership.go`, `match.go`). Validators hold no
// mutable state, which makes a Registry safe to share between goroutines.
//
// Core building blocks:
//   - Result     – outcome of a single check with i18n metadata
//   - Validator  – the evaluator contract
//   - Registry   – name → Validator table populated with the built-ins
//   - Range/Enum – membership parameters for Inclusion and Exclusion
//   - Preset     – named formats such as Email or Hex
//
// # Usage
//
//	v, err := validator.Default().Lookup(validator.Length)
//	if err != nil {
//	    // errors.Is(err, validator.ErrUnknownValidator)
//	}
//	params, err := v.Prepare(types.Params{"length": validator.Between(1, 10)})
//	if err != nil {
//	    // malformed parameters are programmer errors
//	}
//	res, err := validator.Check(v, params, "hello")
//	if !res.Valid {
//	    fmt.Println(res.Code, res.Message)
//	}
//
// # Error Handling
//
// Failing values are not errors: they are reported through Result. Go errors
// are reserved for defects in calling code: ArityError, UnknownValidatorError
// and ErrInvalidParams.
package validator
