package document

// State is the validity of a document.
type State int

const (
	Unvalidated State = iota
	Valid
	Invalid
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unvalidated"
	}
}
