package filename

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which rule a rejected filename broke.
type Kind string

const (
	KindIllegalCharacters      Kind = "illegal_characters"
	KindInvalidLength          Kind = "invalid_length"
	KindLeadingOrTrailingSpace Kind = "leading_or_trailing_space"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindIllegalCharacters, KindInvalidLength, KindLeadingOrTrailingSpace:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Violation is the reason a filename was rejected. The set of
// implementations is closed: IllegalCharacters, InvalidLength and
// LeadingOrTrailingSpace. Switch on the concrete type to reach the payload.
type Violation interface {
	Kind() Kind
	Message() string

	violation()
}

// IllegalCharacters reports the distinct illegal characters found in the
// name, in order of first appearance.
type IllegalCharacters struct {
	Chars string
}

func (IllegalCharacters) Kind() Kind { return KindIllegalCharacters }
func (IllegalCharacters) violation() {}

func (v IllegalCharacters) Message() string {
	quoted := make([]string, 0, len(v.Chars))
	for _, r := range v.Chars {
		quoted = append(quoted, strconv.QuoteRune(r))
	}
	return "contains illegal characters: " + strings.Join(quoted, " ")
}

// InvalidLength reports the measured length of the name and the limits it
// was checked against.
type InvalidLength struct {
	Length int
	Min    int
	Max    int
}

func (InvalidLength) Kind() Kind { return KindInvalidLength }
func (InvalidLength) violation() {}

func (v InvalidLength) Message() string {
	if v.Length < v.Min {
		return fmt.Sprintf("length %d is shorter than the minimum of %d", v.Length, v.Min)
	}
	return fmt.Sprintf("length %d exceeds the maximum of %d", v.Length, v.Max)
}

// LeadingOrTrailingSpace reports a name that starts or ends with whitespace.
type LeadingOrTrailingSpace struct{}

func (LeadingOrTrailingSpace) Kind() Kind { return KindLeadingOrTrailingSpace }
func (LeadingOrTrailingSpace) violation() {}

func (LeadingOrTrailingSpace) Message() string {
	return "must not start or end with whitespace"
}

// Compile-time checks.
var (
	_ Violation = IllegalCharacters{}
	_ Violation = InvalidLength{}
	_ Violation = LeadingOrTrailingSpace{}
)
