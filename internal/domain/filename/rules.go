// Package filename classifies why a candidate file or folder name is
// unusable on a target platform.
//
// Validation is pure and reports only the first failing rule, checked in
// this order:
//
//  1. illegal characters
//  2. length (in Unicode code points)
//  3. leading or trailing whitespace
//
// Usage:
//
//	if err := filename.Validate(name, filename.Portable); err != nil {
//	    var ferr *filename.Error
//	    if errors.As(err, &ferr) {
//	        switch v := ferr.Violation.(type) {
//	        case filename.IllegalCharacters:
//	            // v.Chars
//	        case filename.InvalidLength:
//	            // v.Length
//	        case filename.LeadingOrTrailingSpace:
//	        }
//	    }
//	}
package filename

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxLength is the component length limit shared by ext4, NTFS and
// FAT32 long names.
const DefaultMaxLength = 255

// Rules is a platform-specific rule set.
type Rules struct {
	// Platform names the rule set in logs and API responses.
	Platform string

	// Illegal lists characters that may not appear anywhere in a name.
	Illegal string

	// RejectControl additionally rejects every rune below U+0020.
	RejectControl bool

	// MinLength and MaxLength bound the name length in code points.
	MinLength int
	MaxLength int

	// RejectSurroundingSpace rejects names whose first or last rune is
	// whitespace.
	RejectSurroundingSpace bool
}

// Built-in rule sets.
var (
	Android = Rules{
		Platform:               "android",
		Illegal:                "/\x00",
		MinLength:              1,
		MaxLength:              DefaultMaxLength,
		RejectSurroundingSpace: true,
	}

	Windows = Rules{
		Platform:               "windows",
		Illegal:                `\/:*?"<>|`,
		RejectControl:          true,
		MinLength:              1,
		MaxLength:              DefaultMaxLength,
		RejectSurroundingSpace: true,
	}

	Portable = Rules{
		Platform:               "portable",
		Illegal:                `\/:*?"<>|`,
		RejectControl:          true,
		MinLength:              1,
		MaxLength:              DefaultMaxLength,
		RejectSurroundingSpace: true,
	}
)

// RulesFor returns the built-in rule set for a platform name.
func RulesFor(platform string) (Rules, error) {
	switch strings.ToLower(platform) {
	case Android.Platform:
		return Android, nil
	case Windows.Platform:
		return Windows, nil
	case Portable.Platform, "":
		return Portable, nil
	default:
		return Rules{}, fmt.Errorf("unknown filename platform %q (want android, windows or portable)", platform)
	}
}

// Platforms lists the names accepted by RulesFor.
func Platforms() []string {
	return []string{Android.Platform, Windows.Platform, Portable.Platform}
}

// Check returns the first violation of r by name, or nil if name is usable.
func (r Rules) Check(name string) Violation {
	if illegal := r.illegalIn(name); illegal != "" {
		return IllegalCharacters{Chars: illegal}
	}

	n := utf8.RuneCountInString(name)
	if n < r.MinLength || (r.MaxLength > 0 && n > r.MaxLength) {
		return InvalidLength{Length: n, Min: r.MinLength, Max: r.MaxLength}
	}

	if r.RejectSurroundingSpace && hasSurroundingSpace(name) {
		return LeadingOrTrailingSpace{}
	}

	return nil
}

// Validate checks name against rules and returns a *Error describing the
// first violation, or nil.
func Validate(name string, rules Rules) error {
	if v := rules.Check(name); v != nil {
		return &Error{Name: name, Violation: v}
	}
	return nil
}

// illegalIn returns the distinct illegal runes of name in order of first
// appearance.
func (r Rules) illegalIn(name string) string {
	var (
		b    strings.Builder
		seen map[rune]bool
	)
	for _, c := range name {
		if !r.isIllegal(c) || seen[c] {
			continue
		}
		if seen == nil {
			seen = make(map[rune]bool)
		}
		seen[c] = true
		b.WriteRune(c)
	}
	return b.String()
}

func (r Rules) isIllegal(c rune) bool {
	if r.RejectControl && c < 0x20 {
		return true
	}
	return strings.ContainsRune(r.Illegal, c)
}

func hasSurroundingSpace(name string) bool {
	if name == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(name)
	last, _ := utf8.DecodeLastRuneInString(name)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}
