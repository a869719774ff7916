package rules

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMemberCategory = errors.New("unknown member category")

// MemberCategory decides how long a member may keep a copy.
type MemberCategory string

const (
	CategoryUnspecified MemberCategory = ""
	CategoryStudent     MemberCategory = "Student"
	CategoryFaculty     MemberCategory = "Faculty"
)

// ParseMemberCategory is case-insensitive. An empty string yields CategoryUnspecified.
func ParseMemberCategory(s string) (MemberCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CategoryUnspecified, nil
	case "student":
		return CategoryStudent, nil
	case "faculty":
		return CategoryFaculty, nil
	default:
		return CategoryUnspecified, fmt.Errorf("%w: %q", ErrUnknownMemberCategory, s)
	}
}

// IsSpecified reports whether c is one of the known categories.
func (c MemberCategory) IsSpecified() bool {
	return c == CategoryStudent || c == CategoryFaculty
}
