// Package validate checks form field constraints.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validatable describes one field value and the constraints it must meet.
// Value is either a string or an int; length constraints only apply to strings
// and Min/Max only apply to ints. Max, MaxLength and Min are exclusive bounds.
type Validatable struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *int
	Max       *int
}

// Bound is a convenience for filling the optional constraint fields.
func Bound(n int) *int { return &n }

var checker = validator.New()

// Validate reports whether v satisfies all of its constraints.
func Validate(v Validatable) bool {
	// Blank text counts as missing, so required is checked on the trimmed form.
	if v.Required && checker.Var(strings.TrimSpace(valueString(v.Value)), "required") != nil {
		return false
	}
	tag := v.tag()
	if tag == "" {
		return true
	}
	return checker.Var(v.Value, tag) == nil
}

// tag renders the bounds that apply to the value's type as validator rules.
// String lengths count runes.
func (v Validatable) tag() string {
	var rules []string
	switch v.Value.(type) {
	case string:
		if v.MinLength != nil {
			rules = append(rules, "min="+strconv.Itoa(*v.MinLength))
		}
		if v.MaxLength != nil {
			rules = append(rules, "lt="+strconv.Itoa(*v.MaxLength))
		}
	case int:
		if v.Min != nil {
			rules = append(rules, "gt="+strconv.Itoa(*v.Min))
		}
		if v.Max != nil {
			rules = append(rules, "lt="+strconv.Itoa(*v.Max))
		}
	}
	return strings.Join(rules, ",")
}

// All reports whether every field validates.
func All(vs ...Validatable) bool {
	for _, v := range vs {
		if !Validate(v) {
			return false
		}
	}
	return true
}

func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
