package validate

import "testing"

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Validatable
		want bool
	}{
		{name: "required empty", in: Validatable{Value: "", Required: true}, want: false},
		{name: "required whitespace", in: Validatable{Value: "   ", Required: true}, want: false},
		{name: "required present", in: Validatable{Value: "Build site", Required: true}, want: true},
		{name: "not required empty", in: Validatable{Value: ""}, want: true},
		{name: "min length met", in: Validatable{Value: "abcde", MinLength: Bound(5)}, want: true},
		{name: "min length short", in: Validatable{Value: "abcd", MinLength: Bound(5)}, want: false},
		{name: "max length exclusive", in: Validatable{Value: "abcde", MaxLength: Bound(5)}, want: false},
		{name: "max length under", in: Validatable{Value: "abcd", MaxLength: Bound(5)}, want: true},
		{name: "people lower bound exclusive", in: Validatable{Value: 1, Required: true, Min: Bound(1), Max: Bound(5)}, want: false},
		{name: "people two", in: Validatable{Value: 2, Required: true, Min: Bound(1), Max: Bound(5)}, want: true},
		{name: "people four", in: Validatable{Value: 4, Required: true, Min: Bound(1), Max: Bound(5)}, want: true},
		{name: "people upper bound exclusive", in: Validatable{Value: 5, Required: true, Min: Bound(1), Max: Bound(5)}, want: false},
		{name: "length bounds ignored for ints", in: Validatable{Value: 3, MinLength: Bound(10)}, want: true},
		{name: "numeric bounds ignored for strings", in: Validatable{Value: "9", Max: Bound(5)}, want: true},
		{name: "length counts runes", in: Validatable{Value: "ääää", MaxLength: Bound(5)}, want: true},
		{name: "min length counts runes", in: Validatable{Value: "ñññ", MinLength: Bound(4)}, want: false},
		{name: "nil required", in: Validatable{Value: nil, Required: true}, want: false},
		{name: "zero int without bounds", in: Validatable{Value: 0}, want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Validate(tt.in); got != tt.want {
				t.Fatalf("Validate(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAll(t *testing.T) {
	ok := All(
		Validatable{Value: "t", Required: true},
		Validatable{Value: "d", Required: true},
	)
	if !ok {
		t.Fatalf("expected all fields to validate")
	}
	if All(Validatable{Value: "t", Required: true}, Validatable{Value: "", Required: true}) {
		t.Fatalf("expected failure when one field is invalid")
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		name string
		in   Validatable
		want string
	}{
		{name: "no bounds", in: Validatable{Value: "x", Required: true}, want: ""},
		{name: "string lengths", in: Validatable{Value: "x", MinLength: Bound(5), MaxLength: Bound(200)}, want: "min=5,lt=200"},
		{name: "int range", in: Validatable{Value: 3, Min: Bound(1), Max: Bound(5)}, want: "gt=1,lt=5"},
		{name: "int ignores lengths", in: Validatable{Value: 3, MinLength: Bound(5)}, want: ""},
	}
	for _, tt := range tests {
		if got := tt.in.tag(); got != tt.want {
			t.Fatalf("%s: tag() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
