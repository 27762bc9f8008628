package handlers

import "testing"

var str = "test_value"

func TestValidator(t *testing.T) {
	validator := &Validator{
		location: "test_location",
		field:    "test_field",
		value:    &str,
	}

	validator.Required()
	validator.Empty()
	validator.Matches("someregexp")
	validator.MaxLength(10)
	validator.MinLength(20)
	validator.Email()
	validator.URL()
	validator.Custom(func(string) bool { return true }, "test")
}

func TestValidatorEmail(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"user@example.com", true},
		{"user@sub.example.com", true},
		{"no-at-sign", false},
		{"spaces in@example.com", false},
		{"user@nodot", false},
	}
	for _, tc := range cases {
		v := &Validator{location: "body", field: "email", value: &tc.value}
		err := v.Email()
		if tc.valid && err != nil {
			t.Errorf("%q: expected valid, got %v", tc.value, err.Msg)
		}
		if !tc.valid && err == nil {
			t.Errorf("%q: expected an error", tc.value)
		}
	}
}
