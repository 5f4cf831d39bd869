package balance

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		err   bool
	}{
		{name: "integer", input: "10", want: "10.00"},
		{name: "fractional", input: "3.5", want: "3.50"},
		{name: "negative", input: "-0.1", want: "-0.10"},
		{name: "canonical", input: "5000.00", want: "5000.00"},
		{name: "surrounding spaces", input: " 42 ", want: "42.00"},
		{name: "empty", input: "", err: true},
		{name: "spaces only", input: "   ", err: true},
		{name: "not a number", input: "lunch", err: true},
		{name: "trailing garbage", input: "10x", err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.err {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestAmount_Round(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"10.005", "10.01"}, // half rounds up
		{"2.675", "2.68"},   // exact decimals, no float artifacts
		{"-10.005", "-10.01"},
		{"1.994", "1.99"},
		{"1.995", "2.00"},
		{"7", "7.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := MustAmount(tc.input).Round().String(); got != tc.want {
				t.Errorf("Round(%s) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestAmount_ExactAddition(t *testing.T) {
	// 0.1 added ten times must be exactly 1.00, unlike binary floats.
	var sum Amount
	tenth := MustAmount("0.1")
	for range 10 {
		sum = sum.Add(tenth)
	}
	if !sum.Equal(MustAmount("1")) {
		t.Errorf("ten times 0.1 = %s, want 1.00", sum)
	}
}

func TestAmount_SubNeg(t *testing.T) {
	a := MustAmount("100").Sub(MustAmount("10.5"))
	if a.String() != "89.50" {
		t.Errorf("100 - 10.5 = %s, want 89.50", a)
	}
	if got := MustAmount("3").Neg().String(); got != "-3.00" {
		t.Errorf("Neg(3) = %s, want -3.00", got)
	}
	if !MustAmount("-1").IsNegative() {
		t.Error("-1 should be negative")
	}
	if !(Amount{}).IsZero() {
		t.Error("zero value should be zero")
	}
}
