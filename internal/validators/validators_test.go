package validators

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCheckAmount(t *testing.T) {
	testCases := []struct {
		name     string
		amount   decimal.Decimal
		expected bool
	}{
		{name: "Whole amount #1", amount: decimal.NewFromInt(50), expected: true},
		{name: "Amount with cents #2", amount: decimal.RequireFromString("12.34"), expected: true},
		{name: "One cent #3", amount: decimal.RequireFromString("0.01"), expected: true},
		{name: "Zero #4", amount: decimal.Zero, expected: false},
		{name: "Negative #5", amount: decimal.NewFromInt(-5), expected: false},
		{name: "Fraction of a cent #6", amount: decimal.RequireFromString("0.001"), expected: false},
		{name: "Column maximum #7", amount: MaxAmount, expected: true},
		{name: "One cent above maximum #8", amount: MaxAmount.Add(decimal.RequireFromString("0.01")), expected: false},
		{name: "Float beyond int64 cents #9", amount: decimal.NewFromFloat(1.8446744073709552e17), expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckAmount(tc.amount); got != tc.expected {
				t.Errorf("CheckAmount(%s) = %v, want %v", tc.amount, got, tc.expected)
			}
		})
	}
}

func TestCheckStatus(t *testing.T) {
	testCases := []struct {
		name     string
		status   string
		expected bool
	}{
		{name: "Pending #1", status: "pending", expected: true},
		{name: "Cancelled #2", status: "cancelled", expected: true},
		{name: "Unknown #3", status: "paid", expected: false},
		{name: "Empty #4", status: "", expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckStatus(tc.status); got != tc.expected {
				t.Errorf("CheckStatus(%q) = %v, want %v", tc.status, got, tc.expected)
			}
		})
	}
}

func TestCheckRequestID(t *testing.T) {
	if !CheckRequestID("6f1c2a54-8a0b-4d3e-9a51-2f6f1d1c9b7e") {
		t.Errorf("Expected valid request id")
	}
	if CheckRequestID("req-1") {
		t.Errorf("Expected invalid request id")
	}
}
