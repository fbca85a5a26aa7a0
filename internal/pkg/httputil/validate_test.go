package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceTag(t *testing.T) {
	type body struct {
		Price string `validate:"required,price"`
	}

	v := NewValidator()

	tests := []struct {
		name  string
		price string
		valid bool
	}{
		{"whole", "14", true},
		{"one decimal", "14.5", true},
		{"two decimals", "14.50", true},
		{"zero", "0", true},
		{"max integer digits", "99999999.99", true},
		{"three decimals", "11.999", false},
		{"too many integer digits", "123456789", false},
		{"negative", "-1.50", false},
		{"scientific", "1e3", false},
		{"trailing dot", "14.", false},
		{"not a number", "a lot", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(body{Price: tt.price})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
