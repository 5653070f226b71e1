package validator_test

import (
	"testing"

	"catalog/internal/delivery/http/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type openingHours struct {
	Name  string  `json:"name" validate:"required"`
	Start string  `json:"start_time" validate:"required,hhmm"`
	End   *string `json:"end_time,omitempty" validate:"omitempty,hhmm"`
	Limit int     `json:"limit" validate:"max=10"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := validator.New()
	late := "25:00"

	tests := []struct {
		name        string
		input       openingHours
		wantDetails string
	}{
		{name: "valid", input: openingHours{Name: "lunch", Start: "11:30"}},
		{name: "missing name", input: openingHours{Start: "11:30"}, wantDetails: "name: required"},
		{name: "bad start", input: openingHours{Name: "lunch", Start: "1130"}, wantDetails: "start_time: hhmm"},
		{name: "bad optional end", input: openingHours{Name: "lunch", Start: "11:30", End: &late}, wantDetails: "end_time: hhmm"},
		{name: "param is reported", input: openingHours{Name: "lunch", Start: "11:30", Limit: 11}, wantDetails: "limit: max=10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantDetails == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantDetails, validator.Describe(err))
		})
	}
}
