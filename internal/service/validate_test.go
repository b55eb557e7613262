package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequiredText(t *testing.T) {
	assert.NoError(t, ValidateRequiredText("雞肉、南瓜"))
	assert.ErrorIs(t, ValidateRequiredText(""), ErrMissingField)
	assert.ErrorIs(t, ValidateRequiredText("   "), ErrMissingField)
	assert.ErrorIs(t, ValidateRequiredText("\n\t"), ErrMissingField)
}

func TestCheckIngredients(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"real food", "雞肉、南瓜、白米", false},
		{"english food", "chicken, pumpkin, rice", false},
		{"tire in chinese", "輪胎", true},
		{"tire mixed with food", "高麗菜、輪胎", true},
		{"battery in english", "chicken and a BATTERY", true},
		{"case insensitive", "Plastic spoon soup", true},
		{"nail", "釘子湯", true},
		{"empty is not checked here", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckIngredients(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIngredient)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
