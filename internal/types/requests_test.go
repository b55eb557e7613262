package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeValueUnmarshal(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		months int
		set    bool
	}{
		{"number", `18`, 18, true},
		{"numeric string", `"24"`, 24, true},
		{"zero", `0`, 0, false},
		{"empty string", `""`, 0, false},
		{"free-form text", `"快兩歲"`, 0, false},
		{"float", `18.9`, 18, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a AgeValue
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &a))
			assert.Equal(t, tt.months, a.Months)
			assert.Equal(t, tt.set, a.Set)
		})
	}
}

func TestAgeValueUnmarshalRejectsOtherTypes(t *testing.T) {
	var a AgeValue
	assert.Error(t, json.Unmarshal([]byte(`[18]`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{"months": 18}`), &a))
}

func TestAgeValueInRequestBody(t *testing.T) {
	var req GenerateRecipeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"ingredients":"蛋","age":"18"}`), &req))
	assert.Equal(t, 18, req.Age.Months)

	require.NoError(t, json.Unmarshal([]byte(`{"ingredients":"蛋","age":18}`), &req))
	assert.Equal(t, 18, req.Age.Months)
}

func TestNewMealQueryNormalization(t *testing.T) {
	q := NewMealQuery("  雞肉、南瓜  ", "freestyle", "", AgeValue{}, "fr")
	assert.Equal(t, "雞肉、南瓜", q.Text)
	assert.Equal(t, ModeStrict, q.Mode, "unknown mode collapses to strict")
	assert.Equal(t, LangChinese, q.Language, "unknown language collapses to Chinese")
	assert.Equal(t, "any", q.Tool)
	assert.Zero(t, q.AgeMonths)

	q = NewMealQuery("egg", ModeShopping, "oven", AgeValue{Months: 30, Set: true}, LangKorean)
	assert.Equal(t, ModeShopping, q.Mode)
	assert.Equal(t, "oven", q.Tool)
	assert.Equal(t, 30, q.AgeMonths)
	assert.Equal(t, LangKorean, q.Language)
}
