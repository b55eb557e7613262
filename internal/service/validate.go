package service

import "strings"

// deniedKeywords lists non-food terms that reject an ingredient input.
// Matching is case-insensitive substring, so short English words are kept
// specific enough not to shadow real food names.
var deniedKeywords = []string{
	"輪胎", "輪子", "汽車", "機車", "塑膠", "金屬", "石頭", "木頭",
	"垃圾", "廢棄物", "毒藥", "化學", "電池", "電線", "螺絲", "釘子",
	"tire", "wheel", "plastic", "metal", "garbage", "poison",
	"battery", "screw", "gasoline",
}

// ValidateRequiredText reports ErrMissingField when the core text input is
// empty after trimming.
func ValidateRequiredText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrMissingField
	}
	return nil
}

// CheckIngredients reports ErrInvalidIngredient when the ingredient text
// contains a deny-listed non-food term.
func CheckIngredients(text string) error {
	lower := strings.ToLower(text)
	for _, keyword := range deniedKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return ErrInvalidIngredient
		}
	}
	return nil
}
