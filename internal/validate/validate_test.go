package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "wireless headphones", "wireless headphones"},
		{"whitespace trimmed", "  laptop stand  ", "laptop stand"},
		{"angle brackets stripped", "  <script>x</script>wireless headphones  ", "scriptx/scriptwireless headphones"},
		{"javascript scheme removed", "javascript:alert(1) keyboard", "alert(1) keyboard"},
		{"javascript scheme case-insensitive", "JaVaScRiPt:alert(1)", "alert(1)"},
		{"event handler removed", "phone onclick=steal() case", "phone steal() case"},
		{"event handler with spaces", "phone onerror = steal()", "phone  steal()"},
		{"empty after stripping", "<><>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitizeNeverContainsAngleBrackets(t *testing.T) {
	inputs := []string{
		"<b>bold</b>",
		"<<<<>>>>",
		"a<b>c<d>e",
		"normal query",
		strings.Repeat("<x>", 2000),
	}
	for _, in := range inputs {
		out := Sanitize(in)
		assert.NotContains(t, out, "<")
		assert.NotContains(t, out, ">")
		assert.LessOrEqual(t, len([]rune(out)), 1000)
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("a", 1500)
	assert.Len(t, Sanitize(long), 1000)
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"wireless headphones",
		"  <script>x</script>wireless headphones  ",
		"https://amazon.com/dp/B000123",
		strings.Repeat("query ", 300),
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once))
	}
}

func TestIsURL(t *testing.T) {
	valid := []string{
		"https://www.amazon.com/dp/B0001",
		"http://example.com",
		"https://a.co/d/xyz?ref=1",
	}
	for _, u := range valid {
		assert.True(t, IsURL(u), u)
	}

	invalid := []string{
		"wireless headphones",
		"ftp://example.com/file",
		"javascript:alert(1)",
		"https://",
		"//example.com",
		"",
	}
	for _, u := range invalid {
		assert.False(t, IsURL(u), u)
	}
}

func TestClassifyStore(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.amazon.com/dp/B0001", StoreAmazon},
		{"https://AMAZON.de/gp/product/123", StoreAmazon},
		{"https://amzn.to/3xYz", StoreAmazon},
		{"https://a.co/d/abc", StoreAmazon},
		{"https://www.ebay.com/itm/123", StoreOther},
		{"https://walmart.com/ip/456", StoreOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyStore(tt.url), tt.url)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.True(t, IsValidUUID("123E4567-E89B-12D3-A456-426614174000"))
	assert.False(t, IsValidUUID("123e4567e89b12d3a456426614174000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidCurrency(t *testing.T) {
	assert.True(t, IsValidCurrency("USD"))
	assert.True(t, IsValidCurrency("EUR"))
	assert.False(t, IsValidCurrency("usd"))
	assert.False(t, IsValidCurrency("US"))
	assert.False(t, IsValidCurrency("USDT"))
	assert.False(t, IsValidCurrency(""))
}

func TestFirstMissing(t *testing.T) {
	assert.Equal(t, "", FirstMissing([]Field{
		{Name: "a", Value: "1"},
		{Name: "b", Value: "2"},
	}))

	assert.Equal(t, "b", FirstMissing([]Field{
		{Name: "a", Value: "1"},
		{Name: "b", Value: ""},
		{Name: "c", Value: ""},
	}))

	// Whitespace-only counts as missing.
	assert.Equal(t, "a", FirstMissing([]Field{
		{Name: "a", Value: "   "},
	}))
}
