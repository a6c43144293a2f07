package postalcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		country string
		code    string
		want    ValidationResult
	}{
		{"india six digits", "IN", "560001", Valid},
		{"india letters", "IN", "ABCDE", Invalid},
		{"india five digits", "IN", "56000", Invalid},
		{"lower-case country code", "in", "560001", Valid},
		{"empty code", "IN", "", Invalid},
		{"blank code", "US", "   ", Invalid},
		{"us zip", "US", "10001", Valid},
		{"us zip+4", "US", "10001-1234", Valid},
		{"us bad zip+4", "US", "10001-12", Invalid},
		{"gb with space", "GB", "SW1A 1AA", Valid},
		{"gb without space", "GB", "sw1a1aa", Valid},
		{"gb invalid", "GB", "12345", Invalid},
		{"canada", "CA", "K1A 0B1", Valid},
		{"netherlands", "NL", "1012 AB", Valid},
		{"japan", "JP", "100-0001", Valid},
		{"surrounding whitespace", "DE", " 10115 ", Valid},
		// Unregistered countries are never judged, even when the generic shape matches.
		{"unknown country plausible code", "KE", "00100", UnknownFormat},
		{"unknown country garbage", "KE", "!!", UnknownFormat},
		{"empty country", "", "12345", UnknownFormat},
		{"empty code unknown country", "KE", "", Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.country, tt.code))
		})
	}
}

func TestMatchesGenericFormat(t *testing.T) {
	assert.True(t, MatchesGenericFormat("00100"))
	assert.True(t, MatchesGenericFormat("AB-123"))
	assert.False(t, MatchesGenericFormat("!!"))
	assert.False(t, MatchesGenericFormat("1"))
	assert.False(t, MatchesGenericFormat("12345678901"))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		country string
		code    string
		want    string
	}{
		{"GB", "sw1a1aa", "SW1A 1AA"},
		{"GB", "SW1A 1AA", "SW1A 1AA"},
		{"CA", "k1a0b1", "K1A 0B1"},
		{"NL", "1012ab", "1012 AB"},
		{"JP", "1000001", "100-0001"},
		{"BR", "01001000", "01001-000"},
		{"IN", " 560001 ", "560001"},
		{"IN", "abc", "ABC"},
		{"KE", "00100", "00100"},
	}

	for _, tt := range tests {
		t.Run(tt.country+"/"+tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.country, tt.code))
		})
	}
}

func TestHasPattern(t *testing.T) {
	assert.True(t, HasPattern("us"))
	assert.False(t, HasPattern("KE"))
}
