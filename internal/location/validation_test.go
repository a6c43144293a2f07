package location

import (
	"testing"

	"workplace-geo/internal/postalcode"
)

func TestLocationService_ValidatePostalCode(t *testing.T) {
	svc := newTestService(t, testConfig(), nil)

	tests := []struct {
		name        string
		countryCode string
		postalCode  string
		want        postalcode.ValidationResult
	}{
		{name: "india six digits", countryCode: "IN", postalCode: "560001", want: postalcode.Valid},
		{name: "india letters", countryCode: "IN", postalCode: "ABCDE", want: postalcode.Invalid},
		{name: "us zip plus four", countryCode: "US", postalCode: "94105-1234", want: postalcode.Valid},
		{name: "unknown country", countryCode: "ZZ", postalCode: "12345", want: postalcode.UnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.ValidatePostalCode(tt.countryCode, tt.postalCode); got != tt.want {
				t.Errorf("ValidatePostalCode(%q, %q) = %v, want %v", tt.countryCode, tt.postalCode, got, tt.want)
			}
		})
	}
}

func TestLocationService_ValidateLocation(t *testing.T) {
	svc := newTestService(t, testConfig(), nil)

	tests := []struct {
		name        string
		req         ValidationRequest
		wantValid   bool
		wantErrors  int
		wantInvalid []string
	}{
		{
			name:      "complete valid location",
			req:       ValidationRequest{Country: "IN", State: "KA", City: "Bengaluru", PostalCode: "560001"},
			wantValid: true,
		},
		{
			name:      "names instead of codes",
			req:       ValidationRequest{Country: "india", State: "Karnataka", City: "mysore"},
			wantValid: true,
		},
		{
			name:      "kenya by code",
			req:       ValidationRequest{Country: "KE"},
			wantValid: true,
		},
		{
			name:      "city without a state",
			req:       ValidationRequest{Country: "Kenya", City: "Nairobi"},
			wantValid: true,
		},
		{
			name:      "state by name",
			req:       ValidationRequest{Country: "NG", State: "Lagos", City: "Lagos"},
			wantValid: true,
		},
		{
			name:      "single letter subdivision code",
			req:       ValidationRequest{Country: "Egypt", State: "C", City: "Cairo"},
			wantValid: true,
		},
		{
			name:      "empty request",
			req:       ValidationRequest{},
			wantValid: true,
		},
		{
			name:      "sentinel city",
			req:       ValidationRequest{Country: "IN", State: "KA", City: "OTHER"},
			wantValid: true,
		},
		{
			name:      "unknown postal code format contributes no error",
			req:       ValidationRequest{Country: "AE", PostalCode: "ABC"},
			wantValid: true,
		},
		{
			name:        "unknown country",
			req:         ValidationRequest{Country: "Atlantis"},
			wantErrors:  1,
			wantInvalid: []string{"country"},
		},
		{
			name:        "state of another country",
			req:         ValidationRequest{Country: "IN", State: "CA"},
			wantErrors:  1,
			wantInvalid: []string{"state"},
		},
		{
			name:        "city outside state",
			req:         ValidationRequest{Country: "IN", State: "KA", City: "Mumbai"},
			wantErrors:  1,
			wantInvalid: []string{"city"},
		},
		{
			name:        "malformed postal code",
			req:         ValidationRequest{Country: "IN", PostalCode: "ABCDE"},
			wantErrors:  1,
			wantInvalid: []string{"postalCode"},
		},
		{
			name:        "every level wrong",
			req:         ValidationRequest{Country: "XX", State: "KA", City: "Bengaluru"},
			wantErrors:  3,
			wantInvalid: []string{"country", "state", "city"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ValidateLocation(tt.req)

			if got.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v (errors: %v)", got.IsValid, tt.wantValid, got.Errors)
			}
			if len(got.Errors) != tt.wantErrors {
				t.Errorf("len(Errors) = %d, want %d: %v", len(got.Errors), tt.wantErrors, got.Errors)
			}
			for _, field := range tt.wantInvalid {
				f, ok := got.Fields[field]
				if !ok {
					t.Errorf("Fields[%q] missing", field)
					continue
				}
				if f.Valid || f.Message == "" {
					t.Errorf("Fields[%q] = %+v, want an invalid verdict with a message", field, f)
				}
			}
		})
	}
}
