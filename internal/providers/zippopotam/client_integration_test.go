//go:build integration

package zippopotam

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestClient_SearchByCity_Integration(t *testing.T) {
	client := NewClient(slog.Default())

	t.Logf("Making API call to Zippopotam...")

	resp, err := client.SearchByCity(context.Background(), "DE", "Berlin")
	if err != nil {
		t.Fatalf("Failed to get places: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(resp.Places) == 0 {
		t.Fatal("Expected at least one place")
	}
	for _, p := range resp.Places {
		if p.PostCode == "" {
			t.Errorf("place %q has no post code", p.PlaceName)
		}
	}
}

func TestClient_LookupPostalCode_Integration(t *testing.T) {
	client := NewClient(slog.Default())

	resp, err := client.LookupPostalCode(context.Background(), "US", "90210")
	if err != nil {
		t.Fatalf("Failed to look up postal code: %v", err)
	}

	if resp.PostCode != "90210" {
		t.Errorf("PostCode = %q, want %q", resp.PostCode, "90210")
	}
	if len(resp.Places) == 0 || resp.Places[0].PlaceName == "" {
		t.Error("Expected a named place")
	}
}
