package timezone

import (
	"testing"

	"workplace-geo/internal/types"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Bengaluru, India",
			latitude:  12.97194,
			longitude: 77.59369,
			want:      "Asia/Kolkata",
		},
		{
			name:      "Dubai, UAE",
			latitude:  25.2048,
			longitude: 55.2708,
			want:      "Asia/Dubai",
		},
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
		},
		{
			name:      "Singapore",
			latitude:  1.3521,
			longitude: 103.8198,
			want:      "Asia/Singapore",
		},
		{
			name:      "Buenos Aires, Argentina",
			latitude:  -34.6037,
			longitude: -58.3816,
			want:      "America/Argentina/Buenos_Aires",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(types.NewCoords(tt.latitude, tt.longitude))
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

type stubFinder struct{ name string }

func (f stubFinder) GetTimezoneName(lng, lat float64) string { return f.name }

func TestService_GetTimezone_NoZone(t *testing.T) {
	svc := NewServiceWithFinder(stubFinder{})
	if _, err := svc.GetTimezone(types.NewCoords(0, 0)); err == nil {
		t.Error("GetTimezone() expected error for empty zone name")
	}
}
