package geoip

import (
	"testing"

	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
)

func TestCombine(t *testing.T) {
	ip := ipv4.MustParse("8.8.8.8")
	city := &legacydb.GeoRecord{
		CountryCode:    "US",
		Country:        "United States",
		Continent:      "NA",
		Region:         "CA",
		RegionName:     "California",
		City:           "Mountain View",
		PostalCode:     "94043",
		Latitude:       37.4192,
		Longitude:      -122.0574,
		HasCoordinates: true,
	}
	as := &legacydb.ASRecord{Number: 15169, Name: "Google Inc.", Raw: "AS15169 Google Inc."}

	tests := []struct {
		name     string
		geo      *legacydb.GeoRecord
		as       *legacydb.ASRecord
		expected Record
	}{
		{
			name: "both records",
			geo:  city,
			as:   as,
			expected: Record{
				IP:             "8.8.8.8",
				ASNumber:       15169,
				ASName:         "Google Inc.",
				City:           "Mountain View",
				Region:         "California",
				Country:        "United States",
				CountryCode:    "US",
				Continent:      "North America",
				PostalCode:     "94043",
				Latitude:       37.4192,
				Longitude:      -122.0574,
				HasCoordinates: true,
				MapURL:         "http://maps.google.com/maps?f=q&source=s_q&hl=ca&geocode=&q=37.4192+-122.0574",
			},
		},
		{
			name: "nothing known",
			expected: Record{
				IP:          "8.8.8.8",
				ASName:      Unknown,
				City:        Unknown,
				Region:      Unknown,
				Country:     Unknown,
				CountryCode: UnknownCountryCode,
				Continent:   Unknown,
			},
		},
		{
			name: "city record without city and region",
			geo:  &legacydb.GeoRecord{CountryCode: "IT", Country: "Italy", Continent: "EU", Latitude: 42.8333, Longitude: 12.8333, HasCoordinates: true},
			expected: Record{
				IP:             "8.8.8.8",
				ASName:         Unknown,
				City:           Unknown,
				Region:         Unknown,
				Country:        "Italy",
				CountryCode:    "IT",
				Continent:      "Europe",
				Latitude:       42.8333,
				Longitude:      12.8333,
				HasCoordinates: true,
				MapURL:         "http://maps.google.com/maps?f=q&source=s_q&hl=ca&geocode=&q=42.8333+12.8333",
			},
		},
		{
			name: "country only record has no map",
			geo:  &legacydb.GeoRecord{CountryCode: "FR", Country: "France", Continent: "EU"},
			expected: Record{
				IP:          "8.8.8.8",
				ASName:      Unknown,
				City:        Unknown,
				Region:      Unknown,
				Country:     "France",
				CountryCode: "FR",
				Continent:   "Europe",
			},
		},
		{
			name: "organization without AS number",
			as:   &legacydb.ASRecord{Name: "Private network", Raw: "Private network"},
			expected: Record{
				IP:          "8.8.8.8",
				ASName:      "Private network",
				City:        Unknown,
				Region:      Unknown,
				Country:     Unknown,
				CountryCode: UnknownCountryCode,
				Continent:   Unknown,
			},
		},
		{
			name: "raw organization text is parsed",
			as:   &legacydb.ASRecord{Raw: "AS3320 Deutsche Telekom AG"},
			expected: Record{
				IP:          "8.8.8.8",
				ASNumber:    3320,
				ASName:      "Deutsche Telekom AG",
				City:        Unknown,
				Region:      Unknown,
				Country:     Unknown,
				CountryCode: UnknownCountryCode,
				Continent:   Unknown,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(ip, tt.geo, tt.as)
			if got != tt.expected {
				t.Fatalf("unexpected record:\n got %+v\nwant %+v", got, tt.expected)
			}
		})
	}
}

func TestMapURL(t *testing.T) {
	tests := []struct {
		lat, lon float64
		expected string
	}{
		{10, 20, "http://maps.google.com/maps?f=q&source=s_q&hl=ca&geocode=&q=10.0000+20.0000"},
		{-33.8591, 151.2002, "http://maps.google.com/maps?f=q&source=s_q&hl=ca&geocode=&q=-33.8591+151.2002"},
		{0, 0, "http://maps.google.com/maps?f=q&source=s_q&hl=ca&geocode=&q=0.0000+0.0000"},
	}

	for _, tt := range tests {
		if got := MapURL(tt.lat, tt.lon); got != tt.expected {
			t.Errorf("MapURL(%v, %v) = %q, want %q", tt.lat, tt.lon, got, tt.expected)
		}
	}
}

func TestLogFields(t *testing.T) {
	rec := Combine(ipv4.MustParse("1.2.3.4"), nil, nil)
	if got := len(rec.LogFields()); got != 7 {
		t.Fatalf("expected 7 fields without coordinates, got %d", got)
	}
	rec.HasCoordinates = true
	if got := len(rec.LogFields()); got != 9 {
		t.Fatalf("expected 9 fields with coordinates, got %d", got)
	}
}
