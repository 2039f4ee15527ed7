package report

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gtriggiano/geoip-lookup/pkg/geoip"
	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
)

func testRecord() geoip.Record {
	return geoip.Combine(ipv4.MustParse("1.0.0.5"),
		&legacydb.GeoRecord{
			CountryCode:    "TC",
			Country:        "TestCountry",
			Continent:      "NA",
			RegionName:     "TestRegion",
			City:           "TestCity",
			Latitude:       10,
			Longitude:      20,
			HasCoordinates: true,
		},
		&legacydb.ASRecord{Number: 64500, Name: "Test Network"},
	)
}

func TestRow(t *testing.T) {
	tests := []struct {
		name     string
		rec      geoip.Record
		expected []string
	}{
		{
			name: "known address",
			rec:  testRecord(),
			expected: []string{
				"1.0.0.5", "64500", "Test Network", "TestCity", "TestRegion", "TestCountry", "TC",
				"10.0000", "20.0000", "http://maps.google.com/maps?f=q&source=s_q&hl=ca&geocode=&q=10.0000+20.0000",
			},
		},
		{
			name: "unknown address",
			rec:  geoip.Combine(ipv4.MustParse("1.0.1.5"), nil, nil),
			expected: []string{
				"1.0.1.5", "Unknown", "Unknown", "Unknown", "Unknown", "Unknown", "--",
				"Unknown", "Unknown", "Unknown",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Row(tt.rec)
			if strings.Join(got, "|") != strings.Join(tt.expected, "|") {
				t.Fatalf("unexpected row:\n got %q\nwant %q", got, tt.expected)
			}
		})
	}
}

func TestWriteSingle(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSingle(&buf, testRecord(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `IP Address: 1.0.0.5
AS Number: 64500
AS Name: Test Network
City: TestCity
Region: TestRegion
Country: TestCountry
Country Code: TC
Latitude: 10.0000
Longitude: 20.0000
Google Maps: http://maps.google.com/maps?f=q&source=s_q&hl=ca&geocode=&q=10.0000+20.0000
`
	if buf.String() != expected {
		t.Fatalf("unexpected report:\n%s", buf.String())
	}
}

func TestWriteSingleColored(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSingle(&buf, testRecord(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes in colored output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "TestCity") {
		t.Fatalf("expected values in colored output, got %q", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	unknown := geoip.Combine(ipv4.MustParse("1.0.1.5"), nil, &legacydb.ASRecord{Number: 3320, Name: "Deutsche Telekom AG, Bonn"})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []geoip.Record{testRecord(), unknown}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `IP Address,AS Number,AS Name,City,Region,Country,Country Code,Latitude,Longitude,Google Maps URL
1.0.0.5,64500,Test Network,TestCity,TestRegion,TestCountry,TC,10.0000,20.0000,http://maps.google.com/maps?f=q&source=s_q&hl=ca&geocode=&q=10.0000+20.0000
1.0.1.5,3320,"Deutsche Telekom AG, Bonn",Unknown,Unknown,Unknown,--,Unknown,Unknown,Unknown
`
	if buf.String() != expected {
		t.Fatalf("unexpected csv:\n%s", buf.String())
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, []geoip.Record{testRecord(), geoip.Combine(ipv4.MustParse("10.0.0.1"), nil, nil)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), buf.String())
	}
	for i, line := range lines {
		if utf8.RuneCountInString(line) != utf8.RuneCountInString(lines[0]) {
			t.Fatalf("line %d has width %d, expected %d", i, utf8.RuneCountInString(line), utf8.RuneCountInString(lines[0]))
		}
	}
	if !strings.HasPrefix(lines[0], "+------------+-----------+") {
		t.Fatalf("unexpected rule %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "| IP Address | AS Number |") {
		t.Fatalf("unexpected header %q", lines[1])
	}
	if lines[2] != lines[0] || lines[5] != lines[0] {
		t.Fatalf("expected matching rules around header and body:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[3], "|   1.0.0.5  |   64500   |") {
		t.Fatalf("unexpected first row %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "|  10.0.0.1  |  Unknown  |") {
		t.Fatalf("unexpected second row %q", lines[4])
	}
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "+") || !strings.Contains(out, "| IP Address |") {
		t.Fatalf("expected a bordered header, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newline, got %q", out)
	}
}
