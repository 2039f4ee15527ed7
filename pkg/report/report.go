// Package report renders combined lookup records as a single labelled report,
// a bordered text table or CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/gtriggiano/geoip-lookup/pkg/geoip"
)

// Header is the column header shared by the table and CSV outputs.
var Header = []string{
	"IP Address", "AS Number", "AS Name", "City", "Region", "Country",
	"Country Code", "Latitude", "Longitude", "Google Maps URL",
}

// singleLabels are the labels of the single record report, in Row order.
var singleLabels = []string{
	"IP Address:", "AS Number:", "AS Name:", "City:", "Region:", "Country:",
	"Country Code:", "Latitude:", "Longitude:", "Google Maps:",
}

// Row flattens a record into the column order of Header.
func Row(rec geoip.Record) []string {
	asNumber := geoip.Unknown
	if rec.ASNumber != 0 {
		asNumber = strconv.FormatUint(uint64(rec.ASNumber), 10)
	}
	latitude, longitude, mapURL := geoip.Unknown, geoip.Unknown, geoip.Unknown
	if rec.HasCoordinates {
		latitude = geoip.FormatCoordinate(rec.Latitude)
		longitude = geoip.FormatCoordinate(rec.Longitude)
		mapURL = rec.MapURL
	}
	return []string{
		rec.IP, asNumber, rec.ASName, rec.City, rec.Region, rec.Country,
		rec.CountryCode, latitude, longitude, mapURL,
	}
}

// WriteSingle writes one "Label: value" line per field. Labels are
// highlighted when colored is true.
func WriteSingle(w io.Writer, rec geoip.Record, colored bool) error {
	label := color.New(color.FgCyan, color.Bold)
	if colored {
		label.EnableColor()
	} else {
		label.DisableColor()
	}

	for i, value := range Row(rec) {
		if _, err := fmt.Fprintf(w, "%s %s\n", label.Sprint(singleLabels[i]), value); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes Header followed by one row per record.
func WriteCSV(w io.Writer, records []geoip.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(Row(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
