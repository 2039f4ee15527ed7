// Package geoip merges the location and autonomous system lookups of the legacy
// databases into a single record per address.
package geoip

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/gtriggiano/geoip-lookup/pkg/asn"
	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
)

const (
	// Unknown replaces absent text fields.
	Unknown = "Unknown"
	// UnknownCountryCode replaces an absent country code.
	UnknownCountryCode = "--"

	mapURLPrefix = "http://maps.google.com/maps?f=q&source=s_q&hl=ca&geocode=&q="
)

// Record is the combined location and ownership data of one address.
type Record struct {
	IP          string
	ASNumber    uint32
	ASName      string
	City        string
	Region      string
	Country     string
	CountryCode string
	Continent   string
	PostalCode  string
	Latitude    float64
	Longitude   float64
	// HasCoordinates is false when no city record was found, in which case
	// Latitude, Longitude and MapURL are zero.
	HasCoordinates bool
	MapURL         string
}

// Combine merges a location and an AS record for ip. Either record may be nil
// when the corresponding database has no data for the address.
func Combine(ip ipv4.Addr, geo *legacydb.GeoRecord, as *legacydb.ASRecord) Record {
	rec := Record{
		IP:          ip.String(),
		ASName:      Unknown,
		City:        Unknown,
		Region:      Unknown,
		Country:     Unknown,
		CountryCode: UnknownCountryCode,
		Continent:   Unknown,
	}

	if geo != nil {
		rec.City = orUnknown(geo.City)
		rec.Region = orUnknown(geo.RegionName)
		rec.Country = orUnknown(geo.Country)
		if geo.CountryCode != "" {
			rec.CountryCode = geo.CountryCode
		}
		rec.Continent = orUnknown(legacydb.ContinentName(geo.Continent))
		rec.PostalCode = geo.PostalCode
		if geo.HasCoordinates {
			rec.Latitude = geo.Latitude
			rec.Longitude = geo.Longitude
			rec.HasCoordinates = true
			rec.MapURL = MapURL(geo.Latitude, geo.Longitude)
		}
	}

	if as != nil {
		number, name := as.Number, as.Name
		if number == 0 && name == "" && as.Raw != "" {
			org, _ := asn.ParseOrganization(as.Raw)
			number, name = org.Number, org.Name
		}
		rec.ASNumber = number
		rec.ASName = orUnknown(name)
	}

	return rec
}

// MapURL returns the Google Maps link centered on the coordinates.
func MapURL(latitude, longitude float64) string {
	return mapURLPrefix + FormatCoordinate(latitude) + "+" + FormatCoordinate(longitude)
}

// FormatCoordinate renders a coordinate with the four decimals the databases store.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// LogFields converts the record to structured logging fields.
func (r Record) LogFields() []zap.Field {
	fields := []zap.Field{
		zap.String("geoip_city", r.City),
		zap.String("geoip_region", r.Region),
		zap.String("geoip_country", r.Country),
		zap.String("geoip_country_iso", r.CountryCode),
		zap.String("geoip_continent", r.Continent),
		zap.Uint32("asn_number", r.ASNumber),
		zap.String("asn_organization", r.ASName),
	}
	if r.HasCoordinates {
		fields = append(fields,
			zap.Float64("geoip_latitude", r.Latitude),
			zap.Float64("geoip_longitude", r.Longitude),
		)
	}
	return fields
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
