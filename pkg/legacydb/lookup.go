package legacydb

import (
	"bytes"
	"fmt"
	"net/netip"

	"github.com/gtriggiano/geoip-lookup/pkg/asn"
	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
)

// Leaf is the terminal pointer reached while walking the search tree.
type Leaf struct {
	// Pointer is the raw value read from the tree, always >= Segments.
	Pointer uint32
	// PrefixLen is the number of address bits consumed before the leaf.
	PrefixLen int
}

// GeoRecord is the location data stored for an address range.
type GeoRecord struct {
	CountryCode string
	Country     string
	Continent   string
	// Region is the region code as stored in the database.
	Region string
	// RegionName is the display name of Region for the United States and
	// Canada and equal to Region otherwise.
	RegionName string
	City       string
	PostalCode string
	Latitude   float64
	Longitude  float64
	// HasCoordinates is true for city records; country-only records carry
	// no coordinates.
	HasCoordinates bool
	// MetroCode and AreaCode are only populated by City REV1 databases for
	// addresses in the United States.
	MetroCode int
	AreaCode  int
	Network   netip.Prefix
}

// ASRecord is the autonomous system data stored for an address range.
type ASRecord struct {
	Number uint32
	Name   string
	// Raw is the organization string exactly as stored.
	Raw     string
	Network netip.Prefix
}

// Resolve walks the search tree for addr and returns the leaf it ends on.
func (db *Database) Resolve(addr ipv4.Addr) (Leaf, error) {
	rl := uint64(db.recordLength)
	var offset uint32

	for depth := 31; depth >= 0; depth-- {
		node := uint64(offset) * 2 * rl
		if node+2*rl > db.treeLimit {
			return Leaf{}, db.formatError(fmt.Sprintf("search tree node %d is out of bounds", offset))
		}
		if addr.Bit(depth) == 1 {
			node += rl
		}
		next := readUint(db.data[node : node+rl])
		if next >= db.segments {
			return Leaf{Pointer: next, PrefixLen: 32 - depth}, nil
		}
		offset = next
	}

	return Leaf{}, db.formatError(fmt.Sprintf("search tree has no leaf for %s", addr))
}

// City returns the full city record for addr. The database must be a City
// edition.
func (db *Database) City(addr ipv4.Addr) (GeoRecord, error) {
	if !db.edition.IsCity() {
		return GeoRecord{}, db.formatError(fmt.Sprintf("%s edition does not carry city records", db.edition))
	}
	leaf, err := db.leafFor(addr)
	if err != nil {
		return GeoRecord{}, err
	}

	buf, err := db.record(leaf, fullRecordLength)
	if err != nil {
		return GeoRecord{}, err
	}

	country, err := db.country(int(buf[0]))
	if err != nil {
		return GeoRecord{}, err
	}
	rec := GeoRecord{
		CountryCode: country.Code,
		Country:     country.Name,
		Continent:   country.Continent,
		Network:     addr.Prefix(leaf.PrefixLen),
	}

	pos := 1
	var raw [3][]byte
	for i := range raw {
		end := bytes.IndexByte(buf[pos:], 0)
		if end < 0 {
			return GeoRecord{}, db.formatError(fmt.Sprintf("city record for %s is not terminated", addr))
		}
		raw[i] = buf[pos : pos+end]
		pos += end + 1
	}
	rec.Region = db.charset.decode(raw[0])
	rec.City = db.charset.decode(raw[1])
	rec.PostalCode = db.charset.decode(raw[2])
	rec.RegionName = RegionName(rec.CountryCode, rec.Region)

	if pos+6 > len(buf) {
		return GeoRecord{}, db.formatError(fmt.Sprintf("city record for %s is truncated", addr))
	}
	rec.Latitude = decodeCoordinate(buf[pos : pos+3])
	rec.Longitude = decodeCoordinate(buf[pos+3 : pos+6])
	rec.HasCoordinates = true
	pos += 6

	if db.edition == EditionCityRev1 && rec.CountryCode == "US" {
		if pos+3 > len(buf) {
			return GeoRecord{}, db.formatError(fmt.Sprintf("city record for %s is truncated", addr))
		}
		combo := int(readUint(buf[pos : pos+3]))
		rec.MetroCode = combo / 1000
		rec.AreaCode = combo % 1000
	}

	return rec, nil
}

// Country returns the country addr belongs to. Both Country and City
// editions can answer it.
func (db *Database) Country(addr ipv4.Addr) (Country, error) {
	switch {
	case db.edition == EditionCountry:
		country, _, err := db.countryLeaf(addr)
		return country, err
	case db.edition.IsCity():
		rec, err := db.City(addr)
		if err != nil {
			return Country{}, err
		}
		return Country{Code: rec.CountryCode, Name: rec.Country, Continent: rec.Continent}, nil
	default:
		return Country{}, db.formatError(fmt.Sprintf("%s edition does not carry countries", db.edition))
	}
}

// Location returns the most detailed location the database holds for addr:
// a city record for City editions and a country-only record for the Country
// edition.
func (db *Database) Location(addr ipv4.Addr) (GeoRecord, error) {
	switch {
	case db.edition.IsCity():
		return db.City(addr)
	case db.edition == EditionCountry:
		country, leaf, err := db.countryLeaf(addr)
		if err != nil {
			return GeoRecord{}, err
		}
		return GeoRecord{
			CountryCode: country.Code,
			Country:     country.Name,
			Continent:   country.Continent,
			Network:     addr.Prefix(leaf.PrefixLen),
		}, nil
	default:
		return GeoRecord{}, db.formatError(fmt.Sprintf("%s edition does not carry locations", db.edition))
	}
}

// Organization returns the organization string stored for addr by ASNum,
// Org, ISP and Domain editions.
func (db *Database) Organization(addr ipv4.Addr) (string, error) {
	raw, _, err := db.organization(addr)
	return raw, err
}

// ASN returns the autonomous system addr belongs to. Strings that do not
// start with an AS token are returned as Name with a zero Number.
func (db *Database) ASN(addr ipv4.Addr) (ASRecord, error) {
	raw, leaf, err := db.organization(addr)
	if err != nil {
		return ASRecord{}, err
	}
	org, _ := asn.ParseOrganization(raw)
	return ASRecord{
		Number:  org.Number,
		Name:    org.Name,
		Raw:     raw,
		Network: addr.Prefix(leaf.PrefixLen),
	}, nil
}

func (db *Database) organization(addr ipv4.Addr) (string, Leaf, error) {
	if !db.edition.IsOrganization() {
		return "", Leaf{}, db.formatError(fmt.Sprintf("%s edition does not carry organizations", db.edition))
	}
	leaf, err := db.leafFor(addr)
	if err != nil {
		return "", Leaf{}, err
	}
	buf, err := db.record(leaf, maxOrgRecordLength)
	if err != nil {
		return "", Leaf{}, err
	}
	end := bytes.IndexByte(buf, 0)
	if end < 0 {
		return "", Leaf{}, db.formatError(fmt.Sprintf("organization record for %s is not terminated", addr))
	}
	return db.charset.decode(buf[:end]), leaf, nil
}

// leafFor resolves addr and reports a miss when the leaf carries no record.
func (db *Database) leafFor(addr ipv4.Addr) (Leaf, error) {
	leaf, err := db.Resolve(addr)
	if err != nil {
		return Leaf{}, err
	}
	if leaf.Pointer == db.segments {
		return Leaf{}, &LookupMissError{Addr: addr, Edition: db.edition}
	}
	return leaf, nil
}

func (db *Database) countryLeaf(addr ipv4.Addr) (Country, Leaf, error) {
	leaf, err := db.Resolve(addr)
	if err != nil {
		return Country{}, Leaf{}, err
	}
	index := int(leaf.Pointer - countryBegin)
	if index == 0 {
		return Country{}, Leaf{}, &LookupMissError{Addr: addr, Edition: db.edition}
	}
	country, err := db.country(index)
	if err != nil {
		return Country{}, Leaf{}, err
	}
	return country, leaf, nil
}

// record returns the window of at most size bytes holding the record the
// leaf points to.
func (db *Database) record(leaf Leaf, size int) ([]byte, error) {
	start := uint64(leaf.Pointer) + uint64(2*db.recordLength-1)*uint64(db.segments)
	if start >= uint64(len(db.data)) {
		return nil, db.formatError(fmt.Sprintf("record offset %d is beyond the end of the file", start))
	}
	end := min(start+uint64(size), uint64(len(db.data)))
	return db.data[start:end], nil
}

// country looks up the country table. Index 0 is the unknown country and
// yields an empty Country.
func (db *Database) country(index int) (Country, error) {
	if index < 0 || index >= len(db.countries) {
		return Country{}, db.formatError(fmt.Sprintf("country index %d is out of range", index))
	}
	if index == 0 {
		return Country{}, nil
	}
	return db.countries[index], nil
}

// decodeCoordinate converts a stored 3-byte coordinate to degrees. The
// subtraction happens in integers so four-decimal values stay exact.
func decodeCoordinate(b []byte) float64 {
	return float64(int(readUint(b))-1800000) / 10000
}
