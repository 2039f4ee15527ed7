package legacydb

import "strconv"

// Edition identifies the kind of data a legacy GeoIP database carries. The
// numeric values are the ones stored in the structure marker.
type Edition uint8

const (
	EditionCountry  Edition = 1
	EditionCityRev1 Edition = 2
	EditionISP      Edition = 4
	EditionOrg      Edition = 5
	EditionCityRev0 Edition = 6
	EditionASNum    Edition = 9
	EditionDomain   Edition = 11
)

// Layout constants of the legacy format.
const (
	countryBegin         = 16776960
	structureInfoMaxSize = 20
	databaseInfoMaxSize  = 100
	segmentRecordLength  = 3
	standardRecordLength = 3
	orgRecordLength      = 4
	fullRecordLength     = 50
	maxOrgRecordLength   = 300
	legacyEditionOffset  = 105
)

var editionNames = map[Edition]string{
	EditionCountry:  "country",
	EditionCityRev1: "city (rev1)",
	EditionISP:      "isp",
	EditionOrg:      "organization",
	EditionCityRev0: "city (rev0)",
	EditionASNum:    "asnum",
	EditionDomain:   "domain",
}

// String implements fmt.Stringer for Edition.
func (e Edition) String() string {
	if name, ok := editionNames[e]; ok {
		return name
	}
	return "edition " + strconv.Itoa(int(e))
}

// IsCity reports whether records of this edition are full city records.
func (e Edition) IsCity() bool {
	return e == EditionCityRev0 || e == EditionCityRev1
}

// IsOrganization reports whether records of this edition are NUL-terminated
// organization strings.
func (e Edition) IsOrganization() bool {
	switch e {
	case EditionISP, EditionOrg, EditionASNum, EditionDomain:
		return true
	default:
		return false
	}
}

// HasLocations reports whether the edition can answer Location queries.
func (e Edition) HasLocations() bool {
	return e == EditionCountry || e.IsCity()
}

// supported reports whether the reader can decode the edition.
func (e Edition) supported() bool {
	_, ok := editionNames[e]
	return ok
}

// recordLength returns the width in bytes of a single tree pointer.
func (e Edition) recordLength() int {
	switch e {
	case EditionOrg, EditionISP, EditionDomain:
		return orgRecordLength
	default:
		return standardRecordLength
	}
}
