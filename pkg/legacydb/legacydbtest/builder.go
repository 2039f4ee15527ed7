// Package legacydbtest builds small legacy GeoIP databases in memory for
// tests.
package legacydbtest

import (
	"math"
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
)

// countryBegin is the leaf threshold of Country edition databases.
const countryBegin = 16776960

// City describes a city record to encode.
type City struct {
	CountryIndex int
	Region       string
	City         string
	PostalCode   string
	Latitude     float64
	Longitude    float64
	// MetroCode and AreaCode are only written by City REV1 builders when the
	// country is the United States.
	MetroCode int
	AreaCode  int
}

// Builder assembles a database from prefixes. Later insertions override
// earlier ones on overlap.
type Builder struct {
	edition legacydb.Edition
	legacy  bool
	info    string
	root    *node
	records [][]byte
}

type node struct {
	kids    [2]*node
	leaf    [2]int
	hasLeaf [2]bool
}

// NewBuilder returns an empty builder for the given edition.
func NewBuilder(edition legacydb.Edition) *Builder {
	return &Builder{edition: edition, root: &node{}}
}

// Info sets the description stored before the structure marker.
func (b *Builder) Info(info string) *Builder {
	b.info = info
	return b
}

// Legacy stores the edition with the old +105 encoding.
func (b *Builder) Legacy() *Builder {
	b.legacy = true
	return b
}

// AddCity maps prefix to a city record.
func (b *Builder) AddCity(prefix string, city City) *Builder {
	return b.addRecord(prefix, b.encodeCity(city))
}

// AddOrganization maps prefix to an organization string.
func (b *Builder) AddOrganization(prefix, name string) *Builder {
	return b.addRecord(prefix, append([]byte(name), 0))
}

// AddCountry maps prefix to an index of the country table. Only meaningful
// for Country edition builders.
func (b *Builder) AddCountry(prefix string, index int) *Builder {
	b.insert(netip.MustParsePrefix(prefix), index)
	return b
}

func (b *Builder) addRecord(prefix string, record []byte) *Builder {
	b.records = append(b.records, record)
	b.insert(netip.MustParsePrefix(prefix), len(b.records)-1)
	return b
}

func (b *Builder) insert(prefix netip.Prefix, value int) {
	prefix = prefix.Masked()
	bits := prefix.Bits()
	if bits < 1 || !prefix.Addr().Is4() {
		panic("legacydbtest: prefix must be IPv4 with at least one bit: " + prefix.String())
	}
	ip := prefix.Addr().As4()
	addr := uint32(ip[0])<<24 | uint32(ip[1])<<16 | uint32(ip[2])<<8 | uint32(ip[3])

	cur := b.root
	for i := 0; i < bits; i++ {
		bit := int(addr>>uint(31-i)) & 1
		if i == bits-1 {
			cur.kids[bit] = nil
			cur.leaf[bit] = value
			cur.hasLeaf[bit] = true
			return
		}
		if cur.kids[bit] == nil {
			child := &node{}
			if cur.hasLeaf[bit] {
				child.leaf = [2]int{cur.leaf[bit], cur.leaf[bit]}
				child.hasLeaf = [2]bool{true, true}
				cur.hasLeaf[bit] = false
			}
			cur.kids[bit] = child
		}
		cur = cur.kids[bit]
	}
}

// Bytes serializes the database.
func (b *Builder) Bytes() []byte {
	nodes := []*node{b.root}
	index := map[*node]int{b.root: 0}
	for i := 0; i < len(nodes); i++ {
		for _, kid := range nodes[i].kids {
			if kid != nil {
				index[kid] = len(nodes)
				nodes = append(nodes, kid)
			}
		}
	}

	country := b.edition == legacydb.EditionCountry
	segments := uint32(len(nodes))
	if country {
		segments = countryBegin
	}

	// offsets[i] is the position of records[i] within the data section,
	// which starts with a padding byte reserved for the miss pointer.
	data := []byte{0}
	offsets := make([]uint32, len(b.records))
	for i, record := range b.records {
		offsets[i] = uint32(len(data))
		data = append(data, record...)
	}

	rl := recordLength(b.edition)
	var out []byte
	for _, n := range nodes {
		for side := 0; side < 2; side++ {
			var pointer uint32
			switch {
			case n.kids[side] != nil:
				pointer = uint32(index[n.kids[side]])
			case n.hasLeaf[side] && country:
				pointer = countryBegin + uint32(n.leaf[side])
			case n.hasLeaf[side]:
				pointer = segments + offsets[n.leaf[side]]
			default:
				pointer = segments
			}
			out = appendUint(out, pointer, rl)
		}
	}

	if !country {
		out = append(out, data...)
	}
	if b.info != "" {
		out = append(out, 0, 0, 0)
		out = append(out, b.info...)
	}

	edition := byte(b.edition)
	if b.legacy {
		edition += 105
	}
	out = append(out, 0xFF, 0xFF, 0xFF, edition)
	if !country {
		out = appendUint(out, segments, 3)
	}
	return out
}

// Open serializes the database and loads it.
func (b *Builder) Open(t testing.TB, opts ...legacydb.Option) *legacydb.Database {
	t.Helper()
	db, err := legacydb.New(b.Bytes(), opts...)
	if err != nil {
		t.Fatalf("failed to load synthetic database: %v", err)
	}
	return db
}

// WriteFile serializes the database into a temporary file and returns its
// path.
func (b *Builder) WriteFile(t testing.TB, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b.Bytes(), 0o600); err != nil {
		t.Fatalf("failed to write synthetic database: %v", err)
	}
	return path
}

func (b *Builder) encodeCity(c City) []byte {
	out := []byte{byte(c.CountryIndex)}
	for _, s := range []string{c.Region, c.City, c.PostalCode} {
		out = append(out, s...)
		out = append(out, 0)
	}
	out = appendUint(out, encodeCoordinate(c.Latitude), 3)
	out = appendUint(out, encodeCoordinate(c.Longitude), 3)
	countries := legacydb.DefaultCountries()
	if b.edition == legacydb.EditionCityRev1 && c.CountryIndex < len(countries) && countries[c.CountryIndex].Code == "US" {
		out = appendUint(out, uint32(c.MetroCode*1000+c.AreaCode), 3)
	}
	return out
}

func encodeCoordinate(degrees float64) uint32 {
	return uint32(int64(math.Round(degrees*10000)) + 1800000)
}

func recordLength(edition legacydb.Edition) int {
	switch edition {
	case legacydb.EditionOrg, legacydb.EditionISP, legacydb.EditionDomain:
		return 4
	default:
		return 3
	}
}

func appendUint(out []byte, v uint32, width int) []byte {
	for i := 0; i < width; i++ {
		out = append(out, byte(v>>(8*i)))
	}
	return out
}
