// Package legacydb reads the legacy MaxMind GeoIP binary databases
// (GeoIP.dat, GeoLiteCity.dat, GeoIPASNum.dat and friends) directly from
// their byte layout.
//
// A Database is immutable once opened and can be shared by any number of
// goroutines.
package legacydb

import (
	"bytes"
	"fmt"
	"os"
)

// Database is a legacy GeoIP database loaded into memory.
type Database struct {
	path         string
	data         []byte
	edition      Edition
	segments     uint32
	recordLength int
	// treeLimit is the end of the search tree region within data.
	treeLimit uint64
	info      string
	countries []Country
	charset   Charset
}

// Metadata summarizes the structure of a loaded database.
type Metadata struct {
	Path         string
	Edition      Edition
	Segments     uint32
	RecordLength int
	Size         int
	Info         string
}

// Option customizes a Database at load time.
type Option func(*Database)

// WithCharset selects how record strings are decoded.
func WithCharset(charset Charset) Option {
	return func(db *Database) {
		db.charset = charset
	}
}

// WithCountries replaces the built-in country table. Indexes stored in the
// database that fall outside the table are reported as format errors.
func WithCountries(countries []Country) Option {
	return func(db *Database) {
		db.countries = append([]Country(nil), countries...)
	}
}

// Open reads the database at path fully into memory and validates its
// structure.
func Open(path string, opts ...Option) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	return load(path, data, opts)
}

// New validates an in-memory database. The buffer must not be modified
// afterwards.
func New(data []byte, opts ...Option) (*Database, error) {
	return load("", data, opts)
}

func load(path string, data []byte, opts []Option) (*Database, error) {
	db := &Database{
		path:    path,
		data:    data,
		charset: CharsetAuto,
	}
	for _, opt := range opts {
		opt(db)
	}
	if db.countries == nil {
		db.countries = DefaultCountries()
	}

	marker, err := db.readStructure()
	if err != nil {
		return nil, err
	}
	db.info = db.readInfo(marker)

	return db, nil
}

// readStructure locates the structure marker at the end of the file and
// derives the edition, segment count and pointer width from it. It returns
// the offset of the marker.
func (db *Database) readStructure() (int, error) {
	marker := -1
	for i := 0; i < structureInfoMaxSize; i++ {
		pos := len(db.data) - 3 - i
		if pos < 0 {
			break
		}
		if db.data[pos] == 0xFF && db.data[pos+1] == 0xFF && db.data[pos+2] == 0xFF {
			marker = pos
			break
		}
	}
	if marker < 0 {
		return 0, db.formatError("structure marker not found")
	}
	if marker+3 >= len(db.data) {
		return 0, db.formatError("structure marker is missing the edition byte")
	}

	edition := db.data[marker+3]
	if edition >= legacyEditionOffset+1 {
		edition -= legacyEditionOffset
	}
	db.edition = Edition(edition)
	if !db.edition.supported() {
		return 0, db.formatError(fmt.Sprintf("unsupported edition %d", edition))
	}
	db.recordLength = db.edition.recordLength()

	if db.edition == EditionCountry {
		db.segments = countryBegin
		db.treeLimit = uint64(marker)
		return marker, nil
	}

	if marker+4+segmentRecordLength > len(db.data) {
		return 0, db.formatError("structure marker is missing the segment count")
	}
	db.segments = readUint(db.data[marker+4 : marker+4+segmentRecordLength])
	if db.segments == 0 {
		return 0, db.formatError("segment count is zero")
	}

	db.treeLimit = uint64(db.segments) * 2 * uint64(db.recordLength)
	if db.treeLimit > uint64(marker) {
		return 0, db.formatError(fmt.Sprintf("search tree of %d segments does not fit in %d bytes", db.segments, marker))
	}
	return marker, nil
}

// readInfo extracts the free-text description stored between a run of three
// NUL bytes and the structure marker.
func (db *Database) readInfo(marker int) string {
	for i := 0; i < databaseInfoMaxSize; i++ {
		pos := marker - 3 - i
		if pos < 0 {
			return ""
		}
		if db.data[pos] == 0 && db.data[pos+1] == 0 && db.data[pos+2] == 0 {
			info := db.data[pos+3 : marker]
			if !printable(info) {
				return ""
			}
			return string(info)
		}
	}
	return ""
}

// Path returns the path the database was opened from, empty for in-memory
// databases.
func (db *Database) Path() string { return db.path }

// Edition returns the database edition.
func (db *Database) Edition() Edition { return db.edition }

// Segments returns the leaf threshold of the search tree.
func (db *Database) Segments() uint32 { return db.segments }

// RecordLength returns the width in bytes of a search tree pointer.
func (db *Database) RecordLength() int { return db.recordLength }

// Info returns the database description, empty when none is stored.
func (db *Database) Info() string { return db.info }

// Charset returns the charset used to decode record strings.
func (db *Database) Charset() Charset { return db.charset }

// Metadata returns a summary of the database structure.
func (db *Database) Metadata() Metadata {
	return Metadata{
		Path:         db.path,
		Edition:      db.edition,
		Segments:     db.segments,
		RecordLength: db.recordLength,
		Size:         len(db.data),
		Info:         db.info,
	}
}

func (db *Database) formatError(reason string) error {
	return &FormatError{Path: db.path, Reason: reason}
}

// readUint decodes a little-endian unsigned integer of up to four bytes.
func readUint(b []byte) uint32 {
	var v uint32
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}
	return v
}

// printable reports whether b is non-blank printable ASCII. Pointer bytes
// picked up from a database without a description never qualify.
func printable(b []byte) bool {
	if len(bytes.TrimSpace(b)) == 0 {
		return false
	}
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}
