package legacydb

import (
	"errors"
	"fmt"

	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
)

var (
	// ErrNotFound is wrapped by errors caused by a missing or unreadable
	// database file.
	ErrNotFound = errors.New("database not found")
	// ErrFormat is wrapped by errors caused by an unrecognized or corrupt
	// database layout.
	ErrFormat = errors.New("unrecognized database format")
	// ErrLookupMiss is wrapped by errors returned for addresses the database
	// carries no data for.
	ErrLookupMiss = errors.New("address not covered by database")
)

// NotFoundError is returned by Open when the database file cannot be read.
type NotFoundError struct {
	// Path is the path presented to Open.
	Path string
	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface for *NotFoundError.
func (err *NotFoundError) Error() string {
	return fmt.Sprintf("could not read database %s: %v", err.Path, err.Err)
}

// Unwrap returns both ErrNotFound and the filesystem error.
func (err *NotFoundError) Unwrap() []error {
	return []error{ErrNotFound, err.Err}
}

// FormatError is returned when a database buffer does not follow the legacy
// GeoIP layout.
type FormatError struct {
	// Path is the database path, empty for in-memory databases.
	Path string
	// Reason explains what is wrong with the layout.
	Reason string
}

// Error implements the error interface for *FormatError.
func (err *FormatError) Error() string {
	if err.Path == "" {
		return "invalid database: " + err.Reason
	}
	return fmt.Sprintf("invalid database %s: %s", err.Path, err.Reason)
}

// Unwrap returns ErrFormat so callers can use errors.Is.
func (err *FormatError) Unwrap() error {
	return ErrFormat
}

// LookupMissError is returned when an address falls outside every range the
// database covers.
type LookupMissError struct {
	// Addr is the address that was looked up.
	Addr ipv4.Addr
	// Edition is the edition of the database that was queried.
	Edition Edition
}

// Error implements the error interface for *LookupMissError.
func (err *LookupMissError) Error() string {
	return fmt.Sprintf("no %s data for %s", err.Edition, err.Addr)
}

// Unwrap returns ErrLookupMiss so callers can use errors.Is.
func (err *LookupMissError) Unwrap() error {
	return ErrLookupMiss
}
