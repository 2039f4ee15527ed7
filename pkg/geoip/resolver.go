package geoip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gtriggiano/geoip-lookup/pkg/config"
	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
)

// Database names used in logs, errors and metrics.
const (
	DatabaseLocation = "location"
	DatabaseASN      = "asn"
)

// Observer is notified of every database lookup.
type Observer interface {
	ObserveLookup(database string, err error, duration time.Duration)
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithObserver reports lookups to o.
func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		r.observer = o
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithDatabaseOptions applies opts to the databases opened by Open.
func WithDatabaseOptions(opts ...legacydb.Option) Option {
	return func(r *Resolver) {
		r.dbOptions = append(r.dbOptions, opts...)
	}
}

// Resolver answers combined lookups against a location database and an ASN
// database. Either may be absent. A Resolver is safe for concurrent use.
type Resolver struct {
	location  *legacydb.Database
	asn       *legacydb.Database
	observer  Observer
	logger    *zap.Logger
	dbOptions []legacydb.Option
}

// Result is the outcome of one address of a bulk lookup.
type Result struct {
	Input  string
	Record Record
	Err    error
}

// Open loads the databases named in cfg.
func Open(cfg config.DatabasesConfig, opts ...Option) (*Resolver, error) {
	r := newResolver(opts)
	dbOptions := append([]legacydb.Option{legacydb.WithCharset(cfg.CharsetValue())}, r.dbOptions...)

	if cfg.Location == "" && cfg.ASN == "" {
		return nil, errors.New("at least one database is required")
	}

	if cfg.Location != "" {
		db, err := legacydb.Open(cfg.Location, dbOptions...)
		if err != nil {
			return nil, fmt.Errorf("could not open %s database: %w", DatabaseLocation, err)
		}
		if !db.Edition().HasLocations() {
			return nil, fmt.Errorf("could not open %s database: %w", DatabaseLocation, &legacydb.FormatError{
				Path:   cfg.Location,
				Reason: fmt.Sprintf("%s edition does not carry locations", db.Edition()),
			})
		}
		r.location = db
	}

	if cfg.ASN != "" {
		db, err := legacydb.Open(cfg.ASN, dbOptions...)
		if err != nil {
			return nil, fmt.Errorf("could not open %s database: %w", DatabaseASN, err)
		}
		if !db.Edition().IsOrganization() {
			return nil, fmt.Errorf("could not open %s database: %w", DatabaseASN, &legacydb.FormatError{
				Path:   cfg.ASN,
				Reason: fmt.Sprintf("%s edition does not carry organizations", db.Edition()),
			})
		}
		r.asn = db
	}

	r.logDatabases()
	return r, nil
}

// NewResolver wraps already loaded databases. Either may be nil, but not both.
func NewResolver(location, asn *legacydb.Database, opts ...Option) (*Resolver, error) {
	if location == nil && asn == nil {
		return nil, errors.New("at least one database is required")
	}
	if location != nil && !location.Edition().HasLocations() {
		return nil, fmt.Errorf("%s edition cannot serve as %s database", location.Edition(), DatabaseLocation)
	}
	if asn != nil && !asn.Edition().IsOrganization() {
		return nil, fmt.Errorf("%s edition cannot serve as %s database", asn.Edition(), DatabaseASN)
	}

	r := newResolver(opts)
	r.location = location
	r.asn = asn
	r.logDatabases()
	return r, nil
}

func newResolver(opts []Option) *Resolver {
	r := &Resolver{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) logDatabases() {
	for name, db := range r.Databases() {
		meta := db.Metadata()
		r.logger.Info("database loaded",
			zap.String("database", name),
			zap.String("path", meta.Path),
			zap.Stringer("edition", meta.Edition),
			zap.Uint32("segments", meta.Segments),
			zap.Int("size", meta.Size),
		)
	}
}

// Databases returns the loaded databases keyed by role.
func (r *Resolver) Databases() map[string]*legacydb.Database {
	dbs := make(map[string]*legacydb.Database, 2)
	if r.location != nil {
		dbs[DatabaseLocation] = r.location
	}
	if r.asn != nil {
		dbs[DatabaseASN] = r.asn
	}
	return dbs
}

// Lookup parses text and resolves it. Invalid addresses yield a zero Record.
// Addresses a database does not cover yield a fully assembled record with
// Unknown fields and an error wrapping legacydb.ErrLookupMiss. Any other error
// means a database is corrupt.
func (r *Resolver) Lookup(text string) (Record, error) {
	addr, err := ipv4.Parse(text)
	if err != nil {
		return Record{}, err
	}
	return r.LookupAddr(addr)
}

// LookupAddr resolves an already parsed address. See Lookup for the error
// semantics.
func (r *Resolver) LookupAddr(addr ipv4.Addr) (Record, error) {
	var (
		geo    *legacydb.GeoRecord
		as     *legacydb.ASRecord
		misses []error
	)

	if r.location != nil {
		start := time.Now()
		rec, err := r.location.Location(addr)
		r.observe(DatabaseLocation, err, time.Since(start))
		switch {
		case err == nil:
			geo = &rec
		case errors.Is(err, legacydb.ErrLookupMiss):
			misses = append(misses, fmt.Errorf("%s: %w", DatabaseLocation, err))
		default:
			return Record{}, fmt.Errorf("%s: %w", DatabaseLocation, err)
		}
	}

	if r.asn != nil {
		start := time.Now()
		rec, err := r.asn.ASN(addr)
		r.observe(DatabaseASN, err, time.Since(start))
		switch {
		case err == nil:
			as = &rec
		case errors.Is(err, legacydb.ErrLookupMiss):
			misses = append(misses, fmt.Errorf("%s: %w", DatabaseASN, err))
		default:
			return Record{}, fmt.Errorf("%s: %w", DatabaseASN, err)
		}
	}

	record := Combine(addr, geo, as)
	if ce := r.logger.Check(zap.DebugLevel, "address resolved"); ce != nil {
		ce.Write(append(record.LogFields(), zap.String("ip", record.IP), zap.Int("misses", len(misses)))...)
	}
	return record, errors.Join(misses...)
}

// LookupAll resolves every input with at most workers concurrent lookups.
// Results keep the order of texts. Errors are reported per address; inputs not
// yet started when ctx is done carry ctx's error.
func (r *Resolver) LookupAll(ctx context.Context, texts []string, workers int) []Result {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(texts))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			results[i] = Result{Input: text, Err: err}
			continue
		}
		g.Go(func() error {
			rec, err := r.Lookup(text)
			results[i] = Result{Input: text, Record: rec, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Name implements metrics.HealthChecker.
func (r *Resolver) Name() string {
	return "geoip-databases"
}

// HealthCheck walks the search tree of every database once, surfacing
// corrupt trees before traffic does.
func (r *Resolver) HealthCheck(_ context.Context) error {
	for name, db := range r.Databases() {
		if _, err := db.Resolve(0); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (r *Resolver) observe(database string, err error, duration time.Duration) {
	if r.observer != nil {
		r.observer.ObserveLookup(database, err, duration)
	}
}
