// Package config provides configuration loading, validation, and management for the
// GeoIP lookup tool and its enrichment server. It supports YAML-based configuration
// files with validation and default value application.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
	"github.com/gtriggiano/geoip-lookup/pkg/logging"
	"gopkg.in/yaml.v3"
)

const (
	// Server timeouts
	defaultShutdownTimeout = 20 * time.Second

	// DefaultLocationDatabase is the file name of the GeoLite City database.
	DefaultLocationDatabase = "GeoLiteCity.dat"
	// DefaultASNDatabase is the file name of the GeoLite ASNum database.
	DefaultASNDatabase = "GeoIPASNum.dat"
)

// Config models the complete application configuration, including database locations,
// server settings, and operational parameters.
type Config struct {
	// Logging configures structured logging output and levels.
	Logging logging.Config `yaml:"logging"`
	// Databases locates the legacy GeoIP database files.
	Databases DatabasesConfig `yaml:"databases"`
	// Bulk configures lookups of address lists.
	Bulk BulkConfig `yaml:"bulk"`
	// Server configures the gRPC enrichment service listener.
	Server ServerConfig `yaml:"server"`
	// Metrics configures the HTTP server for Prometheus metrics and health endpoints.
	Metrics MetricsConfig `yaml:"metrics"`
	// Shutdown controls graceful shutdown behavior.
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// DatabasesConfig locates the legacy database files. Either database may be omitted,
// but not both.
type DatabasesConfig struct {
	// Location is the path to a City (GeoLiteCity.dat) or Country (GeoIP.dat) database.
	Location string `yaml:"location"`
	// ASN is the path to an ASNum (GeoIPASNum.dat) database.
	ASN string `yaml:"asn"`
	// Charset selects how record strings are decoded (auto, latin1, utf8).
	Charset string `yaml:"charset"`
}

// BulkConfig controls file-driven lookups.
type BulkConfig struct {
	// Workers bounds the number of concurrent lookups. Defaults to the number of CPUs.
	Workers int `yaml:"workers"`
}

// ServerConfig controls the gRPC listener and optional TLS settings.
type ServerConfig struct {
	// Address is the bind address for the gRPC server (e.g., ":9001").
	Address string `yaml:"address"`
	// TLS configures optional mutual TLS for the gRPC server.
	TLS *TLSConfig `yaml:"tls"`
	// ClientIPHeader names a request header carrying the client address (e.g. "x-forwarded-for").
	// When empty the socket address reported by Envoy is used.
	//
	// The first address listed in the header is used, and clients can set it to
	// anything. Only configure a header that the proxy in front of Envoy overwrites,
	// or that Envoy rewrites with use_remote_address.
	ClientIPHeader string `yaml:"clientIPHeader"`
}

// TLSConfig wraps TLS material locations for server certificates and client verification.
type TLSConfig struct {
	// CertFile is the path to the server certificate PEM file.
	CertFile string `yaml:"certFile"`
	// KeyFile is the path to the server private key PEM file.
	KeyFile string `yaml:"keyFile"`
	// CAFile is the optional path to a CA certificate for client cert verification.
	CAFile string `yaml:"caFile"`
	// RequireClientCert enables mutual TLS by requiring and verifying client certificates.
	RequireClientCert bool `yaml:"requireClientCert"`
}

// MetricsConfig controls the metrics/health HTTP server.
type MetricsConfig struct {
	// Address is the bind address for the metrics HTTP server (e.g., ":9090").
	Address string `yaml:"address"`
	// HealthPath is the liveness check endpoint path.
	HealthPath string `yaml:"healthPath"`
	// ReadinessPath is the readiness check endpoint path.
	ReadinessPath string `yaml:"readinessPath"`
	// DropPrefixes specifies metric name prefixes to filter out from the default Go runtime registry.
	DropPrefixes []string `yaml:"dropPrefixes"`
}

// ShutdownConfig holds graceful shutdown parameters.
type ShutdownConfig struct {
	// Timeout is the maximum duration to wait for graceful shutdown (e.g., "25s").
	Timeout string `yaml:"timeout"`
}

// Default returns a configuration with every default applied, used when no
// configuration file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, normalizes, and validates a configuration file from the specified path.
// It returns a fully validated Config instance or an error if loading or validation fails.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("a path to a configuration file is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read the configuration file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse the configuration file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures the configuration is ready for use by checking all required fields
// and validating nested configurations for databases, servers and metrics.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if err := c.Databases.validate(); err != nil {
		return err
	}

	if c.Bulk.Workers < 0 {
		return errors.New("configuration 'bulk.workers' must not be negative")
	}

	if err := c.Server.validate(); err != nil {
		return err
	}

	if err := c.Metrics.validate(); err != nil {
		return err
	}

	return nil
}

// applyDefaults populates configuration fields with sensible default values when they
// are not explicitly specified in the configuration file.
func (c *Config) applyDefaults() {
	// Both databases default together so that configuring only one of them
	// disables the other.
	if c.Databases.Location == "" && c.Databases.ASN == "" {
		c.Databases.Location = DefaultLocationDatabase
		c.Databases.ASN = DefaultASNDatabase
	}
	if c.Databases.Charset == "" {
		c.Databases.Charset = legacydb.CharsetAuto.String()
	}

	if c.Bulk.Workers == 0 {
		c.Bulk.Workers = runtime.NumCPU()
	}

	if c.Server.Address == "" {
		c.Server.Address = ":9001"
	}

	if c.Metrics.Address == "" {
		c.Metrics.Address = ":9090"
	}
	if c.Metrics.HealthPath == "" {
		c.Metrics.HealthPath = "/healthz"
	}
	if c.Metrics.ReadinessPath == "" {
		c.Metrics.ReadinessPath = "/readyz"
	}
	if c.Metrics.DropPrefixes == nil {
		c.Metrics.DropPrefixes = []string{"go_", "process_", "promhttp_"}
	}

	if c.Shutdown.Timeout == "" {
		c.Shutdown.Timeout = "20s"
	}

	c.ResolvePaths()
}

// validate ensures at least one database is configured and the charset is known.
func (d DatabasesConfig) validate() error {
	if d.Location == "" && d.ASN == "" {
		return errors.New("configuration 'databases.location' or 'databases.asn' is required")
	}
	if _, err := legacydb.ParseCharset(d.Charset); err != nil {
		return fmt.Errorf("configuration 'databases.charset' is not valid: %w", err)
	}
	return nil
}

// CharsetValue returns the parsed charset, falling back to automatic detection.
func (d DatabasesConfig) CharsetValue() legacydb.Charset {
	charset, err := legacydb.ParseCharset(d.Charset)
	if err != nil {
		return legacydb.CharsetAuto
	}
	return charset
}

// validate ensures the server address is configured and TLS configuration is complete when TLS is enabled.
func (s ServerConfig) validate() error {
	if s.Address == "" {
		return errors.New("configuration 'server.address' is required")
	}

	if s.TLS == nil {
		return nil
	}

	return s.TLS.validate()
}

// validate ensures TLS certificate and key files exist and are accessible.
func (t TLSConfig) validate() error {
	if t.CertFile == "" || t.KeyFile == "" {
		return errors.New("configuration 'server.tls.certFile' and 'server.tls.keyFile' are required when TLS is enabled")
	}

	if t.RequireClientCert && t.CAFile == "" {
		return errors.New("configuration 'server.tls.caFile' is required when 'server.tls.requireClientCert' is true")
	}

	for _, filePath := range []string{t.CertFile, t.KeyFile, t.CAFile} {
		if filePath == "" {
			continue
		}
		if err := fileExists(filePath); err != nil {
			return err
		}
	}
	return nil
}

// validate ensures the metrics server address is configured.
func (m MetricsConfig) validate() error {
	if m.Address == "" {
		return errors.New("configuration 'metrics.address' is required")
	}
	return nil
}

// ShutdownTimeout returns the parsed graceful shutdown deadline. It defaults to 20 seconds
// if the timeout string is empty or cannot be parsed.
func (c ShutdownConfig) ShutdownTimeout() time.Duration {
	if c.Timeout == "" {
		return defaultShutdownTimeout
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return defaultShutdownTimeout
	}
	return d
}

// fileExists verifies that a file exists at the specified path.
// It returns an error if the path is empty or the file is not accessible.
func fileExists(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return nil
}

// ResolvePaths converts relative database and TLS file paths to absolute paths based on
// the current working directory. This ensures consistent path resolution regardless of
// where the binary is invoked from.
func (c *Config) ResolvePaths() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	for _, path := range []*string{&c.Databases.Location, &c.Databases.ASN} {
		absolutize(cwd, path)
	}

	if c.Server.TLS == nil {
		return
	}
	for _, path := range []*string{&c.Server.TLS.CertFile, &c.Server.TLS.KeyFile, &c.Server.TLS.CAFile} {
		absolutize(cwd, path)
	}
}

func absolutize(cwd string, path *string) {
	if *path != "" && !filepath.IsAbs(*path) {
		*path = filepath.Join(cwd, *path)
	}
}
