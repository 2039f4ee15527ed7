package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	corev3 "github.com/envoyproxy/go-control-plane/envoy/config/core/v3"
	authv3 "github.com/envoyproxy/go-control-plane/envoy/service/auth/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gtriggiano/geoip-lookup/pkg/geoip"
	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
	"github.com/gtriggiano/geoip-lookup/pkg/metrics"
	"github.com/gtriggiano/geoip-lookup/pkg/runtime"
)

// Upstream headers carrying the resolved metadata.
const (
	HeaderCity         = "X-GeoIP-City"
	HeaderRegion       = "X-GeoIP-Region"
	HeaderCountry      = "X-GeoIP-Country"
	HeaderCountryISO   = "X-GeoIP-CountryISO"
	HeaderContinent    = "X-GeoIP-Continent"
	HeaderPostalCode   = "X-GeoIP-PostalCode"
	HeaderLatitude     = "X-GeoIP-Latitude"
	HeaderLongitude    = "X-GeoIP-Longitude"
	HeaderASNumber     = "X-ASN-Number"
	HeaderOrganization = "X-ASN-Organization"
)

// Resolver resolves a client address into a combined record.
// *geoip.Resolver satisfies it.
type Resolver interface {
	LookupAddr(addr ipv4.Addr) (geoip.Record, error)
}

// Manager enriches Envoy authorization requests with the location and
// autonomous system of the client. Requests are always allowed.
type Manager struct {
	resolver        Resolver
	instrumentation *metrics.Instrumentation
	clientIPHeader  string
	logger          *zap.Logger
}

// NewManager instantiates an enrichment manager. clientIPHeader, when set,
// names the request header the client address is read from.
func NewManager(
	resolver Resolver,
	instrumentation *metrics.Instrumentation,
	clientIPHeader string,
	logger *zap.Logger,
) *Manager {
	return &Manager{
		resolver:        resolver,
		instrumentation: instrumentation,
		clientIPHeader:  clientIPHeader,
		logger:          logger,
	}
}

// Check resolves the client address and allows the request, forwarding the
// metadata as upstream headers. Addresses that cannot be resolved are
// allowed without headers.
func (m *Manager) Check(_ context.Context, req *authv3.CheckRequest) (*authv3.CheckResponse, error) {
	reqCtx := runtime.NewRequestContext(req, m.clientIPHeader)
	start := time.Now()

	m.instrumentation.InFlight(reqCtx.Authority, 1)
	defer m.instrumentation.InFlight(reqCtx.Authority, -1)

	addr, ok := reqCtx.Addr()
	if !ok {
		m.logger.Debug("client address is not IPv4, skipping enrichment", reqCtx.LogFields()...)
		m.instrumentation.ObserveCheck(reqCtx.Authority, false, time.Since(start))
		return m.okResponse(nil), nil
	}

	rec, err := m.resolver.LookupAddr(addr)
	if err != nil && !errors.Is(err, legacydb.ErrLookupMiss) {
		m.logger.Error("could not resolve client address", append(reqCtx.LogFields(), zap.Error(err))...)
		m.instrumentation.ObserveCheck(reqCtx.Authority, false, time.Since(start))
		return m.okResponse(nil), nil
	}

	enriched := rec != geoip.Combine(addr, nil, nil)
	reqCtx.AddLogFields(rec.LogFields()...)
	if err != nil {
		reqCtx.AddLogFields(zap.NamedError("miss", err))
	}
	m.logger.Debug("request enriched", append(reqCtx.LogFields(), zap.Bool("enriched", enriched))...)

	m.instrumentation.ObserveCheck(reqCtx.Authority, enriched, time.Since(start))
	return m.okResponse(sanitizedHeaders(upstreamHeaders(rec))), nil
}

// okResponse wraps an OK authorization result with optional upstream headers.
func (m *Manager) okResponse(headers []*corev3.HeaderValueOption) *authv3.CheckResponse {
	return &authv3.CheckResponse{
		Status: status.New(codes.OK, "ok").Proto(),
		HttpResponse: &authv3.CheckResponse_OkResponse{
			OkResponse: &authv3.OkHttpResponse{Headers: headers},
		},
	}
}

// header is a single upstream header, kept in a slice so the emitted order is
// stable.
type header struct {
	key   string
	value string
}

// upstreamHeaders maps a record to its headers. Coordinates are only sent when
// the location database matched a city.
func upstreamHeaders(rec geoip.Record) []header {
	asNumber := geoip.Unknown
	if rec.ASNumber != 0 {
		asNumber = strconv.FormatUint(uint64(rec.ASNumber), 10)
	}

	headers := []header{
		{HeaderCity, rec.City},
		{HeaderRegion, rec.Region},
		{HeaderCountry, rec.Country},
		{HeaderCountryISO, rec.CountryCode},
		{HeaderContinent, rec.Continent},
	}
	if rec.PostalCode != "" {
		headers = append(headers, header{HeaderPostalCode, rec.PostalCode})
	}
	if rec.HasCoordinates {
		headers = append(headers,
			header{HeaderLatitude, geoip.FormatCoordinate(rec.Latitude)},
			header{HeaderLongitude, geoip.FormatCoordinate(rec.Longitude)},
		)
	}
	return append(headers,
		header{HeaderASNumber, asNumber},
		header{HeaderOrganization, rec.ASName},
	)
}

var headerPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// sanitizedHeaders converts headers into Envoy header values while filtering
// unsafe header names and stripping control characters from values.
func sanitizedHeaders(values []header) []*corev3.HeaderValueOption {
	if len(values) == 0 {
		return nil
	}

	headers := make([]*corev3.HeaderValueOption, 0, len(values))
	for _, h := range values {
		if !isSafeHeader(h.key) {
			continue
		}
		headers = append(headers, &corev3.HeaderValueOption{
			AppendAction: corev3.HeaderValueOption_OVERWRITE_IF_EXISTS_OR_ADD,
			Header: &corev3.HeaderValue{
				Key:   strings.TrimSpace(h.key),
				Value: strings.TrimSpace(strings.Map(dropControl, h.value)),
			},
		})
	}

	return headers
}

func dropControl(r rune) rune {
	if r < 0x20 || r == 0x7F {
		return -1
	}
	return r
}

// isSafeHeader constrains header names to alphanumeric and dash characters to avoid
// propagating malformed headers upstream.
func isSafeHeader(name string) bool {
	return headerPattern.MatchString(strings.TrimSpace(name))
}
