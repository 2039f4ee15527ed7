// Package runtime provides request-scoped context for the enrichment flow.
// It extracts the client address and authority from Envoy CheckRequest objects
// and accumulates structured logging fields.
package runtime

import (
	"net/netip"
	"strings"
	"sync"
	"time"

	authv3 "github.com/envoyproxy/go-control-plane/envoy/service/auth/v3"
	"go.uber.org/zap"

	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
)

// RequestContext captures metadata used while enriching a single request.
type RequestContext struct {
	// Request is the original Envoy CheckRequest received from the external auth filter.
	Request *authv3.CheckRequest
	// ReceivedAt records the timestamp when the request was first processed.
	ReceivedAt time.Time
	// Authority is the Host/:authority value extracted from the incoming request.
	Authority string
	// IpAddress is the client address, taken from the configured header when
	// present and valid, otherwise from the downstream socket.
	IpAddress netip.Addr

	mu        sync.RWMutex
	logFields []zap.Field
}

// NewRequestContext constructs a RequestContext from req. When clientIPHeader is
// not empty its first comma separated value takes precedence over the socket
// address, matching the x-forwarded-for convention.
func NewRequestContext(req *authv3.CheckRequest, clientIPHeader string) *RequestContext {
	authority := requestAuthority(req)
	ipAddress, ok := headerIpAddress(req, clientIPHeader)
	if !ok {
		ipAddress = requestIpAddress(req)
	}

	return &RequestContext{
		Request:    req,
		ReceivedAt: time.Now(),
		Authority:  authority,
		IpAddress:  ipAddress,
		logFields: []zap.Field{
			zap.String("authority", authority),
			zap.String("ip", ipAddress.String()),
		},
	}
}

// Addr returns the client address as a lookup key. It reports false when the
// address is missing or not IPv4.
func (r *RequestContext) Addr() (ipv4.Addr, bool) {
	if r == nil {
		return 0, false
	}
	return ipv4.FromNetip(r.IpAddress)
}

// AddLogFields attaches structured fields that should accompany request logging.
// The ip and authority keys are owned by the context and cannot be overridden.
func (r *RequestContext) AddLogFields(fields ...zap.Field) {
	if r == nil {
		return
	}

	sanitizedFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if f.Key == "ip" || f.Key == "authority" {
			continue
		}
		sanitizedFields = append(sanitizedFields, f)
	}

	r.mu.Lock()
	r.logFields = append(r.logFields, sanitizedFields...)
	r.mu.Unlock()
}

// LogFields returns a snapshot of the accumulated log fields.
func (r *RequestContext) LogFields() []zap.Field {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]zap.Field, len(r.logFields))
	copy(out, r.logFields)
	return out
}

// requestIpAddress extracts the downstream client IP address from the CheckRequest.
// It returns the zero-value netip.Addr when the IP cannot be determined.
func requestIpAddress(req *authv3.CheckRequest) netip.Addr {
	socketAddr := req.GetAttributes().GetSource().GetAddress().GetSocketAddress()
	if socketAddr == nil {
		return netip.Addr{}
	}

	ip, _ := netip.ParseAddr(socketAddr.GetAddress())
	return ip.Unmap()
}

// headerIpAddress reads the first address listed in the named request header.
// That value comes from the client unless a trusted proxy overwrites the header.
func headerIpAddress(req *authv3.CheckRequest, header string) (netip.Addr, bool) {
	if header == "" {
		return netip.Addr{}, false
	}
	value, ok := requestHeader(req, header)
	if !ok {
		return netip.Addr{}, false
	}
	first, _, _ := strings.Cut(value, ",")
	ip, err := netip.ParseAddr(strings.TrimSpace(first))
	if err != nil {
		return netip.Addr{}, false
	}
	return ip.Unmap(), true
}

// requestHeader looks a header up case-insensitively.
func requestHeader(req *authv3.CheckRequest, name string) (string, bool) {
	for k, v := range req.GetAttributes().GetRequest().GetHttp().GetHeaders() {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// requestAuthority extracts the :authority/Host value from the CheckRequest.
// It first tries the dedicated Host field and falls back to the host header,
// returning "-" when no value is present.
func requestAuthority(req *authv3.CheckRequest) string {
	http := req.GetAttributes().GetRequest().GetHttp()
	if http == nil {
		return "-"
	}

	authority := http.GetHost()
	if authority == "" {
		authority, _ = requestHeader(req, "host")
	}

	if authority == "" {
		return "-"
	}

	return authority
}
