package runtime

import (
	"net/netip"
	"testing"
	"time"

	corev3 "github.com/envoyproxy/go-control-plane/envoy/config/core/v3"
	authv3 "github.com/envoyproxy/go-control-plane/envoy/service/auth/v3"
	"go.uber.org/zap"

	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
)

func checkRequest(socketIP string, host string, headers map[string]string) *authv3.CheckRequest {
	return &authv3.CheckRequest{
		Attributes: &authv3.AttributeContext{
			Request: &authv3.AttributeContext_Request{
				Http: &authv3.AttributeContext_HttpRequest{
					Host:    host,
					Headers: headers,
				},
			},
			Source: &authv3.AttributeContext_Peer{
				Address: &corev3.Address{
					Address: &corev3.Address_SocketAddress{
						SocketAddress: &corev3.SocketAddress{Address: socketIP},
					},
				},
			},
		},
	}
}

func TestNewRequestContextInitializesFields(t *testing.T) {
	ip := "203.0.113.10"
	req := checkRequest(ip, "example.com", nil)

	ctx := NewRequestContext(req, "")

	if ctx.Request != req {
		t.Fatalf("request should be preserved on context")
	}
	if ctx.Authority != "example.com" {
		t.Fatalf("expected authority to be populated, got %q", ctx.Authority)
	}
	if ctx.ReceivedAt.IsZero() {
		t.Fatalf("expected ReceivedAt to be set")
	}
	if time.Since(ctx.ReceivedAt) > time.Second {
		t.Fatalf("ReceivedAt looks stale: %s", ctx.ReceivedAt)
	}
	if ctx.IpAddress.String() != ip {
		t.Fatalf("expected ip %s, got %s", ip, ctx.IpAddress.String())
	}

	fields := ctx.LogFields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 log fields, got %d", len(fields))
	}
	want := map[string]string{"authority": "example.com", "ip": ip}
	for _, f := range fields {
		if want[f.Key] != f.String {
			t.Fatalf("unexpected log field %q -> %q", f.Key, f.String)
		}
	}
}

func TestNewRequestContextClientIPHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		headers map[string]string
		want    string
	}{
		{
			name:    "header disabled",
			header:  "",
			headers: map[string]string{"x-forwarded-for": "1.0.0.5"},
			want:    "192.0.2.7",
		},
		{
			name:    "first forwarded address",
			header:  "x-forwarded-for",
			headers: map[string]string{"x-forwarded-for": "1.0.0.5, 10.0.0.1"},
			want:    "1.0.0.5",
		},
		{
			name:    "header name is case insensitive",
			header:  "X-Real-IP",
			headers: map[string]string{"x-real-ip": " 8.8.8.8 "},
			want:    "8.8.8.8",
		},
		{
			name:    "invalid header value falls back to socket",
			header:  "x-forwarded-for",
			headers: map[string]string{"x-forwarded-for": "unknown"},
			want:    "192.0.2.7",
		},
		{
			name:    "missing header falls back to socket",
			header:  "x-forwarded-for",
			headers: nil,
			want:    "192.0.2.7",
		},
		{
			name:    "mapped address is unmapped",
			header:  "x-forwarded-for",
			headers: map[string]string{"x-forwarded-for": "::ffff:1.2.3.4"},
			want:    "1.2.3.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewRequestContext(checkRequest("192.0.2.7", "example.com", tt.headers), tt.header)
			if got := ctx.IpAddress.String(); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRequestContextAddr(t *testing.T) {
	addr, ok := NewRequestContext(checkRequest("1.0.0.5", "", nil), "").Addr()
	if !ok || addr != ipv4.MustParse("1.0.0.5") {
		t.Fatalf("expected 1.0.0.5, got %v %v", addr, ok)
	}

	if _, ok := NewRequestContext(checkRequest("2001:db8::1", "", nil), "").Addr(); ok {
		t.Fatalf("expected IPv6 client to have no lookup key")
	}

	if _, ok := NewRequestContext(nil, "").Addr(); ok {
		t.Fatalf("expected missing client address to have no lookup key")
	}

	var nilCtx *RequestContext
	if _, ok := nilCtx.Addr(); ok {
		t.Fatalf("expected nil context to have no lookup key")
	}
}

func TestAddLogFieldsSkipsIPAndCopies(t *testing.T) {
	ctx := NewRequestContext(checkRequest("198.51.100.1", "", nil), "")

	ctx.AddLogFields(zap.String("geoip_city", "TestCity"), zap.String("ip", "ignored"))

	fields := ctx.LogFields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 log fields, got %d", len(fields))
	}
	if fields[2].Key != "geoip_city" || fields[2].String != "TestCity" {
		t.Fatalf("unexpected field: %+v", fields[2])
	}

	// Mutating the returned slice must not affect internal storage.
	fields[0].Key = "mutated"
	if ctx.LogFields()[0].Key != "authority" {
		t.Fatalf("log fields slice was not copied")
	}
}

func TestAddLogFieldsNilReceiverDoesNotPanic(t *testing.T) {
	var ctx *RequestContext
	ctx.AddLogFields(zap.String("foo", "bar"))
	if ctx.LogFields() != nil {
		t.Fatalf("expected nil fields for nil context")
	}
}

func TestRequestIpAddressExtraction(t *testing.T) {
	tests := []struct {
		name string
		req  *authv3.CheckRequest
		want netip.Addr
	}{
		{
			name: "nil request",
			req:  nil,
			want: netip.Addr{},
		},
		{
			name: "missing attributes",
			req:  &authv3.CheckRequest{},
			want: netip.Addr{},
		},
		{
			name: "invalid ip string",
			req:  checkRequest("not-an-ip", "", nil),
			want: netip.Addr{},
		},
		{
			name: "valid ip",
			req:  checkRequest("192.0.2.7", "", nil),
			want: netip.MustParseAddr("192.0.2.7"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requestIpAddress(tt.req)
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRequestAuthorityExtraction(t *testing.T) {
	tests := []struct {
		name string
		req  *authv3.CheckRequest
		want string
	}{
		{name: "nil request", want: "-"},
		{name: "missing attributes", req: &authv3.CheckRequest{}, want: "-"},
		{
			name: "host field preferred",
			req:  checkRequest("", "api.service.local", map[string]string{"host": "should-not-be-used"}),
			want: "api.service.local",
		},
		{
			name: "host header fallback",
			req:  checkRequest("", "", map[string]string{"HOST": "header.local"}),
			want: "header.local",
		},
		{
			name: "missing authority and host",
			req:  checkRequest("", "", nil),
			want: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := requestAuthority(tt.req); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
