package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	authv3 "github.com/envoyproxy/go-control-plane/envoy/service/auth/v3"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/gtriggiano/geoip-lookup/pkg/config"
	"github.com/gtriggiano/geoip-lookup/pkg/geoip"
	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
	"github.com/gtriggiano/geoip-lookup/pkg/legacydb/legacydbtest"
)

func TestBuildTLSConfigWithoutTLSReturnsEmptyConfig(t *testing.T) {
	cfg := config.ServerConfig{TLS: nil}
	tlsCfg, err := buildTLSConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tlsCfg.Certificates) != 0 {
		t.Fatalf("expected no certificates when TLS is nil")
	}
}

func TestBuildTLSConfigLoadsCertificates(t *testing.T) {
	dir := t.TempDir()
	certPath, keyPath := writeSelfSignedCert(t, dir)

	cfg := config.ServerConfig{
		TLS: &config.TLSConfig{
			CertFile: certPath,
			KeyFile:  keyPath,
		},
	}

	tlsCfg, err := buildTLSConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error loading TLS config: %v", err)
	}
	if len(tlsCfg.Certificates) != 1 {
		t.Fatalf("expected one certificate to be loaded")
	}
}

func TestBuildTLSConfigErrorsOnMissingFiles(t *testing.T) {
	cfg := config.ServerConfig{
		TLS: &config.TLSConfig{
			CertFile: "missing.pem",
			KeyFile:  "missing.key",
		},
	}
	if _, err := buildTLSConfig(cfg); err == nil {
		t.Fatalf("expected error when certificate files are missing")
	}
}

func TestServerStartFailsOnBadAddress(t *testing.T) {
	logger := zaptest.NewLogger(t)
	mgr := NewManager(&stubResolver{}, nil, "", logger)

	srv, err := NewServer(config.ServerConfig{Address: "bad::addr"}, mgr, logger)
	if err != nil {
		t.Fatalf("unexpected error constructing server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := srv.Start(ctx, nil); err == nil {
		t.Fatalf("expected start to fail with invalid address")
	}
}

func TestServerEnrichesOverGRPC(t *testing.T) {
	logger := zaptest.NewLogger(t)

	countries := legacydb.DefaultCountries()
	countries[206].Name = "TestCountry"
	location := legacydbtest.NewBuilder(legacydb.EditionCityRev1).
		AddCity("1.0.0.0/24", legacydbtest.City{
			CountryIndex: 206,
			Region:       "TestRegion",
			City:         "TestCity",
			Latitude:     10,
			Longitude:    20,
		}).
		Open(t, legacydb.WithCountries(countries))
	asn := legacydbtest.NewBuilder(legacydb.EditionASNum).
		AddOrganization("1.0.0.0/24", "AS64500 Test Network").
		Open(t)

	resolver, err := geoip.NewResolver(location, asn, geoip.WithLogger(logger))
	if err != nil {
		t.Fatalf("could not build resolver: %v", err)
	}

	srv, err := NewServer(config.ServerConfig{}, NewManager(resolver, nil, "", logger), logger)
	if err != nil {
		t.Fatalf("unexpected error constructing server: %v", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("could not listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ready := make(chan struct{})
	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(ctx, listener, func() { close(ready) })
	}()
	<-ready

	conn, err := grpc.NewClient(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("could not dial server: %v", err)
	}

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()

	healthResp, err := healthpb.NewHealthClient(conn).Check(callCtx, &healthpb.HealthCheckRequest{Service: authorizationServiceName})
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	if healthResp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("expected SERVING, got %v", healthResp.GetStatus())
	}

	resp, err := authv3.NewAuthorizationClient(conn).Check(callCtx, minimalCheckRequestUnit("1.0.0.5"))
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	headers := responseHeaders(t, resp)
	if headers[HeaderCity] != "TestCity" || headers[HeaderCountryISO] != "TC" || headers[HeaderASNumber] != "64500" {
		t.Fatalf("unexpected headers %v", headers)
	}

	_ = conn.Close()
	cancel()
	select {
	case err := <-served:
		if err != nil {
			t.Fatalf("unexpected serve error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("server did not stop")
	}
}

// --- test helpers ----------------------------------------------------------

func writeSelfSignedCert(t *testing.T, dir string) (string, string) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &priv.PublicKey, priv)
	if err != nil {
		t.Fatalf("failed to create certificate: %v", err)
	}

	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")

	certOut, err := os.Create(certPath)
	if err != nil {
		t.Fatalf("failed to create cert file: %v", err)
	}
	defer certOut.Close()
	if err := pem.Encode(certOut, &pem.Block{Type: "CERTIFICATE", Bytes: der}); err != nil {
		t.Fatalf("failed to write cert: %v", err)
	}

	keyOut, err := os.Create(keyPath)
	if err != nil {
		t.Fatalf("failed to create key file: %v", err)
	}
	defer keyOut.Close()
	keyBytes := x509.MarshalPKCS1PrivateKey(priv)
	if err := pem.Encode(keyOut, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: keyBytes}); err != nil {
		t.Fatalf("failed to write key: %v", err)
	}

	return certPath, keyPath
}
