package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/backend-template/internal/model"
)

// NewSecurityLayer picks a TLS or plain listener factory.
func NewSecurityLayer(enableTLS bool, certFile, keyFile string) model.SecurityLayer {
	if enableTLS {
		return NewTLSListener(certFile, keyFile)
	}
	return NewPlainListener()
}

// TLSListener opens listeners that terminate TLS with a file-based key pair.
type TLSListener struct {
	certFile string
	keyFile  string
}

var _ model.SecurityLayer = (*TLSListener)(nil)

// NewTLSListener creates a new TLSListener instance.
func NewTLSListener(certFile, keyFile string) *TLSListener {
	return &TLSListener{
		certFile: certFile,
		keyFile:  keyFile,
	}
}

// Listen loads the key pair on every call so rotated certificates are
// picked up on restart of a server.
func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFile, l.keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	return tls.Listen(protocol, addr, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	})
}

// PlainListener opens unencrypted listeners.
type PlainListener struct{}

var _ model.SecurityLayer = (*PlainListener)(nil)

// NewPlainListener creates a new PlainListener instance.
func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}
