package gateways

import (
	"context"

	"github.com/ochairo/lintgate/internal/domain/interfaces/gateways"
)

// integrityGateway composes checksum and signature verification of the tool executable
type integrityGateway struct {
	checksumVerifier *checksumVerifier
	gpgVerifier      *gpgVerifier
}

// NewIntegrityGateway creates a new integrity gateway with all dependencies
func NewIntegrityGateway() gateways.IntegrityVerifier {
	return &integrityGateway{
		checksumVerifier: NewChecksumVerifier(),
		gpgVerifier:      NewGPGVerifier(),
	}
}

// VerifyChecksum verifies the SHA256 digest of a file
func (c *integrityGateway) VerifyChecksum(ctx context.Context, filePath, expectedSum string) error {
	return c.checksumVerifier.VerifyChecksum(ctx, filePath, expectedSum)
}

// ImportGPGKeyFromFile loads public keys used for signature checks.
// Keys from an earlier import are dropped so only the configured keyring is trusted.
func (c *integrityGateway) ImportGPGKeyFromFile(keyPath string) error {
	c.gpgVerifier.ClearKeyring()
	return c.gpgVerifier.ImportGPGKeyFromFile(keyPath)
}

// VerifyGPGSignatureFromFile verifies a detached signature against the loaded keys
func (c *integrityGateway) VerifyGPGSignatureFromFile(filePath, sigPath string) error {
	return c.gpgVerifier.VerifyGPGSignatureFromFile(filePath, sigPath)
}
