package gateways

import (
	"fmt"

	"github.com/ochairo/lintgate/internal/external-adapters/gpg"
)

// gpgVerifier wraps the external OpenPGP adapter for tool signature checks
type gpgVerifier struct {
	verifier *gpg.Verifier
}

// NewGPGVerifier creates a new GPG verifier gateway
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewGPGVerifier() *gpgVerifier {
	return &gpgVerifier{
		verifier: gpg.NewVerifier(),
	}
}

// ImportGPGKeyFromFile loads a public keyring from a local file
func (g *gpgVerifier) ImportGPGKeyFromFile(keyPath string) error {
	if err := g.verifier.ImportKeyFromFile(keyPath); err != nil {
		return fmt.Errorf("failed to import GPG key from file: %w", err)
	}
	return nil
}

// VerifyGPGSignatureFromFile verifies a detached signature stored next to the tool
func (g *gpgVerifier) VerifyGPGSignatureFromFile(filePath, sigPath string) error {
	if err := g.verifier.VerifySignatureFromFile(filePath, sigPath); err != nil {
		return fmt.Errorf("GPG signature verification failed: %w", err)
	}
	return nil
}

// ClearKeyring drops every key imported so far
func (g *gpgVerifier) ClearKeyring() {
	g.verifier.ClearKeyring()
}
