// Package testutil holds fixtures shared by tests across packages.
package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// Signer is a throwaway OpenPGP identity for signing tool fixtures
type Signer struct {
	entity *openpgp.Entity
}

// NewSigner generates a fresh signing key
func NewSigner(t testing.TB) *Signer {
	t.Helper()

	entity, err := openpgp.NewEntity("lintgate test", "", "test@example.com", nil)
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}
	return &Signer{entity: entity}
}

// WriteKeyring writes the armored public key to path
func (s *Signer) WriteKeyring(t testing.TB, path string) {
	t.Helper()

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, "PGP PUBLIC KEY BLOCK", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.entity.Serialize(w); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}
}

// WriteSignature writes an armored detached signature over content to path
func (s *Signer) WriteSignature(t testing.TB, path string, content []byte) {
	t.Helper()

	var buf bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&buf, s.entity, bytes.NewReader(content), nil); err != nil {
		t.Fatalf("ArmoredDetachSign() error = %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}
}
