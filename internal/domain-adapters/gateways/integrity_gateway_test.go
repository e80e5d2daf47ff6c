package gateways

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ochairo/lintgate/internal/testutil"
)

func TestIntegrityGateway(t *testing.T) {
	gw := NewIntegrityGateway()
	tool := writeTool(t, "")

	err := gw.VerifyChecksum(context.Background(), tool,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	if err != nil {
		t.Errorf("VerifyChecksum() error = %v", err)
	}

	err = gw.ImportGPGKeyFromFile(filepath.Join(t.TempDir(), "keys.asc"))
	if err == nil || !strings.Contains(err.Error(), "failed to import GPG key") {
		t.Errorf("ImportGPGKeyFromFile() error = %v", err)
	}

	err = gw.VerifyGPGSignatureFromFile(tool, tool+".sig")
	if err == nil || !strings.Contains(err.Error(), "GPG signature verification failed") {
		t.Errorf("VerifyGPGSignatureFromFile() error = %v", err)
	}
}

func TestIntegrityGateway_ImportReplacesKeyring(t *testing.T) {
	gw := NewIntegrityGateway().(*integrityGateway)
	dir := t.TempDir()

	content := []byte("#!/bin/sh\nexit 0\n")
	tool := writeTool(t, string(content))

	trusted := testutil.NewSigner(t)
	stale := testutil.NewSigner(t)
	trusted.WriteKeyring(t, filepath.Join(dir, "trusted.asc"))
	stale.WriteKeyring(t, filepath.Join(dir, "stale.asc"))
	stale.WriteSignature(t, filepath.Join(dir, "flake8.sig"), content)

	if err := gw.ImportGPGKeyFromFile(filepath.Join(dir, "stale.asc")); err != nil {
		t.Fatalf("ImportGPGKeyFromFile(stale) error = %v", err)
	}
	if err := gw.VerifyGPGSignatureFromFile(tool, filepath.Join(dir, "flake8.sig")); err != nil {
		t.Fatalf("VerifyGPGSignatureFromFile() with signer's key error = %v", err)
	}

	if err := gw.ImportGPGKeyFromFile(filepath.Join(dir, "trusted.asc")); err != nil {
		t.Fatalf("ImportGPGKeyFromFile(trusted) error = %v", err)
	}
	if size := gw.gpgVerifier.verifier.GetKeyringSize(); size != 1 {
		t.Errorf("keyring size = %d, want 1 after re-import", size)
	}
	if err := gw.VerifyGPGSignatureFromFile(tool, filepath.Join(dir, "flake8.sig")); err == nil {
		t.Error("signature from a previously imported key still verifies")
	}
}
