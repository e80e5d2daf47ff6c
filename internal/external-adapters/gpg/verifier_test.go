package gpg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// signedFixture writes a fake tool, its public keyring and a detached signature
type signedFixture struct {
	dir     string
	tool    string
	keyring string
	sig     string
}

func newSignedFixture(t *testing.T, armored bool) signedFixture {
	t.Helper()

	entity, err := openpgp.NewEntity("lintgate test", "", "test@example.com", nil)
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}

	dir := t.TempDir()
	fx := signedFixture{
		dir:     dir,
		tool:    filepath.Join(dir, "flake8"),
		keyring: filepath.Join(dir, "keyring.gpg"),
		sig:     filepath.Join(dir, "flake8.sig"),
	}

	content := []byte("#!/bin/sh\nexit 0\n")
	//nolint:gosec // G306: test executable
	if err := os.WriteFile(fx.tool, content, 0700); err != nil {
		t.Fatal(err)
	}

	var keyBuf bytes.Buffer
	if armored {
		w, err := armor.Encode(&keyBuf, "PGP PUBLIC KEY BLOCK", nil)
		if err != nil {
			t.Fatal(err)
		}
		if err := entity.Serialize(w); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
	} else if err := entity.Serialize(&keyBuf); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fx.keyring, keyBuf.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}

	var sigBuf bytes.Buffer
	if armored {
		err = openpgp.ArmoredDetachSign(&sigBuf, entity, bytes.NewReader(content), nil)
	} else {
		err = openpgp.DetachSign(&sigBuf, entity, bytes.NewReader(content), nil)
	}
	if err != nil {
		t.Fatalf("sign error = %v", err)
	}
	if err := os.WriteFile(fx.sig, sigBuf.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}

	return fx
}

func TestVerifier_VerifySignatureFromFile(t *testing.T) {
	for _, armored := range []bool{true, false} {
		name := "binary"
		if armored {
			name = "armored"
		}

		t.Run(name, func(t *testing.T) {
			fx := newSignedFixture(t, armored)
			v := NewVerifier()

			if err := v.ImportKeyFromFile(fx.keyring); err != nil {
				t.Fatalf("ImportKeyFromFile() error = %v", err)
			}
			if size := v.GetKeyringSize(); size != 1 {
				t.Errorf("GetKeyringSize() = %d, want 1", size)
			}

			if err := v.VerifySignatureFromFile(fx.tool, fx.sig); err != nil {
				t.Errorf("VerifySignatureFromFile() error = %v", err)
			}
		})
	}
}

func TestVerifier_VerifySignatureFromFile_Tampered(t *testing.T) {
	fx := newSignedFixture(t, true)
	v := NewVerifier()
	if err := v.ImportKeyFromFile(fx.keyring); err != nil {
		t.Fatalf("ImportKeyFromFile() error = %v", err)
	}

	//nolint:gosec // G306: test executable
	if err := os.WriteFile(fx.tool, []byte("#!/bin/sh\nexit 1\n"), 0700); err != nil {
		t.Fatal(err)
	}

	err := v.VerifySignatureFromFile(fx.tool, fx.sig)
	if err == nil {
		t.Fatal("Expected signature verification to fail for modified file")
	}
	if !strings.Contains(err.Error(), "signature verification failed") {
		t.Errorf("Expected 'signature verification failed' error, got: %v", err)
	}
}

func TestVerifier_VerifySignatureFromFile_NoKeys(t *testing.T) {
	v := NewVerifier()

	err := v.VerifySignatureFromFile("/nonexistent/tool", "/nonexistent/tool.sig")
	if err == nil || !strings.Contains(err.Error(), "no GPG keys imported") {
		t.Errorf("Expected 'no GPG keys imported' error, got: %v", err)
	}
}

func TestVerifier_ImportKeyFromFile_NonexistentFile(t *testing.T) {
	v := NewVerifier()

	err := v.ImportKeyFromFile("/nonexistent/key.asc")
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to open key file") {
		t.Errorf("Expected 'failed to open key file' error, got: %v", err)
	}
}

func TestVerifier_ImportKeyFromFile_Garbage(t *testing.T) {
	v := NewVerifier()
	keyPath := filepath.Join(t.TempDir(), "empty.asc")
	if err := os.WriteFile(keyPath, []byte("not a gpg key"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := v.ImportKeyFromFile(keyPath); err == nil {
		t.Fatal("Expected error for invalid key file, got nil")
	}
	if size := v.GetKeyringSize(); size != 0 {
		t.Errorf("GetKeyringSize() = %d, want 0", size)
	}
}

func TestVerifier_ClearKeyring(t *testing.T) {
	fx := newSignedFixture(t, false)
	v := NewVerifier()
	if err := v.ImportKeyFromFile(fx.keyring); err != nil {
		t.Fatal(err)
	}

	v.ClearKeyring()

	if size := v.GetKeyringSize(); size != 0 {
		t.Errorf("After clear, keyring size = %d, want 0", size)
	}
}
