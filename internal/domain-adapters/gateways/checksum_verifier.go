package gateways

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// checksumVerifier pins a tool executable by its SHA256 digest
type checksumVerifier struct{}

// NewChecksumVerifier creates a new checksum verifier
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewChecksumVerifier() *checksumVerifier {
	return &checksumVerifier{}
}

// VerifyChecksum compares the SHA256 of filePath with expectedSum (hex, case-insensitive)
func (v *checksumVerifier) VerifyChecksum(ctx context.Context, filePath, expectedSum string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	actualSum, err := v.CalculateChecksum(filePath)
	if err != nil {
		return err
	}

	if !strings.EqualFold(actualSum, strings.TrimSpace(expectedSum)) {
		return fmt.Errorf("checksum mismatch for %s: expected %s, got %s", filePath, expectedSum, actualSum)
	}

	return nil
}

// CalculateChecksum returns the hex SHA256 of a file
func (v *checksumVerifier) CalculateChecksum(filePath string) (string, error) {
	//nolint:gosec // G304: filePath is the resolved tool executable
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
