// Package services defines interfaces for domain service contracts.
package services

import "github.com/ochairo/lintgate/internal/domain/entities"

// GateService holds the pass/fail decision for a tool exit status
type GateService interface {
	// MapStatus collapses a tool exit status to the gate exit status
	MapStatus(toolExitCode int) int

	// Evaluate builds the verdict for a tool exit status. A non-clean status
	// is returned as a CheckFailure.
	Evaluate(toolExitCode int) (entities.Verdict, error)
}
