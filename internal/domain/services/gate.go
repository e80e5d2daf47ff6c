// Package services implements domain business logic and use cases.
package services

import (
	"github.com/ochairo/lintgate/internal/domain/entities"
	"github.com/ochairo/lintgate/internal/domain/interfaces/services"
)

// Gate exit statuses
const (
	ExitPass = 0
	ExitFail = 1
)

// MapStatus maps any tool exit status to a gate exit status: 0 stays 0,
// everything else becomes 1.
func MapStatus(toolExitCode int) int {
	if toolExitCode == 0 {
		return ExitPass
	}
	return ExitFail
}

type gateService struct{}

// NewGateService creates the gate decision service
func NewGateService() services.GateService {
	return &gateService{}
}

func (s *gateService) MapStatus(toolExitCode int) int {
	return MapStatus(toolExitCode)
}

func (s *gateService) Evaluate(toolExitCode int) (entities.Verdict, error) {
	if MapStatus(toolExitCode) == ExitPass {
		return entities.VerdictPass, nil
	}
	return entities.VerdictFail, entities.NewCheckError(toolExitCode)
}
