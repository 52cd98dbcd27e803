// Package app contains the application orchestration layer. It wires the
// pure domain verifier and generator to caller-facing operations without
// performing any I/O itself.
package app

import (
	"github.com/jkorri/hetu/internal/domain"
)

// Service exposes verification and generation using the injected random
// source and the operator-configured generation window. All methods are
// stateless between calls and safe for concurrent use as long as Rand is.
type Service struct {
	Rand    domain.Rand
	MinYear int
	MaxYear int
}

// Verify classifies input. It never returns an error; malformed input is an
// ordinary Invalid result.
func (s *Service) Verify(input string) domain.VerificationResult {
	return domain.Verify(input)
}

// Generate produces one random code. The caller's year range is clamped to
// the operator window before generation; an unsatisfiable configuration
// yields no result rather than an error.
func (s *Service) Generate(cfg domain.GeneratorConfig) (domain.PID, bool) {
	cfg.MinYear, cfg.MaxYear = domain.ClampYearRange(cfg.MinYear, cfg.MaxYear, s.MinYear, s.MaxYear)
	return domain.Generate(s.Rand, cfg)
}

// GenerateMany produces up to count codes, silently skipping individual
// failures. Callers that require exactly count results must compare the
// returned length against count.
func (s *Service) GenerateMany(cfg domain.GeneratorConfig, count int) []domain.PID {
	out := make([]domain.PID, 0, count)
	for i := 0; i < count; i++ {
		if pid, ok := s.Generate(cfg); ok {
			out = append(out, pid)
		}
	}
	return out
}
