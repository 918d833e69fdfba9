package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrLeagueNotConfigured covers every registry failure mode: missing
	// row, blank required column, or an unreachable/empty registry.
	ErrLeagueNotConfigured = errors.New("league not found or incomplete")
	// ErrDependencyUnavailable means no resource could be loaded at all.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
