package ports

import (
	"context"

	"go.trai.ch/declgraph/internal/core/domain"
)

// ToolRunner invokes the external compiler front-end.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ToolRunner interface {
	// Run parses source and writes a dump to the dump path. It blocks until
	// the tool exits. A run that reports success but leaves no readable
	// file at dump must be treated as a failure by implementations.
	Run(ctx context.Context, source, dump string, cfg *domain.Config) error
}
