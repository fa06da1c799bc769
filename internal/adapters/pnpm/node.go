package pnpm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packager/internal/adapters/logger"
	"go.trai.ch/packager/internal/adapters/process"
	"go.trai.ch/packager/internal/core/ports"
	"go.trai.ch/packager/internal/engine/series" //nolint:depguard // Wired in adapter wiring
)

// NodeID is the unique identifier for the pnpm packager factory Graft node.
const NodeID graft.ID = "adapter.pnpm"

func init() {
	graft.Register(graft.Node[ports.PackagerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{process.NodeID, series.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackagerFactory, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			steps, err := graft.Dep[*series.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(runner, steps, log), nil
		},
	})
}
