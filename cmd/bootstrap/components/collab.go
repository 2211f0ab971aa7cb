package components

import (
	"closeout-market/internal/infra/collab"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/usecase/shared"

	"go.uber.org/fx"
)

var CollabModule = fx.Module("collab",
	fx.Provide(
		func(cfg config.Config) shared.CopyGenerator {
			return collab.NewCopyGenerator(cfg.Collaborators)
		},
		func(cfg config.Config) (shared.BusinessVerifier, error) {
			return collab.NewBusinessVerifier(cfg.Collaborators)
		},
	),
)
