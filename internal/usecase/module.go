package usecase

import (
	"go.uber.org/fx"

	"github.com/innovshop/marketplace/internal/pkg/lock"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	lock.NewKeyed,
	NewAuthUseCase,
	NewSplitterUseCase,
	NewLotUseCase,
	NewStatusUseCase,
	NewRatingUseCase,
	NewSellerUseCase,
	NewCheckoutUseCase,
)
