package ports

import (
	"context"

	"workspace/internal/domain"
)

// RegistryLoader loads the persisted registry aggregate
type RegistryLoader interface {
	Load(ctx context.Context) (*domain.Registry, error)
}

// RegistrySaver persists the registry aggregate
type RegistrySaver interface {
	Save(ctx context.Context, reg *domain.Registry) error
}

// RegistryStore is the composite load/save port with resource cleanup
type RegistryStore interface {
	RegistryLoader
	RegistrySaver
	Close() error
}
