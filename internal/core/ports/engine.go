package ports

import "context"

//go:generate mockery --name ImportEngine --output ./mocks --outpkg mocks --case underscore
type ImportEngine interface {
	Run(ctx context.Context) error
}
