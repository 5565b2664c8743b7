package position

import "context"

type Repository interface {
	ListPositions(ctx context.Context) ([]Position, error)
	GetPositionByID(ctx context.Context, id int) (*Position, error)
	CreatePosition(ctx context.Context, pos *Position) error
	UpdatePosition(ctx context.Context, pos *Position) error
	DeletePosition(ctx context.Context, id int) (bool, error)
}
