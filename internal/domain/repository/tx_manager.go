package repository

import "context"

// TxManager runs fn inside one database transaction carried by ctx.
// Repositories called with that ctx join the transaction.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
