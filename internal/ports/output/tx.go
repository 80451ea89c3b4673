package output

import "context"

// TxManager runs fn inside one storage transaction. Repositories invoked
// with the context passed to fn join that transaction; fn returning an
// error rolls everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
