//go:build unit

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx overrides the parts of pgx.Tx the helpers touch.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs      []*fakeTx
	beginErr error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func TestRunInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		b := &fakeBeginner{}
		got, err := db.RunInTx(ctx, b, func(db.DBTX) (int, error) { return 7, nil })
		require.NoError(t, err)
		assert.Equal(t, 7, got)
		require.Len(t, b.txs, 1)
		assert.True(t, b.txs[0].committed)
		assert.False(t, b.txs[0].rolledBack)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		b := &fakeBeginner{}
		boom := errors.New("insert failed")
		_, err := db.RunInTx(ctx, b, func(db.DBTX) (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
		assert.True(t, b.txs[0].rolledBack)
	})

	t.Run("begin failure is marked", func(t *testing.T) {
		b := &fakeBeginner{beginErr: errors.New("pool closed")}
		_, err := db.RunInTx(ctx, b, func(db.DBTX) (int, error) { return 0, nil })
		assert.True(t, errs.Is(err, db.ErrTransactionBegin))
	})
}

func TestRunInTxWithRetry(t *testing.T) {
	defer db.SetRetryBase(time.Millisecond)()
	ctx := context.Background()

	t.Run("retries serialization failures", func(t *testing.T) {
		b := &fakeBeginner{}
		calls := 0
		got, err := db.WithDefaultRetry(ctx, b, func(db.DBTX) (string, error) {
			calls++
			if calls < 3 {
				return "", &pgconn.PgError{Code: "40001"}
			}
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 3, calls)
		assert.Len(t, b.txs, 3)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		b := &fakeBeginner{}
		calls := 0
		_, err := db.RunInTxWithRetry(ctx, b, 2, func(db.DBTX) (string, error) {
			calls++
			return "", &pgconn.PgError{Code: "40P01"}
		})
		assert.True(t, errs.Is(err, db.ErrMaxRetriesExceeded))
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		b := &fakeBeginner{}
		calls := 0
		_, err := db.WithDefaultRetry(ctx, b, func(db.DBTX) (string, error) {
			calls++
			return "", &pgconn.PgError{Code: "23505"}
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
