package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RackService/pkg/metrics"
)

func TestGetExecutor(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	assert.Equal(t, DBExecutor(db), GetExecutor(ctx, db))
	assert.False(t, IsInTransaction(ctx))

	tx := &SqlTxWrapper{}
	txCtx := WithTx(ctx, tx)
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, db))
	assert.True(t, IsInTransaction(txCtx))
}

func TestDB_ObservesQueriesInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.NewWithRegisterer("rack-test", prometheus.NewRegistry())
	wrapped := Wrap(db, m, "rack")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	_, err = tx.ExecContext(context.Background(), "UPDATE reservations SET room_id = $1", "R2")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("  SELECT id FROM reservations"))
	assert.Equal(t, "unknown", operation(""))
}
