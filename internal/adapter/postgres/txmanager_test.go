package postgres_test

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/myenglish-suite/internal/adapter/postgres"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func insertPoolWord(ctx context.Context, fallback postgres.Querier) error {
	_, err := postgres.QuerierFromCtx(ctx, fallback).Exec(ctx,
		`INSERT INTO extension_words (position, word) VALUES ($1, $2)`, 0, "lucid")
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	t.Parallel()
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO extension_words`).WithArgs(0, "lucid").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	tm := postgres.NewTxManager(mock)
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertPoolWord(ctx, mock)
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	t.Parallel()
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO extension_words`).WithArgs(0, "lucid").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectRollback()

	sentinel := errors.New("business logic error")
	tm := postgres.NewTxManager(mock)
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertPoolWord(ctx, mock); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	t.Parallel()
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		r := recover()
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	}()

	tm := postgres.NewTxManager(mock)
	_ = tm.RunInTx(context.Background(), func(context.Context) error {
		panic("test panic")
	})
}

func TestRunInTx_BeginFailure(t *testing.T) {
	t.Parallel()
	mock := newMockPool(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

	called := false
	tm := postgres.NewTxManager(mock)
	err := tm.RunInTx(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected begin error")
	}
	if called {
		t.Fatal("fn must not run when begin fails")
	}
}

func TestQuerierFromCtx_FallbackOutsideTx(t *testing.T) {
	t.Parallel()
	mock := newMockPool(t)

	if got := postgres.QuerierFromCtx(context.Background(), mock); got != mock {
		t.Fatal("expected fallback querier outside a transaction")
	}
}
