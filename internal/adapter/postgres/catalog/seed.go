package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/myenglish-suite/internal/content"
)

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Seed replaces the stored catalog with pack in a single transaction.
func (r *Repo) Seed(ctx context.Context, tx txRunner, pack content.Pack) error {
	if err := tx.RunInTx(ctx, func(ctx context.Context) error {
		return r.Replace(ctx, pack)
	}); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}
