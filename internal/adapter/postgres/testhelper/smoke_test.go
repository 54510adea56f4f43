package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	var tables int
	err := pool.QueryRow(
		context.Background(),
		`SELECT count(*) FROM information_schema.tables
		 WHERE table_name IN ('base_sets', 'base_words', 'extension_words')`,
	).Scan(&tables)
	if err != nil {
		t.Fatalf("expected catalog schema, got error: %v", err)
	}

	if tables != 3 {
		t.Fatalf("expected 3 catalog tables, got %d", tables)
	}
}
