package postgres

import "testing"

func TestOpen_EmptyDSN(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty DSN")
	}
}

func TestDialect(t *testing.T) {
	if got := dialect.Bind(3); got != "$3" {
		t.Fatalf("Bind(3) = %q", got)
	}
	if got := dialect.ItemsIn("$2"); got != "$2::jsonb" {
		t.Fatalf("ItemsIn = %q", got)
	}
}
