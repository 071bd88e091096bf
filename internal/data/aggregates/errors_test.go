package aggregates

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
)

func TestMapError_Validation(t *testing.T) {
	err := MapError("op", ValidationError("bad input"))
	if !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation code, got %q (%v)", domainagg.CodeOf(err), err)
	}
	if got := domainagg.MessageOf(err); got != "bad input" {
		t.Fatalf("message: want=%q got=%q", "bad input", got)
	}
}

func TestMapError_NotFound(t *testing.T) {
	for _, in := range []error{gorm.ErrRecordNotFound, NotFoundError("track not found")} {
		err := MapError("op", in)
		if !domainagg.IsCode(err, domainagg.CodeNotFound) {
			t.Fatalf("expected not_found code for %v, got %q", in, domainagg.CodeOf(err))
		}
	}
}

func TestMapError_PgCodes(t *testing.T) {
	cases := map[string]domainagg.ErrorCode{
		"23505": domainagg.CodeConflict,
		"23503": domainagg.CodePreconditionFailed,
		"40P01": domainagg.CodeRetryable,
		"42P01": domainagg.CodeDependency,
		"08006": domainagg.CodeDependency,
		"22P02": domainagg.CodeInternal,
	}
	for code, want := range cases {
		err := MapError("op", fmt.Errorf("insert: %w", &pgconn.PgError{Code: code, Message: "pg says no"}))
		if got := domainagg.CodeOf(err); got != want {
			t.Fatalf("pg code %s: want=%s got=%s", code, want, got)
		}
	}
}

func TestMapError_SQLiteMessages(t *testing.T) {
	cases := map[string]domainagg.ErrorCode{
		"UNIQUE constraint failed: article.slug": domainagg.CodeConflict,
		"FOREIGN KEY constraint failed":          domainagg.CodePreconditionFailed,
		"no such table: track":                   domainagg.CodeDependency,
		"something odd":                          domainagg.CodeInternal,
	}
	for msg, want := range cases {
		if got := domainagg.CodeOf(MapError("op", errors.New(msg))); got != want {
			t.Fatalf("%q: want=%s got=%s", msg, want, got)
		}
	}
}

func TestMapError_PassthroughAggregateError(t *testing.T) {
	in := domainagg.NewError(domainagg.CodeRetryable, "op", "retry", errors.New("boom"))
	out := MapError("other", in)
	if out != in {
		t.Fatalf("expected passthrough aggregate error")
	}
}
