package testutil

import (
	"context"
	"sync"

	"github.com/amcdental/dentalhub-backend/internal/data/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/platform/dbctx"
)

// InjectedTxRunner injects transaction failures for aggregate tests.
//
// With a Delegate the body runs inside the delegate's real transaction, and
// FailCommit is returned from inside it so the delegate rolls back. Without a
// Delegate the body runs with no transaction at all.
type InjectedTxRunner struct {
	mu sync.Mutex

	Delegate aggregates.TxRunner

	FailBegin  error
	FailCommit error

	BeginCalls    int
	CommitCalls   int
	RollbackCalls int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.BeginCalls++
	failBegin := r.FailBegin
	failCommit := r.FailCommit
	delegate := r.Delegate
	r.mu.Unlock()

	if failBegin != nil {
		return failBegin
	}

	body := func(dbc dbctx.Context) error {
		if fn != nil {
			if err := fn(dbc); err != nil {
				return err
			}
		}
		return failCommit
	}

	var err error
	if delegate != nil {
		err = delegate.InTx(ctx, body)
	} else {
		err = body(dbctx.Context{Ctx: ctx})
	}

	r.mu.Lock()
	if err != nil {
		r.RollbackCalls++
	} else {
		r.CommitCalls++
	}
	r.mu.Unlock()
	return err
}
