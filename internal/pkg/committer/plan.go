// Package committer collects Spanner mutations into commit plans and applies
// them atomically.
//
// Every mutating operation of the sale engine is one transaction: repositories
// return mutations without applying them, the use case gathers them (state
// change plus its outbox events) into a CommitPlan, and the Committer applies
// the plan as a single commit. A failure rolls everything back, so stock
// counts and cart lines can never diverge.
//
// Flows that must read before writing (stock checks, line merges, repricing)
// run inside ReadWrite, which exposes a Spanner read-write transaction; reads
// inside it take locks, which is what serializes conflicting writers.
package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Commit error sentinels. Apply and ReadWrite classify Spanner status errors
// into these; errors returned by the transaction body itself pass through
// untouched so domain errors keep their identity.
var (
	ErrAlreadyExists = errors.New("row already exists")
	ErrUnavailable   = errors.New("commit failed")
)

// CommitPlan collects mutations from multiple sources for one atomic commit.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan. Nil mutations are silently ignored for
// convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically within a Spanner transaction.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return classify(err)
	}
	return nil
}

// ReadWrite executes fn within a read-write transaction. fn buffers its
// mutations on the transaction; everything commits or rolls back together.
func (c *Committer) ReadWrite(ctx context.Context, fn func(context.Context, *spanner.ReadWriteTransaction) error) error {
	_, err := c.client.ReadWriteTransaction(ctx, fn)
	if err != nil {
		return classify(err)
	}
	return nil
}

// classify maps Spanner status errors to the package sentinels. Non-status
// errors come from the transaction body and are returned as-is.
func classify(err error) error {
	if _, ok := status.FromError(err); !ok {
		return err
	}
	switch spanner.ErrCode(err) {
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
