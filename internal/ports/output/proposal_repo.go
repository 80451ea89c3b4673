package output

import (
	"context"

	"kidfun/internal/domain/entities"
)

type ProposalRepository interface {
	Create(ctx context.Context, proposal *entities.TimeProposal) error
	FindByID(ctx context.Context, id uint) (*entities.TimeProposal, error)
	FindByThreadID(ctx context.Context, threadID uint) ([]entities.TimeProposal, error)
	// Accept marks the proposal accepted only if it is still open.
	// Returns domain.ErrProposalNotOpen when another accept won the race.
	Accept(ctx context.Context, id uint) (*entities.TimeProposal, error)
	// WithdrawOpenSiblings withdraws every other open proposal on the thread.
	WithdrawOpenSiblings(ctx context.Context, threadID, acceptedID uint) error
}
