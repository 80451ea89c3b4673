package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"kidfun/internal/domain"
	"kidfun/internal/domain/entities"
	"kidfun/internal/infrastructure/database/sqlc_generated"
	"kidfun/internal/ports/output"
)

var _ output.ProposalRepository = (*ProposalRepository)(nil)

type ProposalRepository struct {
	q *sqlc_generated.Queries
}

func NewProposalRepository(q *sqlc_generated.Queries) *ProposalRepository {
	return &ProposalRepository{q: q}
}

func (r *ProposalRepository) Create(ctx context.Context, proposal *entities.TimeProposal) error {
	row, err := queriesFrom(ctx, r.q).CreateProposal(ctx, sqlc_generated.CreateProposalParams{
		ThreadID:     int64(proposal.ThreadID),
		ProposedBy:   proposal.ProposedBy,
		ProposedDate: timeToPgtypeTimestamptz(proposal.ProposedDate),
		Notes:        proposal.Notes,
		Status:       proposal.Status,
	})
	if err != nil {
		return fmt.Errorf("create proposal: %w", err)
	}
	proposal.ID = uint(row.ID)
	proposal.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	return nil
}

func (r *ProposalRepository) FindByID(ctx context.Context, id uint) (*entities.TimeProposal, error) {
	row, err := queriesFrom(ctx, r.q).GetProposalByID(ctx, int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("get proposal by id: %w", err)
	}
	p := proposalToDomain(row)
	return &p, nil
}

func (r *ProposalRepository) FindByThreadID(ctx context.Context, threadID uint) ([]entities.TimeProposal, error) {
	rows, err := queriesFrom(ctx, r.q).GetProposalsByThreadID(ctx, int64(threadID))
	if err != nil {
		return nil, fmt.Errorf("get proposals by thread id: %w", err)
	}
	out := make([]entities.TimeProposal, len(rows))
	for i := range rows {
		out[i] = proposalToDomain(rows[i])
	}
	return out, nil
}

// Accept is a conditional update: it only succeeds while the proposal is
// still open, so concurrent accepts on the same thread cannot both win.
func (r *ProposalRepository) Accept(ctx context.Context, id uint) (*entities.TimeProposal, error) {
	row, err := queriesFrom(ctx, r.q).AcceptProposal(ctx, int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProposalNotOpen
		}
		return nil, fmt.Errorf("accept proposal: %w", err)
	}
	p := proposalToDomain(row)
	return &p, nil
}

func (r *ProposalRepository) WithdrawOpenSiblings(ctx context.Context, threadID, acceptedID uint) error {
	err := queriesFrom(ctx, r.q).WithdrawOpenProposals(ctx, sqlc_generated.WithdrawOpenProposalsParams{
		ThreadID: int64(threadID),
		ID:       int64(acceptedID),
	})
	if err != nil {
		return fmt.Errorf("withdraw open proposals: %w", err)
	}
	return nil
}
