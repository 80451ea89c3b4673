package application

import (
	"context"
	"sync"
	"time"

	"kidfun/internal/domain"
	"kidfun/internal/domain/entities"
)

// memStore holds all aggregates in memory; the fake repositories below wrap
// it to satisfy the output ports.
type memStore struct {
	mu            sync.Mutex
	threads       map[uint]*entities.Thread
	participants  []*entities.Participant
	proposals     map[uint]*entities.TimeProposal
	events        []*entities.ThreadEvent
	profiles      map[string]entities.Profile
	nextID        uint
	notifications []notification
}

type notification struct {
	threadID uint
	userIDs  []string
}

func newMemStore() *memStore {
	return &memStore{
		threads:   make(map[uint]*entities.Thread),
		proposals: make(map[uint]*entities.TimeProposal),
		profiles:  make(map[string]entities.Profile),
	}
}

func newTestService() (*CoordinationService, *memStore) {
	store := newMemStore()
	s := NewCoordinationService(
		fakeThreadRepo{store},
		fakeParticipantRepo{store},
		fakeProposalRepo{store},
		fakeEventRepo{store},
		fakeProfileRepo{store},
		fakeTxManager{},
		store,
	)
	return s, store
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) ThreadChanged(threadID uint, userIDs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, notification{threadID: threadID, userIDs: userIDs})
}

func (m *memStore) eventTypes(threadID uint) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.events {
		if e.ThreadID == threadID {
			out = append(out, e.EventType)
		}
	}
	return out
}

// fakeTxManager runs fn directly. Rollback-on-error is a property of the
// real database layer; these tests cover the transition rules.
type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeThreadRepo struct{ s *memStore }

func (f fakeThreadRepo) Create(_ context.Context, thread *entities.Thread) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	thread.ID = f.s.id()
	thread.CreatedAt = time.Now()
	thread.UpdatedAt = thread.CreatedAt
	copied := *thread
	f.s.threads[thread.ID] = &copied
	return nil
}

func (f fakeThreadRepo) FindByID(_ context.Context, id uint) (*entities.Thread, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	thread, ok := f.s.threads[id]
	if !ok {
		return nil, domain.ErrThreadNotFound
	}
	copied := *thread
	return &copied, nil
}

func (f fakeThreadRepo) FindByUserID(_ context.Context, userID string) ([]entities.Thread, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []entities.Thread
	for _, p := range f.s.participants {
		if p.UserID == userID {
			if thread, ok := f.s.threads[p.ThreadID]; ok {
				out = append(out, *thread)
			}
		}
	}
	return out, nil
}

func (f fakeThreadRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	thread, ok := f.s.threads[id]
	if !ok {
		return domain.ErrThreadNotFound
	}
	thread.Status = status
	thread.UpdatedAt = time.Now()
	return nil
}

func (f fakeThreadRepo) UpdateSchedule(_ context.Context, id uint, status string, scheduledDate time.Time) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	thread, ok := f.s.threads[id]
	if !ok {
		return domain.ErrThreadNotFound
	}
	thread.Status = status
	thread.ScheduledDate = scheduledDate
	thread.UpdatedAt = time.Now()
	return nil
}

type fakeParticipantRepo struct{ s *memStore }

func (f fakeParticipantRepo) Create(_ context.Context, participant *entities.Participant) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	participant.ID = f.s.id()
	copied := *participant
	f.s.participants = append(f.s.participants, &copied)
	return nil
}

func (f fakeParticipantRepo) FindByThreadID(_ context.Context, threadID uint) ([]entities.Participant, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []entities.Participant
	for _, p := range f.s.participants {
		if p.ThreadID == threadID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f fakeParticipantRepo) FindByThreadIDAndUserID(_ context.Context, threadID uint, userID string) (*entities.Participant, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, p := range f.s.participants {
		if p.ThreadID == threadID && p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domain.ErrParticipantNotFound
}

func (f fakeParticipantRepo) UpdateRSVP(_ context.Context, threadID uint, userID, status string, childrenBringing []string, respondedAt time.Time) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, p := range f.s.participants {
		if p.ThreadID == threadID && p.UserID == userID {
			p.RSVPStatus = status
			p.ChildrenBringing = childrenBringing
			p.RespondedAt = respondedAt
			return nil
		}
	}
	return domain.ErrParticipantNotFound
}

type fakeProposalRepo struct{ s *memStore }

func (f fakeProposalRepo) Create(_ context.Context, proposal *entities.TimeProposal) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	proposal.ID = f.s.id()
	proposal.CreatedAt = time.Now()
	copied := *proposal
	f.s.proposals[proposal.ID] = &copied
	return nil
}

func (f fakeProposalRepo) FindByID(_ context.Context, id uint) (*entities.TimeProposal, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	proposal, ok := f.s.proposals[id]
	if !ok {
		return nil, domain.ErrProposalNotFound
	}
	copied := *proposal
	return &copied, nil
}

func (f fakeProposalRepo) FindByThreadID(_ context.Context, threadID uint) ([]entities.TimeProposal, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []entities.TimeProposal
	for _, p := range f.s.proposals {
		if p.ThreadID == threadID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// Accept mirrors the conditional update of the real repository: it only
// succeeds while the proposal is still open.
func (f fakeProposalRepo) Accept(_ context.Context, id uint) (*entities.TimeProposal, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	proposal, ok := f.s.proposals[id]
	if !ok || proposal.Status != domain.ProposalStatusProposed {
		return nil, domain.ErrProposalNotOpen
	}
	proposal.Status = domain.ProposalStatusAccepted
	copied := *proposal
	return &copied, nil
}

func (f fakeProposalRepo) WithdrawOpenSiblings(_ context.Context, threadID, acceptedID uint) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, p := range f.s.proposals {
		if p.ThreadID == threadID && p.ID != acceptedID && p.Status == domain.ProposalStatusProposed {
			p.Status = domain.ProposalStatusWithdrawn
		}
	}
	return nil
}

type fakeEventRepo struct{ s *memStore }

func (f fakeEventRepo) Append(_ context.Context, event *entities.ThreadEvent) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	event.ID = f.s.id()
	event.CreatedAt = time.Now()
	copied := *event
	f.s.events = append(f.s.events, &copied)
	return nil
}

func (f fakeEventRepo) FindByThreadID(_ context.Context, threadID uint) ([]entities.ThreadEvent, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []entities.ThreadEvent
	for _, e := range f.s.events {
		if e.ThreadID == threadID {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeProfileRepo struct{ s *memStore }

func (f fakeProfileRepo) FindByUserID(_ context.Context, userID string) (*entities.Profile, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	profile, ok := f.s.profiles[userID]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return &profile, nil
}

func (f fakeProfileRepo) FindByUserIDs(_ context.Context, userIDs []string) (map[string]entities.Profile, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make(map[string]entities.Profile)
	for _, id := range userIDs {
		if profile, ok := f.s.profiles[id]; ok {
			out[id] = profile
		}
	}
	return out, nil
}

func (f fakeProfileRepo) FindSession(_ context.Context, _ string) (*entities.Session, error) {
	return nil, domain.ErrUnauthenticated
}
