package entities

import (
	"time"

	"kidfun/internal/domain"
)

type Thread struct {
	ID            uint
	CreatedBy     string
	ActivityName  string
	ProviderID    string
	ProviderName  string
	ProviderURL   string
	Status        string
	ScheduledDate time.Time // zero = not scheduled
	Location      string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t *Thread) IsScheduled() bool {
	return t.Status == domain.ThreadStatusScheduled
}

func (t *Thread) IsOpen() bool {
	return domain.ThreadOpen(t.Status)
}
