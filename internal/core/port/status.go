package port

import (
	"context"
	"statbot/internal/core/domain"
)

type StatusService interface {
	// CreateStatus posts a status update for a project and yields the created
	// status ID.
	CreateStatus(ctx context.Context, nick, project, text string) *domain.Outcome[int64]
	// DeleteStatus removes a status. A 403 failure means nick is not the
	// original author.
	DeleteStatus(ctx context.Context, id int64, nick string) *domain.Outcome[struct{}]
	// UpdateUser sets one profile field on the target user.
	UpdateUser(ctx context.Context, nick, field, value, target string) *domain.Outcome[struct{}]
}
