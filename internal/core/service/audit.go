package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/taxpro/office-api/internal/core/domain"
	"github.com/taxpro/office-api/internal/core/ports"
)

// today returns the current date truncated to midnight UTC. Domain dates
// (join date, issue date, upload date) carry day precision only.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// formatAmount renders a currency amount without trailing zeros, matching the
// wording used in activity details ("$250" not "$250.00").
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// appendActivity records one audit entry for a completed mutation. A failed
// append is logged and swallowed: the mutation has already committed and the
// audit trail is best-effort, never a rollback trigger.
func appendActivity(ctx context.Context, repo ports.ActivityRepository, log zerolog.Logger, actor ports.Actor, action, details string, returnID *int) {
	entry := domain.ActivityLog{
		UserID:    actor.ID,
		UserName:  actor.Name,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
		ReturnID:  returnID,
	}
	if _, err := repo.Append(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to append activity entry")
	}
}

// seesAll reports whether the actor's views span every user's records.
// Only admins get the unfiltered view; preparers and reviewers, like
// clients, see their own slices on list endpoints.
func seesAll(actor ports.Actor) bool {
	return actor.Role == domain.RoleAdmin
}
