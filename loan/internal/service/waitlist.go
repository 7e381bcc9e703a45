package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bookhaven/loan-service/loan/internal/model"
)

func (s *Service) JoinWaitlist(ctx context.Context, itemUid string, req model.JoinWaitlistRequest) error {
	return s.repo.EnqueueWaitlist(ctx, itemUid, req.MemberUid, req.Email)
}

// ReleaseWaitlist drains every un-notified waitlist entry for an item and
// emits a replenishment notification per entry. Entries are flipped to
// notified in the same store update that returns them, so a redelivered
// replenishment event finds nothing left to drain.
func (s *Service) ReleaseWaitlist(ctx context.Context, itemUid string) ([]model.WaitlistEntry, error) {
	entries, err := s.repo.DrainNotifiableWaitlist(ctx, itemUid)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	for _, e := range entries {
		s.notifier.Notify(model.NotificationBookAvailable,
			fmt.Sprintf("item %s is available again", itemUid),
			map[string]any{
				"itemId":   itemUid,
				"memberId": e.MemberUid,
				"email":    e.Email,
			})
	}
	if s.metrics != nil {
		s.metrics.WaitlistDrained.Add(float64(len(entries)))
	}
	s.log.Info("waitlist drained", zap.String("item_uid", itemUid), zap.Int("entries", len(entries)))
	return entries, nil
}
