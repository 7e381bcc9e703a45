package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bookhaven/loan-service/loan/internal/model"
)

// Return marks the member's most recent active loan of the item as returned
// and releases one copy back to the catalog. A 0 -> >0 availability transition
// is published so the waitlist processor can drain pending entries.
func (s *Service) Return(ctx context.Context, req model.ReturnRequest) (time.Time, error) {
	res, err := s.repo.ReturnLoan(ctx, req.MemberUid, req.ItemUid)
	if err != nil {
		return time.Time{}, err
	}

	s.notifier.Notify(model.NotificationBookReturned,
		fmt.Sprintf("item %s returned", req.ItemUid),
		map[string]any{
			"memberId":   req.MemberUid,
			"itemId":     req.ItemUid,
			"returnedAt": res.ReturnedAt,
		})

	if res.Release.Replenished() {
		s.notifier.StockReplenished(model.StockReplenished{
			ItemUid:   req.ItemUid,
			Available: res.Release.Available,
		})
	}
	return res.ReturnedAt, nil
}

// Renew extends the due date of the member's most recent active loan of the
// item. Loans held for less than the minimum holding period cannot be renewed.
func (s *Service) Renew(ctx context.Context, req model.RenewRequest) (time.Time, error) {
	res, err := s.repo.RenewLoan(ctx, req.MemberUid, req.ItemUid)
	if err != nil {
		return time.Time{}, err
	}

	s.notifier.Notify(model.NotificationBookRenewed,
		fmt.Sprintf("item %s renewed", req.ItemUid),
		map[string]any{
			"memberId":   req.MemberUid,
			"itemId":     req.ItemUid,
			"newDueDate": res.NewDueDate,
		})
	return res.NewDueDate, nil
}
