package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookhaven/loan-service/loan/internal/errs"
	"github.com/bookhaven/loan-service/loan/internal/model"
	repo_mocks "github.com/bookhaven/loan-service/loan/internal/repository/mocks"
	"github.com/bookhaven/loan-service/loan/internal/service"
)

// notifierRecorder captures emitted events; alert emission is concurrent.
type notifierRecorder struct {
	mu            sync.Mutex
	notifications []model.NotificationType
	alerts        []model.NotificationType
	replenished   []model.StockReplenished
}

func (n *notifierRecorder) Notify(typ model.NotificationType, _ string, _ map[string]any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, typ)
}

func (n *notifierRecorder) Alert(typ model.NotificationType, _ string, _ map[string]any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, typ)
}

func (n *notifierRecorder) StockReplenished(ev model.StockReplenished) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.replenished = append(n.replenished, ev)
}

func newService(t *testing.T) (*service.Service, *repo_mocks.MockRepository, *notifierRecorder) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	rec := &notifierRecorder{}
	return service.NewService(repo, rec, nil, zap.NewExample().Named("test")), repo, rec
}

func TestService_Checkout(t *testing.T) {
	req := model.CheckoutRequest{
		Items:      []model.CartLine{{ID: "b1", Quantity: 1, Title: "The Go Programming Language"}},
		MemberUid:  "m1",
		PaymentRef: "pay-42",
	}
	order := model.Order{
		OrderUid:  "46f15b5d-41f2-41a7-b2b3-1bb267d0a795",
		MemberUid: "m1",
		Items: []model.LoanItem{
			{ItemUid: "b1", Title: "The Go Programming Language", Quantity: 1, Status: model.StatusIssued},
		},
	}

	t.Run("success emits order notifications and classified alerts", func(t *testing.T) {
		svc, repo, rec := newService(t)
		levels := []model.StockLevel{
			{ItemUid: "b1", Title: "gone", Available: 0},
			{ItemUid: "b2", Title: "low", Available: 2},
			{ItemUid: "b3", Title: "plenty", Available: 10},
		}
		repo.EXPECT().CreateOrder(context.Background(), req).Return(order, levels, nil)

		got, err := svc.Checkout(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, order.OrderUid, got.OrderUid)

		require.ElementsMatch(t,
			[]model.NotificationType{model.NotificationPaymentReceived, model.NotificationBooksIssued},
			rec.notifications)
		require.ElementsMatch(t,
			[]model.NotificationType{model.AlertOutOfStock, model.AlertLowStock},
			rec.alerts)
	})

	t.Run("boundary level above threshold emits nothing", func(t *testing.T) {
		svc, repo, rec := newService(t)
		levels := []model.StockLevel{{ItemUid: "b1", Title: "t", Available: 4}}
		repo.EXPECT().CreateOrder(context.Background(), req).Return(order, levels, nil)

		_, err := svc.Checkout(context.Background(), req)
		require.NoError(t, err)
		require.Empty(t, rec.alerts)
	})

	t.Run("failed checkout emits nothing", func(t *testing.T) {
		svc, repo, rec := newService(t)
		repo.EXPECT().CreateOrder(context.Background(), req).
			Return(model.Order{}, nil, &errs.LimitExceededError{Active: 9, Requested: 2, Limit: 10})

		_, err := svc.Checkout(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrLimitExceeded)
		require.Empty(t, rec.notifications)
		require.Empty(t, rec.alerts)
	})

	t.Run("insufficient stock keeps the first failing line's reason", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().CreateOrder(context.Background(), req).
			Return(model.Order{}, nil, &errs.InsufficientStockError{ItemUid: "b1", Requested: 3, Available: 2})

		_, err := svc.Checkout(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		require.Contains(t, err.Error(), "requested 3, available 2")
	})
}

func TestService_Return(t *testing.T) {
	req := model.ReturnRequest{MemberUid: "m1", ItemUid: "b1"}
	returnedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("return without replenishment", func(t *testing.T) {
		svc, repo, rec := newService(t)
		repo.EXPECT().ReturnLoan(context.Background(), "m1", "b1").
			Return(model.ReturnResult{ReturnedAt: returnedAt, Release: model.ReleaseResult{Prev: 3, Available: 4}}, nil)

		got, err := svc.Return(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, returnedAt, got)
		require.Equal(t, []model.NotificationType{model.NotificationBookReturned}, rec.notifications)
		require.Empty(t, rec.replenished)
	})

	t.Run("zero to positive transition publishes replenishment", func(t *testing.T) {
		svc, repo, rec := newService(t)
		repo.EXPECT().ReturnLoan(context.Background(), "m1", "b1").
			Return(model.ReturnResult{ReturnedAt: returnedAt, Release: model.ReleaseResult{Prev: 0, Available: 1}}, nil)

		_, err := svc.Return(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, []model.StockReplenished{{ItemUid: "b1", Available: 1}}, rec.replenished)
	})

	t.Run("no active loan", func(t *testing.T) {
		svc, repo, rec := newService(t)
		repo.EXPECT().ReturnLoan(context.Background(), "m1", "b1").
			Return(model.ReturnResult{}, errs.ErrNotFound)

		_, err := svc.Return(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.Empty(t, rec.notifications)
	})
}

func TestService_Renew(t *testing.T) {
	req := model.RenewRequest{MemberUid: "m1", ItemUid: "b1"}

	t.Run("renewal emits notification", func(t *testing.T) {
		svc, repo, rec := newService(t)
		newDue := time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().RenewLoan(context.Background(), "m1", "b1").
			Return(model.RenewResult{NewDueDate: newDue}, nil)

		got, err := svc.Renew(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, newDue, got)
		require.Equal(t, []model.NotificationType{model.NotificationBookRenewed}, rec.notifications)
	})

	t.Run("held too briefly", func(t *testing.T) {
		svc, repo, rec := newService(t)
		repo.EXPECT().RenewLoan(context.Background(), "m1", "b1").
			Return(model.RenewResult{}, &errs.MinHoldingPeriodError{DaysHeld: 2})

		_, err := svc.Renew(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrMinHoldingPeriod)
		require.Empty(t, rec.notifications)
	})
}

func TestService_ReleaseWaitlist(t *testing.T) {
	t.Run("drained entries are each notified once", func(t *testing.T) {
		svc, repo, rec := newService(t)
		entries := []model.WaitlistEntry{
			{MemberUid: "m1", Email: "m1@example.com", Notified: true},
			{MemberUid: "m2", Email: "m2@example.com", Notified: true},
		}
		repo.EXPECT().DrainNotifiableWaitlist(context.Background(), "b1").Return(entries, nil)

		got, err := svc.ReleaseWaitlist(context.Background(), "b1")
		require.NoError(t, err)
		require.Equal(t, entries, got)
		require.Equal(t, []model.NotificationType{
			model.NotificationBookAvailable,
			model.NotificationBookAvailable,
		}, rec.notifications)
	})

	t.Run("empty drain is silent", func(t *testing.T) {
		svc, repo, rec := newService(t)
		repo.EXPECT().DrainNotifiableWaitlist(context.Background(), "b1").Return(nil, nil)

		got, err := svc.ReleaseWaitlist(context.Background(), "b1")
		require.NoError(t, err)
		require.Empty(t, got)
		require.Empty(t, rec.notifications)
	})
}
