package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/bookhaven/loan-service/loan/internal/errs"
	"github.com/bookhaven/loan-service/loan/internal/model"
)

// lowStockThreshold is the inclusive upper bound for LowStock alerts.
const lowStockThreshold = 3

// Checkout turns a cart into a committed order. All validation and stock
// reservation happens inside one repository transaction; notifications and
// stock alerts fire only after commit.
func (s *Service) Checkout(ctx context.Context, req model.CheckoutRequest) (model.Order, error) {
	order, levels, err := s.repo.CreateOrder(ctx, req)
	if err != nil {
		s.countCheckout(checkoutOutcome(err))
		return model.Order{}, err
	}
	s.countCheckout("success")

	s.afterCheckout(order, levels)
	return order, nil
}

// afterCheckout emits the committed order's notifications and per-item stock
// alerts. Nothing here can fail the checkout.
func (s *Service) afterCheckout(order model.Order, levels []model.StockLevel) {
	s.notifier.Notify(model.NotificationPaymentReceived,
		fmt.Sprintf("payment received for order %s", order.OrderUid),
		map[string]any{
			"orderId":    order.OrderUid,
			"paymentRef": order.PaymentRef,
			"amount":     order.TotalAmount,
		})

	titles := make([]string, 0, len(order.Items))
	for _, it := range order.Items {
		titles = append(titles, it.Title)
	}
	s.notifier.Notify(model.NotificationBooksIssued,
		fmt.Sprintf("%d item(s) issued on order %s", len(order.Items), order.OrderUid),
		map[string]any{
			"orderId": order.OrderUid,
			"titles":  titles,
		})

	var gg errgroup.Group
	for _, lvl := range levels {
		lvl := lvl
		gg.Go(func() error {
			typ, ok := classifyStock(lvl.Available)
			if !ok {
				return nil
			}
			if s.metrics != nil {
				s.metrics.StockAlerts.WithLabelValues(string(typ)).Inc()
			}
			s.notifier.Alert(typ,
				fmt.Sprintf("%q has %d copies left", lvl.Title, lvl.Available),
				map[string]any{
					"itemId":    lvl.ItemUid,
					"title":     lvl.Title,
					"available": lvl.Available,
				})
			return nil
		})
	}
	_ = gg.Wait()
}

// classifyStock maps a post-commit availability level to an alert type.
func classifyStock(available int) (model.NotificationType, bool) {
	switch {
	case available == 0:
		return model.AlertOutOfStock, true
	case available <= lowStockThreshold:
		return model.AlertLowStock, true
	default:
		return "", false
	}
}

func (s *Service) countCheckout(outcome string) {
	if s.metrics != nil {
		s.metrics.CheckoutOutcomes.WithLabelValues(outcome).Inc()
	}
}

func checkoutOutcome(err error) string {
	switch {
	case errors.Is(err, errs.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, errs.ErrLimitExceeded):
		return "limit_exceeded"
	case errors.Is(err, errs.ErrDuplicateActiveLoan):
		return "duplicate_active_loan"
	case errors.Is(err, errs.ErrMemberNotFound), errors.Is(err, errs.ErrItemNotFound):
		return "not_found"
	default:
		return "infra_failure"
	}
}
