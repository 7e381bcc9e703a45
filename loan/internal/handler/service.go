package handler

import (
	"context"
	"time"

	"github.com/bookhaven/loan-service/loan/internal/model"
	"github.com/bookhaven/loan-service/loan/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LoanService interface {
	Checkout(ctx context.Context, req model.CheckoutRequest) (model.Order, error)
	Return(ctx context.Context, req model.ReturnRequest) (time.Time, error)
	Renew(ctx context.Context, req model.RenewRequest) (time.Time, error)

	GetItem(ctx context.Context, itemUid string) (model.Item, error)
	ListItems(ctx context.Context, category string, page, size int) (model.ListItems, error)
	GetMemberLoans(ctx context.Context, memberUid string) ([]model.Order, error)
	MarkLoanStarted(ctx context.Context, memberUid, itemUid string) error

	JoinWaitlist(ctx context.Context, itemUid string, req model.JoinWaitlistRequest) error
	ReleaseWaitlist(ctx context.Context, itemUid string) ([]model.WaitlistEntry, error)
}

var _ LoanService = (*service.Service)(nil)
