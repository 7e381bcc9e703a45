package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bookhaven/loan-service/loan/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	GetItem(ctx context.Context, itemUid string) (model.Item, error)
	ListItems(ctx context.Context, category string, page, size int) (model.ListItems, error)

	CreateOrder(ctx context.Context, req model.CheckoutRequest) (model.Order, []model.StockLevel, error)
	ReturnLoan(ctx context.Context, memberUid, itemUid string) (model.ReturnResult, error)
	RenewLoan(ctx context.Context, memberUid, itemUid string) (model.RenewResult, error)
	GetMemberLoans(ctx context.Context, memberUid string) ([]model.Order, error)
	MarkLoanStarted(ctx context.Context, memberUid, itemUid string) error

	EnqueueWaitlist(ctx context.Context, itemUid, memberUid, email string) error
	DrainNotifiableWaitlist(ctx context.Context, itemUid string) ([]model.WaitlistEntry, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	itemsTableName     = `items`
	ordersTableName    = `orders`
	loanItemsTableName = `loan_items`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
