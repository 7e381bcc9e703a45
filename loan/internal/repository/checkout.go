package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhaven/loan-service/loan/internal/errs"
	"github.com/bookhaven/loan-service/loan/internal/model"
)

type activeLoan struct {
	ItemUid  string `db:"item_uid"`
	Category string `db:"category"`
	Quantity int    `db:"quantity"`
}

// CreateOrder runs the whole checkout inside one transaction: member policy
// checks, per-line stock reservation in cart order, and the ledger append.
// Any failure rolls back every reservation made in this attempt. The returned
// stock levels are read before commit, so they reflect exactly this order's
// reservations.
func (r *repository) CreateOrder(ctx context.Context, req model.CheckoutRequest) (model.Order, []model.StockLevel, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Order{}, nil, errors.Wrap(err, "begin checkout tx")
	}
	defer tx.Rollback() //nolint:errcheck

	// anonymous carts skip the member steps and borrow on the regular policy
	policy := model.PolicyFor(model.TierRegular)
	var memberID *int
	if req.MemberUid != "" {
		member, err := r.lockMember(ctx, tx, req.MemberUid)
		if err != nil {
			return model.Order{}, nil, err
		}
		memberID = &member.ID
		policy = model.PolicyFor(member.Tier)

		if err := r.checkPolicy(ctx, tx, member.ID, policy, req.Items); err != nil {
			return model.Order{}, nil, err
		}
	}

	dueDate := time.Now().UTC().AddDate(0, 0, policy.DurationDays)

	// reserve in cart order; the first short line decides the abort reason
	itemIDs := make([]int, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, err := r.reserve(ctx, tx, line)
		if err != nil {
			return model.Order{}, nil, err
		}
		itemIDs = append(itemIDs, itemID)
	}

	order, err := r.insertOrder(ctx, tx, req, memberID, itemIDs, dueDate)
	if err != nil {
		return model.Order{}, nil, err
	}

	levels, err := r.stockLevels(ctx, tx, itemIDs)
	if err != nil {
		return model.Order{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		return model.Order{}, nil, errors.Wrap(err, "commit checkout tx")
	}
	r.log.Debug("order committed",
		zap.String("order_uid", order.OrderUid),
		zap.String("member_uid", req.MemberUid),
		zap.Int("lines", len(order.Items)))

	return order, levels, nil
}

// lockMember serializes checkouts per member; the row lock is held until commit.
func (r *repository) lockMember(ctx context.Context, tx *sqlx.Tx, memberUid string) (model.Member, error) {
	q := `select id, member_uid, name, email, tier from members where member_uid = $1 for update`

	var member model.Member
	if err := tx.GetContext(ctx, &member, q, memberUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrMemberNotFound
		}
		return model.Member{}, err
	}
	return member, nil
}

func (r *repository) checkPolicy(ctx context.Context, tx *sqlx.Tx, memberID int, policy model.Policy, cart []model.CartLine) error {
	q := `
select i.item_uid, i.category, li.quantity
from loan_items li
    join orders o on o.id = li.order_id
    join items i on i.id = li.item_id
where o.member_id = $1 and li.status in ('ISSUED', 'RENEWED')`

	var active []activeLoan
	if err := tx.SelectContext(ctx, &active, q, memberID); err != nil {
		return err
	}
	return verifyPolicy(active, policy, cart)
}

// verifyPolicy applies the borrowing rules to a cart: the active total plus
// the cart total must fit the tier limit, and no cart line may repeat an item
// already on active loan. Membership pseudo-items never count toward the
// limit, but still block a duplicate.
func verifyPolicy(active []activeLoan, policy model.Policy, cart []model.CartLine) error {
	activeCount := 0
	activeUids := make(map[string]struct{}, len(active))
	for _, a := range active {
		activeUids[a.ItemUid] = struct{}{}
		if a.Category == model.CategoryMembership {
			continue
		}
		activeCount += a.Quantity
	}

	requested := 0
	for _, line := range cart {
		requested += line.Quantity
	}

	if activeCount+requested > policy.MonthlyLimit {
		return &errs.LimitExceededError{
			Active:    activeCount,
			Requested: requested,
			Limit:     policy.MonthlyLimit,
		}
	}

	for _, line := range cart {
		if _, ok := activeUids[line.ID]; ok {
			return &errs.DuplicateActiveLoanError{ItemUid: line.ID}
		}
	}
	return nil
}

func (r *repository) insertOrder(ctx context.Context, tx *sqlx.Tx, req model.CheckoutRequest,
	memberID *int, itemIDs []int, dueDate time.Time) (model.Order, error) {
	q, args, err := qb.Insert(ordersTableName).
		Columns("order_uid", "member_id", "payment_ref", "total_amount").
		Values(uuid.New(), memberID, req.PaymentRef, req.TotalAmount).
		Suffix("returning id, order_uid, created_at").
		ToSql()
	if err != nil {
		return model.Order{}, err
	}

	var order model.Order
	if err := tx.QueryRowxContext(ctx, q, args...).Scan(&order.ID, &order.OrderUid, &order.CreatedAt); err != nil {
		r.log.Error("insertOrder", zap.String("q", q), zap.Any("args", args))
		return model.Order{}, err
	}
	order.MemberUid = req.MemberUid
	order.PaymentRef = req.PaymentRef
	order.TotalAmount = req.TotalAmount

	ins := qb.Insert(loanItemsTableName).
		Columns("order_id", "item_id", "quantity", "due_date", "status")
	for i, line := range req.Items {
		ins = ins.Values(order.ID, itemIDs[i], line.Quantity, dueDate, model.StatusIssued)
	}
	q, args, err = ins.ToSql()
	if err != nil {
		return model.Order{}, err
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return model.Order{}, err
	}

	order.Items = make([]model.LoanItem, 0, len(req.Items))
	for _, line := range req.Items {
		order.Items = append(order.Items, model.LoanItem{
			ItemUid:  line.ID,
			Title:    line.Title,
			Quantity: line.Quantity,
			DueDate:  dueDate,
			Status:   model.StatusIssued,
		})
	}
	return order, nil
}

func (r *repository) stockLevels(ctx context.Context, tx *sqlx.Tx, itemIDs []int) ([]model.StockLevel, error) {
	q, args, err := qb.Select("item_uid", "title", "available_copies").
		From(itemsTableName).
		Where(sq.Eq{"id": itemIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var levels []model.StockLevel
	if err := tx.SelectContext(ctx, &levels, q, args...); err != nil {
		return nil, err
	}
	return levels, nil
}
