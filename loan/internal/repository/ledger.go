package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/bookhaven/loan-service/loan/internal/errs"
	"github.com/bookhaven/loan-service/loan/internal/model"
)

// minHoldingPeriod is how long a loan must be held before it can be renewed.
const minHoldingPeriod = 5 * 24 * time.Hour

type activeLoanRow struct {
	LoanItemID int       `db:"id"`
	ItemID     int       `db:"item_id"`
	DueDate    time.Time `db:"due_date"`
	OrderedAt  time.Time `db:"created_at"`
}

// findActiveLoan returns the member's most recent active loan item for the
// given item, locking it for the rest of the transaction.
func (r *repository) findActiveLoan(ctx context.Context, tx *sqlx.Tx, memberID int, itemUid string) (activeLoanRow, error) {
	q := `
select li.id, li.item_id, li.due_date, o.created_at
from loan_items li
    join orders o on o.id = li.order_id
    join items i on i.id = li.item_id
where o.member_id = $1 and i.item_uid = $2 and li.status in ('ISSUED', 'RENEWED')
order by o.created_at desc, li.id desc
limit 1
for update of li`

	var row activeLoanRow
	if err := tx.GetContext(ctx, &row, q, memberID, itemUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return activeLoanRow{}, errs.ErrNotFound
		}
		return activeLoanRow{}, err
	}
	return row, nil
}

func (r *repository) ReturnLoan(ctx context.Context, memberUid, itemUid string) (model.ReturnResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.ReturnResult{}, errors.Wrap(err, "begin return tx")
	}
	defer tx.Rollback() //nolint:errcheck

	member, err := r.lockMember(ctx, tx, memberUid)
	if err != nil {
		return model.ReturnResult{}, err
	}
	loan, err := r.findActiveLoan(ctx, tx, member.ID, itemUid)
	if err != nil {
		return model.ReturnResult{}, err
	}

	var returnedAt time.Time
	q := `update loan_items set status = 'RETURNED', returned_at = now() where id = $1 returning returned_at`
	if err := tx.QueryRowxContext(ctx, q, loan.LoanItemID).Scan(&returnedAt); err != nil {
		return model.ReturnResult{}, err
	}

	release, err := r.release(ctx, tx, loan.ItemID, 1)
	if err != nil {
		return model.ReturnResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.ReturnResult{}, errors.Wrap(err, "commit return tx")
	}
	return model.ReturnResult{ReturnedAt: returnedAt, Release: release}, nil
}

func (r *repository) RenewLoan(ctx context.Context, memberUid, itemUid string) (model.RenewResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.RenewResult{}, errors.Wrap(err, "begin renew tx")
	}
	defer tx.Rollback() //nolint:errcheck

	member, err := r.lockMember(ctx, tx, memberUid)
	if err != nil {
		return model.RenewResult{}, err
	}
	loan, err := r.findActiveLoan(ctx, tx, member.ID, itemUid)
	if err != nil {
		return model.RenewResult{}, err
	}

	now := time.Now().UTC()
	if held := now.Sub(loan.OrderedAt); held < minHoldingPeriod {
		return model.RenewResult{}, &errs.MinHoldingPeriodError{DaysHeld: int(held.Hours() / 24)}
	}

	policy := model.PolicyFor(member.Tier)
	newDue := renewDueDate(loan.DueDate, now, policy.DurationDays)

	q := `update loan_items set due_date = $2, status = 'RENEWED' where id = $1`
	if _, err := tx.ExecContext(ctx, q, loan.LoanItemID, newDue); err != nil {
		return model.RenewResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.RenewResult{}, errors.Wrap(err, "commit renew tx")
	}
	return model.RenewResult{NewDueDate: newDue}, nil
}

// renewDueDate extends from the due date, or from now when the loan is
// already overdue: an overdue renewal does not compound the overdue days.
func renewDueDate(dueDate, now time.Time, durationDays int) time.Time {
	ref := dueDate
	if now.After(ref) {
		ref = now
	}
	return ref.AddDate(0, 0, durationDays)
}

func (r *repository) GetMemberLoans(ctx context.Context, memberUid string) ([]model.Order, error) {
	var member model.Member
	if err := r.db.GetContext(ctx, &member,
		`select id, member_uid, name, email, tier from members where member_uid = $1`, memberUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrMemberNotFound
		}
		return nil, err
	}

	q := `
select o.id, o.order_uid, o.payment_ref, o.total_amount, o.created_at
from orders o
where o.member_id = $1
order by o.created_at desc`

	var orders []model.Order
	if err := r.db.SelectContext(ctx, &orders, q, member.ID); err != nil {
		return nil, err
	}

	itemsQ := `
select li.order_id, i.item_uid, i.title, li.quantity, li.due_date, li.status, li.returned_at, li.has_started
from loan_items li
    join orders o on o.id = li.order_id
    join items i on i.id = li.item_id
where o.member_id = $1
order by li.id`

	type loanItemRow struct {
		OrderID int `db:"order_id"`
		model.LoanItem
	}
	var rows []loanItemRow
	if err := r.db.SelectContext(ctx, &rows, itemsQ, member.ID); err != nil {
		return nil, err
	}

	byOrder := make(map[int][]model.LoanItem, len(orders))
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], row.LoanItem)
	}
	for i := range orders {
		orders[i].MemberUid = memberUid
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}

func (r *repository) MarkLoanStarted(ctx context.Context, memberUid, itemUid string) error {
	q := `
update loan_items li
    set has_started = true
from orders o, items i, members m
where li.order_id = o.id and i.id = li.item_id and m.id = o.member_id
    and m.member_uid = $1 and i.item_uid = $2 and li.status in ('ISSUED', 'RENEWED')`

	res, err := r.db.ExecContext(ctx, q, memberUid, itemUid)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
