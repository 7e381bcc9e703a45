package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhaven/loan-service/loan/internal/errs"
	"github.com/bookhaven/loan-service/loan/internal/model"
)

func (r *repository) GetItem(ctx context.Context, itemUid string) (model.Item, error) {
	query, args, err := qb.Select("id", "item_uid", "title", "author", "category", "total_copies", "available_copies").
		From(itemsTableName).
		Where(sq.Eq{"item_uid": itemUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var item model.Item
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrItemNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) ListItems(ctx context.Context, category string, page, size int) (model.ListItems, error) {
	q := qb.Select("id", "item_uid", "title", "author", "category", "total_copies", "available_copies").
		From(itemsTableName).
		OrderBy("title")

	if category != "" {
		q = q.Where(sq.Eq{"category": category})
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListItems{}, err
	}
	r.log.Debug("ListItems", zap.String("query", query), zap.Any("args", args))

	var items []model.Item
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListItems{}, err
	}

	return model.ListItems{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}

// reserve decrements available_copies iff enough stock is left. The decrement
// is conditional inside one statement, never a read-then-write.
func (r *repository) reserve(ctx context.Context, tx *sqlx.Tx, line model.CartLine) (itemID int, err error) {
	q := `
update items
    set available_copies = available_copies - $2
where item_uid = $1 and available_copies >= $2
returning id`
	if err := tx.QueryRowxContext(ctx, q, line.ID, line.Quantity).Scan(&itemID); err == nil {
		return itemID, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	// no row updated: either the item is missing or the stock is short
	var available int
	err = tx.QueryRowxContext(ctx, `select available_copies from items where item_uid = $1`, line.ID).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errs.ErrItemNotFound
	}
	if err != nil {
		return 0, err
	}
	return 0, &errs.InsufficientStockError{ItemUid: line.ID, Requested: line.Quantity, Available: available}
}

// release increments available_copies clamped at total_copies and reports the
// previous and resulting counts so the caller can detect a 0 -> >0 transition.
func (r *repository) release(ctx context.Context, tx *sqlx.Tx, itemID, quantity int) (model.ReleaseResult, error) {
	q := `
update items i
    set available_copies = least(i.available_copies + $2, i.total_copies)
from (select available_copies as prev from items where id = $1 for update) p
where i.id = $1
returning p.prev, i.available_copies`

	var res model.ReleaseResult
	if err := tx.QueryRowxContext(ctx, q, itemID, quantity).Scan(&res.Prev, &res.Available); err != nil {
		return model.ReleaseResult{}, err
	}
	return res, nil
}

func (r *repository) EnqueueWaitlist(ctx context.Context, itemUid, memberUid, email string) error {
	q := `
insert into waitlist (item_id, member_uid, email)
select id, $2, $3 from items where item_uid = $1`

	res, err := r.db.ExecContext(ctx, q, itemUid, memberUid, email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrAlreadyWaitlisted
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrItemNotFound
	}
	return nil
}

// DrainNotifiableWaitlist flips notified on every pending entry and returns
// them; the flip and the read are one statement, so each entry is drained
// at most once even under concurrent returns.
func (r *repository) DrainNotifiableWaitlist(ctx context.Context, itemUid string) ([]model.WaitlistEntry, error) {
	q := `
update waitlist w
    set notified = true
from items i
where w.item_id = i.id and i.item_uid = $1 and not w.notified
returning w.member_uid, w.email, w.notified`

	rows, err := r.db.QueryxContext(ctx, q, itemUid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.WaitlistEntry
	for rows.Next() {
		var e model.WaitlistEntry
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
