package model

import (
	"time"
)

type Item struct {
	ID              int    `json:"-" db:"id"`
	ItemUid         string `json:"itemUid" db:"item_uid"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	Category        string `json:"category" db:"category"`
	TotalCopies     int    `json:"totalCopies" db:"total_copies"`
	AvailableCopies int    `json:"availableCopies" db:"available_copies"`
}

type ListItems struct {
	Paging `json:",inline"`
	Items  []Item
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

// CategoryMembership marks synthetic membership products; loan items in this
// category never count against the borrowing limit.
const CategoryMembership = "membership"

type Tier string

const (
	TierRegular Tier = "REGULAR"
	TierBasic   Tier = "BASIC"
	TierPremium Tier = "PREMIUM"
	TierElite   Tier = "ELITE"
)

type Member struct {
	ID        int    `json:"-" db:"id"`
	MemberUid string `json:"memberUid" db:"member_uid"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	Tier      Tier   `json:"tier" db:"tier"`
}

type LoanStatus string

const (
	StatusIssued   LoanStatus = "ISSUED"
	StatusRenewed  LoanStatus = "RENEWED"
	StatusReturned LoanStatus = "RETURNED"
)

func (s LoanStatus) Active() bool {
	return s == StatusIssued || s == StatusRenewed
}

type Order struct {
	ID          int        `json:"-" db:"id"`
	OrderUid    string     `json:"orderId" db:"order_uid"`
	MemberUid   string     `json:"memberId,omitempty" db:"member_uid"`
	PaymentRef  string     `json:"paymentRef,omitempty" db:"payment_ref"`
	TotalAmount int64      `json:"totalAmount" db:"total_amount"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	Items       []LoanItem `json:"items"`
}

type LoanItem struct {
	ID         int        `json:"-" db:"id"`
	ItemUid    string     `json:"itemId" db:"item_uid"`
	Title      string     `json:"title" db:"title"`
	Quantity   int        `json:"quantity" db:"quantity"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	Status     LoanStatus `json:"state" db:"status"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
	HasStarted bool       `json:"hasStarted" db:"has_started"`
}

type WaitlistEntry struct {
	MemberUid string `json:"memberId" db:"member_uid"`
	Email     string `json:"email" db:"email"`
	Notified  bool   `json:"notified" db:"notified"`
}

type CartLine struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Title    string `json:"title"`
}

type CheckoutRequest struct {
	Items       []CartLine `json:"items" validate:"required,min=1,dive"`
	MemberUid   string     `json:"memberId"`
	PaymentRef  string     `json:"paymentRef"`
	TotalAmount int64      `json:"totalAmount"`
}

type CheckoutResponse struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
	Order   *Order `json:"order,omitempty"`
}

type ReturnRequest struct {
	MemberUid string `json:"memberId" validate:"required"`
	ItemUid   string `json:"itemId" validate:"required"`
}

type ReturnResponse struct {
	Success    bool       `json:"success"`
	Reason     string     `json:"reason,omitempty"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
}

type RenewRequest struct {
	MemberUid string `json:"memberId" validate:"required"`
	ItemUid   string `json:"itemId" validate:"required"`
}

type RenewResponse struct {
	Success    bool       `json:"success"`
	Reason     string     `json:"reason,omitempty"`
	NewDueDate *time.Time `json:"newDueDate,omitempty"`
}

type JoinWaitlistRequest struct {
	MemberUid string `json:"memberId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type ProgressRequest struct {
	MemberUid string `json:"memberId" validate:"required"`
}

// StockLevel is the post-commit availability snapshot used for alert classification.
type StockLevel struct {
	ItemUid   string `db:"item_uid"`
	Title     string `db:"title"`
	Available int    `db:"available_copies"`
}

type ReleaseResult struct {
	Prev      int
	Available int
}

// Replenished reports a 0 -> >0 availability transition.
func (r ReleaseResult) Replenished() bool {
	return r.Prev == 0 && r.Available > 0
}

type ReturnResult struct {
	ReturnedAt time.Time
	Release    ReleaseResult
}

type RenewResult struct {
	NewDueDate time.Time
}
