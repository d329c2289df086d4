package models

import (
	"time"
)

// Operation kinds
const (
	OperationKindCash     = "cash"
	OperationKindTransfer = "transfer"
)

// Cash directions
const (
	DirectionDeposit  = "deposit"
	DirectionWithdraw = "withdraw"
)

// TransactionRecord is the durable audit row written for every attempted
// cash or transfer operation. It is created before any remote call and
// updated in place as the saga progresses. Once Blocked or Succeeded is
// set the record is terminal and no further mutation happens.
type TransactionRecord struct {
	ID           uint   `gorm:"primarykey"`
	ReferenceID  string `gorm:"uniqueIndex;not null"` // External reference ID
	Kind         string `gorm:"not null"`
	Direction    string // deposit/withdraw, cash only
	FromLogin    string `gorm:"index;not null"`
	ToLogin      string `gorm:"index"` // transfer only
	FromCurrency string `gorm:"not null"`
	ToCurrency   string
	FromAmount   float64 `gorm:"not null"`
	// ToAmount stays nil until the conversion step resolves it. A record
	// must never reach the ledger step with a nil ToAmount.
	ToAmount  *float64
	Blocked   bool        `gorm:"not null;default:false"`
	Succeeded bool        `gorm:"not null;default:false"`
	Errors    StringArray `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Terminal reports whether the record has reached a final state.
func (r *TransactionRecord) Terminal() bool {
	return r.Blocked || r.Succeeded
}

// SelfTransfer reports whether both legs belong to the same login.
func (r *TransactionRecord) SelfTransfer() bool {
	return r.Kind == OperationKindTransfer && r.FromLogin == r.ToLogin
}
