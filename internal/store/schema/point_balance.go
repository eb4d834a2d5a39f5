package schema

import (
	"time"
)

// PointBalance represents the point_balances table - the materialized per-user
// balance aggregate. All three counters are kept non-negative by conditional
// updates at write time and CHECK constraints at the schema level.
type PointBalance struct {
	// UserID is the owning user and primary key
	UserID string `gorm:"column:user_id;primaryKey;type:text"`
	// MainPoint is the spendable main point balance
	MainPoint int64 `gorm:"column:main_point;not null;default:0"`
	// SubPoint is the sub point balance convertible into main points
	SubPoint int64 `gorm:"column:sub_point;not null;default:0"`
	// TokenBalance is the token balance in whole-token units
	TokenBalance int64 `gorm:"column:token_balance;not null;default:0"`
	// CreatedAt is the timestamp when this balance row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this balance was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PointBalance model
func (PointBalance) TableName() string {
	return "point_balances"
}
