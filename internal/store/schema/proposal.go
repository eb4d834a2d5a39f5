package schema

import (
	"time"
)

// Proposal represents the proposals table. The primary key is the
// externally-synchronized Governor sequence value, never an auto-increment.
type Proposal struct {
	// ID is the proposal identifier reserved through the sequence synchronizer
	// and confirmed on-chain before this row is committed
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// Description is the proposal text submitted on-chain
	Description string `gorm:"column:description;not null;type:text"`
	// ProposerID is the user who created the proposal
	ProposerID string `gorm:"column:proposer_id;not null;type:text;index"`
	// Deadline is the voting deadline
	Deadline time.Time `gorm:"column:deadline;not null;type:timestamptz"`
	// Executed and Canceled are mutually exclusive terminal flags
	Executed bool `gorm:"column:executed;not null;default:false"`
	Canceled bool `gorm:"column:canceled;not null;default:false"`
	// TxHash is the hash of the on-chain submission transaction
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// CreatedAt is the timestamp when this proposal was committed locally
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Proposal model
func (Proposal) TableName() string {
	return "proposals"
}
