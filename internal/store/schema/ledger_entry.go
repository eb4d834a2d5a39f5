package schema

import (
	"time"

	"gorm.io/datatypes"
)

// LedgerEntry represents the ledger_entries table - the append-oriented audit
// record of every attempted balance- or vote-changing intent. Rows are
// immutable once their status reaches a terminal state.
type LedgerEntry struct {
	// ID is a ULID generated at entry creation; lexicographic order follows creation order
	ID string `gorm:"column:id;primaryKey;type:char(26)"`
	// UserID identifies the owning user (or voter for vote entries)
	UserID string `gorm:"column:user_id;not null;type:text;index:idx_ledger_user_status_created,priority:1"`
	// Kind is the entry kind (main_earn, sub_earn, sub_to_main_conversion, main_to_token_exchange, vote_cast)
	Kind string `gorm:"column:kind;not null;type:text"`
	// Source is the origin code of an earn, or the triggering flow for derived kinds
	Source *string `gorm:"column:source;type:text"`
	// Status is the lifecycle status (pending, confirmed, failed)
	Status string `gorm:"column:status;not null;type:text;index:idx_ledger_user_status_created,priority:2"`
	// Description is optional free text supplied with the intent
	Description *string `gorm:"column:description;type:text"`

	// Exactly one of the four amount columns is set per kind
	MainEarnAmount      *int64 `gorm:"column:main_earn_amount;type:bigint"`
	SubEarnAmount       *int64 `gorm:"column:sub_earn_amount;type:bigint"`
	SubConvertedAmount  *int64 `gorm:"column:sub_converted_amount;type:bigint"`
	MainExchangedAmount *int64 `gorm:"column:main_exchanged_amount;type:bigint"`

	// MainReceived and TokensReceived record the destination amounts computed
	// with RatioApplied at intent time
	MainReceived   *int64 `gorm:"column:main_received;type:bigint"`
	TokensReceived *int64 `gorm:"column:tokens_received;type:bigint"`
	RatioApplied   *int   `gorm:"column:ratio_applied;type:integer"`

	// ProposalID, Support and VotingPower are set only for vote_cast entries.
	// VotingPower is stored as a string to support up to 78 digits.
	ProposalID  *int64  `gorm:"column:proposal_id;type:bigint"`
	Support     *bool   `gorm:"column:support"`
	VotingPower *string `gorm:"column:voting_power;type:numeric(78,0)"`

	// Metadata carries optional structured context supplied with the intent
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`

	// CreatedAt is when the entry was inserted as pending
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_ledger_user_status_created,priority:3"`
	// ConfirmedAt is when the entry reached a terminal status
	ConfirmedAt *time.Time `gorm:"column:confirmed_at;type:timestamptz"`
}

// TableName specifies the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
