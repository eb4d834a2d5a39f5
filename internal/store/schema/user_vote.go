package schema

import (
	"time"
)

// UserVote represents the user_votes table - one immutable vote per
// (proposal, voter) pair. The unique index is the final authority against
// duplicate votes; any pre-check is only an optimization.
type UserVote struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProposalID references the proposal being voted on
	ProposalID int64 `gorm:"column:proposal_id;not null;uniqueIndex:idx_user_votes_proposal_voter,priority:1"`
	// VoterID is the voting user
	VoterID string `gorm:"column:voter_id;not null;type:text;uniqueIndex:idx_user_votes_proposal_voter,priority:2"`
	// Support is true for a vote in favor
	Support bool `gorm:"column:support;not null"`
	// VotingPower is the voter's power at vote time (stored as string to support up to 78 digits)
	VotingPower string `gorm:"column:voting_power;not null;type:numeric(78,0)"`
	// TxHash is the hash of the on-chain vote transaction, if any
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// VotedAt is the timestamp when the vote was recorded
	VotedAt time.Time `gorm:"column:voted_at;not null;default:now();type:timestamptz"`

	// Associations
	Proposal Proposal `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the UserVote model
func (UserVote) TableName() string {
	return "user_votes"
}
