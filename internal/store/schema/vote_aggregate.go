package schema

import (
	"time"
)

// VoteAggregate represents the vote_aggregates table - the materialized
// per-proposal tally. Mutations are blind atomic increments; Version is an
// audit counter bumped in the same statement, not an optimistic lock.
type VoteAggregate struct {
	// ProposalID references the proposal and is the primary key
	ProposalID int64 `gorm:"column:proposal_id;primaryKey;autoIncrement:false"`
	// ForVotes is the cumulative voting power in favor (stored as string to support up to 78 digits)
	ForVotes string `gorm:"column:for_votes;not null;default:0;type:numeric(78,0)"`
	// AgainstVotes is the cumulative voting power against
	AgainstVotes string `gorm:"column:against_votes;not null;default:0;type:numeric(78,0)"`
	// TotalVoters equals ForVoters + AgainstVoters at all times
	TotalVoters int64 `gorm:"column:total_voters;not null;default:0"`
	// ForVoters counts voters in favor
	ForVoters int64 `gorm:"column:for_voters;not null;default:0"`
	// AgainstVoters counts voters against
	AgainstVoters int64 `gorm:"column:against_voters;not null;default:0"`
	// Version is incremented on every mutation
	Version int64 `gorm:"column:version;not null;default:0"`
	// UpdatedAt is the timestamp when this tally was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Proposal Proposal `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the VoteAggregate model
func (VoteAggregate) TableName() string {
	return "vote_aggregates"
}
