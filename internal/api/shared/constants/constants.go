package constants

const (
	MAX_PAGE_SIZE           = 100
	DEFAULT_OFFSET          = 0
	DEFAULT_ENTRIES_LIMIT   = 20
	DEFAULT_PROPOSALS_LIMIT = 20
	DEFAULT_VOTES_LIMIT     = 20
	MAX_DESCRIPTION_LENGTH  = 10000
)
