package db

import "context"

// SnapshotStore reads the collections a scoring session is built from
type SnapshotStore interface {
	GetUsers(ctx context.Context) ([]User, error)
	GetExchanges(ctx context.Context) ([]Exchange, error)
	GetHistory(ctx context.Context) ([]History, error)
}

// ProposalStore persists distribution runs
type ProposalStore interface {
	InsertDistributionProposals(ctx context.Context, proposals []DistributionProposal) error
	GetDistributionProposals(ctx context.Context, sessionID string) ([]DistributionProposal, error)
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	SnapshotStore
	ProposalStore
}
