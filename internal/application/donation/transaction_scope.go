package donation

import (
	"context"

	treasuryapp "github.com/Odalissj/OperacionPollitoPF/internal/application/treasury"
	"github.com/Odalissj/OperacionPollitoPF/internal/domain/donation"
)

// Repos binds the donation repository and the treasury pair to one database
// transaction, so the donation record and its ledger credit commit together.
type Repos interface {
	treasuryapp.Repos
	Donations() donation.DonationRepository
}

// TransactionScope runs a function within a database transaction.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repos) error) error
}
