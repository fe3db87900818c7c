package donation

import "context"

// DonationRepository persists donation records.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	FindByID(ctx context.Context, id int64) (*Donation, error)
	FindAll(ctx context.Context) ([]Donation, error)
	// Delete removes a donation record. The ledger entry it produced stays;
	// corrections go through a compensating movement.
	Delete(ctx context.Context, id int64) error
}
