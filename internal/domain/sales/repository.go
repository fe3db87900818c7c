package sales

import "context"

// SaleRepository persists sale headers with their lines. Sales are immutable
// once created; there is no update or delete.
type SaleRepository interface {
	// Create inserts the header and all of its lines.
	Create(ctx context.Context, sale *Sale) error
	FindByID(ctx context.Context, id int64) (*Sale, error)
	// FindByIDWithLines loads the header and its line items.
	FindByIDWithLines(ctx context.Context, id int64) (*Sale, error)
	FindAll(ctx context.Context) ([]Sale, error)
}
