package uploadperiod

import "context"

type Repository interface {
	FindOne(ctx context.Context, id int) (*UploadPeriod, error)
	// Save inserts or replaces the row.
	Save(ctx context.Context, p *UploadPeriod) error
}
