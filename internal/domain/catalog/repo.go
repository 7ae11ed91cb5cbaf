package catalog

import "context"

type ServiceRepository interface {
	List(ctx context.Context) ([]*Service, error)
	ListNames(ctx context.Context) ([]string, error)
	// Create inserts a service, skipping names already present. Used by the
	// seed command only; the API never writes the catalog.
	Create(ctx context.Context, s *Service) error
}

// BookedSlotSource reports, for a given date, which slots are already
// consumed per service name. Implemented by the booking repository; defined
// here so the availability computation does not depend on the booking
// package.
type BookedSlotSource interface {
	BookedSlots(ctx context.Context, date string) (map[string][]string, error)
}
