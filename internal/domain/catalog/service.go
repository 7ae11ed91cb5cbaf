package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ErrInvalidDate is returned when the availability date is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

// Catalog exposes the service listing and the per-date availability
// computation.
type Catalog struct {
	services ServiceRepository
	booked   BookedSlotSource
}

func NewCatalog(services ServiceRepository, booked BookedSlotSource) *Catalog {
	return &Catalog{services: services, booked: booked}
}

func (c *Catalog) ListNames(ctx context.Context) ([]ServiceName, error) {
	names, err := c.services.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ServiceName, 0, len(names))
	for _, n := range names {
		out = append(out, ServiceName{Name: n})
	}
	return out, nil
}

// Availability returns every service with its slot list reduced to the
// slots not yet booked on the given date. The original slot order is
// preserved; the result is always a subset of the stored slot list and
// disjoint from that date's bookings.
func (c *Catalog) Availability(ctx context.Context, date string) ([]Availability, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	services, err := c.services.List(ctx)
	if err != nil {
		return nil, err
	}
	bookedByService, err := c.booked.BookedSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]Availability, 0, len(services))
	for _, svc := range services {
		taken := make(map[string]bool, len(bookedByService[svc.Name]))
		for _, slot := range bookedByService[svc.Name] {
			taken[slot] = true
		}
		free := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if !taken[slot] {
				free = append(free, slot)
			}
		}
		out = append(out, Availability{Name: svc.Name, Slots: free})
	}
	return out, nil
}

// Seed loads the given services into the catalog, skipping names that
// already exist.
func (c *Catalog) Seed(ctx context.Context, services []*Service) error {
	for _, s := range services {
		if s.Name == "" {
			return fmt.Errorf("service name is required")
		}
		s.ID = uuid.New()
		if err := c.services.Create(ctx, s); err != nil {
			return fmt.Errorf("seed service %s: %w", s.Name, err)
		}
	}
	return nil
}
