package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Service maps to the service table. The slots column stores the full,
// ordered set of bookable time labels for the service; seeded out-of-band
// and read-only via the API.
type Service struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slots     []string  `db:"slots" json:"slots"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ServiceName is the name-only projection used by the public listing.
type ServiceName struct {
	Name string `json:"name"`
}

// Availability is a service with its slot list replaced by the slots still
// free on the queried date. Derived, never persisted.
type Availability struct {
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
}
