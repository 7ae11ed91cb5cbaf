package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctor table. Email is unique across the roster.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Specialty *string   `db:"specialty" json:"specialty,omitempty"`
	ImageURL  *string   `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
