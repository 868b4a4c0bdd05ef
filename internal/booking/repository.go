package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

var (
	ErrSlotTaken       = errors.New("slot already booked")
	ErrBookingNotFound = errors.New("booking not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create claims the slot with a single insert. The UNIQUE constraint on
// slot_id is the only double-booking defense: two concurrent claims race
// at the database and exactly one insert wins, no read-then-check step.
func (r *repository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (slot_id, start_utc, end_utc, name, phone, email, note, tg_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, slot_id, start_utc, end_utc, name, phone, email, note, tg_user_id, created_at
	`

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		b.SlotID, b.StartUTC, b.EndUTC, b.Name, b.Phone, b.Email, b.Note, b.TgUserID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query := `
		SELECT id, slot_id, start_utc, end_utc, name, phone, email, note, tg_user_id, created_at
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}
