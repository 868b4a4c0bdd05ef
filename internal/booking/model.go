package booking

import (
	"time"
)

type Booking struct {
	ID        int64     `db:"id" json:"id"`
	SlotID    string    `db:"slot_id" json:"slot_id"`
	StartUTC  time.Time `db:"start_utc" json:"start_utc"`
	EndUTC    time.Time `db:"end_utc" json:"end_utc"`
	Name      *string   `db:"name" json:"name,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Note      *string   `db:"note" json:"note,omitempty"`
	TgUserID  *int64    `db:"tg_user_id" json:"tg_user_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Contact struct {
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

type CreateRequest struct {
	SlotID  string   `json:"slot_id" validate:"required"`
	Contact *Contact `json:"contact"`
	Note    *string  `json:"note"`
	Name    *string  `json:"name"`
}

type BookingResponse struct {
	BookingID int64     `json:"booking_id"`
	StartUTC  time.Time `json:"start_utc"`
	EndUTC    time.Time `json:"end_utc"`
}
