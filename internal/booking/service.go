package booking

import (
	"context"

	"github.com/ghoOst57/genetic-miniapp/internal/availability"
)

type Service interface {
	Claim(ctx context.Context, req CreateRequest, tgUserID *int64) (*Booking, error)
	Lookup(ctx context.Context, id int64) (*Booking, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Claim decodes the slot id and inserts the booking. The id is checked
// for shape only; whether it names a slot the generator would actually
// emit is not re-validated, so any well-formed id can be claimed.
func (s *service) Claim(ctx context.Context, req CreateRequest, tgUserID *int64) (*Booking, error) {
	slot, err := availability.DecodeSlotID(req.SlotID)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		SlotID:   req.SlotID,
		StartUTC: slot.StartUTC,
		EndUTC:   slot.EndUTC,
		Name:     req.Name,
		Note:     req.Note,
		TgUserID: tgUserID,
	}
	if req.Contact != nil {
		b.Phone = req.Contact.Phone
		b.Email = req.Contact.Email
	}

	return s.repo.Create(ctx, b)
}

func (s *service) Lookup(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}
