package apiclient

import (
	"context"

	"github.com/carelink/carelink/pkg/fetch"
)

// DoctorListController returns a reloadable controller over the doctor
// listing with the given filters.
func (c *Client) DoctorListController(filters DoctorFilters) *fetch.ListController[Doctor] {
	return fetch.NewListController(func(ctx context.Context) ([]Doctor, error) {
		return c.Doctors(ctx, filters)
	})
}

// FeaturedDoctorsController returns a controller over the featured doctors
// selection.
func (c *Client) FeaturedDoctorsController() *fetch.ListController[Doctor] {
	return fetch.NewListController(func(ctx context.Context) ([]Doctor, error) {
		return c.FeaturedDoctors(ctx)
	})
}

// SpecialistListController returns a controller over the specialist listing.
func (c *Client) SpecialistListController(filters DoctorFilters) *fetch.ListController[Specialist] {
	return fetch.NewListController(func(ctx context.Context) ([]Specialist, error) {
		return c.Specialists(ctx, filters)
	})
}

// HospitalListController returns a controller over the hospital listing.
func (c *Client) HospitalListController(filters HospitalFilters) *fetch.ListController[Hospital] {
	return fetch.NewListController(func(ctx context.Context) ([]Hospital, error) {
		return c.Hospitals(ctx, filters)
	})
}

// MedicineListController returns a controller over the medicine listing.
func (c *Client) MedicineListController(filters MedicineFilters) *fetch.ListController[Medicine] {
	return fetch.NewListController(func(ctx context.Context) ([]Medicine, error) {
		return c.Medicines(ctx, filters)
	})
}

// DoctorDetailController returns a single-record controller for a doctor.
func (c *Client) DoctorDetailController(id string) *fetch.DetailController[Doctor, struct{}] {
	return fetch.NewDetailController[Doctor, struct{}](func(ctx context.Context) (Doctor, error) {
		return c.Doctor(ctx, id)
	})
}

// MedicineDetailController returns a single-record controller for a medicine.
func (c *Client) MedicineDetailController(id string) *fetch.DetailController[Medicine, struct{}] {
	return fetch.NewDetailController[Medicine, struct{}](func(ctx context.Context) (Medicine, error) {
		return c.Medicine(ctx, id)
	})
}

// HospitalDetailController returns a controller for a hospital with its
// city's doctors as the related collection. The server resolves the related
// doctors; a broken related lookup degrades to an empty list.
func (c *Client) HospitalDetailController(id string) *fetch.DetailController[HospitalDetail, Doctor] {
	return fetch.NewDetailController[HospitalDetail, Doctor](func(ctx context.Context) (HospitalDetail, error) {
		return c.Hospital(ctx, id)
	}).WithSecondary(func(ctx context.Context, primary HospitalDetail) ([]Doctor, error) {
		return primary.Doctors, nil
	})
}

// ConversationListController returns a controller over the caller's
// conversations.
func (c *Client) ConversationListController() *fetch.ListController[Conversation] {
	return fetch.NewListController(func(ctx context.Context) ([]Conversation, error) {
		return c.Conversations(ctx)
	})
}

// MessageListController returns a controller over a conversation's messages.
func (c *Client) MessageListController(conversationID string) *fetch.ListController[Message] {
	return fetch.NewListController(func(ctx context.Context) ([]Message, error) {
		return c.Messages(ctx, conversationID)
	})
}
