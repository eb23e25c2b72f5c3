package apiclient

import (
	"context"
	"net/url"
	"strings"
)

// DoctorFilters narrows a doctor or specialist listing. Zero values mean
// no filtering; Specialty additionally treats "all" as no filtering.
type DoctorFilters struct {
	Search    string
	Location  string
	Specialty string
}

func (f DoctorFilters) values() url.Values {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Location != "" {
		params.Set("location", f.Location)
	}
	if f.Specialty != "" {
		params.Set("specialty", f.Specialty)
	}
	return params
}

// HospitalFilters narrows a hospital listing.
type HospitalFilters struct {
	Location string
}

// MedicineFilters narrows a medicine listing.
type MedicineFilters struct {
	Category         string
	PrescriptionOnly bool
	InStockOnly      bool
}

func (f MedicineFilters) values() url.Values {
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.PrescriptionOnly {
		params.Set("prescription_only", "true")
	}
	if f.InStockOnly {
		params.Set("in_stock_only", "true")
	}
	return params
}

// Doctors lists doctors matching the filters.
func (c *Client) Doctors(ctx context.Context, filters DoctorFilters) ([]Doctor, error) {
	var res listEnvelope[Doctor]
	err := c.do(ctx, "GET", "/doctors", filters.values(), nil, &res)
	return res.Data, err
}

// FeaturedDoctors lists the fixed featured selection for the landing view.
func (c *Client) FeaturedDoctors(ctx context.Context) ([]Doctor, error) {
	var res listEnvelope[Doctor]
	err := c.do(ctx, "GET", "/doctors/featured", nil, nil, &res)
	return res.Data, err
}

// Doctor fetches a single doctor by id.
func (c *Client) Doctor(ctx context.Context, id string) (Doctor, error) {
	var res Doctor
	err := c.do(ctx, "GET", "/doctors/"+url.PathEscape(id), nil, nil, &res)
	return res, err
}

// Specialists lists specialists matching the filters.
func (c *Client) Specialists(ctx context.Context, filters DoctorFilters) ([]Specialist, error) {
	var res listEnvelope[Specialist]
	err := c.do(ctx, "GET", "/specialists", filters.values(), nil, &res)
	return res.Data, err
}

// Specialist fetches a single specialist by id.
func (c *Client) Specialist(ctx context.Context, id string) (Specialist, error) {
	var res Specialist
	err := c.do(ctx, "GET", "/specialists/"+url.PathEscape(id), nil, nil, &res)
	return res, err
}

// SpecialistSpecialties lists the distinct specialties for filter menus.
func (c *Client) SpecialistSpecialties(ctx context.Context) ([]string, error) {
	var res listEnvelope[string]
	err := c.do(ctx, "GET", "/specialists/specialties", nil, nil, &res)
	return res.Data, err
}

// Hospitals lists hospitals matching the filters.
func (c *Client) Hospitals(ctx context.Context, filters HospitalFilters) ([]Hospital, error) {
	params := url.Values{}
	if filters.Location != "" {
		params.Set("location", filters.Location)
	}
	var res listEnvelope[Hospital]
	err := c.do(ctx, "GET", "/hospitals", params, nil, &res)
	return res.Data, err
}

// Hospital fetches a hospital with the doctors practicing in its city.
func (c *Client) Hospital(ctx context.Context, id string) (HospitalDetail, error) {
	var res HospitalDetail
	err := c.do(ctx, "GET", "/hospitals/"+url.PathEscape(id), nil, nil, &res)
	return res, err
}

// Medicines lists medicines matching the filters.
func (c *Client) Medicines(ctx context.Context, filters MedicineFilters) ([]Medicine, error) {
	var res listEnvelope[Medicine]
	err := c.do(ctx, "GET", "/medicines", filters.values(), nil, &res)
	return res.Data, err
}

// Medicine fetches a single medicine by id.
func (c *Client) Medicine(ctx context.Context, id string) (Medicine, error) {
	var res Medicine
	err := c.do(ctx, "GET", "/medicines/"+url.PathEscape(id), nil, nil, &res)
	return res, err
}

// MedicineCategories lists the distinct categories for filter menus.
func (c *Client) MedicineCategories(ctx context.Context) ([]string, error) {
	var res listEnvelope[string]
	err := c.do(ctx, "GET", "/medicines/categories", nil, nil, &res)
	return res.Data, err
}

// HospitalCity extracts the city segment of a hospital location, the part
// before the first comma.
func HospitalCity(location string) string {
	city, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(city)
}
