package entities

import (
	"time"

	"github.com/google/uuid"
)

// PropertyStatus represents listing availability
type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
)

// Property represents a rental listing owned by exactly one host.
type Property struct {
	ID            uuid.UUID      `json:"id"`
	HostID        uuid.UUID      `json:"hostId"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	PricePerNight float64        `json:"pricePerNight"`
	Location      string         `json:"location"`
	Category      string         `json:"category"`
	Images        []string       `json:"images"`
	Rating        float64        `json:"rating"`
	ReviewsCount  int            `json:"reviewsCount"`
	Amenities     []string       `json:"amenities"`
	MaxGuests     int            `json:"maxGuests"`
	Status        PropertyStatus `json:"status"`
	// TaxRate is carried per property but the booking flow applies the
	// fixed platform rates instead.
	TaxRate   float64   `json:"taxRate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePropertyInput represents input for creating or updating a listing
type CreatePropertyInput struct {
	Title         string   `json:"title" binding:"required,min=3,max=200"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight" binding:"required,gt=0"`
	Location      string   `json:"location" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	MaxGuests     int      `json:"maxGuests" binding:"required,min=1"`
	TaxRate       float64  `json:"taxRate"`
}

// PropertyFilter narrows catalog listings
type PropertyFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	HostID   string `form:"hostId"`
}
