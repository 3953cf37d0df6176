package response

import (
	"time"

	"karoca-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	DailyRateCents int64     `json:"dailyRateCents"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromVehicleView(view *queries.VehicleView) *VehicleResponse {
	var resp VehicleResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromVehicleViews(views []*queries.VehicleView) []*VehicleResponse {
	responses := make([]*VehicleResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, FromVehicleView(view))
	}
	return responses
}

// PartnerVehicleResponse is the reduced feed shape served to partner
// integrations. No timestamps, no availability churn.
type PartnerVehicleResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	DailyRateCents int64     `json:"dailyRateCents"`
}

// PartnerFeedResponse wraps the feed with the resolved partner name and a
// generation timestamp so feed consumers can detect staleness.
type PartnerFeedResponse struct {
	Partner   string                    `json:"partner"`
	Timestamp time.Time                 `json:"timestamp"`
	Count     int                       `json:"count"`
	Vehicles  []*PartnerVehicleResponse `json:"vehicles"`
}

func FromVehicleViewsForPartner(partnerName string, generatedAt time.Time, views []*queries.VehicleView) *PartnerFeedResponse {
	vehicles := make([]*PartnerVehicleResponse, 0, len(views))
	for _, view := range views {
		var resp PartnerVehicleResponse
		_ = copier.Copy(&resp, view)
		vehicles = append(vehicles, &resp)
	}
	return &PartnerFeedResponse{
		Partner:   partnerName,
		Timestamp: generatedAt,
		Count:     len(vehicles),
		Vehicles:  vehicles,
	}
}
