package response

import (
	"time"

	"karoca-backend/internal/usecase/commands"
	"karoca-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SubmitBookingResponse struct {
	ID              uuid.UUID `json:"id"`
	TotalCents      int64     `json:"total_cents"`
	DiscountPercent int32     `json:"discount_percent"`
	Status          string    `json:"status"`
}

func FromSubmitResult(result *commands.SubmitBookingResult) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		ID:              result.BookingID,
		TotalCents:      result.TotalCents,
		DiscountPercent: result.DiscountPercent,
		Status:          "pending",
	}
}

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicleId"`
	VehicleName     string    `json:"vehicleName"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	PickupLocation  string    `json:"pickupLocation"`
	PickupDate      time.Time `json:"pickupDate"`
	ReturnDate      time.Time `json:"returnDate"`
	SelectedExtras  []string  `json:"selectedExtras"`
	Note            *string   `json:"note,omitempty"`
	PromoCode       *string   `json:"promoCode,omitempty"`
	DiscountPercent int32     `json:"discountPercent"`
	TotalCents      int64     `json:"totalCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicleId"`
	VehicleName string    `json:"vehicleName"`
	PickupDate  time.Time `json:"pickupDate"`
	ReturnDate  time.Time `json:"returnDate"`
	TotalCents  int64     `json:"totalCents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	responses := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, item)
		responses = append(responses, &resp)
	}
	return responses
}
