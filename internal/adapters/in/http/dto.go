package http

import (
	"time"

	"fluxi/internal/core/application/usecases/queries"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest carries the fields for registering a delivery order.
type CreateOrderRequest struct {
	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone"`
	Address        string `json:"address"`
	Neighborhood   string `json:"neighborhood,omitempty"`
	Value          int64  `json:"value"`
	DeliveryFee    int64  `json:"delivery_fee"`
	PaymentMethod  string `json:"payment_method"`
	TerminalNumber string `json:"terminal_number,omitempty"`
	Notes          string `json:"notes,omitempty"`
	ExternalSource string `json:"external_source,omitempty"`
	ExternalID     *int64 `json:"external_id,omitempty"`
}

// AssignOrderRequest optionally names the courier for a manual assignment.
// Without a courier the engine picks one.
type AssignOrderRequest struct {
	CourierID string `json:"courier_id,omitempty"`
}

// ReassignOrderRequest names the courier the order moves to.
type ReassignOrderRequest struct {
	CourierID string `json:"courier_id"`
}

// CompleteOrderRequest optionally records the voucher outcome at delivery.
type CompleteOrderRequest struct {
	Voucher string `json:"voucher,omitempty"`
}

// CreateCourierRequest carries the fields for registering a courier.
type CreateCourierRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	StartingFloat int64  `json:"starting_float"`
	ActiveToday   bool   `json:"active_today"`
}

// SetShiftRequest toggles a courier's shift.
type SetShiftRequest struct {
	Active bool `json:"active"`
}

// ReportLocationRequest carries a courier position report.
type ReportLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Sharing   bool    `json:"sharing"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderResponse is one order row as the API exposes it.
type OrderResponse struct {
	ID           string    `json:"id"`
	ClientName   string    `json:"client_name"`
	ClientPhone  string    `json:"client_phone"`
	Address      string    `json:"address"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	Value        int64     `json:"value"`
	DeliveryFee  int64     `json:"delivery_fee"`
	Payment      string    `json:"payment"`
	Status       string    `json:"status"`
	CourierID    *string   `json:"courier_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CourierResponse is one courier row as the API exposes it. Location fields
// appear only while the courier shares their position.
type CourierResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	StartingFloat int64      `json:"starting_float"`
	Availability  string     `json:"availability"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	ReportedAt    *time.Time `json:"reported_at,omitempty"`
}

func toOrderResponses(orders []queries.OrderResponse) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, ord := range orders {
		response[i] = OrderResponse{
			ID:           ord.ID.String(),
			ClientName:   ord.ClientName,
			ClientPhone:  ord.ClientPhone,
			Address:      ord.Address,
			Neighborhood: ord.Neighborhood,
			Value:        ord.Value,
			DeliveryFee:  ord.DeliveryFee,
			Payment:      ord.Payment,
			Status:       ord.Status,
			CreatedAt:    ord.CreatedAt,
		}
		if ord.CourierID != nil {
			courierID := ord.CourierID.String()
			response[i].CourierID = &courierID
		}
	}
	return response
}

func toCourierResponses(couriers []queries.CourierResponse) []CourierResponse {
	response := make([]CourierResponse, len(couriers))
	for i, c := range couriers {
		response[i] = CourierResponse{
			ID:            c.ID.String(),
			Name:          c.Name,
			Phone:         c.Phone,
			StartingFloat: c.StartingFloat,
			Availability:  c.Availability,
			Latitude:      c.Latitude,
			Longitude:     c.Longitude,
			ReportedAt:    c.ReportedAt,
		}
	}
	return response
}
