package http

import (
	"fulfillment/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemPayload represents one purchased line in requests and responses.
type ItemPayload struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	LineTotal   float64 `json:"lineTotal,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. Status is optional;
// omitted means the order starts at the first stage.
type CreateOrderRequest struct {
	BuyerName       string        `json:"buyerName"`
	BuyerEmail      string        `json:"buyerEmail"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Items           []ItemPayload `json:"items"`
	Status          string        `json:"status,omitempty"`
}

// OrderPayload is the aggregated order view returned by every order endpoint.
type OrderPayload struct {
	ID              int64         `json:"id"`
	BuyerName       string        `json:"buyerName"`
	BuyerEmail      string        `json:"buyerEmail"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Status          string        `json:"status"`
	StatusLabel     string        `json:"statusLabel"`
	ProgressIndex   int           `json:"progressIndex"`
	StageCount      int           `json:"stageCount"`
	Items           []ItemPayload `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	Tax             float64       `json:"tax"`
	Total           float64       `json:"total"`
}

// RegisterStaffRequest is the body of POST /api/v1/staff.
type RegisterStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1/staff/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StaffPayload is the authenticated staff identity returned on signup and login.
type StaffPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RoutePlanPayload is the suggested delivery run returned by GET /api/v1/route-plan.
type RoutePlanPayload struct {
	Depot string   `json:"depot"`
	Stops []string `json:"stops"`
	Route string   `json:"route"`
}

func toOrderPayload(view queries.OrderResponse) OrderPayload {
	items := make([]ItemPayload, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, ItemPayload{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			LineTotal:   item.LineTotal,
		})
	}

	return OrderPayload{
		ID:              view.ID,
		BuyerName:       view.BuyerName,
		BuyerEmail:      view.BuyerEmail,
		DeliveryAddress: view.DeliveryAddress,
		Status:          view.Status,
		StatusLabel:     view.StatusLabel,
		ProgressIndex:   view.ProgressIndex,
		StageCount:      view.StageCount,
		Items:           items,
		Subtotal:        view.Subtotal,
		Tax:             view.Tax,
		Total:           view.Total,
	}
}

func toOrderPayloads(views []queries.OrderResponse) []OrderPayload {
	payloads := make([]OrderPayload, 0, len(views))
	for _, view := range views {
		payloads = append(payloads, toOrderPayload(view))
	}
	return payloads
}
