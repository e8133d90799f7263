package request

type MenuRequest struct {
	PaginatedRequest
	Category string `json:"category" validate:"omitempty,oneof=starter main dessert drink"`
}
