package request

import "restaurant-booking/pkg/utils"

// MaxPage bounds page numbers so page*per_page stays far from int overflow.
const MaxPage = 100000

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1,max=100000"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	page := p.Page
	if page > MaxPage {
		page = MaxPage
	}
	return utils.CalculateOffset(page, p.Limit())
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return 10
	}
	if p.PerPage > 100 {
		return 100
	}
	return p.PerPage
}
