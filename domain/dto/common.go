package dto

// PaginationQuery query params มาตรฐานสำหรับ list endpoints
type PaginationQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize เติม default และกันค่าหลุดช่วง
func (p *PaginationQuery) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
