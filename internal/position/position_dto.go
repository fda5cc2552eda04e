package position

type CreatePositionRequest struct {
	ID        string   `json:"id"`
	Title     string   `json:"title" binding:"required"`
	MinSalary *float64 `json:"min_salary" binding:"required,gte=0"`
	MaxSalary *float64 `json:"max_salary" binding:"required,gte=0"`
}

type PositionResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	MinSalary float64 `json:"min_salary"`
	MaxSalary float64 `json:"max_salary"`
}

func mapToResponse(p *Position) PositionResponse {
	return PositionResponse{
		ID:        p.ID,
		Title:     p.Title,
		MinSalary: p.MinSalary,
		MaxSalary: p.MaxSalary,
	}
}

func mapToListResponse(positions []*Position) []PositionResponse {
	resp := make([]PositionResponse, 0, len(positions))
	for _, p := range positions {
		resp = append(resp, mapToResponse(p))
	}
	return resp
}
