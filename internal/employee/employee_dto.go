package employee

type CreateEmployeeRequest struct {
	ID         string   `json:"id"`
	Name       string   `json:"name" binding:"required"`
	PositionID string   `json:"position_id" binding:"required"`
	Salary     *float64 `json:"salary" binding:"required"`
}

type UpdateSalaryRequest struct {
	Salary *float64 `json:"salary" binding:"required"`
}

type UpdatePositionRequest struct {
	PositionID string `json:"position_id" binding:"required"`
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PositionID    string  `json:"position_id"`
	PositionTitle string  `json:"position_title"`
	Salary        float64 `json:"salary"`
}

type SalarySummaryResponse struct {
	TotalSalary float64 `json:"total_salary"`
	Headcount   int     `json:"headcount"`
}

func mapToResponse(e *Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:     e.ID,
		Name:   e.Name,
		Salary: e.Salary,
	}
	if e.Position != nil {
		resp.PositionID = e.Position.ID
		resp.PositionTitle = e.Position.Title
	}
	return resp
}

func mapToListResponse(employees []*Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, mapToResponse(e))
	}
	return resp
}
