package employee

import "go-hris-registry/internal/position"

// Employee holds one position and a salary. Once added to a Manager it
// must only be changed through the manager's update operations.
type Employee struct {
	ID       string
	Name     string
	Position *position.Position
	Salary   float64
}

func NewEmployee(id, name string, p *position.Position, salary float64) *Employee {
	return &Employee{
		ID:       id,
		Name:     name,
		Position: p,
		Salary:   salary,
	}
}
