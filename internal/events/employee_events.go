package events

import "time"

const EmployeeRegistryTopic = "hr.employee.registry.v1"

const (
	EmployeeAdded           = "employee_added"
	EmployeeRemoved         = "employee_removed"
	EmployeeSalaryUpdated   = "employee_salary_updated"
	EmployeePositionUpdated = "employee_position_updated"
)

// EmployeeEvent describes one committed change to the employee registry.
type EmployeeEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	PositionID string    `json:"position_id,omitempty"`
	Salary     float64   `json:"salary"`
	OccurredAt time.Time `json:"occurred_at"`
}
