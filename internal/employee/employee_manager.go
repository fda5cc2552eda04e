package employee

import (
	"fmt"
	"slices"

	employeeerrors "go-hris-registry/internal/employee/errors"
	"go-hris-registry/internal/position"
)

// Manager keeps an insertion ordered set of employees, unique by ID, and
// guarantees that every stored salary lies within its position's band.
// Employees are matched by ID, so a different *Employee carrying the same
// ID addresses the stored one.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	employees []*Employee
}

func NewManager() *Manager {
	return &Manager{}
}

// Add appends e. A duplicate ID is reported before the salary is checked.
func (m *Manager) Add(e *Employee) error {
	if e == nil {
		return employeeerrors.ErrInvalidEmployee
	}
	if m.indexOf(e.ID) >= 0 {
		return fmt.Errorf("employee %q: %w", e.ID, employeeerrors.ErrDuplicateEmployee)
	}
	if err := checkSalary(e.Salary, e.Position); err != nil {
		return err
	}

	m.employees = append(m.employees, e)
	return nil
}

// Remove deletes the stored employee with e's ID, keeping the order of the
// rest.
func (m *Manager) Remove(e *Employee) error {
	i, err := m.mustIndex(e)
	if err != nil {
		return err
	}

	m.employees = slices.Delete(m.employees, i, i+1)
	return nil
}

// TotalSalary is the sum of all stored salaries, 0 when empty.
func (m *Manager) TotalSalary() float64 {
	var total float64
	for _, e := range m.employees {
		total += e.Salary
	}
	return total
}

// UpdateSalary sets the stored employee's salary after checking it against
// the employee's current position.
func (m *Manager) UpdateSalary(e *Employee, salary float64) error {
	i, err := m.mustIndex(e)
	if err != nil {
		return err
	}

	stored := m.employees[i]
	if err := checkSalary(salary, stored.Position); err != nil {
		return err
	}

	stored.Salary = salary
	return nil
}

// UpdatePosition moves the stored employee to p. The current salary must
// already fit p's band; it is never adjusted.
func (m *Manager) UpdatePosition(e *Employee, p *position.Position) error {
	i, err := m.mustIndex(e)
	if err != nil {
		return err
	}

	stored := m.employees[i]
	if err := checkSalary(stored.Salary, p); err != nil {
		return err
	}

	stored.Position = p
	return nil
}

// Employees returns the stored employees in insertion order. The slice is
// a copy; the pointers are not.
func (m *Manager) Employees() []*Employee {
	return slices.Clone(m.employees)
}

func (m *Manager) Find(id string) (*Employee, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return m.employees[i], true
}

func (m *Manager) Len() int {
	return len(m.employees)
}

func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.employees, func(e *Employee) bool {
		return e.ID == id
	})
}

func (m *Manager) mustIndex(e *Employee) (int, error) {
	if e == nil {
		return -1, employeeerrors.ErrInvalidEmployee
	}
	i := m.indexOf(e.ID)
	if i < 0 {
		return -1, fmt.Errorf("employee %q: %w", e.ID, employeeerrors.ErrEmployeeNotFound)
	}
	return i, nil
}

func checkSalary(salary float64, p *position.Position) error {
	if position.IsSalaryValidForPosition(salary, p) {
		return nil
	}
	if p == nil {
		return fmt.Errorf("salary %.2f without position: %w", salary, employeeerrors.ErrInvalidSalary)
	}
	return fmt.Errorf("salary %.2f outside [%.2f, %.2f] of position %q: %w",
		salary, p.MinSalary, p.MaxSalary, p.ID, employeeerrors.ErrInvalidSalary)
}
