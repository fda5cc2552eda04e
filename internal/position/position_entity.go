package position

import (
	"fmt"
	"strings"

	positionerrors "go-hris-registry/internal/position/errors"
)

// Position is a job title with an inclusive salary band. It is treated as
// immutable once built and is shared by pointer among the employees that
// hold it.
type Position struct {
	ID        string
	Title     string
	MinSalary float64
	MaxSalary float64
}

func NewPosition(id, title string, minSalary, maxSalary float64) (*Position, error) {
	id = strings.TrimSpace(id)
	title = strings.TrimSpace(title)
	if id == "" || title == "" {
		return nil, positionerrors.ErrInvalidPositionInput
	}
	if minSalary < 0 || minSalary > maxSalary {
		return nil, fmt.Errorf("band [%.2f, %.2f]: %w", minSalary, maxSalary, positionerrors.ErrInvalidSalaryRange)
	}
	return &Position{
		ID:        id,
		Title:     title,
		MinSalary: minSalary,
		MaxSalary: maxSalary,
	}, nil
}

// Allows reports whether salary lies within the band, both ends included.
func (p *Position) Allows(salary float64) bool {
	return IsSalaryValidForPosition(salary, p)
}

// IsSalaryValidForPosition reports whether p.MinSalary <= salary <= p.MaxSalary.
// A nil position admits no salary.
func IsSalaryValidForPosition(salary float64, p *Position) bool {
	if p == nil {
		return false
	}
	return p.MinSalary <= salary && salary <= p.MaxSalary
}
