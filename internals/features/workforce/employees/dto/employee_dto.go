package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	m "presenca_backend/internals/features/workforce/employees/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateEmployeeRequest struct {
	CPF  string `json:"cpf"  validate:"required,min=11,max=14"`
	Name string `json:"name" validate:"required,min=2,max=120"`

	IsInternal bool `json:"isInternal"`

	Store     *string    `json:"store"`
	Position  *string    `json:"position"`
	Sector    *string    `json:"sector"`
	StartDate *time.Time `json:"startDate"`

	Role *string `json:"role"`
}

func (r *CreateEmployeeRequest) Normalize() {
	r.CPF = onlyDigits(r.CPF)
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Store)
	trimPtr(&r.Position)
	trimPtr(&r.Sector)
	trimPtr(&r.Role)
}

// CheckProfile enforces the internal/external rule: internal employees must
// carry store+position+sector+startDate and no role; external ones carry only
// a role. The schema does not enforce this, the write path does.
func (r *CreateEmployeeRequest) CheckProfile() error {
	if r.IsInternal {
		if r.Store == nil || r.Position == nil || r.Sector == nil || r.StartDate == nil {
			return fiber.NewError(fiber.StatusBadRequest,
				"Internal employees require store, position, sector and startDate")
		}
		if r.Role != nil {
			return fiber.NewError(fiber.StatusBadRequest,
				"Internal employees must not carry a role")
		}
		return nil
	}
	if r.Role == nil {
		return fiber.NewError(fiber.StatusBadRequest,
			"External employees require a role")
	}
	if r.Store != nil || r.Position != nil || r.Sector != nil || r.StartDate != nil {
		return fiber.NewError(fiber.StatusBadRequest,
			"External employees must not carry internal fields")
	}
	return nil
}

func (r *CreateEmployeeRequest) ToModel() m.EmployeeModel {
	return m.EmployeeModel{
		CPF:        r.CPF,
		Name:       r.Name,
		IsInternal: r.IsInternal,
		Store:      r.Store,
		Position:   r.Position,
		Sector:     r.Sector,
		StartDate:  r.StartDate,
		Role:       r.Role,
	}
}

/* =========================================================
   UPDATE
   ========================================================= */

type UpdateEmployeeRequest struct {
	CPF  *string `json:"cpf"  validate:"omitempty,min=11,max=14"`
	Name *string `json:"name" validate:"omitempty,min=2,max=120"`

	IsInternal *bool `json:"isInternal"`

	Store     *string    `json:"store"`
	Position  *string    `json:"position"`
	Sector    *string    `json:"sector"`
	StartDate *time.Time `json:"startDate"`

	Role *string `json:"role"`
}

// Apply patches the model in place and re-checks the profile rule against the
// resulting state.
func (r *UpdateEmployeeRequest) Apply(em *m.EmployeeModel) error {
	if r.CPF != nil {
		em.CPF = onlyDigits(*r.CPF)
	}
	if r.Name != nil {
		em.Name = strings.TrimSpace(*r.Name)
	}
	if r.IsInternal != nil {
		em.IsInternal = *r.IsInternal
	}
	if r.Store != nil {
		em.Store = r.Store
	}
	if r.Position != nil {
		em.Position = r.Position
	}
	if r.Sector != nil {
		em.Sector = r.Sector
	}
	if r.StartDate != nil {
		em.StartDate = r.StartDate
	}
	if r.Role != nil {
		em.Role = r.Role
	}

	if em.IsInternal {
		if em.Store == nil || em.Position == nil || em.Sector == nil || em.StartDate == nil {
			return fiber.NewError(fiber.StatusBadRequest,
				"Internal employees require store, position, sector and startDate")
		}
		em.Role = nil
	} else {
		if em.Role == nil {
			return fiber.NewError(fiber.StatusBadRequest,
				"External employees require a role")
		}
		em.Store, em.Position, em.Sector, em.StartDate = nil, nil, nil, nil
	}
	return nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
