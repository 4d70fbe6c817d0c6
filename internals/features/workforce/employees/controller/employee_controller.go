package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	employeeDTO "presenca_backend/internals/features/workforce/employees/dto"
	employeeModel "presenca_backend/internals/features/workforce/employees/model"
	helper "presenca_backend/internals/helpers"
)

type EmployeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db, Validate: validator.New()}
}

// LIST
// GET /api/employees?q=&internal=&page=&per_page=
func (h *EmployeeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	q := h.DB.Model(&employeeModel.EmployeeModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("name ILIKE ? OR cpf ILIKE ?", like, like)
	}
	switch strings.ToLower(c.Query("internal")) {
	case "true", "1":
		q = q.Where(`"isInternal" = true`)
	case "false", "0":
		q = q.Where(`"isInternal" = false`)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	order := "name asc"
	if p.SortBy == "created_at" {
		order = "created_at " + p.SortOrder
	}

	var rows []employeeModel.EmployeeModel
	if err := q.Order(order).Offset(p.Offset()).Limit(p.Limit()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"items": rows, "meta": helper.BuildMeta(total, p)})
}

// SEARCH — scanner helper: exact id lookup or name/cpf ILIKE.
// GET /api/employees/search?q=&exact=1
func (h *EmployeeController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return c.JSON(fiber.Map{"items": []employeeModel.EmployeeModel{}})
	}

	var rows []employeeModel.EmployeeModel
	if c.Query("exact") == "1" {
		id, err := uuid.Parse(q)
		if err != nil {
			return c.JSON(fiber.Map{"items": rows})
		}
		if err := h.DB.Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"items": rows})
	}

	like := "%" + q + "%"
	if err := h.DB.Where("name ILIKE ? OR cpf ILIKE ?", like, like).Limit(20).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"items": rows})
}

// CREATE
// POST /api/employees
func (h *EmployeeController) Create(c *fiber.Ctx) error {
	var req employeeDTO.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.CheckProfile(); err != nil {
		return err
	}

	var cnt int64
	if err := h.DB.Model(&employeeModel.EmployeeModel{}).
		Where("cpf = ?", req.CPF).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "CPF already registered")
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") ||
			strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return fiber.NewError(fiber.StatusConflict, "CPF already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Employee created", row)
}

// UPDATE
// PUT /api/employees/:id
func (h *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req employeeDTO.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row employeeModel.EmployeeModel
	if err := h.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := req.Apply(&row); err != nil {
		return err
	}
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Employee updated", row)
}

// DELETE
// DELETE /api/employees/:id
func (h *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Delete(&employeeModel.EmployeeModel{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Employee not found")
	}

	return helper.Success(c, "Employee deleted", fiber.Map{"id": id})
}
