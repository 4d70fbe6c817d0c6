package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDTO "presenca_backend/internals/features/users/auth/dto"
	userModel "presenca_backend/internals/features/users/auth/model"
	helper "presenca_backend/internals/helpers"
)

// User administration, admin-only. This replaces the hosted identity
// service the dashboard used before; accounts live in the users table.

// GET /api/users
func (h *AuthController) ListUsers(c *fiber.Ctx) error {
	var rows []userModel.UserModel
	if err := h.DB.Order("username asc").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"items": rows})
}

// POST /api/users
func (h *AuthController) CreateUser(c *fiber.Ctx) error {
	var req authDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := h.DB.Model(&userModel.UserModel{}).
		Where("username = ?", req.Username).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	row := userModel.UserModel{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := h.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", row)
}

// PUT /api/users/:id
func (h *AuthController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req authDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row userModel.UserModel
	if err := h.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		row.PasswordHash = string(hash)
	}
	if req.Role != nil {
		row.Role = *req.Role
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "User updated", row)
}

// DELETE /api/users/:id
func (h *AuthController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Delete(&userModel.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "User deleted", fiber.Map{"id": id})
}
