package dto

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "presenca_backend/internals/features/workforce/employees/model"
)

func str(s string) *string { return &s }

func internalReq() CreateEmployeeRequest {
	start := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	return CreateEmployeeRequest{
		CPF:        "123.456.789-01",
		Name:       "  Ana Souza  ",
		IsInternal: true,
		Store:      str("Centro"),
		Position:   str("Vendedora"),
		Sector:     str("Moda"),
		StartDate:  &start,
	}
}

func TestNormalizeStripsCPFAndTrims(t *testing.T) {
	r := internalReq()
	r.Store = str("  Centro ")
	r.Normalize()
	assert.Equal(t, "12345678901", r.CPF)
	assert.Equal(t, "Ana Souza", r.Name)
	assert.Equal(t, "Centro", *r.Store)
}

func TestNormalizeBlankPointerBecomesNil(t *testing.T) {
	r := internalReq()
	r.Role = str("   ")
	r.Normalize()
	assert.Nil(t, r.Role)
}

func TestCheckProfileInternal(t *testing.T) {
	r := internalReq()
	require.NoError(t, r.CheckProfile())

	missing := internalReq()
	missing.Sector = nil
	err := missing.CheckProfile()
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	withRole := internalReq()
	withRole.Role = str("Promotor")
	assert.Error(t, withRole.CheckProfile())
}

func TestCheckProfileExternal(t *testing.T) {
	r := CreateEmployeeRequest{CPF: "12345678901", Name: "Bruno", Role: str("Promotor")}
	require.NoError(t, r.CheckProfile())

	noRole := CreateEmployeeRequest{CPF: "12345678901", Name: "Bruno"}
	assert.Error(t, noRole.CheckProfile())

	withStore := CreateEmployeeRequest{CPF: "12345678901", Name: "Bruno", Role: str("Promotor"), Store: str("Centro")}
	assert.Error(t, withStore.CheckProfile())
}

func TestApplySwitchToExternalClearsInternalFields(t *testing.T) {
	r := internalReq()
	em := r.ToModel()
	ext := false
	upd := UpdateEmployeeRequest{IsInternal: &ext, Role: str("Promotor")}
	require.NoError(t, upd.Apply(&em))

	assert.False(t, em.IsInternal)
	assert.Equal(t, "Promotor", *em.Role)
	assert.Nil(t, em.Store)
	assert.Nil(t, em.Position)
	assert.Nil(t, em.Sector)
	assert.Nil(t, em.StartDate)
}

func TestApplySwitchToInternalClearsRole(t *testing.T) {
	em := m.EmployeeModel{CPF: "12345678901", Name: "Bruno", Role: str("Promotor")}
	in := true
	start := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	upd := UpdateEmployeeRequest{
		IsInternal: &in,
		Store:      str("Centro"),
		Position:   str("Estoquista"),
		Sector:     str("Depósito"),
		StartDate:  &start,
	}
	require.NoError(t, upd.Apply(&em))
	assert.True(t, em.IsInternal)
	assert.Nil(t, em.Role)
	assert.Equal(t, "Centro", *em.Store)
}

func TestApplyRejectsIncompleteInternal(t *testing.T) {
	em := m.EmployeeModel{CPF: "12345678901", Name: "Bruno", Role: str("Promotor")}
	in := true
	upd := UpdateEmployeeRequest{IsInternal: &in}
	assert.Error(t, upd.Apply(&em))
}
