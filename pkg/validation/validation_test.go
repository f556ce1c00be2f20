package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/pkg/validation"
)

func ptr(s string) *string { return &s }

func TestStruct_CreateCategoryRequest(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.CreateCategoryRequest{Name: "Audio"}))
	assert.NoError(t, validation.Struct(dto.CreateCategoryRequest{Name: "Audio", Description: strings.Repeat("d", 500)}))

	err := validation.Struct(dto.CreateCategoryRequest{})
	assert.EqualError(t, err, "name es requerido")

	err = validation.Struct(dto.CreateCategoryRequest{Name: "A"})
	assert.EqualError(t, err, "name debe tener al menos 2 caracteres")

	err = validation.Struct(dto.CreateCategoryRequest{Name: "Audio", Description: strings.Repeat("d", 501)})
	assert.EqualError(t, err, "description debe tener como máximo 500 caracteres")
}

func TestStruct_UpdateCategoryRequest(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.UpdateCategoryRequest{}))
	assert.NoError(t, validation.Struct(dto.UpdateCategoryRequest{Description: ptr("")}))
	assert.Error(t, validation.Struct(dto.UpdateCategoryRequest{Name: ptr("")}))
	assert.Error(t, validation.Struct(dto.UpdateCategoryRequest{Name: ptr(strings.Repeat("n", 101))}))
}

func TestStruct_CuentaCaracteresNoBytes(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.CreateCategoryRequest{Name: strings.Repeat("ñ", 100)}))
}
