package validator

import (
	"strings"
	"testing"

	"room-management/dto"
	"room-management/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTypeRequest() *dto.CreateRoomTypeRequest {
	return &dto.CreateRoomTypeRequest{
		Name:         "Deluxe",
		BasePrice:    150.00,
		MaxOccupancy: 2,
	}
}

func TestValidateRoomTypeCreate(t *testing.T) {
	require.NoError(t, ValidateRoomTypeCreate(validTypeRequest()))

	req := validTypeRequest()
	req.Name = "  "
	err := ValidateRoomTypeCreate(req)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	req = validTypeRequest()
	req.Name = strings.Repeat("x", 101)
	err = ValidateRoomTypeCreate(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	req = validTypeRequest()
	req.MaxOccupancy = 0
	require.Error(t, ValidateRoomTypeCreate(req))

	req = validTypeRequest()
	req.MaxOccupancy = 11
	require.Error(t, ValidateRoomTypeCreate(req))
}

func TestValidateBasePriceBounds(t *testing.T) {
	req := validTypeRequest()
	req.BasePrice = 99999999.99
	require.NoError(t, ValidateRoomTypeCreate(req))

	req.BasePrice = 100000000
	err := ValidateRoomTypeCreate(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "8 integer digits")

	req.BasePrice = 150.999
	err = ValidateRoomTypeCreate(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 decimal places")

	req.BasePrice = -5
	require.Error(t, ValidateRoomTypeCreate(req))
}

func TestValidateRoomTypeUpdate(t *testing.T) {
	require.NoError(t, ValidateRoomTypeUpdate(&dto.UpdateRoomTypeRequest{}))

	blank := "   "
	err := ValidateRoomTypeUpdate(&dto.UpdateRoomTypeRequest{Name: &blank})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	price := 12.345
	err = ValidateRoomTypeUpdate(&dto.UpdateRoomTypeRequest{BasePrice: &price})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 decimal places")

	occupancy := 4
	require.NoError(t, ValidateRoomTypeUpdate(&dto.UpdateRoomTypeRequest{MaxOccupancy: &occupancy}))
}

func TestValidateRoomCreate(t *testing.T) {
	require.NoError(t, ValidateRoomCreate(&dto.CreateRoomRequest{
		RoomNumber: "101",
		RoomTypeID: 1,
		Floor:      1,
	}))

	err := ValidateRoomCreate(&dto.CreateRoomRequest{
		RoomNumber: " ",
		RoomTypeID: 1,
		Floor:      1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	err = ValidateRoomCreate(&dto.CreateRoomRequest{
		RoomNumber: "12345678901",
		RoomTypeID: 1,
		Floor:      1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roomNumber")

	err = ValidateRoomCreate(&dto.CreateRoomRequest{
		RoomNumber: "101",
		RoomTypeID: 1,
		Floor:      51,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floor")
}

func TestValidateStatusNotes(t *testing.T) {
	require.NoError(t, ValidateStatusNotes(""))
	require.NoError(t, ValidateStatusNotes(strings.Repeat("x", 1000)))

	err := ValidateStatusNotes(strings.Repeat("x", 1001))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}
