package validator

import (
	"fmt"
	"math"
	"strings"

	"room-management/dto"
	"room-management/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// maxBasePrice caps the integer part of a base price at 8 digits.
const maxBasePrice = 100000000

// ValidateRoomTypeCreate checks a room type creation payload before any
// store interaction.
func ValidateRoomTypeCreate(req *dto.CreateRoomTypeRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name: room type name is required", nil)
	}
	if err := checkStruct(req); err != nil {
		return err
	}
	return validateBasePrice(req.BasePrice)
}

// ValidateRoomTypeUpdate checks the supplied fields of a partial update.
func ValidateRoomTypeUpdate(req *dto.UpdateRoomTypeRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return errors.NewValidation("name", "room type name cannot be blank")
	}
	if err := checkStruct(req); err != nil {
		return err
	}
	if req.BasePrice != nil {
		return validateBasePrice(*req.BasePrice)
	}
	return nil
}

// ValidateRoomCreate checks a room creation payload.
func ValidateRoomCreate(req *dto.CreateRoomRequest) error {
	if strings.TrimSpace(req.RoomNumber) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "roomNumber: room number is required", nil)
	}
	return checkStruct(req)
}

// ValidateRoomUpdate checks the supplied fields of a partial update.
func ValidateRoomUpdate(req *dto.UpdateRoomRequest) error {
	if req.RoomNumber != nil && strings.TrimSpace(*req.RoomNumber) == "" {
		return errors.NewValidation("roomNumber", "room number cannot be blank")
	}
	return checkStruct(req)
}

// ValidateStatusNotes checks the optional notes of a status change.
func ValidateStatusNotes(notes string) error {
	if len(notes) > 1000 {
		return errors.NewValidation("notes", "notes cannot exceed 1000 characters")
	}
	return nil
}

// validateBasePrice enforces a positive price with at most 8 integer digits
// and 2 decimal places.
func validateBasePrice(price float64) error {
	if price <= 0 {
		return errors.NewValidation("basePrice", "base price must be greater than 0")
	}
	if price >= maxBasePrice {
		return errors.NewValidation("basePrice", "base price must have at most 8 integer digits")
	}
	// The tolerance must sit above float64 rounding noise at 8-digit
	// prices, where cents reaches 1e10.
	cents := price * 100
	if math.Abs(cents-math.Round(cents)) > 1e-4 {
		return errors.NewValidation("basePrice", "base price must have at most 2 decimal places")
	}
	return nil
}

// checkStruct runs the tag-based rules and converts the first failure into
// a per-field validation error.
func checkStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}

	fe := fieldErrs[0]
	return errors.NewValidation(fieldName(fe.Field()), fieldMessage(fe))
}

func fieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("cannot exceed %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %q", fe.Tag())
	}
}
