package response

import (
	"net/http"

	"room-management/errors"

	"github.com/gin-gonic/gin"
)

// Response is the uniform JSON envelope.
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the page of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Success returns a successful response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// SuccessWithPagination returns a successful paginated response.
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Created returns a 201 response for newly created records.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// BadRequest returns a 400 response with a message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// NotFound returns a 404 response with a message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict returns a 409 response with a message.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// UnprocessableEntity returns a 422 response for rejected business rules.
func UnprocessableEntity(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError returns a 500 response.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

// HandleError maps a service error kind onto the matching HTTP status.
func HandleError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch {
	case errors.IsNotFound(err):
		NotFound(c, appErr.Message)
	case errors.IsDuplicate(err):
		Conflict(c, appErr.Message)
	case errors.IsBusinessRule(err):
		UnprocessableEntity(c, appErr.Message)
	case errors.IsValidation(err):
		BadRequest(c, appErr.Message)
	default:
		ServerError(c)
	}
}
