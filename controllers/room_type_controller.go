package controllers

import (
	"strconv"

	"room-management/dto"
	"room-management/response"
	"room-management/services"

	"github.com/gin-gonic/gin"
)

// RoomTypeController exposes the room type operations over HTTP.
type RoomTypeController struct {
	service *services.RoomTypeService
}

// NewRoomTypeController creates a RoomTypeController.
func NewRoomTypeController(service *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{service: service}
}

// CreateRoomType godoc
// @Summary Create a room type
// @Tags room-types
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Room type payload"
// @Success 201 {object} response.Response{data=dto.RoomTypeResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /room-types [post]
func (ctl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	roomType, err := ctl.service.Create(&req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, roomType)
}

// GetRoomTypes godoc
// @Summary List all room types with pagination
// @Tags room-types
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort query string false "Sort clause"
// @Success 200 {object} response.Response{data=[]dto.RoomTypeResponse}
// @Router /room-types [get]
func (ctl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	var p dto.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	p.Normalize()

	roomTypes, total, err := ctl.service.ListAll(p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithPagination(c, roomTypes, p.Page, p.Limit, total)
}

// GetActiveRoomTypes godoc
// @Summary List active room types
// @Tags room-types
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.RoomTypeResponse}
// @Router /room-types/active [get]
func (ctl *RoomTypeController) GetActiveRoomTypes(c *gin.Context) {
	roomTypes, err := ctl.service.ListActive()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, roomTypes)
}

// GetRoomTypeDetail godoc
// @Summary Get one room type with its room counts
// @Tags room-types
// @Produce json
// @Param id path int true "Room type ID"
// @Success 200 {object} response.Response{data=dto.RoomTypeResponse}
// @Failure 404 {object} response.Response
// @Router /room-types/{id} [get]
func (ctl *RoomTypeController) GetRoomTypeDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	roomType, err := ctl.service.Get(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, roomType)
}

// UpdateRoomType godoc
// @Summary Partially update a room type
// @Tags room-types
// @Accept json
// @Produce json
// @Param id path int true "Room type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Fields to update; omitted fields stay unchanged"
// @Success 200 {object} response.Response{data=dto.RoomTypeResponse}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /room-types/{id} [put]
func (ctl *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	roomType, err := ctl.service.Update(id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, roomType)
}

// DeleteRoomType godoc
// @Summary Soft-delete a room type
// @Tags room-types
// @Produce json
// @Param id path int true "Room type ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /room-types/{id} [delete]
func (ctl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.service.Delete(id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, nil)
}

// ToggleRoomType godoc
// @Summary Flip the active flag of a room type
// @Tags room-types
// @Produce json
// @Param id path int true "Room type ID"
// @Success 200 {object} response.Response{data=dto.RoomTypeResponse}
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /room-types/{id}/toggle [patch]
func (ctl *RoomTypeController) ToggleRoomType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	roomType, err := ctl.service.ToggleActive(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, roomType)
}

// SearchRoomTypes godoc
// @Summary Search room types by name or description
// @Tags room-types
// @Produce json
// @Param term query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response{data=dto.RoomTypeSearchResponse}
// @Router /room-types/search [get]
func (ctl *RoomTypeController) SearchRoomTypes(c *gin.Context) {
	var req dto.RoomTypeSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid search parameters")
		return
	}
	req.Normalize()

	result, total, err := ctl.service.Search(req.Term, req.Pagination)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithPagination(c, result, req.Page, req.Limit, total)
}

// GetRoomTypesByPriceRange godoc
// @Summary List active room types priced within a range
// @Tags room-types
// @Produce json
// @Param minPrice query number true "Minimum base price"
// @Param maxPrice query number true "Maximum base price"
// @Success 200 {object} response.Response{data=[]dto.RoomTypeResponse}
// @Failure 422 {object} response.Response
// @Router /room-types/price-range [get]
func (ctl *RoomTypeController) GetRoomTypesByPriceRange(c *gin.Context) {
	var req dto.PriceRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "minPrice and maxPrice are required")
		return
	}

	roomTypes, err := ctl.service.ListByPriceRange(req.MinPrice, req.MaxPrice)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, roomTypes)
}

// GetRoomTypesByOccupancy godoc
// @Summary List active room types sleeping at least n guests
// @Tags room-types
// @Produce json
// @Param min query int true "Minimum occupancy"
// @Success 200 {object} response.Response{data=[]dto.RoomTypeResponse}
// @Router /room-types/occupancy [get]
func (ctl *RoomTypeController) GetRoomTypesByOccupancy(c *gin.Context) {
	min, err := strconv.Atoi(c.DefaultQuery("min", "1"))
	if err != nil {
		response.BadRequest(c, "Invalid minimum occupancy")
		return
	}

	roomTypes, svcErr := ctl.service.ListByMinOccupancy(min)
	if svcErr != nil {
		response.HandleError(c, svcErr)
		return
	}
	response.Success(c, roomTypes)
}

// GetRoomTypesWithAvailableRooms godoc
// @Summary List active room types that have at least one available room
// @Tags room-types
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.RoomTypeResponse}
// @Router /room-types/with-available-rooms [get]
func (ctl *RoomTypeController) GetRoomTypesWithAvailableRooms(c *gin.Context) {
	roomTypes, err := ctl.service.ListWithAvailableRooms()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, roomTypes)
}

// parseID reads the :id path parameter, replying 400 on garbage.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}
