package controllers

import (
	"strconv"

	"room-management/dto"
	"room-management/response"
	"room-management/services"

	"github.com/gin-gonic/gin"
)

// RoomController exposes the room operations over HTTP.
type RoomController struct {
	service *services.RoomService
}

// NewRoomController creates a RoomController.
func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{service: service}
}

// CreateRoom godoc
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room payload"
// @Success 201 {object} response.Response{data=dto.RoomResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rooms [post]
func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := ctl.service.Create(&req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, room)
}

// GetRooms godoc
// @Summary List all rooms with pagination
// @Tags rooms
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort query string false "Sort clause"
// @Success 200 {object} response.Response{data=[]dto.RoomResponse}
// @Router /rooms [get]
func (ctl *RoomController) GetRooms(c *gin.Context) {
	var p dto.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	p.Normalize()

	rooms, total, err := ctl.service.ListAll(p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithPagination(c, rooms, p.Page, p.Limit, total)
}

// GetActiveRooms godoc
// @Summary List active rooms
// @Tags rooms
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.RoomResponse}
// @Router /rooms/active [get]
func (ctl *RoomController) GetActiveRooms(c *gin.Context) {
	rooms, err := ctl.service.ListActive()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, rooms)
}

// GetRoomDetail godoc
// @Summary Get one room joined with its type data
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Response{data=dto.RoomResponse}
// @Failure 404 {object} response.Response
// @Router /rooms/{id} [get]
func (ctl *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := ctl.service.Get(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, room)
}

// GetRoomByNumber godoc
// @Summary Get one room by its room number
// @Tags rooms
// @Produce json
// @Param roomNumber path string true "Room number"
// @Success 200 {object} response.Response{data=dto.RoomResponse}
// @Failure 404 {object} response.Response
// @Router /rooms/number/{roomNumber} [get]
func (ctl *RoomController) GetRoomByNumber(c *gin.Context) {
	room, err := ctl.service.GetByNumber(c.Param("roomNumber"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, room)
}

// UpdateRoom godoc
// @Summary Partially update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Fields to update; omitted fields stay unchanged"
// @Success 200 {object} response.Response{data=dto.RoomResponse}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rooms/{id} [put]
func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := ctl.service.Update(id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, room)
}

// UpdateRoomStatus godoc
// @Summary Change the status of a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.RoomStatusRequest true "New status and optional notes"
// @Success 200 {object} response.Response{data=dto.RoomResponse}
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rooms/{id}/status [patch]
func (ctl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := ctl.service.UpdateStatus(id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, room)
}

// DeleteRoom godoc
// @Summary Soft-delete a room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rooms/{id} [delete]
func (ctl *RoomController) DeleteRoom(c *gin.Context) {
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

// ToggleRoom godoc
// @Summary Flip the active flag of a room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Response{data=dto.RoomResponse}
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rooms/{id}/toggle [patch]
func (ctl *RoomController) ToggleRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := ctl.service.ToggleActive(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, room)
}

// SearchRooms godoc
// @Summary Search rooms with a composite filter
// @Tags rooms
// @Produce json
// @Param status query string false "Room status"
// @Param roomTypeId query int false "Room type ID"
// @Param floor query int false "Floor"
// @Param viewType query string false "View type substring"
// @Param hasBalcony query bool false "Has balcony"
// @Param minPrice query number false "Minimum type base price"
// @Param maxPrice query number false "Maximum type base price"
// @Param isActive query bool false "Active flag"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response{data=[]dto.RoomResponse}
// @Router /rooms/search [get]
func (ctl *RoomController) SearchRooms(c *gin.Context) {
	var filters dto.RoomFilterRequest
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	rooms, total, err := ctl.service.Search(filters)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithPagination(c, rooms, filters.Page, filters.Limit, total)
}

// GetAvailableRooms godoc
// @Summary List active available rooms
// @Tags rooms
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.RoomResponse}
// @Router /rooms/available [get]
func (ctl *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := ctl.service.ListAvailable()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, rooms)
}

// GetAvailableRoomsByType godoc
// @Summary List active available rooms of one type
// @Tags rooms
// @Produce json
// @Param typeId path int true "Room type ID"
// @Success 200 {object} response.Response{data=[]dto.RoomResponse}
// @Failure 404 {object} response.Response
// @Router /rooms/available/type/{typeId} [get]
func (ctl *RoomController) GetAvailableRoomsByType(c *gin.Context) {
	typeID, err := strconv.ParseUint(c.Param("typeId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid room type ID")
		return
	}

	rooms, svcErr := ctl.service.ListAvailableByType(uint(typeID))
	if svcErr != nil {
		response.HandleError(c, svcErr)
		return
	}
	response.Success(c, rooms)
}

// GetRoomsByStatus godoc
// @Summary List active rooms with a given status
// @Tags rooms
// @Produce json
// @Param status path string true "Room status" Enums(AVAILABLE, OCCUPIED, MAINTENANCE, OUT_OF_ORDER)
// @Success 200 {object} response.Response{data=[]dto.RoomResponse}
// @Router /rooms/status/{status} [get]
func (ctl *RoomController) GetRoomsByStatus(c *gin.Context) {
	rooms, err := ctl.service.ListByStatus(c.Param("status"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, rooms)
}

// GetRoomsByFloor godoc
// @Summary List active rooms on a given floor
// @Tags rooms
// @Produce json
// @Param floor path int true "Floor"
// @Success 200 {object} response.Response{data=[]dto.RoomResponse}
// @Router /rooms/floor/{floor} [get]
func (ctl *RoomController) GetRoomsByFloor(c *gin.Context) {
	floor, err := strconv.Atoi(c.Param("floor"))
	if err != nil {
		response.BadRequest(c, "Invalid floor")
		return
	}

	rooms, svcErr := ctl.service.ListByFloor(floor)
	if svcErr != nil {
		response.HandleError(c, svcErr)
		return
	}
	response.Success(c, rooms)
}

// GetRoomsNeedingMaintenance godoc
// @Summary List active rooms overdue for maintenance
// @Tags rooms
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.RoomResponse}
// @Router /rooms/maintenance/needed [get]
func (ctl *RoomController) GetRoomsNeedingMaintenance(c *gin.Context) {
	rooms, err := ctl.service.ListNeedingMaintenance()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, rooms)
}

// GetRoomStatistics godoc
// @Summary Room counts per status, occupancy rate and type distribution
// @Tags rooms
// @Produce json
// @Success 200 {object} response.Response{data=dto.RoomStatisticsResponse}
// @Router /rooms/statistics [get]
func (ctl *RoomController) GetRoomStatistics(c *gin.Context) {
	stats, err := ctl.service.Statistics()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, stats)
}
