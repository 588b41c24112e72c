package services

import (
	"testing"

	"room-management/dto"
	"room-management/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardTypeRequest() *dto.CreateRoomTypeRequest {
	return &dto.CreateRoomTypeRequest{
		Name:         "Deluxe",
		Description:  "Spacious room with a king bed",
		BasePrice:    150.00,
		MaxOccupancy: 2,
	}
}

func TestCreateRoomType(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	created, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Deluxe", created.Name)
	assert.True(t, created.IsActive)
	assert.Equal(t, int64(0), created.RoomCount)
}

func TestCreateRoomTypeDuplicateNameCaseInsensitive(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	_, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	req := standardTypeRequest()
	req.Name = "DELUXE"
	_, err = typeService.Create(req)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicate(err))
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateRoomTypeDuplicateNameSurvivesSoftDelete(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	created, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)
	require.NoError(t, typeService.Delete(created.ID))

	_, err = typeService.Create(standardTypeRequest())
	require.Error(t, err)
	assert.True(t, errors.IsDuplicate(err))
}

func TestCreateRoomTypeValidation(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	req := standardTypeRequest()
	req.Name = "   "
	_, err := typeService.Create(req)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	req = standardTypeRequest()
	req.BasePrice = 99.999
	_, err = typeService.Create(req)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "2 decimal places")

	req = standardTypeRequest()
	req.MaxOccupancy = 11
	_, err = typeService.Create(req)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestUpdateRoomTypePartial(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	created, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	newPrice := 175.50
	updated, err := typeService.Update(created.ID, &dto.UpdateRoomTypeRequest{BasePrice: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 175.50, updated.BasePrice)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.MaxOccupancy, updated.MaxOccupancy)
}

func TestUpdateRoomTypeEmptyRequestAdvancesUpdatedAt(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	created, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	updated, err := typeService.Update(created.ID, &dto.UpdateRoomTypeRequest{})
	require.NoError(t, err)

	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.BasePrice, updated.BasePrice)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateRoomTypeDuplicateName(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	_, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	second := standardTypeRequest()
	second.Name = "Suite"
	createdSecond, err := typeService.Create(second)
	require.NoError(t, err)

	name := "deluxe"
	_, err = typeService.Update(createdSecond.ID, &dto.UpdateRoomTypeRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.IsDuplicate(err))
}

func TestUpdateRoomTypeNotFound(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	name := "Deluxe"
	_, err := typeService.Update(42, &dto.UpdateRoomTypeRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDeleteRoomTypeBlockedByActiveRooms(t *testing.T) {
	typeService, roomService, _, _, _ := newTestServices()

	created, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	room, err := roomService.Create(&dto.CreateRoomRequest{
		RoomNumber: "101",
		RoomTypeID: created.ID,
		Floor:      1,
	})
	require.NoError(t, err)

	err = typeService.Delete(created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsBusinessRule(err))

	// Deactivating the dependent room unblocks the delete.
	_, err = roomService.ToggleActive(room.ID)
	require.NoError(t, err)
	require.NoError(t, typeService.Delete(created.ID))

	fetched, err := typeService.Get(created.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)
}

func TestToggleRoomType(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	created, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	toggled, err := typeService.ToggleActive(created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = typeService.ToggleActive(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestGetRoomTypeReportsRoomCounts(t *testing.T) {
	typeService, roomService, _, _, _ := newTestServices()

	created, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	first, err := roomService.Create(&dto.CreateRoomRequest{
		RoomNumber: "101", RoomTypeID: created.ID, Floor: 1,
	})
	require.NoError(t, err)
	_, err = roomService.Create(&dto.CreateRoomRequest{
		RoomNumber: "102", RoomTypeID: created.ID, Floor: 1,
	})
	require.NoError(t, err)

	require.NoError(t, roomService.Delete(first.ID))

	fetched, err := typeService.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetched.RoomCount)
	assert.Equal(t, int64(1), fetched.ActiveRoomCount)
}

func TestListActiveRoomTypes(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	_, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	second := standardTypeRequest()
	second.Name = "Suite"
	createdSecond, err := typeService.Create(second)
	require.NoError(t, err)
	require.NoError(t, typeService.Delete(createdSecond.ID))

	active, err := typeService.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Deluxe", active[0].Name)
}

func TestSearchRoomTypesSuggestion(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	_, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	result, total, err := typeService.Search("Delux", dto.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, result.Suggestion)

	result, total, err = typeService.Search("Deluxx", dto.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, "Deluxe", result.Suggestion)

	// An unrelated term of similar length gets no suggestion.
	result, total, err = typeService.Search("zzzzzz", dto.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, result.Suggestion)
}

func TestListByPriceRange(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	_, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	suite := standardTypeRequest()
	suite.Name = "Suite"
	suite.BasePrice = 400
	_, err = typeService.Create(suite)
	require.NoError(t, err)

	inRange, err := typeService.ListByPriceRange(100, 200)
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, "Deluxe", inRange[0].Name)

	_, err = typeService.ListByPriceRange(200, 100)
	require.Error(t, err)
	assert.True(t, errors.IsBusinessRule(err))
	assert.Contains(t, err.Error(), "Minimum price cannot be greater than maximum price")
}

func TestListWithAvailableRooms(t *testing.T) {
	typeService, roomService, _, _, _ := newTestServices()

	withAvailable, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	occupied := standardTypeRequest()
	occupied.Name = "Suite"
	withOccupiedOnly, err := typeService.Create(occupied)
	require.NoError(t, err)

	empty := standardTypeRequest()
	empty.Name = "Family"
	_, err = typeService.Create(empty)
	require.NoError(t, err)

	_, err = roomService.Create(&dto.CreateRoomRequest{
		RoomNumber: "101", RoomTypeID: withAvailable.ID, Floor: 1,
	})
	require.NoError(t, err)
	suiteRoom, err := roomService.Create(&dto.CreateRoomRequest{
		RoomNumber: "201", RoomTypeID: withOccupiedOnly.ID, Floor: 2,
	})
	require.NoError(t, err)

	_, err = roomService.UpdateStatus(suiteRoom.ID, &dto.RoomStatusRequest{Status: "OCCUPIED"})
	require.NoError(t, err)

	// Only the type whose room is still AVAILABLE qualifies.
	types, err := typeService.ListWithAvailableRooms()
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Deluxe", types[0].Name)

	// Deactivating that room disqualifies its type too.
	deluxeRoom, err := roomService.GetByNumber("101")
	require.NoError(t, err)
	_, err = roomService.ToggleActive(deluxeRoom.ID)
	require.NoError(t, err)

	types, err = typeService.ListWithAvailableRooms()
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestListByMinOccupancy(t *testing.T) {
	typeService, _, _, _, _ := newTestServices()

	_, err := typeService.Create(standardTypeRequest())
	require.NoError(t, err)

	family := standardTypeRequest()
	family.Name = "Family"
	family.MaxOccupancy = 5
	_, err = typeService.Create(family)
	require.NoError(t, err)

	roomy, err := typeService.ListByMinOccupancy(4)
	require.NoError(t, err)
	require.Len(t, roomy, 1)
	assert.Equal(t, "Family", roomy[0].Name)
}
