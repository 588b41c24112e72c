package services

import (
	"context"
	"fmt"
	"time"

	"room-management/constants"
	"room-management/dto"
	"room-management/errors"
	"room-management/models"
	"room-management/repositories"
	"room-management/services/logger"
	"room-management/validator"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// maintenanceInterval is how long a room may go without maintenance before
// it shows up in the overdue listing.
const maintenanceInterval = 30 * 24 * time.Hour

// Broadcaster pushes status-change events to connected back-office
// dashboards. *melody.Melody satisfies it.
type Broadcaster interface {
	Broadcast(msg []byte) error
}

// RoomService owns room records: number uniqueness, the status state
// machine, soft-delete guards and the statistics report.
type RoomService struct {
	repo        repositories.RoomRepository
	roomTypes   repositories.RoomTypeRepository
	logger      logger.Logger
	cache       *redis.Client
	broadcaster Broadcaster
}

// RoomServiceOptions bundles the service dependencies. Cache and
// Broadcaster may be nil.
type RoomServiceOptions struct {
	Repo        repositories.RoomRepository
	RoomTypes   repositories.RoomTypeRepository
	Logger      logger.Logger
	Cache       *redis.Client
	Broadcaster Broadcaster
}

// NewRoomService creates a RoomService.
func NewRoomService(opts RoomServiceOptions) *RoomService {
	return &RoomService{
		repo:        opts.Repo,
		roomTypes:   opts.RoomTypes,
		logger:      opts.Logger,
		cache:       opts.Cache,
		broadcaster: opts.Broadcaster,
	}
}

// Create persists a new room. The number must be unique across all rows,
// active and inactive, and the referenced type must exist and be active.
// New rooms always start AVAILABLE regardless of input.
func (s *RoomService) Create(req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if err := validator.ValidateRoomCreate(req); err != nil {
		return nil, err
	}

	if err := s.checkUniqueNumber(req.RoomNumber, 0); err != nil {
		return nil, err
	}
	roomType, err := s.checkRoomTypeAssignable(req.RoomTypeID)
	if err != nil {
		return nil, err
	}

	room := models.Room{
		RoomNumber:   req.RoomNumber,
		RoomTypeID:   req.RoomTypeID,
		Floor:        req.Floor,
		Status:       models.StatusAvailable,
		ViewType:     req.ViewType,
		HasBalcony:   req.HasBalcony,
		WifiPassword: req.WifiPassword,
		Notes:        req.Notes,
		IsActive:     true,
	}
	if err := s.repo.Create(&room); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create room", err)
	}
	room.RoomType = *roomType

	s.logger.Info("created room %d (%s)", room.ID, room.RoomNumber)
	s.invalidateStatistics()

	resp := dto.ToRoomResponse(&room)
	return &resp, nil
}

// Update applies the supplied fields of a partial update. Nil fields are
// left untouched. A changed number re-runs the uniqueness check excluding
// this id; a changed type reference is re-validated for existence and
// activity.
func (s *RoomService) Update(id uint, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	if err := validator.ValidateRoomUpdate(req); err != nil {
		return nil, err
	}

	room, err := s.findRoom(id)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil && *req.RoomNumber != room.RoomNumber {
		if err := s.checkUniqueNumber(*req.RoomNumber, id); err != nil {
			return nil, err
		}
		room.RoomNumber = *req.RoomNumber
	}
	if req.RoomTypeID != nil && *req.RoomTypeID != room.RoomTypeID {
		roomType, err := s.checkRoomTypeAssignable(*req.RoomTypeID)
		if err != nil {
			return nil, err
		}
		room.RoomTypeID = *req.RoomTypeID
		room.RoomType = *roomType
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.ViewType != nil {
		room.ViewType = *req.ViewType
	}
	if req.HasBalcony != nil {
		room.HasBalcony = *req.HasBalcony
	}
	if req.WifiPassword != nil {
		room.WifiPassword = *req.WifiPassword
	}
	if req.Notes != nil {
		room.Notes = *req.Notes
	}

	if err := s.repo.Save(room); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update room", err)
	}

	s.logger.Info("updated room %d", id)
	s.invalidateStatistics()

	resp := dto.ToRoomResponse(room)
	return &resp, nil
}

// UpdateStatus drives the status state machine. The transition is
// validated before any mutation; on rejection no fields change. Non-blank
// notes overwrite the stored notes, and a MAINTENANCE transition stamps
// lastMaintenance with the call time.
func (s *RoomService) UpdateStatus(id uint, req *dto.RoomStatusRequest) (*dto.RoomResponse, error) {
	if err := validator.ValidateStatusNotes(req.Notes); err != nil {
		return nil, err
	}
	newStatus, err := models.ParseRoomStatus(req.Status)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, err.Error(), nil)
	}

	room, err := s.findRoom(id)
	if err != nil {
		return nil, err
	}

	previous := room.Status
	if !previous.CanTransitionTo(newStatus) {
		return nil, errors.NewBusinessRule(errors.ErrCodeInvalidTransition,
			fmt.Sprintf("Invalid status transition from %s to %s", previous, newStatus))
	}

	room.ApplyStatus(newStatus, req.Notes)
	if err := s.repo.Save(room); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update room status", err)
	}

	s.logger.Info("room %d status %s -> %s", id, previous, newStatus)
	s.invalidateStatistics()
	s.broadcastStatusChange(room, previous, newStatus)

	resp := dto.ToRoomResponse(room)
	return &resp, nil
}

// Delete soft-deletes a room. Blocked while the room is OCCUPIED.
func (s *RoomService) Delete(id uint) error {
	room, err := s.findRoom(id)
	if err != nil {
		return err
	}

	if room.IsOccupied() {
		return errors.NewBusinessRule(errors.ErrCodeRoomOccupied,
			"Cannot delete occupied room. Please check out guests first.")
	}

	room.IsActive = false
	if err := s.repo.Save(room); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to delete room", err)
	}

	s.logger.Info("deleted room %d", id)
	s.invalidateStatistics()
	return nil
}

// ToggleActive flips the active flag. Deactivating an OCCUPIED room is
// blocked.
func (s *RoomService) ToggleActive(id uint) (*dto.RoomResponse, error) {
	room, err := s.findRoom(id)
	if err != nil {
		return nil, err
	}

	if room.IsActive && room.IsOccupied() {
		return nil, errors.NewBusinessRule(errors.ErrCodeRoomOccupied,
			"Cannot deactivate occupied room. Please check out guests first.")
	}

	room.IsActive = !room.IsActive
	if err := s.repo.Save(room); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to toggle room", err)
	}

	s.logger.Info("toggled room %d to active=%t", id, room.IsActive)
	s.invalidateStatistics()

	resp := dto.ToRoomResponse(room)
	return &resp, nil
}

// Get returns one room joined with its type data.
func (s *RoomService) Get(id uint) (*dto.RoomResponse, error) {
	room, err := s.findRoom(id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToRoomResponse(room)
	return &resp, nil
}

// GetByNumber looks a room up by its number.
func (s *RoomService) GetByNumber(roomNumber string) (*dto.RoomResponse, error) {
	room, err := s.repo.FindByNumber(roomNumber)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotFound,
			"Room not found with number: "+roomNumber, nil)
	}
	resp := dto.ToRoomResponse(room)
	return &resp, nil
}

// ListAll pages over all rooms, active and inactive.
func (s *RoomService) ListAll(p dto.Pagination) ([]dto.RoomResponse, int64, error) {
	p.Normalize()
	rooms, total, err := s.repo.FindAll(p)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to list rooms", err)
	}
	return dto.ToRoomResponses(rooms), total, nil
}

// ListActive returns all active rooms.
func (s *RoomService) ListActive() ([]dto.RoomResponse, error) {
	rooms, err := s.repo.FindActive()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list rooms", err)
	}
	return dto.ToRoomResponses(rooms), nil
}

// Search applies the composite filter; every supplied field is ANDed and
// absent fields are unconstrained.
func (s *RoomService) Search(filters dto.RoomFilterRequest) ([]dto.RoomResponse, int64, error) {
	if filters.Status != nil {
		parsed, err := models.ParseRoomStatus(*filters.Status)
		if err != nil {
			return nil, 0, errors.NewAppError(errors.ErrCodeInvalidFormat, err.Error(), nil)
		}
		normalized := string(parsed)
		filters.Status = &normalized
	}

	filters.Normalize()
	rooms, total, err := s.repo.Search(filters)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to search rooms", err)
	}
	return dto.ToRoomResponses(rooms), total, nil
}

// ListAvailable returns active AVAILABLE rooms.
func (s *RoomService) ListAvailable() ([]dto.RoomResponse, error) {
	rooms, err := s.repo.FindAvailable()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list available rooms", err)
	}
	return dto.ToRoomResponses(rooms), nil
}

// ListAvailableByType returns active AVAILABLE rooms of one type, after
// validating the type exists.
func (s *RoomService) ListAvailableByType(roomTypeID uint) ([]dto.RoomResponse, error) {
	roomType, err := s.roomTypes.FindByID(roomTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room type", err)
	}
	if roomType == nil {
		return nil, errors.NewNotFound(errors.ErrCodeRoomTypeNotFound, "Room type", roomTypeID)
	}

	rooms, err := s.repo.FindAvailableByType(roomTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list available rooms", err)
	}
	return dto.ToRoomResponses(rooms), nil
}

// ListByStatus returns active rooms with the given status.
func (s *RoomService) ListByStatus(status string) ([]dto.RoomResponse, error) {
	parsed, err := models.ParseRoomStatus(status)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, err.Error(), nil)
	}

	rooms, err := s.repo.FindByStatus(parsed)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list rooms by status", err)
	}
	return dto.ToRoomResponses(rooms), nil
}

// ListByFloor returns active rooms on the given floor.
func (s *RoomService) ListByFloor(floor int) ([]dto.RoomResponse, error) {
	rooms, err := s.repo.FindByFloor(floor)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list rooms by floor", err)
	}
	return dto.ToRoomResponses(rooms), nil
}

// ListNeedingMaintenance returns active rooms whose last maintenance is
// missing or older than 30 days from now.
func (s *RoomService) ListNeedingMaintenance() ([]dto.RoomResponse, error) {
	cutoff := time.Now().Add(-maintenanceInterval)
	rooms, err := s.repo.FindNeedingMaintenance(cutoff)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list rooms needing maintenance", err)
	}
	return dto.ToRoomResponses(rooms), nil
}

// Statistics reports counts per status, the occupancy rate and the
// per-type distribution over active rooms. All values are computed on read
// from count queries; an empty room set yields zeros throughout.
func (s *RoomService) Statistics() (*dto.RoomStatisticsResponse, error) {
	ctx := context.Background()

	if s.cache != nil {
		var cached dto.RoomStatisticsResponse
		if err := GetFromRedis(ctx, s.cache, constants.CacheKeyRoomStatistics, &cached); err == nil && cached.TotalRooms > 0 {
			s.logger.Debug("room statistics served from cache")
			return &cached, nil
		}
	}

	total, err := s.repo.CountActive()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to count rooms", err)
	}

	stats := dto.RoomStatisticsResponse{
		TotalRooms:   total,
		Distribution: []dto.RoomTypeDistribution{},
	}

	counts := map[models.RoomStatus]*int64{
		models.StatusAvailable:   &stats.AvailableRooms,
		models.StatusOccupied:    &stats.OccupiedRooms,
		models.StatusMaintenance: &stats.MaintenanceRooms,
		models.StatusOutOfOrder:  &stats.OutOfOrderRooms,
	}
	for status, target := range counts {
		count, err := s.repo.CountByStatus(status)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to count rooms", err)
		}
		*target = count
	}

	if total > 0 {
		stats.OccupancyRate = float64(stats.OccupiedRooms) * 100 / float64(total)
	}

	grouped, err := s.repo.CountGroupedByType()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to count rooms by type", err)
	}
	for _, row := range grouped {
		entry := dto.RoomTypeDistribution{
			TypeName: row.TypeName,
			Count:    row.Count,
		}
		if total > 0 {
			entry.Percentage = float64(row.Count) * 100 / float64(total)
		}
		stats.Distribution = append(stats.Distribution, entry)
	}

	if s.cache != nil {
		if err := SetToRedis(ctx, s.cache, constants.CacheKeyRoomStatistics, stats,
			constants.CacheTTLRoomStatistics); err != nil {
			s.logger.Error("failed to cache room statistics: %v", err)
		}
	}
	return &stats, nil
}

func (s *RoomService) findRoom(id uint) (*models.Room, error) {
	room, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room", err)
	}
	if room == nil {
		return nil, errors.NewNotFound(errors.ErrCodeRoomNotFound, "Room", id)
	}
	return room, nil
}

func (s *RoomService) checkUniqueNumber(roomNumber string, excludeID uint) error {
	exists, err := s.repo.ExistsByNumber(roomNumber, excludeID)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to check room number", err)
	}
	if exists {
		return errors.NewDuplicate(errors.ErrCodeDuplicateRoomNumber,
			"Room with number '"+roomNumber+"' already exists")
	}
	return nil
}

// checkRoomTypeAssignable validates the reference at create/update time.
// The reference is not continuously re-enforced afterwards.
func (s *RoomService) checkRoomTypeAssignable(roomTypeID uint) (*models.RoomType, error) {
	roomType, err := s.roomTypes.FindByID(roomTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room type", err)
	}
	if roomType == nil {
		return nil, errors.NewNotFound(errors.ErrCodeRoomTypeNotFound, "Room type", roomTypeID)
	}
	if !roomType.IsActive {
		return nil, errors.NewBusinessRule(errors.ErrCodeInactiveRoomType,
			"Cannot assign room to inactive room type")
	}
	return roomType, nil
}

func (s *RoomService) broadcastStatusChange(room *models.Room, from, to models.RoomStatus) {
	if s.broadcaster == nil {
		return
	}

	event := dto.StatusChangeEvent{
		RoomID:     room.ID,
		RoomNumber: room.RoomNumber,
		From:       string(from),
		To:         string(to),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal status change event: %v", err)
		return
	}
	if err := s.broadcaster.Broadcast(payload); err != nil {
		s.logger.Error("failed to broadcast status change: %v", err)
	}
}

func (s *RoomService) invalidateStatistics() {
	if s.cache == nil {
		return
	}
	if err := DeleteFromRedis(context.Background(), s.cache, constants.CacheKeyRoomStatistics); err != nil {
		s.logger.Error("failed to invalidate statistics cache: %v", err)
	}
}
