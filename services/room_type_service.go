package services

import (
	"context"
	"strings"

	"room-management/constants"
	"room-management/dto"
	"room-management/errors"
	"room-management/models"
	"room-management/repositories"
	"room-management/services/logger"
	"room-management/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// RoomTypeService owns room type records: uniqueness of names, pricing and
// occupancy listings, and the delete/deactivate guards based on dependent
// room counts.
type RoomTypeService struct {
	repo   repositories.RoomTypeRepository
	rooms  repositories.RoomRepository
	logger logger.Logger
	cache  *redis.Client
}

// RoomTypeServiceOptions bundles the service dependencies. Cache may be nil
// to disable caching.
type RoomTypeServiceOptions struct {
	Repo   repositories.RoomTypeRepository
	Rooms  repositories.RoomRepository
	Logger logger.Logger
	Cache  *redis.Client
}

// NewRoomTypeService creates a RoomTypeService.
func NewRoomTypeService(opts RoomTypeServiceOptions) *RoomTypeService {
	return &RoomTypeService{
		repo:   opts.Repo,
		rooms:  opts.Rooms,
		logger: opts.Logger,
		cache:  opts.Cache,
	}
}

// Create persists a new room type. The name must be unique
// case-insensitively across all rows, active and inactive.
func (s *RoomTypeService) Create(req *dto.CreateRoomTypeRequest) (*dto.RoomTypeResponse, error) {
	if err := validator.ValidateRoomTypeCreate(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(req.Name, 0)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to check room type name", err)
	}
	if exists {
		return nil, errors.NewDuplicate(errors.ErrCodeDuplicateRoomTypeName,
			"Room type with name '"+req.Name+"' already exists")
	}

	roomType := models.RoomType{
		Name:         req.Name,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		MaxOccupancy: req.MaxOccupancy,
		SizeSqm:      req.SizeSqm,
		Amenities:    req.Amenities,
		ImageUrl:     req.ImageUrl,
		IsActive:     true,
	}
	if err := s.repo.Create(&roomType); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create room type", err)
	}

	s.logger.Info("created room type %d (%s)", roomType.ID, roomType.Name)
	s.invalidateCache()

	resp := dto.ToRoomTypeResponse(&roomType)
	return &resp, nil
}

// Update applies the supplied fields of a partial update. Nil fields are
// left untouched. A changed name re-runs the uniqueness check excluding
// this id.
func (s *RoomTypeService) Update(id uint, req *dto.UpdateRoomTypeRequest) (*dto.RoomTypeResponse, error) {
	if err := validator.ValidateRoomTypeUpdate(req); err != nil {
		return nil, err
	}

	roomType, err := s.findRoomType(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != roomType.Name {
		exists, err := s.repo.ExistsByName(*req.Name, id)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to check room type name", err)
		}
		if exists {
			return nil, errors.NewDuplicate(errors.ErrCodeDuplicateRoomTypeName,
				"Room type with name '"+*req.Name+"' already exists")
		}
		roomType.Name = *req.Name
	}
	if req.Description != nil {
		roomType.Description = *req.Description
	}
	if req.BasePrice != nil {
		roomType.BasePrice = *req.BasePrice
	}
	if req.MaxOccupancy != nil {
		roomType.MaxOccupancy = *req.MaxOccupancy
	}
	if req.SizeSqm != nil {
		roomType.SizeSqm = req.SizeSqm
	}
	if req.Amenities != nil {
		roomType.Amenities = *req.Amenities
	}
	if req.ImageUrl != nil {
		roomType.ImageUrl = *req.ImageUrl
	}

	if err := s.repo.Save(roomType); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update room type", err)
	}

	s.logger.Info("updated room type %d", id)
	s.invalidateCache()

	return s.toResponseWithCounts(roomType)
}

// Delete soft-deletes a room type. Blocked while any active room still
// references it.
func (s *RoomTypeService) Delete(id uint) error {
	roomType, err := s.findRoomType(id)
	if err != nil {
		return err
	}

	if err := s.checkNoActiveRooms(roomType); err != nil {
		return err
	}

	roomType.IsActive = false
	if err := s.repo.Save(roomType); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to delete room type", err)
	}

	s.logger.Info("deleted room type %d", id)
	s.invalidateCache()
	return nil
}

// ToggleActive flips the active flag. Deactivating is blocked while any
// active room still references the type.
func (s *RoomTypeService) ToggleActive(id uint) (*dto.RoomTypeResponse, error) {
	roomType, err := s.findRoomType(id)
	if err != nil {
		return nil, err
	}

	if roomType.IsActive {
		if err := s.checkNoActiveRooms(roomType); err != nil {
			return nil, err
		}
	}

	roomType.IsActive = !roomType.IsActive
	if err := s.repo.Save(roomType); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to toggle room type", err)
	}

	s.logger.Info("toggled room type %d to active=%t", id, roomType.IsActive)
	s.invalidateCache()

	return s.toResponseWithCounts(roomType)
}

// Get returns one room type with its room counts.
func (s *RoomTypeService) Get(id uint) (*dto.RoomTypeResponse, error) {
	roomType, err := s.findRoomType(id)
	if err != nil {
		return nil, err
	}
	return s.toResponseWithCounts(roomType)
}

// ListAll pages over all room types, active and inactive.
func (s *RoomTypeService) ListAll(p dto.Pagination) ([]dto.RoomTypeResponse, int64, error) {
	p.Normalize()
	roomTypes, total, err := s.repo.FindAll(p)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to list room types", err)
	}
	return dto.ToRoomTypeResponses(roomTypes), total, nil
}

// ListActive returns all active room types, served from cache when warm.
func (s *RoomTypeService) ListActive() ([]dto.RoomTypeResponse, error) {
	ctx := context.Background()

	if s.cache != nil {
		var cached []dto.RoomTypeResponse
		if err := GetFromRedis(ctx, s.cache, constants.CacheKeyActiveRoomTypes, &cached); err == nil && len(cached) > 0 {
			s.logger.Debug("active room types served from cache")
			return cached, nil
		}
	}

	roomTypes, err := s.repo.FindActive()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list active room types", err)
	}
	responses := dto.ToRoomTypeResponses(roomTypes)

	if s.cache != nil {
		if err := SetToRedis(ctx, s.cache, constants.CacheKeyActiveRoomTypes, responses,
			constants.CacheTTLActiveRoomTypes); err != nil {
			s.logger.Error("failed to cache active room types: %v", err)
		}
	}
	return responses, nil
}

// Search matches term case-insensitively against name or description of
// active types. When nothing matches, a closest-match suggestion over the
// known type names is returned alongside the empty result.
func (s *RoomTypeService) Search(term string, p dto.Pagination) (*dto.RoomTypeSearchResponse, int64, error) {
	p.Normalize()
	roomTypes, total, err := s.repo.Search(term, p)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to search room types", err)
	}

	result := &dto.RoomTypeSearchResponse{Results: dto.ToRoomTypeResponses(roomTypes)}
	if total == 0 && strings.TrimSpace(term) != "" {
		result.Suggestion = s.suggestName(term)
	}
	return result, total, nil
}

// ListByPriceRange returns active types priced within [min, max]. A min
// greater than max is rejected before touching the store.
func (s *RoomTypeService) ListByPriceRange(min, max float64) ([]dto.RoomTypeResponse, error) {
	if min > max {
		return nil, errors.NewBusinessRule(errors.ErrCodeInvalidPriceRange,
			"Minimum price cannot be greater than maximum price")
	}

	roomTypes, err := s.repo.FindByPriceRange(min, max)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list room types by price", err)
	}
	return dto.ToRoomTypeResponses(roomTypes), nil
}

// ListByMinOccupancy returns active types sleeping at least n guests.
func (s *RoomTypeService) ListByMinOccupancy(n int) ([]dto.RoomTypeResponse, error) {
	roomTypes, err := s.repo.FindByMinOccupancy(n)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list room types by occupancy", err)
	}
	return dto.ToRoomTypeResponses(roomTypes), nil
}

// ListWithAvailableRooms returns active types with at least one active
// AVAILABLE room.
func (s *RoomTypeService) ListWithAvailableRooms() ([]dto.RoomTypeResponse, error) {
	roomTypes, err := s.repo.FindWithAvailableRooms()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list room types with available rooms", err)
	}
	return dto.ToRoomTypeResponses(roomTypes), nil
}

func (s *RoomTypeService) findRoomType(id uint) (*models.RoomType, error) {
	roomType, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room type", err)
	}
	if roomType == nil {
		return nil, errors.NewNotFound(errors.ErrCodeRoomTypeNotFound, "Room type", id)
	}
	return roomType, nil
}

// checkNoActiveRooms blocks delete/deactivate while active rooms reference
// the type.
func (s *RoomTypeService) checkNoActiveRooms(roomType *models.RoomType) error {
	activeRooms, err := s.rooms.CountByType(roomType.ID, true)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to count rooms", err)
	}
	roomType.ActiveRoomCount = activeRooms
	if !roomType.CanBeDeleted() {
		return errors.NewBusinessRule(errors.ErrCodeRoomTypeHasRooms,
			"Cannot delete or deactivate room type with active rooms. Please deactivate or reassign all rooms first.")
	}
	return nil
}

// toResponseWithCounts recomputes the derived room counts on read.
func (s *RoomTypeService) toResponseWithCounts(roomType *models.RoomType) (*dto.RoomTypeResponse, error) {
	total, err := s.rooms.CountByType(roomType.ID, false)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to count rooms", err)
	}
	active, err := s.rooms.CountByType(roomType.ID, true)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to count rooms", err)
	}

	roomType.RoomCount = total
	roomType.ActiveRoomCount = active
	resp := dto.ToRoomTypeResponse(roomType)
	return &resp, nil
}

// suggestName finds the closest known active type name to a term that
// matched nothing.
func (s *RoomTypeService) suggestName(term string) string {
	names, err := s.repo.ActiveNames()
	if err != nil || len(names) == 0 {
		return ""
	}

	normalized := make([]string, 0, len(names))
	original := make(map[string]string, len(names))
	for _, name := range names {
		key := unidecode.Unidecode(strings.ToLower(name))
		normalized = append(normalized, key)
		original[key] = name
	}

	query := unidecode.Unidecode(strings.ToLower(term))
	cm := closestmatch.New(normalized, []int{2, 3})
	best := cm.Closest(query)
	if best == "" {
		return ""
	}

	// Only suggest names within half the name length; anything farther is
	// an unrelated term, not a typo.
	distance := levenshtein.DistanceForStrings([]rune(query), []rune(best), levenshtein.DefaultOptions)
	if distance*2 > len([]rune(best)) {
		return ""
	}
	return original[best]
}

func (s *RoomTypeService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := DeleteFromRedis(context.Background(), s.cache, constants.CacheKeyActiveRoomTypes); err != nil {
		s.logger.Error("failed to invalidate room type cache: %v", err)
	}
}
