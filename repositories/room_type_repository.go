package repositories

import (
	"errors"
	"strings"

	"room-management/dto"
	"room-management/models"

	"gorm.io/gorm"
)

// RoomTypeRepository is the persistence boundary for room types. Lookups
// return (nil, nil) when the id does not exist. Each method states whether
// it scans all rows or active rows only.
type RoomTypeRepository interface {
	// FindByID scans all rows.
	FindByID(id uint) (*models.RoomType, error)
	// ExistsByName checks name uniqueness case-insensitively across all
	// rows, active and inactive, excluding excludeID when non-zero.
	ExistsByName(name string, excludeID uint) (bool, error)
	// FindAll pages over all rows.
	FindAll(p dto.Pagination) ([]models.RoomType, int64, error)
	// FindActive returns active rows only.
	FindActive() ([]models.RoomType, error)
	// Search matches term against name or description, case-insensitively,
	// over active rows only.
	Search(term string, p dto.Pagination) ([]models.RoomType, int64, error)
	// FindByPriceRange returns active rows with base price in [min, max].
	FindByPriceRange(min, max float64) ([]models.RoomType, error)
	// FindByMinOccupancy returns active rows with maxOccupancy >= n.
	FindByMinOccupancy(n int) ([]models.RoomType, error)
	// FindWithAvailableRooms returns active rows that have at least one
	// active AVAILABLE room.
	FindWithAvailableRooms() ([]models.RoomType, error)
	// ActiveNames returns the names of all active rows.
	ActiveNames() ([]string, error)
	Create(roomType *models.RoomType) error
	Save(roomType *models.RoomType) error
}

type gormRoomTypeRepository struct {
	db *gorm.DB
}

// NewRoomTypeRepository creates the GORM-backed repository.
func NewRoomTypeRepository(db *gorm.DB) RoomTypeRepository {
	return &gormRoomTypeRepository{db: db}
}

func (r *gormRoomTypeRepository) FindByID(id uint) (*models.RoomType, error) {
	var roomType models.RoomType
	err := r.db.First(&roomType, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *gormRoomTypeRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	query := r.db.Model(&models.RoomType{}).Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRoomTypeRepository) FindAll(p dto.Pagination) ([]models.RoomType, int64, error) {
	var total int64
	if err := r.db.Model(&models.RoomType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var roomTypes []models.RoomType
	err := r.db.Order(orderClause(p.Sort)).
		Offset(p.Offset()).Limit(p.Limit).
		Find(&roomTypes).Error
	return roomTypes, total, err
}

func (r *gormRoomTypeRepository) FindActive() ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	err := r.db.Where("is_active = ?", true).Find(&roomTypes).Error
	return roomTypes, err
}

func (r *gormRoomTypeRepository) Search(term string, p dto.Pagination) ([]models.RoomType, int64, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	base := r.db.Model(&models.RoomType{}).
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var roomTypes []models.RoomType
	err := base.Order(orderClause(p.Sort)).
		Offset(p.Offset()).Limit(p.Limit).
		Find(&roomTypes).Error
	return roomTypes, total, err
}

func (r *gormRoomTypeRepository) FindByPriceRange(min, max float64) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	err := r.db.Where("is_active = ?", true).
		Where("base_price BETWEEN ? AND ?", min, max).
		Find(&roomTypes).Error
	return roomTypes, err
}

func (r *gormRoomTypeRepository) FindByMinOccupancy(n int) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	err := r.db.Where("is_active = ?", true).
		Where("max_occupancy >= ?", n).
		Find(&roomTypes).Error
	return roomTypes, err
}

func (r *gormRoomTypeRepository) FindWithAvailableRooms() ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	err := r.db.
		Joins("JOIN rooms ON rooms.room_type_id = room_types.id").
		Where("room_types.is_active = ?", true).
		Where("rooms.status = ? AND rooms.is_active = ?", models.StatusAvailable, true).
		Distinct("room_types.*").
		Find(&roomTypes).Error
	return roomTypes, err
}

func (r *gormRoomTypeRepository) ActiveNames() ([]string, error) {
	var names []string
	err := r.db.Model(&models.RoomType{}).
		Where("is_active = ?", true).
		Pluck("name", &names).Error
	return names, err
}

func (r *gormRoomTypeRepository) Create(roomType *models.RoomType) error {
	return r.db.Create(roomType).Error
}

func (r *gormRoomTypeRepository) Save(roomType *models.RoomType) error {
	return r.db.Save(roomType).Error
}

// orderClause passes the caller's sort through, defaulting to id.
func orderClause(sort string) string {
	if sort == "" {
		return "id"
	}
	return sort
}
