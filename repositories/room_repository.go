package repositories

import (
	"errors"
	"strings"
	"time"

	"room-management/dto"
	"room-management/models"

	"gorm.io/gorm"
)

// TypeCount is one row of the grouped room-count-per-type query.
type TypeCount struct {
	TypeID   uint
	TypeName string
	Count    int64
}

// RoomRepository is the persistence boundary for rooms. Lookups return
// (nil, nil) when the row does not exist. Uniqueness checks scan all rows;
// listings are restricted to active rows unless stated otherwise.
type RoomRepository interface {
	// FindByID scans all rows and loads the type relation.
	FindByID(id uint) (*models.Room, error)
	// FindByNumber scans all rows and loads the type relation.
	FindByNumber(roomNumber string) (*models.Room, error)
	// ExistsByNumber checks room number uniqueness across all rows, active
	// and inactive, excluding excludeID when non-zero.
	ExistsByNumber(roomNumber string, excludeID uint) (bool, error)
	// FindAll pages over all rows.
	FindAll(p dto.Pagination) ([]models.Room, int64, error)
	// FindActive returns active rows only.
	FindActive() ([]models.Room, error)
	// FindByStatus returns active rows with the given status.
	FindByStatus(status models.RoomStatus) ([]models.Room, error)
	// FindByFloor returns active rows on the given floor.
	FindByFloor(floor int) ([]models.Room, error)
	// FindAvailable returns active AVAILABLE rows.
	FindAvailable() ([]models.Room, error)
	// FindAvailableByType returns active AVAILABLE rows of one type.
	FindAvailableByType(roomTypeID uint) ([]models.Room, error)
	// FindNeedingMaintenance returns active rows whose lastMaintenance is
	// null or before cutoff.
	FindNeedingMaintenance(cutoff time.Time) ([]models.Room, error)
	// Search applies the composite filter joined with the types table.
	// isActive defaults to unconstrained; every supplied field is ANDed.
	Search(filters dto.RoomFilterRequest) ([]models.Room, int64, error)
	// CountActive counts active rows.
	CountActive() (int64, error)
	// CountByStatus counts active rows with the given status.
	CountByStatus(status models.RoomStatus) (int64, error)
	// CountByType counts rooms of one type, optionally active rows only.
	CountByType(roomTypeID uint, activeOnly bool) (int64, error)
	// CountGroupedByType counts active rooms grouped by type name.
	CountGroupedByType() ([]TypeCount, error)
	Create(room *models.Room) error
	Save(room *models.Room) error
}

type gormRoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates the GORM-backed repository.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &gormRoomRepository{db: db}
}

func (r *gormRoomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.Preload("RoomType").First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *gormRoomRepository) FindByNumber(roomNumber string) (*models.Room, error) {
	var room models.Room
	err := r.db.Preload("RoomType").
		Where("room_number = ?", roomNumber).
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *gormRoomRepository) ExistsByNumber(roomNumber string, excludeID uint) (bool, error) {
	query := r.db.Model(&models.Room{}).Where("room_number = ?", roomNumber)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRoomRepository) FindAll(p dto.Pagination) ([]models.Room, int64, error) {
	var total int64
	if err := r.db.Model(&models.Room{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rooms []models.Room
	err := r.db.Preload("RoomType").
		Order(orderClause(p.Sort)).
		Offset(p.Offset()).Limit(p.Limit).
		Find(&rooms).Error
	return rooms, total, err
}

func (r *gormRoomRepository) FindActive() ([]models.Room, error) {
	return r.findRooms(r.db.Where("is_active = ?", true))
}

func (r *gormRoomRepository) FindByStatus(status models.RoomStatus) ([]models.Room, error) {
	return r.findRooms(r.db.Where("status = ? AND is_active = ?", status, true))
}

func (r *gormRoomRepository) FindByFloor(floor int) ([]models.Room, error) {
	return r.findRooms(r.db.Where("floor = ? AND is_active = ?", floor, true))
}

func (r *gormRoomRepository) FindAvailable() ([]models.Room, error) {
	return r.findRooms(r.db.Where("status = ? AND is_active = ?", models.StatusAvailable, true))
}

func (r *gormRoomRepository) FindAvailableByType(roomTypeID uint) ([]models.Room, error) {
	return r.findRooms(r.db.Where("room_type_id = ? AND status = ? AND is_active = ?",
		roomTypeID, models.StatusAvailable, true))
}

func (r *gormRoomRepository) FindNeedingMaintenance(cutoff time.Time) ([]models.Room, error) {
	return r.findRooms(r.db.Where("is_active = ?", true).
		Where("last_maintenance IS NULL OR last_maintenance < ?", cutoff))
}

func (r *gormRoomRepository) Search(filters dto.RoomFilterRequest) ([]models.Room, int64, error) {
	query := r.db.Model(&models.Room{}).
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id")

	if filters.Status != nil {
		query = query.Where("rooms.status = ?", *filters.Status)
	}
	if filters.RoomTypeID != nil {
		query = query.Where("rooms.room_type_id = ?", *filters.RoomTypeID)
	}
	if filters.Floor != nil {
		query = query.Where("rooms.floor = ?", *filters.Floor)
	}
	if filters.ViewType != nil {
		query = query.Where("LOWER(rooms.view_type) LIKE ?",
			"%"+strings.ToLower(*filters.ViewType)+"%")
	}
	if filters.HasBalcony != nil {
		query = query.Where("rooms.has_balcony = ?", *filters.HasBalcony)
	}
	if filters.MinPrice != nil {
		query = query.Where("room_types.base_price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("room_types.base_price <= ?", *filters.MaxPrice)
	}
	if filters.IsActive != nil {
		query = query.Where("rooms.is_active = ?", *filters.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rooms []models.Room
	err := query.Preload("RoomType").
		Order(orderClause(filters.Sort)).
		Offset(filters.Offset()).Limit(filters.Limit).
		Find(&rooms).Error
	return rooms, total, err
}

func (r *gormRoomRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Room{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *gormRoomRepository) CountByStatus(status models.RoomStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Room{}).
		Where("status = ? AND is_active = ?", status, true).
		Count(&count).Error
	return count, err
}

func (r *gormRoomRepository) CountByType(roomTypeID uint, activeOnly bool) (int64, error) {
	query := r.db.Model(&models.Room{}).Where("room_type_id = ?", roomTypeID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *gormRoomRepository) CountGroupedByType() ([]TypeCount, error) {
	var counts []TypeCount
	err := r.db.Model(&models.Room{}).
		Select("rooms.room_type_id AS type_id, room_types.name AS type_name, COUNT(rooms.id) AS count").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("rooms.is_active = ?", true).
		Group("rooms.room_type_id, room_types.name").
		Scan(&counts).Error
	return counts, err
}

func (r *gormRoomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *gormRoomRepository) Save(room *models.Room) error {
	return r.db.Save(room).Error
}

func (r *gormRoomRepository) findRooms(query *gorm.DB) ([]models.Room, error) {
	var rooms []models.Room
	err := query.Preload("RoomType").Order("room_number").Find(&rooms).Error
	return rooms, err
}
