package services

import (
	"sort"
	"strings"
	"time"

	"room-management/dto"
	"room-management/models"
	"room-management/repositories"
	"room-management/services/logger"
)

// fakeRoomTypeRepository keeps room types in memory. Lookups return copies
// so mutations only land through Save, matching the GORM-backed behavior.
// Writes advance a fake clock by a full millisecond so updatedAt is
// distinguishable across consecutive writes.
type fakeRoomTypeRepository struct {
	types  []models.RoomType
	rooms  *fakeRoomRepository
	nextID uint
	clock  time.Time
}

func newFakeRoomTypeRepository() *fakeRoomTypeRepository {
	return &fakeRoomTypeRepository{nextID: 1, clock: time.Now()}
}

func (f *fakeRoomTypeRepository) tick() time.Time {
	f.clock = f.clock.Add(time.Millisecond)
	return f.clock
}

func (f *fakeRoomTypeRepository) FindByID(id uint) (*models.RoomType, error) {
	for i := range f.types {
		if f.types[i].ID == id {
			rt := f.types[i]
			return &rt, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomTypeRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	for i := range f.types {
		if f.types[i].ID == excludeID {
			continue
		}
		if strings.EqualFold(f.types[i].Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoomTypeRepository) FindAll(p dto.Pagination) ([]models.RoomType, int64, error) {
	total := int64(len(f.types))
	start := p.Offset()
	if start >= len(f.types) {
		return []models.RoomType{}, total, nil
	}
	end := start + p.Limit
	if end > len(f.types) {
		end = len(f.types)
	}
	out := make([]models.RoomType, end-start)
	copy(out, f.types[start:end])
	return out, total, nil
}

func (f *fakeRoomTypeRepository) FindActive() ([]models.RoomType, error) {
	var out []models.RoomType
	for i := range f.types {
		if f.types[i].IsActive {
			out = append(out, f.types[i])
		}
	}
	return out, nil
}

func (f *fakeRoomTypeRepository) Search(term string, p dto.Pagination) ([]models.RoomType, int64, error) {
	needle := strings.ToLower(term)
	var out []models.RoomType
	for i := range f.types {
		rt := f.types[i]
		if !rt.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(rt.Name), needle) ||
			strings.Contains(strings.ToLower(rt.Description), needle) {
			out = append(out, rt)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRoomTypeRepository) FindByPriceRange(min, max float64) ([]models.RoomType, error) {
	var out []models.RoomType
	for i := range f.types {
		rt := f.types[i]
		if rt.IsActive && rt.BasePrice >= min && rt.BasePrice <= max {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (f *fakeRoomTypeRepository) FindByMinOccupancy(n int) ([]models.RoomType, error) {
	var out []models.RoomType
	for i := range f.types {
		rt := f.types[i]
		if rt.IsActive && rt.MaxOccupancy >= n {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (f *fakeRoomTypeRepository) FindWithAvailableRooms() ([]models.RoomType, error) {
	var out []models.RoomType
	for i := range f.types {
		rt := f.types[i]
		if !rt.IsActive || f.rooms == nil {
			continue
		}
		available, err := f.rooms.FindAvailableByType(rt.ID)
		if err != nil {
			return nil, err
		}
		if len(available) > 0 {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (f *fakeRoomTypeRepository) ActiveNames() ([]string, error) {
	var names []string
	for i := range f.types {
		if f.types[i].IsActive {
			names = append(names, f.types[i].Name)
		}
	}
	return names, nil
}

func (f *fakeRoomTypeRepository) Create(roomType *models.RoomType) error {
	roomType.ID = f.nextID
	f.nextID++
	now := f.tick()
	roomType.CreatedAt = now
	roomType.UpdatedAt = now
	f.types = append(f.types, *roomType)
	return nil
}

func (f *fakeRoomTypeRepository) Save(roomType *models.RoomType) error {
	roomType.UpdatedAt = f.tick()
	for i := range f.types {
		if f.types[i].ID == roomType.ID {
			f.types[i] = *roomType
			return nil
		}
	}
	f.types = append(f.types, *roomType)
	return nil
}

// fakeRoomRepository keeps rooms in memory and resolves the type relation
// through the room type fake, standing in for the Preload.
type fakeRoomRepository struct {
	rooms  []models.Room
	types  *fakeRoomTypeRepository
	nextID uint
	clock  time.Time
}

func newFakeRoomRepository(types *fakeRoomTypeRepository) *fakeRoomRepository {
	return &fakeRoomRepository{types: types, nextID: 1, clock: time.Now()}
}

func (f *fakeRoomRepository) tick() time.Time {
	f.clock = f.clock.Add(time.Millisecond)
	return f.clock
}

func (f *fakeRoomRepository) withType(room models.Room) models.Room {
	if f.types != nil {
		if rt, _ := f.types.FindByID(room.RoomTypeID); rt != nil {
			room.RoomType = *rt
		}
	}
	return room
}

func (f *fakeRoomRepository) FindByID(id uint) (*models.Room, error) {
	for i := range f.rooms {
		if f.rooms[i].ID == id {
			room := f.withType(f.rooms[i])
			return &room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepository) FindByNumber(roomNumber string) (*models.Room, error) {
	for i := range f.rooms {
		if f.rooms[i].RoomNumber == roomNumber {
			room := f.withType(f.rooms[i])
			return &room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepository) ExistsByNumber(roomNumber string, excludeID uint) (bool, error) {
	for i := range f.rooms {
		if f.rooms[i].ID == excludeID {
			continue
		}
		if f.rooms[i].RoomNumber == roomNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoomRepository) FindAll(p dto.Pagination) ([]models.Room, int64, error) {
	total := int64(len(f.rooms))
	start := p.Offset()
	if start >= len(f.rooms) {
		return []models.Room{}, total, nil
	}
	end := start + p.Limit
	if end > len(f.rooms) {
		end = len(f.rooms)
	}
	out := make([]models.Room, 0, end-start)
	for _, room := range f.rooms[start:end] {
		out = append(out, f.withType(room))
	}
	return out, total, nil
}

func (f *fakeRoomRepository) FindActive() ([]models.Room, error) {
	return f.filter(func(r models.Room) bool { return r.IsActive }), nil
}

func (f *fakeRoomRepository) FindByStatus(status models.RoomStatus) ([]models.Room, error) {
	return f.filter(func(r models.Room) bool { return r.IsActive && r.Status == status }), nil
}

func (f *fakeRoomRepository) FindByFloor(floor int) ([]models.Room, error) {
	return f.filter(func(r models.Room) bool { return r.IsActive && r.Floor == floor }), nil
}

func (f *fakeRoomRepository) FindAvailable() ([]models.Room, error) {
	return f.filter(func(r models.Room) bool {
		return r.IsActive && r.Status == models.StatusAvailable
	}), nil
}

func (f *fakeRoomRepository) FindAvailableByType(roomTypeID uint) ([]models.Room, error) {
	return f.filter(func(r models.Room) bool {
		return r.IsActive && r.Status == models.StatusAvailable && r.RoomTypeID == roomTypeID
	}), nil
}

func (f *fakeRoomRepository) FindNeedingMaintenance(cutoff time.Time) ([]models.Room, error) {
	return f.filter(func(r models.Room) bool {
		return r.IsActive && (r.LastMaintenance == nil || r.LastMaintenance.Before(cutoff))
	}), nil
}

func (f *fakeRoomRepository) Search(filters dto.RoomFilterRequest) ([]models.Room, int64, error) {
	out := f.filter(func(r models.Room) bool {
		room := f.withType(r)
		if filters.Status != nil && string(room.Status) != *filters.Status {
			return false
		}
		if filters.RoomTypeID != nil && room.RoomTypeID != *filters.RoomTypeID {
			return false
		}
		if filters.Floor != nil && room.Floor != *filters.Floor {
			return false
		}
		if filters.ViewType != nil &&
			!strings.Contains(strings.ToLower(room.ViewType), strings.ToLower(*filters.ViewType)) {
			return false
		}
		if filters.HasBalcony != nil && room.HasBalcony != *filters.HasBalcony {
			return false
		}
		if filters.MinPrice != nil && room.RoomType.BasePrice < *filters.MinPrice {
			return false
		}
		if filters.MaxPrice != nil && room.RoomType.BasePrice > *filters.MaxPrice {
			return false
		}
		if filters.IsActive != nil && room.IsActive != *filters.IsActive {
			return false
		}
		return true
	})
	return out, int64(len(out)), nil
}

func (f *fakeRoomRepository) CountActive() (int64, error) {
	return int64(len(f.filter(func(r models.Room) bool { return r.IsActive }))), nil
}

func (f *fakeRoomRepository) CountByStatus(status models.RoomStatus) (int64, error) {
	return int64(len(f.filter(func(r models.Room) bool {
		return r.IsActive && r.Status == status
	}))), nil
}

func (f *fakeRoomRepository) CountByType(roomTypeID uint, activeOnly bool) (int64, error) {
	var count int64
	for i := range f.rooms {
		if f.rooms[i].RoomTypeID != roomTypeID {
			continue
		}
		if activeOnly && !f.rooms[i].IsActive {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeRoomRepository) CountGroupedByType() ([]repositories.TypeCount, error) {
	grouped := map[uint]*repositories.TypeCount{}
	for i := range f.rooms {
		room := f.rooms[i]
		if !room.IsActive {
			continue
		}
		entry, ok := grouped[room.RoomTypeID]
		if !ok {
			name := ""
			if rt, _ := f.types.FindByID(room.RoomTypeID); rt != nil {
				name = rt.Name
			}
			entry = &repositories.TypeCount{TypeID: room.RoomTypeID, TypeName: name}
			grouped[room.RoomTypeID] = entry
		}
		entry.Count++
	}

	out := make([]repositories.TypeCount, 0, len(grouped))
	for _, entry := range grouped {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TypeID < out[j].TypeID })
	return out, nil
}

func (f *fakeRoomRepository) Create(room *models.Room) error {
	room.ID = f.nextID
	f.nextID++
	now := f.tick()
	room.CreatedAt = now
	room.UpdatedAt = now
	f.rooms = append(f.rooms, *room)
	return nil
}

func (f *fakeRoomRepository) Save(room *models.Room) error {
	room.UpdatedAt = f.tick()
	for i := range f.rooms {
		if f.rooms[i].ID == room.ID {
			f.rooms[i] = *room
			return nil
		}
	}
	f.rooms = append(f.rooms, *room)
	return nil
}

func (f *fakeRoomRepository) filter(keep func(models.Room) bool) []models.Room {
	var out []models.Room
	for i := range f.rooms {
		if keep(f.rooms[i]) {
			out = append(out, f.withType(f.rooms[i]))
		}
	}
	return out
}

// captureBroadcaster records broadcast payloads for assertions.
type captureBroadcaster struct {
	messages [][]byte
}

func (b *captureBroadcaster) Broadcast(msg []byte) error {
	b.messages = append(b.messages, msg)
	return nil
}

func newTestServices() (*RoomTypeService, *RoomService, *fakeRoomTypeRepository, *fakeRoomRepository, *captureBroadcaster) {
	typeRepo := newFakeRoomTypeRepository()
	roomRepo := newFakeRoomRepository(typeRepo)
	typeRepo.rooms = roomRepo
	testLogger := logger.NewDefaultLogger(logger.ErrorLevel)
	broadcaster := &captureBroadcaster{}

	typeService := NewRoomTypeService(RoomTypeServiceOptions{
		Repo:   typeRepo,
		Rooms:  roomRepo,
		Logger: testLogger,
	})
	roomService := NewRoomService(RoomServiceOptions{
		Repo:        roomRepo,
		RoomTypes:   typeRepo,
		Logger:      testLogger,
		Broadcaster: broadcaster,
	})
	return typeService, roomService, typeRepo, roomRepo, broadcaster
}
