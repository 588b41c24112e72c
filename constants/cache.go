package constants

import "time"

// Redis cache keys
const (
	CacheKeyRoomStatistics  = "rooms:statistics"
	CacheKeyActiveRoomTypes = "room_types:active"
)

// Cache TTLs
const (
	CacheTTLRoomStatistics  = 5 * time.Minute
	CacheTTLActiveRoomTypes = 60 * time.Minute
)
