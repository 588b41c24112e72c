package jobs

import (
	"fmt"
	"log"

	"room-management/dto"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// MaintenanceLister reports the rooms overdue for maintenance.
type MaintenanceLister interface {
	ListNeedingMaintenance() ([]dto.RoomResponse, error)
}

var maintenanceLister MaintenanceLister

// SetMaintenanceLister sets the implementation the sweep uses.
func SetMaintenanceLister(lister MaintenanceLister) {
	maintenanceLister = lister
}

// InitCronJobs registers the daily maintenance sweep and starts the
// scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Daily sweep at 06:00
	_, err := c.AddFunc("0 6 * * *", func() {
		if maintenanceLister == nil {
			log.Printf("Maintenance sweep skipped: no lister configured")
			return
		}

		rooms, err := maintenanceLister.ListNeedingMaintenance()
		if err != nil {
			log.Printf("Maintenance sweep failed: %v", err)
			return
		}
		if len(rooms) == 0 {
			return
		}

		log.Printf("Maintenance sweep: %d rooms overdue", len(rooms))
		for _, room := range rooms {
			log.Printf("Maintenance overdue: %s", room.DisplayName)
		}

		if m != nil {
			message := fmt.Sprintf(`{"event":"maintenance_overdue","count":%d}`, len(rooms))
			if err := m.Broadcast([]byte(message)); err != nil {
				log.Printf("Failed to broadcast maintenance summary: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
