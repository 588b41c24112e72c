package routes

import (
	"context"
	"net/http"

	"room-management/controllers"
	middlewares "room-management/middleware"
	"room-management/repositories"
	"room-management/services"
	"room-management/services/logger"

	_ "room-management/docs"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and controllers and registers
// the API route table.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) (*services.RoomService, *services.RoomTypeService) {
	roomTypeRepo := repositories.NewRoomTypeRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	roomTypeService := services.NewRoomTypeService(services.RoomTypeServiceOptions{
		Repo:   roomTypeRepo,
		Rooms:  roomRepo,
		Logger: appLogger,
		Cache:  redisCli,
	})
	roomService := services.NewRoomService(services.RoomServiceOptions{
		Repo:        roomRepo,
		RoomTypes:   roomTypeRepo,
		Logger:      appLogger,
		Cache:       redisCli,
		Broadcaster: m,
	})

	roomTypeController := controllers.NewRoomTypeController(roomTypeService)
	roomController := controllers.NewRoomController(roomService)

	router.Use(middlewares.SessionMiddleware())

	v1 := router.Group("/api/v1")

	v1.GET("/room-types", roomTypeController.GetRoomTypes)
	v1.POST("/room-types", roomTypeController.CreateRoomType)
	v1.GET("/room-types/active", roomTypeController.GetActiveRoomTypes)
	v1.GET("/room-types/search", roomTypeController.SearchRoomTypes)
	v1.GET("/room-types/price-range", roomTypeController.GetRoomTypesByPriceRange)
	v1.GET("/room-types/occupancy", roomTypeController.GetRoomTypesByOccupancy)
	v1.GET("/room-types/with-available-rooms", roomTypeController.GetRoomTypesWithAvailableRooms)
	v1.GET("/room-types/:id", roomTypeController.GetRoomTypeDetail)
	v1.PUT("/room-types/:id", roomTypeController.UpdateRoomType)
	v1.DELETE("/room-types/:id", roomTypeController.DeleteRoomType)
	v1.PATCH("/room-types/:id/toggle", roomTypeController.ToggleRoomType)

	v1.GET("/rooms", roomController.GetRooms)
	v1.POST("/rooms", roomController.CreateRoom)
	v1.GET("/rooms/active", roomController.GetActiveRooms)
	v1.GET("/rooms/search", roomController.SearchRooms)
	v1.GET("/rooms/available", roomController.GetAvailableRooms)
	v1.GET("/rooms/available/type/:typeId", roomController.GetAvailableRoomsByType)
	v1.GET("/rooms/status/:status", roomController.GetRoomsByStatus)
	v1.GET("/rooms/floor/:floor", roomController.GetRoomsByFloor)
	v1.GET("/rooms/maintenance/needed", roomController.GetRoomsNeedingMaintenance)
	v1.GET("/rooms/statistics", roomController.GetRoomStatistics)
	v1.GET("/rooms/number/:roomNumber", roomController.GetRoomByNumber)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)
	v1.PUT("/rooms/:id", roomController.UpdateRoom)
	v1.PATCH("/rooms/:id/status", roomController.UpdateRoomStatus)
	v1.PATCH("/rooms/:id/toggle", roomController.ToggleRoom)
	v1.DELETE("/rooms/:id", roomController.DeleteRoom)

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "room-types"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return roomService, roomTypeService
}
