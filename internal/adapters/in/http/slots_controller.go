package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/facility-slot-manager/internal/config"
	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/in"
)

type SlotsController struct {
	availability in.AvailabilityUseCase
	booking      in.BookingUseCase
	cfg          *config.Config
}

func NewSlotsController(availability in.AvailabilityUseCase, booking in.BookingUseCase, cfg *config.Config) *SlotsController {
	return &SlotsController{
		availability: availability,
		booking:      booking,
		cfg:          cfg,
	}
}

func (c *SlotsController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/slots/availability/:date", c.getAvailability)
		api.POST("/slots/take", c.takeSlot)
	}
}

func (c *SlotsController) getAvailability(ctx *gin.Context) {
	response, validationErr, err := c.availability.GetWeeklyAvailability(ctx.Request.Context(), ctx.Param("date"))
	if err != nil {
		respondInfrastructureError(ctx, err)
		return
	}
	if validationErr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

type TakeSlotPatient struct {
	Name       string `json:"name" binding:"required"`
	SecondName string `json:"secondName"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

type TakeSlotRequest struct {
	// Обязательные поля объявлены указателями, иначе binding не отличит
	// отсутствующее значение от нулевого
	Start      *time.Time       `json:"start" binding:"required"`
	End        *time.Time       `json:"end" binding:"required"`
	Comments   string           `json:"comments"`
	Patient    *TakeSlotPatient `json:"patient" binding:"required"`
	FacilityID *uuid.UUID       `json:"facilityId" binding:"required"`
}

func (c *SlotsController) takeSlot(ctx *gin.Context) {
	var req TakeSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := domain.BookingRequest{
		Start:    *req.Start,
		End:      *req.End,
		Comments: req.Comments,
		Patient: domain.Patient{
			Name:       req.Patient.Name,
			SecondName: req.Patient.SecondName,
			Email:      req.Patient.Email,
			Phone:      req.Patient.Phone,
		},
		FacilityID: *req.FacilityID,
	}

	validationErr, err := c.booking.TakeSlot(ctx.Request.Context(), request)
	if err != nil {
		respondInfrastructureError(ctx, err)
		return
	}
	if validationErr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "booked"})
}

func respondInfrastructureError(ctx *gin.Context, err error) {
	if errors.Is(err, domain.ErrSlotServiceUnavailable) {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (c *SlotsController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
