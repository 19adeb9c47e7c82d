package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uasplan/uplan-backend-go/internal/export"
	"github.com/uasplan/uplan-backend-go/internal/service"
	"github.com/uasplan/uplan-backend-go/internal/volume"
	"github.com/uasplan/uplan-backend-go/pkg/response"
)

const kmlContentType = "application/vnd.google-earth.kml+xml"

// UplanHandler handles HTTP requests for U-plan generation.
type UplanHandler struct {
	uplanService *service.UplanService
	defaults     volume.Config
}

// NewUplanHandler creates a U-plan handler with the given default generation
// parameters.
func NewUplanHandler(uplanService *service.UplanService, defaults volume.Config) *UplanHandler {
	return &UplanHandler{
		uplanService: uplanService,
		defaults:     defaults,
	}
}

// GenerateUplanRequest is the payload for POST /api/v1/uplans/generate.
// Category and AircraftType may be left empty when the plan name is a
// standard trajectory file name; they are then derived from it.
type GenerateUplanRequest struct {
	PlanID          int            `json:"planId"`
	PlanName        string         `json:"planName" binding:"required"`
	CSV             string         `json:"csv" binding:"required"`
	Category        string         `json:"category"`
	AircraftType    string         `json:"aircraftType"` // "MR" or "FW"
	ScheduledAt     float64        `json:"scheduledAt" binding:"required"`
	GroundElevation float64        `json:"groundElevation"`
	Config          *volume.Config `json:"config"`
}

// PreviewRequest is the payload for POST /api/v1/volumes/preview.
type PreviewRequest struct {
	CSV             string         `json:"csv" binding:"required"`
	ScheduledAt     float64        `json:"scheduledAt" binding:"required"`
	GroundElevation float64        `json:"groundElevation"`
	Config          *volume.Config `json:"config"`
}

// GenerateUplan handles POST /api/v1/uplans/generate.
func (h *UplanHandler) GenerateUplan(c *gin.Context) {
	var req GenerateUplanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, aircraftType := req.Category, req.AircraftType
	if category == "" || aircraftType == "" {
		info := service.ParseTrajectoryFilename(req.PlanName)
		if category == "" {
			category = info.Category
		}
		if aircraftType == "" {
			aircraftType = info.AircraftType
		}
	}
	perf := service.LookupUAS(category, aircraftType)

	plan, err := h.uplanService.Generate(service.GenerateRequest{
		PlanID:          req.PlanID,
		PlanName:        req.PlanName,
		CSV:             req.CSV,
		Category:        service.CategorySchema(category),
		UASType:         service.AircraftTypeSchema(aircraftType),
		MTOM:            perf.MTOM,
		MaxSpeed:        perf.MaxSpeed,
		ScheduledAt:     req.ScheduledAt,
		GroundElevation: req.GroundElevation,
		Config:          h.configFor(req.Config),
	})
	if err != nil {
		if strings.Contains(err.Error(), "config") {
			response.BadRequest(c, err.Error())
		} else {
			response.UnprocessableEntity(c, err.Error())
		}
		return
	}

	response.Success(c, plan)
}

// PreviewVolumes handles POST /api/v1/volumes/preview. With ?format=kml the
// volumes are returned as a KML document instead of JSON.
func (h *UplanHandler) PreviewVolumes(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	volumes, err := h.uplanService.Preview(req.CSV, req.GroundElevation, req.ScheduledAt, h.configFor(req.Config))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if c.Query("format") == "kml" {
		data, err := export.VolumesKML("Operation volumes", volumes)
		if err != nil {
			response.InternalError(c, err.Error())
			return
		}
		c.Data(200, kmlContentType, data)
		return
	}

	response.Success(c, gin.H{
		"volumes": volumes,
		"count":   len(volumes),
	})
}

// GetDefaults handles GET /api/v1/uplans/defaults.
func (h *UplanHandler) GetDefaults(c *gin.Context) {
	response.Success(c, h.defaults)
}

func (h *UplanHandler) configFor(override *volume.Config) volume.Config {
	if override != nil {
		return *override
	}
	return h.defaults
}
