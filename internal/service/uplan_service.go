package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/uasplan/uplan-backend-go/internal/models"
	"github.com/uasplan/uplan-backend-go/internal/trajectory"
	"github.com/uasplan/uplan-backend-go/internal/volume"
)

// UplanService turns raw trajectory CSVs into full U-plan submission
// payloads. The generation pipeline itself is pure; the only side input is
// the clock used for the payload's creation timestamps.
type UplanService struct {
	now func() time.Time
}

// NewUplanService creates a U-plan service using the wall clock.
func NewUplanService() *UplanService {
	return &UplanService{now: time.Now}
}

// GenerateRequest carries everything needed to build one U-plan.
type GenerateRequest struct {
	PlanID          int
	PlanName        string
	CSV             string
	Category        string  // schema value, e.g. "OPENA1", "SAIL_I-II"
	UASType         string  // schema value, e.g. "MULTIROTOR"
	MTOM            float64 // kg
	MaxSpeed        float64 // m/s
	ScheduledAt     float64 // POSIX seconds
	GroundElevation float64 // meters AMSL, subtracted for AGL normalization
	Config          volume.Config
}

// Preview runs the volume pipeline only: parse, compress, build. Returns the
// ordered volume sequence without the submission payload around it.
func (s *UplanService) Preview(csvText string, groundElevation, scheduledAt float64, cfg volume.Config) ([]models.OperationVolume, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	waypoints := trajectory.Parse(csvText, groundElevation)
	reduced := trajectory.Compress(waypoints, cfg.CompressionFactor)
	return volume.BuildAll(reduced, scheduledAt, cfg), nil
}

// Generate builds the complete U-plan payload for a trajectory.
func (s *UplanService) Generate(req GenerateRequest) (*models.Uplan, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}

	waypoints := trajectory.Parse(req.CSV, req.GroundElevation)
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("generate uplan %q: no waypoints parsed from trajectory", req.PlanName)
	}

	reduced := trajectory.Compress(waypoints, req.Config.CompressionFactor)
	if len(reduced) < 2 {
		return nil, fmt.Errorf("generate uplan %q: not enough waypoints after compression", req.PlanName)
	}

	volumes := volume.BuildAll(reduced, req.ScheduledAt, req.Config)

	takeoff := waypoints[0]
	landing := waypoints[len(waypoints)-1]
	nowISO := s.now().UTC().Format("2006-01-02T15:04:05") + "Z"

	plan := &models.Uplan{
		IDPlan:               req.PlanID,
		NamePlan:             req.PlanName,
		DataOwnerIdentifier:  models.DataIdentifier{Sac: "TBD", Sic: "TBD"},
		DataSourceIdentifier: models.DataIdentifier{Sac: "TBD", Sic: "TBD"},
		ContactDetails: models.ContactDetails{
			FirstName: "TBD",
			LastName:  "TBD",
			Phones:    []string{"TBD"},
			Emails:    []string{"tbd@example.com"},
		},
		FlightDetails: models.FlightDetails{
			Mode:     flightMode(req.Category),
			Category: req.Category,
		},
		UAS: models.UAS{
			RegistrationNumber: "TBD",
			SerialNumber:       "TBD",
			FlightCharacteristics: models.FlightCharacteristics{
				UasMTOM:      req.MTOM,
				UasMaxSpeed:  req.MaxSpeed,
				Connectivity: "LTE",
				IDTechnology: "NRID",
			},
			GeneralCharacteristics: models.GeneralCharacteristics{
				Brand:           "TBD",
				Model:           "TBD",
				TypeCertificate: "TBD",
				UasType:         req.UASType,
				UasClass:        "NONE",
				UasDimension:    "LT_1",
			},
		},
		TakeoffLocation:  pointLocation(takeoff),
		LandingLocation:  pointLocation(landing),
		GcsLocation:      unknownLocation(),
		OperationVolumes: volumes,
		OperatorID:       "TBD",
		State:            "SENT",
		CreationTime:     nowISO,
		UpdateTime:       nowISO,
	}
	return plan, nil
}

// flightMode picks VLOS unless the category implies a beyond-visual-line
// operation.
func flightMode(category string) string {
	if strings.Contains(category, "SAIL") {
		return "BVLOS"
	}
	return "VLOS"
}

func pointLocation(wp models.Waypoint) models.PointLocation {
	return models.PointLocation{
		Type:        "Point",
		Coordinates: [2]float64{wp.Lon, wp.Lat},
		Reference:   models.AltitudeReferenceAGL,
		Altitude:    wp.H,
	}
}

// unknownLocation is the placeholder for fields the caller has not surveyed
// yet, e.g. the ground control station.
func unknownLocation() models.PointLocation {
	return models.PointLocation{
		Type:      "Point",
		Reference: models.AltitudeReferenceAGL,
	}
}
