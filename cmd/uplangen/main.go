// Command uplangen batch-generates U-plan JSON files from a directory of
// trajectory CSVs. Flight category, airframe, and id are derived from the
// file names; start timestamps are staggered one hour apart so the generated
// plans do not overlap in time.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/uasplan/uplan-backend-go/internal/config"
	"github.com/uasplan/uplan-backend-go/internal/export"
	"github.com/uasplan/uplan-backend-go/internal/service"
	"github.com/uasplan/uplan-backend-go/internal/volume"
)

func main() {
	trajDir := flag.String("traj", "setup/trajectories", "directory of trajectory CSV files")
	outDir := flag.String("out", "output", "output directory for generated U-plans")
	startStr := flag.String("start", "", "first flight start time, ISO-8601 UTC (default: next full hour)")
	cfgPath := flag.String("config", "", "optional YAML file with generation parameters")
	groundElev := flag.Float64("ground-elevation", 0, "ground elevation in meters AMSL, subtracted for AGL")
	writeKML := flag.Bool("kml", false, "also write a KML rendering of each plan's volumes")
	flag.Parse()

	gen := volume.DefaultConfig()
	if *cfgPath != "" {
		loaded, err := config.LoadGeneratorFile(*cfgPath)
		if err != nil {
			log.Fatalf("generator config: %v", err)
		}
		gen = loaded
	}

	start, err := parseStart(*startStr)
	if err != nil {
		log.Fatalf("start time: %v", err)
	}

	entries, err := os.ReadDir(*trajDir)
	if err != nil {
		log.Fatalf("read trajectory dir: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	svc := service.NewUplanService()
	startTimestamp := float64(start.Unix())
	generated := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}

		csvData, err := os.ReadFile(filepath.Join(*trajDir, entry.Name()))
		if err != nil {
			log.Printf("skipping %s: %v", entry.Name(), err)
			continue
		}

		info := service.ParseTrajectoryFilename(entry.Name())
		perf := service.LookupUAS(info.Category, info.AircraftType)
		log.Printf("processing %s (id=%d category=%s aircraft=%s vmax=%.1f mtom=%.2f)",
			entry.Name(), info.FlightID,
			service.CategorySchema(info.Category), service.AircraftTypeSchema(info.AircraftType),
			perf.MaxSpeed, perf.MTOM)

		plan, err := svc.Generate(service.GenerateRequest{
			PlanID:          info.FlightID,
			PlanName:        entry.Name(),
			CSV:             string(csvData),
			Category:        service.CategorySchema(info.Category),
			UASType:         service.AircraftTypeSchema(info.AircraftType),
			MTOM:            perf.MTOM,
			MaxSpeed:        perf.MaxSpeed,
			ScheduledAt:     startTimestamp,
			GroundElevation: *groundElev,
			Config:          gen,
		})
		if err != nil {
			log.Printf("skipping %s: %v", entry.Name(), err)
			continue
		}

		outFile := filepath.Join(*outDir, fmt.Sprintf("Uplan_%d.json", plan.IDPlan))
		data, err := json.MarshalIndent(plan, "", "    ")
		if err != nil {
			log.Printf("skipping %s: %v", entry.Name(), err)
			continue
		}
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			log.Fatalf("write %s: %v", outFile, err)
		}
		log.Printf("saved %s (%d volumes)", outFile, len(plan.OperationVolumes))

		if *writeKML {
			kmlData, err := export.VolumesKML(plan.NamePlan, plan.OperationVolumes)
			if err != nil {
				log.Printf("kml for %s: %v", entry.Name(), err)
			} else {
				kmlFile := filepath.Join(*outDir, fmt.Sprintf("Uplan_%d.kml", plan.IDPlan))
				if err := os.WriteFile(kmlFile, kmlData, 0o644); err != nil {
					log.Fatalf("write %s: %v", kmlFile, err)
				}
				log.Printf("saved %s", kmlFile)
			}
		}

		startTimestamp += 3600
		generated++
	}

	log.Printf("done, %d plans written to %s", generated, *outDir)
}

func parseStart(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC().Truncate(time.Hour).Add(time.Hour), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DDTHH:MM:SS: %w", err)
	}
	return t.UTC(), nil
}
