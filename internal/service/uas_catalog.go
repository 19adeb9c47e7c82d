package service

import (
	"strings"
	"unicode"
)

// UASPerformance holds the declared performance figures for a
// category/airframe combination.
type UASPerformance struct {
	MaxSpeed float64 // m/s
	MTOM     float64 // kg
}

// uasCatalog maps "category_airframe" keys to declared performance figures.
// Figures follow the reference scenario set used for authorization trials.
var uasCatalog = map[string]UASPerformance{
	"Open A1_MR":              {MaxSpeed: 13.0, MTOM: 0.25},
	"Open A1_FW":              {MaxSpeed: 20.0, MTOM: 1.00},
	"Open A2_MR":              {MaxSpeed: 20.0, MTOM: 1.10},
	"Open A2_FW":              {MaxSpeed: 22.0, MTOM: 2.00},
	"Open A3_MR":              {MaxSpeed: 21.0, MTOM: 1.43},
	"Open A3_FW":              {MaxSpeed: 25.0, MTOM: 3.50},
	"PDRA_STS_MR":             {MaxSpeed: 23.0, MTOM: 4.69},
	"PDRA_STS_FW":             {MaxSpeed: 28.0, MTOM: 6.00},
	"Specific SAIL I-II_MR":   {MaxSpeed: 19.0, MTOM: 25.00},
	"Specific SAIL I-II_FW":   {MaxSpeed: 30.0, MTOM: 40.00},
	"Specific SAIL III-IV_MR": {MaxSpeed: 19.0, MTOM: 25.00},
	"Specific SAIL III-IV_FW": {MaxSpeed: 30.0, MTOM: 40.00},
}

// LookupUAS returns the performance figures for a category and airframe
// code, or zeros when the combination is unknown.
func LookupUAS(category, aircraftType string) UASPerformance {
	return uasCatalog[category+"_"+aircraftType]
}

// CategorySchema converts a human-readable category to the authorization
// schema value.
func CategorySchema(category string) string {
	switch category {
	case "Open A1":
		return "OPENA1"
	case "Open A2":
		return "OPENA2"
	case "Open A3":
		return "OPENA3"
	case "Specific SAIL I-II":
		return "SAIL_I-II"
	case "Specific SAIL III-IV":
		return "SAIL_III-IV"
	case "Specific SAIL V-VI":
		return "SAIL_V-VI"
	case "PDRA_STS":
		return "SAIL_I-II"
	}
	return "OPENA1"
}

// AircraftTypeSchema converts an airframe code to the authorization schema
// value.
func AircraftTypeSchema(code string) string {
	switch code {
	case "MR":
		return "MULTIROTOR"
	case "FW":
		return "FIXED_WING"
	}
	return "NONE_NOT_DECLARED"
}

// TrajectoryInfo is the flight metadata encoded in a trajectory file name,
// e.g. "Open A2 MR_0021_Scan.csv".
type TrajectoryInfo struct {
	Category     string // "Open A1", "Specific SAIL I-II", "PDRA_STS", ...
	AircraftType string // "MR" or "FW"
	FlightID     int
	CSVFile      string
}

// ParseTrajectoryFilename extracts flight metadata from a trajectory CSV file
// name. The portion before the first underscore is "<category> <airframe>";
// PDRA_STS names carry an underscore inside the category and are handled
// separately. The first all-digit field between underscores is the flight id.
func ParseTrajectoryFilename(filename string) TrajectoryInfo {
	info := TrajectoryInfo{CSVFile: filename}

	if i := strings.IndexByte(filename, '_'); i >= 0 {
		prefix := filename[:i]
		if j := strings.LastIndexByte(prefix, ' '); j >= 0 {
			info.Category = prefix[:j]
			info.AircraftType = prefix[j+1:]
		} else {
			info.Category = prefix
		}
	}

	if strings.Contains(filename, "PDRA_STS") {
		info.Category = "PDRA_STS"
		if i := strings.Index(filename, "PDRA_STS "); i >= 0 {
			rest := filename[i+len("PDRA_STS "):]
			if j := strings.IndexByte(rest, '_'); j >= 0 {
				info.AircraftType = rest[:j]
			}
		}
	}

	for _, field := range strings.Split(filename, "_") {
		if field != "" && isDigits(field) {
			id := 0
			for _, r := range field {
				id = id*10 + int(r-'0')
			}
			info.FlightID = id
			break
		}
	}
	return info
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
