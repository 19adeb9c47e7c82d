package service

import "testing"

func TestParseTrajectoryFilename(t *testing.T) {
	tests := []struct {
		filename     string
		category     string
		aircraftType string
		flightID     int
	}{
		{"Open A2 MR_0021_Scan.csv", "Open A2", "MR", 21},
		{"Specific SAIL I-II FW_0310_Fijo.csv", "Specific SAIL I-II", "FW", 310},
		{"Specific SAIL III-IV FW_0160_Delivery.csv", "Specific SAIL III-IV", "FW", 160},
		{"PDRA_STS FW_0231_Fijo.csv", "PDRA_STS", "FW", 231},
		{"Open A1 MR_0007_Scan.csv", "Open A1", "MR", 7},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			info := ParseTrajectoryFilename(tt.filename)
			if info.Category != tt.category {
				t.Errorf("category = %q, want %q", info.Category, tt.category)
			}
			if info.AircraftType != tt.aircraftType {
				t.Errorf("aircraftType = %q, want %q", info.AircraftType, tt.aircraftType)
			}
			if info.FlightID != tt.flightID {
				t.Errorf("flightID = %d, want %d", info.FlightID, tt.flightID)
			}
			if info.CSVFile != tt.filename {
				t.Errorf("csvFile = %q, want %q", info.CSVFile, tt.filename)
			}
		})
	}
}

func TestLookupUAS(t *testing.T) {
	perf := LookupUAS("Open A2", "MR")
	if perf.MaxSpeed != 20.0 || perf.MTOM != 1.10 {
		t.Errorf("Open A2 MR = %+v", perf)
	}
	perf = LookupUAS("Specific SAIL I-II", "FW")
	if perf.MaxSpeed != 30.0 || perf.MTOM != 40.0 {
		t.Errorf("Specific SAIL I-II FW = %+v", perf)
	}
	if perf := LookupUAS("nope", "XX"); perf != (UASPerformance{}) {
		t.Errorf("unknown combination = %+v, want zeros", perf)
	}
}

func TestCategorySchema(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Open A1", "OPENA1"},
		{"Open A2", "OPENA2"},
		{"Open A3", "OPENA3"},
		{"Specific SAIL I-II", "SAIL_I-II"},
		{"Specific SAIL III-IV", "SAIL_III-IV"},
		{"Specific SAIL V-VI", "SAIL_V-VI"},
		{"PDRA_STS", "SAIL_I-II"},
		{"garbage", "OPENA1"},
	}
	for _, tt := range tests {
		if got := CategorySchema(tt.in); got != tt.want {
			t.Errorf("CategorySchema(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAircraftTypeSchema(t *testing.T) {
	if got := AircraftTypeSchema("MR"); got != "MULTIROTOR" {
		t.Errorf("MR = %q", got)
	}
	if got := AircraftTypeSchema("FW"); got != "FIXED_WING" {
		t.Errorf("FW = %q", got)
	}
	if got := AircraftTypeSchema(""); got != "NONE_NOT_DECLARED" {
		t.Errorf("empty = %q", got)
	}
}
