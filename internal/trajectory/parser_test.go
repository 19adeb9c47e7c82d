package trajectory

import "testing"

func TestParseBasic(t *testing.T) {
	csv := `SimTime,Lat,Lon,Alt,qw,qx,qy,qz,Vx,Vy,Vz
100.0,40.0,-3.0,120.0,1,0,0,0,0,0,0
110.0,40.001,-3.0,125.0,1,0,0,0,0,0,0
120.0,40.001,-2.999,130.0,1,0,0,0,0,0,0
`
	wps := Parse(csv, 0)
	if len(wps) != 3 {
		t.Fatalf("got %d waypoints, want 3", len(wps))
	}

	// Times re-baselined so the first row is zero.
	if wps[0].Time != 0 || wps[1].Time != 10 || wps[2].Time != 20 {
		t.Errorf("times = %g %g %g, want 0 10 20", wps[0].Time, wps[1].Time, wps[2].Time)
	}
	if wps[0].Lat != 40.0 || wps[0].Lon != -3.0 || wps[0].H != 120.0 {
		t.Errorf("first waypoint = %+v", wps[0])
	}
}

func TestParseGroundElevation(t *testing.T) {
	csv := "0,40.0,-3.0,150.0\n10,40.001,-3.0,160.0\n"
	wps := Parse(csv, 100)
	if len(wps) != 2 {
		t.Fatalf("got %d waypoints, want 2", len(wps))
	}
	if wps[0].H != 50 || wps[1].H != 60 {
		t.Errorf("AGL altitudes = %g %g, want 50 60", wps[0].H, wps[1].H)
	}
}

func TestParseSkipsJunk(t *testing.T) {
	csv := `// trajectory exported 2025-06-12
SimTime,Lat,Lon,Alt

0,40.0,-3.0,100.0
not,a,valid,row
10,40.001,bogus,105.0
20,40.001
30,40.002,-3.0,110.0
`
	wps := Parse(csv, 0)
	if len(wps) != 2 {
		t.Fatalf("got %d waypoints, want 2 (junk rows dropped): %+v", len(wps), wps)
	}
	if wps[0].Time != 0 || wps[1].Time != 30 {
		t.Errorf("times = %g %g, want 0 30", wps[0].Time, wps[1].Time)
	}
}

func TestParseEmpty(t *testing.T) {
	if wps := Parse("", 0); len(wps) != 0 {
		t.Errorf("empty input produced %d waypoints", len(wps))
	}
	if wps := Parse("SimTime,Lat,Lon,Alt\n", 0); len(wps) != 0 {
		t.Errorf("header-only input produced %d waypoints", len(wps))
	}
}

func TestParseExtraColumnsIgnored(t *testing.T) {
	csv := "0,40.0,-3.0,100.0,0.99,0.01,0.0,0.0,5.1,0.0,-0.2\n5,40.0005,-3.0,102.0,0.99,0.01,0.0,0.0,5.1,0.0,-0.2\n"
	wps := Parse(csv, 0)
	if len(wps) != 2 {
		t.Fatalf("got %d waypoints, want 2", len(wps))
	}
	if wps[1].H != 102.0 {
		t.Errorf("altitude = %g, want 102", wps[1].H)
	}
}
