package element

import "testing"

func TestDensitySwapProb(t *testing.T) {
	tests := []struct {
		name                        string
		otherDensity, myDensity, slip float64
		want                        float64
	}{
		{"lighter neighbour is easy to displace", 2, 10, 0, 0.8},
		{"denser neighbour floors at slip-through", 50, 10, 0.02, 0.02},
		{"equal density floors at slip-through", 10, 10, 0.05, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := densitySwapProb(tt.otherDensity, tt.myDensity, tt.slip)
			if got != tt.want {
				t.Errorf("densitySwapProb(%v, %v, %v) = %v, want %v",
					tt.otherDensity, tt.myDensity, tt.slip, got, tt.want)
			}
		})
	}
}

func TestMovableSolidParamsSamePhysics(t *testing.T) {
	base := DefaultSandParams()
	same := base
	same.StableTime = 42 // transient field, should not affect comparison
	same.IsFalling = false

	if !base.samePhysics(same) {
		t.Errorf("params differing only in transient fields should be samePhysics")
	}

	different := base
	different.Density = base.Density + 1
	if base.samePhysics(different) {
		t.Errorf("params differing in Density should not be samePhysics")
	}
}

func TestMovableSolidParamsRefresh(t *testing.T) {
	p := DefaultSandParams()
	p.StableTime = 15
	p.UnstuckSpeed = 20

	refreshed := p.refresh()
	if refreshed.StableTime != 0 {
		t.Errorf("StableTime = %d, want 0 (floored)", refreshed.StableTime)
	}

	p.StableTime = 30
	refreshed = p.refresh()
	if refreshed.StableTime != 10 {
		t.Errorf("StableTime = %d, want 10", refreshed.StableTime)
	}
}

func TestLiquidParamsKeepAliveWindow(t *testing.T) {
	water := DefaultWaterParams(neverRNG())
	if water.keepAliveWindow() != water.MoveTime {
		t.Errorf("without an extra window, keepAliveWindow should equal MoveTime")
	}

	wetSand := DefaultWetSandParams()
	if wetSand.keepAliveWindow() != wetSandDryTime {
		t.Errorf("WetSand's keepAliveWindow should equal wetSandDryTime, got %d", wetSand.keepAliveWindow())
	}
}

func TestLiquidParamsRefreshResetsStableTime(t *testing.T) {
	p := DefaultWaterParams(neverRNG())
	p.StableTime = 50
	if got := p.refresh().StableTime; got != 0 {
		t.Errorf("StableTime = %d, want 0", got)
	}
}
