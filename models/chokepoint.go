package models

import (
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// Chokepoint is a static registry entry: a named, fixed geographic point of
// maritime significance against which signals are aggregated.
type Chokepoint struct {
	Id        string
	Name      string
	Latitude  float64
	Longitude float64
	Region    string
}

type ChokepointStatus string

const (
	ChokepointOperational ChokepointStatus = "operational"
	ChokepointDegraded    ChokepointStatus = "degraded"
	ChokepointDisrupted   ChokepointStatus = "disrupted"
)

// ChokepointState is the derived status the map overlay consumes.
type ChokepointState struct {
	Chokepoint
	Status      ChokepointStatus
	SignalCount int
}

// ChokepointThresholds is a configuration surface: counts at or above
// DegradedAt classify as degraded, at or above DisruptedAt as disrupted.
type ChokepointThresholds struct {
	DegradedAt  int
	DisruptedAt int
}

func DefaultChokepointThresholds() ChokepointThresholds {
	return ChokepointThresholds{DegradedAt: 1, DisruptedAt: 3}
}

func (t ChokepointThresholds) Classify(count int) ChokepointStatus {
	switch {
	case count >= t.DisruptedAt:
		return ChokepointDisrupted
	case count >= t.DegradedAt:
		return ChokepointDegraded
	default:
		return ChokepointOperational
	}
}

// ChokepointRegistry lists the fixed points surfaces aggregate against.
func ChokepointRegistry() []Chokepoint {
	return []Chokepoint{
		{Id: "suez-canal", Name: "Suez Canal", Latitude: 30.46, Longitude: 32.34, Region: "Middle East"},
		{Id: "panama-canal", Name: "Panama Canal", Latitude: 9.08, Longitude: -79.68, Region: "Central America"},
		{Id: "strait-of-hormuz", Name: "Strait of Hormuz", Latitude: 26.57, Longitude: 56.25, Region: "Middle East"},
		{Id: "strait-of-malacca", Name: "Strait of Malacca", Latitude: 2.5, Longitude: 101.33, Region: "Southeast Asia"},
		{Id: "bab-el-mandeb", Name: "Bab-el-Mandeb", Latitude: 12.58, Longitude: 43.33, Region: "Middle East"},
		{Id: "strait-of-gibraltar", Name: "Strait of Gibraltar", Latitude: 35.95, Longitude: -5.6, Region: "Europe"},
		{Id: "bosporus-strait", Name: "Bosporus Strait", Latitude: 41.12, Longitude: 29.06, Region: "Europe"},
		{Id: "taiwan-strait", Name: "Taiwan Strait", Latitude: 24.5, Longitude: 119.5, Region: "East Asia"},
	}
}

// CanonicalChokepointId normalizes an upstream chokepoint identifier.
// Upstream feeds are not consistent about casing or separators, so
// "Suez_Canal", "suez canal" and "SUEZ-CANAL" all resolve to "suez-canal".
func CanonicalChokepointId(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.ReplaceAll(id, "_", "-")
	id = strings.ReplaceAll(id, " ", "-")
	for strings.Contains(id, "--") {
		id = strings.ReplaceAll(id, "--", "-")
	}
	return id
}

// DeriveChokepointStates fans live signals out over their canonicalized
// chokepoint ids and classifies each registry point by contributing-signal
// count. Pure aggregation with no hysteresis: status may flicker call to
// call if the signal set is volatile, and smoothing is the rendering
// layer's concern.
func DeriveChokepointStates(registry []Chokepoint, signals []Signal, thresholds ChokepointThresholds) []ChokepointState {
	contributing := make(map[string]*set.Set[string], len(registry))
	for _, signal := range signals {
		if !signal.IsLive() {
			continue
		}
		for _, raw := range signal.AffectedChokepoints {
			id := CanonicalChokepointId(raw)
			if contributing[id] == nil {
				contributing[id] = set.New[string](1)
			}
			contributing[id].Insert(signal.Id)
		}
	}

	states := make([]ChokepointState, len(registry))
	for i, point := range registry {
		count := 0
		if s := contributing[point.Id]; s != nil {
			count = s.Size()
		}
		states[i] = ChokepointState{
			Chokepoint:  point,
			Status:      thresholds.Classify(count),
			SignalCount: count,
		}
	}
	return states
}
