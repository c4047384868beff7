package usecase

import (
	"fmt"
	"math"

	"github.com/piresc/nebengjek-ride-demo/internal/pkg/models"
	"github.com/piresc/nebengjek-ride-demo/internal/utils"
)

// SimulationStep is the driver state after one tick
type SimulationStep struct {
	Step       int
	Position   models.Coordinate
	DistanceKm float64
	ETAMinutes int
	Done       bool
}

// Simulation moves a driver from start to target in a fixed number of
// equal steps. The increment is computed once up front.
type Simulation struct {
	start        models.Coordinate
	target       models.Coordinate
	latIncrement float64
	lngIncrement float64
	totalSteps   int
	step         int
}

// NewSimulation prepares a simulation of totalSteps ticks
func NewSimulation(start, target models.Coordinate, totalSteps int) *Simulation {
	if totalSteps < 1 {
		totalSteps = 1
	}
	return &Simulation{
		start:        start,
		target:       target,
		latIncrement: (start.Latitude - target.Latitude) / float64(totalSteps),
		lngIncrement: (start.Longitude - target.Longitude) / float64(totalSteps),
		totalSteps:   totalSteps,
	}
}

// Advance moves the driver one step. Once done it keeps returning the
// final step without moving.
func (s *Simulation) Advance() SimulationStep {
	if s.step < s.totalSteps {
		s.step++
	}
	pos := s.Position()
	distance := utils.CalculateDistance(pos, s.target)
	return SimulationStep{
		Step:       s.step,
		Position:   pos,
		DistanceKm: distance,
		ETAMinutes: EstimateETA(distance),
		Done:       s.Done(),
	}
}

// Position returns the driver position at the current step
func (s *Simulation) Position() models.Coordinate {
	if s.step >= s.totalSteps {
		return s.target
	}
	return models.Coordinate{
		Latitude:  s.start.Latitude - s.latIncrement*float64(s.step),
		Longitude: s.start.Longitude - s.lngIncrement*float64(s.step),
	}
}

// Step returns how many ticks have been taken
func (s *Simulation) Step() int {
	return s.step
}

// Done reports whether the driver reached the target
func (s *Simulation) Done() bool {
	return s.step >= s.totalSteps
}

// EstimateETA is 3 minutes per km plus one, rounded to whole minutes
func EstimateETA(distanceKm float64) int {
	return int(math.Round(distanceKm*3 + 1))
}

// FormatDistance renders a distance with one decimal, e.g. "1.5 km"
func FormatDistance(distanceKm float64) string {
	return fmt.Sprintf("%.1f km", distanceKm)
}

// FormatETA renders minutes, e.g. "4 min"
func FormatETA(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}
