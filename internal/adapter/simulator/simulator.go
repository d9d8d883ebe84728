package simulator

import (
	"math/rand"
	"sync"

	"github.com/bikeguard/backend/internal/core/domain"
)

// Simulator produces illustrative telemetry values for users without a
// reporting device. Values are independent per call; there is no physical
// continuity between requests. One instance is shared by every request,
// so the source is guarded: rand.Rand itself is not safe for concurrent
// use.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed int64) *Simulator {
	return &Simulator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Home coordinates are jittered around lower Manhattan.
const (
	baseLatitude  = 40.7128
	baseLongitude = -74.0060
)

func (s *Simulator) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.rng.Intn(40) + 10)
}

func (s *Simulator) Coordinates() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lat := baseLatitude + (s.rng.Float64()-0.5)*0.01
	lng := baseLongitude + (s.rng.Float64()-0.5)*0.01
	return lat, lng
}

// The device reports online 90% of the time.
func (s *Simulator) DeviceStatus() domain.DeviceStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rng.Float64() > 0.1 {
		return domain.DeviceOnline
	}
	return domain.DeviceOffline
}

func (s *Simulator) Gyroscope() (float64, float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	x := (s.rng.Float64() - 0.5) * 45
	y := (s.rng.Float64() - 0.5) * 45
	z := (s.rng.Float64() - 0.5) * 180
	return x, y, z
}

func (s *Simulator) Accelerometer() (float64, float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	x := (s.rng.Float64() - 0.5) * 20
	y := (s.rng.Float64() - 0.5) * 20
	z := s.rng.Float64()*10 + 8
	return x, y, z
}

func (s *Simulator) GPSAccuracy() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()*5 + 1
}
