// Package seed generates randomized roster records for demo sessions and
// load-shaped fixtures. It is injected where batch creation is exposed and
// never runs inside the derivation paths.
package seed

import (
	"math"
	"math/rand"
	"time"

	"github.com/rakhadjo/internhub/internal/models"
)

type idGenerator interface {
	NextID() string
}

// Factory produces blank-named interns with randomized field values. The RNG
// and ID generator are injected so tests can pin a seed and get identical
// batches.
type Factory struct {
	rng    *rand.Rand
	ids    idGenerator
	target int
}

// NewFactory builds a factory. A nil rng falls back to a time-seeded source.
func NewFactory(rng *rand.Rand, ids idGenerator, target int) *Factory {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if target <= 0 {
		target = models.DefaultSpeakersTarget
	}
	return &Factory{rng: rng, ids: ids, target: target}
}

// Batch produces n randomized records.
func (f *Factory) Batch(n int) []models.Intern {
	out := make([]models.Intern, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.Intern())
	}
	return out
}

// Intern produces one randomized record. Field weights follow the observed
// roster distribution: 85% active, 65% excel submitted, 55% AI chat done,
// 45% data mining done, 8% segregated, 60% good performance, 30% data
// repurposed. The sheet status is not drawn; it is derived at creation time
// through the same consistency rules that govern mutations.
func (f *Factory) Intern() models.Intern {
	in := models.Intern{
		ID:             f.ids.NextID(),
		ActivityStatus: f.activity(),
		ExcelSubmitted: f.yesNo(0.65),
		AIChatAdded:    f.rng.Float64() < 0.55,
		DataMiningGC:   f.rng.Float64() < 0.45,
		SpeakersTarget: f.target,
		Performance:    f.performance(),
		SheetStatus:    models.SheetRed,
		DataRepurposed: f.yesNo(0.30),
	}
	in = models.ApplySegregation(in, f.segregation())
	in = models.ApplySpeakers(in, f.speakers())
	return in
}

func (f *Factory) activity() models.ActivityStatus {
	switch r := f.rng.Float64(); {
	case r < 0.85:
		return models.ActivityActive
	case r < 0.95:
		return models.ActivityInactive
	default:
		return models.ActivityLeave
	}
}

func (f *Factory) performance() models.Performance {
	if f.rng.Float64() < 0.60 {
		return models.PerformanceGood
	}
	return models.PerformanceWeak
}

func (f *Factory) segregation() models.Segregation {
	if f.rng.Float64() >= 0.08 {
		return models.SegregationNone
	}
	values := []models.Segregation{
		models.SegregationResign,
		models.SegregationWarning,
		models.SegregationTerminated,
		models.SegregationRelocated,
	}
	return values[f.rng.Intn(len(values))]
}

// speakers skews low: most interns are far from the target, a few past it.
func (f *Factory) speakers() int {
	r := f.rng.Float64()
	return int(math.Round(r * r * 1.3 * float64(f.target)))
}

func (f *Factory) yesNo(p float64) models.YesNo {
	if f.rng.Float64() < p {
		return models.Yes
	}
	return models.No
}
