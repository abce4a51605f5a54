package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/ivasilev/popchain/internal/config"
)

// Balloon is a live entity rising through the play area.
// Y is the altitude above the ground line in cells, increasing upward;
// Speed is in cells per second. Popped is a one-way flag: a popped
// balloon lingers briefly for the pop effect, then leaves the live set.
type Balloon struct {
	ID     int
	Hue    Hue
	X      int
	Y      float64
	Speed  float64
	Popped bool

	poppedFor float64 // seconds since the pop transition
}

// pacingState is the explicit state of the spawn pacing loop.
// Spawn waits are cooperative: the field only moves between states when
// Tick observes the pending wait has elapsed.
type pacingState int

const (
	pacingIdle         pacingState = iota // not spawning
	pacingInitialDelay                    // fixed delay before the first interval
	pacingWaiting                         // waiting out a random spawn interval
)

// FieldHooks are the presentation notifications fired by a BalloonField.
type FieldHooks struct {
	BalloonSpawned  func(Balloon)
	BalloonRemoved  func(id int)
	SpawningStarted func()
}

// BalloonField owns the live balloon collection and the spawn/cleanup
// pacing. Spawning is gated by an injected should-spawn predicate;
// cleanup runs on every tick regardless.
type BalloonField struct {
	cfg    config.Balloons
	rng    *rand.Rand
	logger *log.Logger
	hooks  FieldHooks

	balloons []Balloon
	nextID   int

	shouldSpawn func() bool
	minX, maxX  int
	ceiling     float64 // altitude at which unpopped balloons are reaped

	pacing   pacingState
	waitLeft float64
	notified bool // one-shot SpawningStarted fired for this spawning session
}

// NewBalloonField creates a field drawing randomness from rng.
// A nil logger disables diagnostics.
func NewBalloonField(cfg config.Balloons, rng *rand.Rand, logger *log.Logger, hooks FieldHooks) *BalloonField {
	if logger == nil {
		logger = discardLogger()
	}
	f := &BalloonField{
		cfg:      cfg,
		rng:      rng,
		logger:   logger,
		hooks:    hooks,
		balloons: make([]Balloon, 0, 16),
		ceiling:  cfg.DestroyAltitude,
	}
	return f
}

// SetShouldSpawn installs the predicate consulted before each spawn.
// A nil predicate permits spawning unconditionally.
func (f *BalloonField) SetShouldSpawn(pred func() bool) {
	f.shouldSpawn = pred
}

// SetBounds sets the inclusive horizontal spawn range in cells.
func (f *BalloonField) SetBounds(minX, maxX int) {
	f.minX = minX
	f.maxX = maxX
}

// SetCeiling sets the destroy altitude. Balloons whose altitude reaches
// it are removed unpopped. Overrides any configured value.
func (f *BalloonField) SetCeiling(alt float64) {
	f.ceiling = alt
}

// StartSpawning begins a fresh spawning session: any pending wait is
// cancelled, the one-shot started notification is re-armed, and the
// initial fixed delay starts. Idempotent; calling it twice leaves
// exactly one pacing loop.
func (f *BalloonField) StartSpawning() {
	f.pacing = pacingInitialDelay
	f.waitLeft = f.cfg.InitialSpawnDelay
	f.notified = false
}

// StopSpawning cancels the pacing loop. Already-live balloons are
// unaffected. Safe to call when nothing is pending.
func (f *BalloonField) StopSpawning() {
	f.pacing = pacingIdle
	f.waitLeft = 0
}

// ClearAll destroys every live balloon immediately.
func (f *BalloonField) ClearAll() {
	for i := range f.balloons {
		if f.hooks.BalloonRemoved != nil {
			f.hooks.BalloonRemoved(f.balloons[i].ID)
		}
	}
	f.balloons = f.balloons[:0]
}

// Tick advances the pacing timers and runs cleanup. dt is elapsed
// seconds since the previous tick.
func (f *BalloonField) Tick(dt float64) {
	f.tickPacing(dt)
	f.tickCleanup(dt)
}

func (f *BalloonField) tickPacing(dt float64) {
	switch f.pacing {
	case pacingInitialDelay:
		f.waitLeft -= dt
		if f.waitLeft > 0 {
			return
		}
		// The started notification precedes the first interval wait and
		// fires at most once per spawning session.
		if !f.notified {
			f.notified = true
			if f.hooks.SpawningStarted != nil {
				f.hooks.SpawningStarted()
			}
		}
		f.pacing = pacingWaiting
		f.waitLeft = f.nextInterval()

	case pacingWaiting:
		f.waitLeft -= dt
		if f.waitLeft > 0 {
			return
		}
		if f.shouldSpawn == nil || f.shouldSpawn() {
			f.spawn()
		}
		f.waitLeft = f.nextInterval()
	}
}

// tickCleanup advances balloon positions and reaps balloons past the
// ceiling or past their pop linger. Runs even while spawning is stopped.
func (f *BalloonField) tickCleanup(dt float64) {
	live := f.balloons[:0]
	for i := range f.balloons {
		b := f.balloons[i]
		if b.Popped {
			b.poppedFor += dt
		} else {
			b.Y += b.Speed * dt
		}

		gone := (!b.Popped && f.ceiling > 0 && b.Y >= f.ceiling) ||
			(b.Popped && b.poppedFor >= f.cfg.PopLingerSeconds)
		if gone {
			if f.hooks.BalloonRemoved != nil {
				f.hooks.BalloonRemoved(b.ID)
			}
			continue
		}
		live = append(live, b)
	}
	f.balloons = live
}

// spawn creates one balloon with uniform-random position, hue, and rise
// speed. Invalid spawn configuration is a reported, non-fatal error: the
// attempt is skipped and pacing continues.
func (f *BalloonField) spawn() {
	if f.maxX < f.minX || f.cfg.FloatSpeedMax < f.cfg.FloatSpeedMin || f.cfg.FloatSpeedMax <= 0 {
		f.logger.Warn("skipping spawn: invalid spawn configuration",
			"minX", f.minX, "maxX", f.maxX,
			"speedMin", f.cfg.FloatSpeedMin, "speedMax", f.cfg.FloatSpeedMax)
		return
	}

	b := Balloon{
		ID:    f.nextID,
		Hue:   RandomHue(f.rng),
		X:     f.minX + f.rng.Intn(f.maxX-f.minX+1),
		Y:     f.cfg.SpawnAltitude,
		Speed: f.cfg.FloatSpeedMin + f.rng.Float64()*(f.cfg.FloatSpeedMax-f.cfg.FloatSpeedMin),
	}
	f.nextID++
	f.balloons = append(f.balloons, b)

	if f.hooks.BalloonSpawned != nil {
		f.hooks.BalloonSpawned(b)
	}
}

// nextInterval draws a uniform wait from the configured interval bounds.
func (f *BalloonField) nextInterval() float64 {
	min, max := f.cfg.SpawnIntervalMin, f.cfg.SpawnIntervalMax
	if max < min {
		max = min
	}
	return min + f.rng.Float64()*(max-min)
}

// Pop marks the balloon popped and returns its hue. The transition is
// one-way: re-popping or popping an unknown id returns false.
func (f *BalloonField) Pop(id int) (Hue, bool) {
	for i := range f.balloons {
		if f.balloons[i].ID != id {
			continue
		}
		if f.balloons[i].Popped {
			return 0, false
		}
		f.balloons[i].Popped = true
		f.balloons[i].poppedFor = 0
		return f.balloons[i].Hue, true
	}
	return 0, false
}

// Balloons returns a copy of the live set.
func (f *BalloonField) Balloons() []Balloon {
	out := make([]Balloon, len(f.balloons))
	copy(out, f.balloons)
	return out
}

// Len returns the number of live balloons (popped-but-lingering included).
func (f *BalloonField) Len() int {
	return len(f.balloons)
}

// Spawning reports whether a pacing loop is pending.
func (f *BalloonField) Spawning() bool {
	return f.pacing != pacingIdle
}
