// Package runner implements a side-scrolling runner: the player dodges
// obstacles, grabs power-ups for a short speed boost, and scores for every
// obstacle that scrolls past until a collision ends the run.
package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// GameID keys this game's records in score storage.
const GameID = "runner"

// Phase is the lifecycle state of a Game.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunState is the score and lifecycle data of the current run.
type RunState struct {
	RunID         uuid.UUID
	Score         int
	HighScore     int
	ObstacleSpeed float64
	RunStart      time.Time
	Phase         Phase
}

// HighScoreStore persists the best score across runs.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// StepResult reports what one tick did.
type StepResult struct {
	Ran       bool // False when the tick was stale or the game is not running
	Cleared   int  // Obstacles that scrolled off and were scored
	Collected int  // Power-ups picked up
	GameOver  bool // The run ended on this tick
	Score     int
	Duration  time.Duration // Run time so far
}

// Game owns all mutable state of the simulation. It is not safe for
// concurrent use; frontends drive it from their single update loop.
type Game struct {
	cfg        config.RunnerConfig
	clock      core.Clock
	store      HighScoreStore
	logger     *log.Logger
	rng        RandomSource
	spawner    *Spawner
	motion     Motion
	difficulty Difficulty

	entities []Entity
	player   Player
	run      RunState
	boost    core.Timer
	loop     core.Loop
	lastTick time.Time
	endedAt  time.Time
}

// Option configures a Game.
type Option func(*Game)

// WithStore sets the high-score store. The stored value is read once in New.
func WithStore(s HighScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithLogger sets the logger for lifecycle and store messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSeed seeds the spawner RNG. Zero picks a time-based seed.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRandom replaces the spawner RNG.
func WithRandom(r RandomSource) Option {
	return func(g *Game) { g.rng = r }
}

// New creates a game in the Idle phase.
func New(cfg config.RunnerConfig, clock core.Clock, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		clock:      clock,
		motion:     NewMotion(cfg),
		difficulty: NewDifficulty(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.spawner = NewSpawner(cfg.Spawner, cfg.PlayArea, g.rng)

	g.run.HighScore = g.loadHighScore()
	g.resetRun(clock.Now())
	g.run.Phase = PhaseIdle
	return g
}

// ID returns the storage key of the game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Side Runner"
}

// Clock returns the time source driving the simulation.
func (g *Game) Clock() core.Clock {
	return g.clock
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Start begins the first run. It returns the tick generation to stamp ticks
// with, and false when the game is not Idle.
func (g *Game) Start() (uint64, bool) {
	if g.run.Phase != PhaseIdle {
		return 0, false
	}
	return g.begin(), true
}

// Restart begins a new run after game over. It returns false unless the
// game is in the GameOver phase.
func (g *Game) Restart() (uint64, bool) {
	if g.run.Phase != PhaseGameOver {
		return 0, false
	}
	return g.begin(), true
}

func (g *Game) begin() uint64 {
	now := g.clock.Now()
	g.resetRun(now)
	g.run.Phase = PhaseRunning
	gen := g.loop.Start()
	g.logger.Debug("run started", "run", g.run.RunID, "gen", gen, "high_score", g.run.HighScore)
	return gen
}

// resetRun clears all per-run state. The high score survives.
func (g *Game) resetRun(now time.Time) {
	g.entities = g.entities[:0]
	g.player = Player{X: g.cfg.Player.StartX}
	g.boost.Cancel()
	g.spawner.Reset()
	g.run.RunID = uuid.New()
	g.run.Score = 0
	g.run.ObstacleSpeed = g.difficulty.Base()
	g.run.RunStart = now
	g.lastTick = now
	g.endedAt = time.Time{}
}

// Tick runs one step of the pipeline: boost expiry, difficulty, spawning,
// motion with off-screen scoring, collision, and effect resolution.
// A tick whose generation is stale, or that arrives outside the Running
// phase, does nothing.
func (g *Game) Tick(gen uint64, in core.InputFrame) StepResult {
	if g.run.Phase != PhaseRunning || !g.loop.Accept(gen) {
		return StepResult{Score: g.run.Score}
	}

	now := g.clock.Now()
	frames := g.motion.Frames(now.Sub(g.lastTick))
	if now.After(g.lastTick) {
		g.lastTick = now
	}
	res := StepResult{Ran: true}

	if g.boost.Expired(now) {
		g.endBoost()
	}

	if speed := g.difficulty.SpeedFor(now.Sub(g.run.RunStart)); speed > g.run.ObstacleSpeed {
		g.run.ObstacleSpeed = speed
	}

	if e, ok := g.spawner.MaybeSpawn(now); ok {
		g.entities = append(g.entities, e)
	}

	if in.Has(core.ActionJump) {
		g.motion.StartJump(&g.player, now)
	}

	var cleared int
	g.entities, cleared = g.motion.Advance(g.entities, &g.player, in, g.run.ObstacleSpeed, now, frames)
	for i := 0; i < cleared; i++ {
		g.credit(g.cfg.Scoring.ObstacleCleared)
	}
	res.Cleared = cleared

	hitbox := PlayerHitbox(g.player, g.cfg.PlayArea, g.cfg.Player)
	marked := make(map[int]bool)
	for _, eff := range Detect(hitbox, g.entities) {
		if eff.Kind == EffectHit {
			g.gameOver(now)
			res.GameOver = true
			break
		}
		g.collect(now)
		marked[eff.Index] = true
		res.Collected++
	}
	g.entities = RemoveMarked(g.entities, marked)

	res.Score = g.run.Score
	res.Duration = g.runDuration(now)
	return res
}

// credit adds points and persists a new high score when it is beaten.
func (g *Game) credit(points int) {
	g.run.Score += points
	if g.run.Score <= g.run.HighScore {
		return
	}
	g.run.HighScore = g.run.Score
	if g.store == nil {
		return
	}
	if err := g.store.SetHighScore(g.run.HighScore); err != nil {
		g.logger.Warn("could not save high score", "score", g.run.HighScore, "error", err)
	}
}

// collect starts or refreshes the boost. A refresh replaces the deadline.
func (g *Game) collect(now time.Time) {
	g.boost.Arm(now, g.cfg.Boost.Duration())
	g.player.Boosted = true
	g.player.BoostEnd = g.boost.Deadline()
}

func (g *Game) endBoost() {
	g.boost.Cancel()
	g.player.Boosted = false
	g.player.BoostEnd = time.Time{}
}

func (g *Game) gameOver(now time.Time) {
	g.run.Phase = PhaseGameOver
	g.loop.Stop()
	g.endedAt = now
	g.logger.Debug("game over", "run", g.run.RunID, "score", g.run.Score, "duration", g.runDuration(now))
}

func (g *Game) runDuration(now time.Time) time.Duration {
	if !g.endedAt.IsZero() {
		now = g.endedAt
	}
	if d := now.Sub(g.run.RunStart); d > 0 {
		return d
	}
	return 0
}

func (g *Game) loadHighScore() int {
	if g.store == nil {
		return 0
	}
	hs, err := g.store.HighScore()
	if err != nil || hs < 0 {
		g.logger.Warn("could not load high score, starting from 0", "error", err)
		return 0
	}
	return hs
}

// State returns a copy of the run state.
func (g *Game) State() RunState {
	return g.run
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.run.Phase
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Entities returns a copy of the active entities in spawn order.
func (g *Game) Entities() []Entity {
	out := make([]Entity, len(g.entities))
	copy(out, g.entities)
	return out
}

// Generation returns the current tick generation.
func (g *Game) Generation() uint64 {
	return g.loop.Generation()
}

// Ticking reports whether the tick loop is scheduled.
func (g *Game) Ticking() bool {
	return g.loop.Running()
}

// BoostRemaining returns how long the current boost has left.
func (g *Game) BoostRemaining() time.Duration {
	return g.boost.Remaining(g.clock.Now())
}

// Duration returns the length of the current (or just finished) run.
func (g *Game) Duration() time.Duration {
	if g.run.Phase == PhaseIdle {
		return 0
	}
	return g.runDuration(g.clock.Now())
}
