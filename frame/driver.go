package frame

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/driftgraph/config"
	"github.com/katalvlaran/driftgraph/core"
	"github.com/katalvlaran/driftgraph/edges"
	"github.com/katalvlaran/driftgraph/kinematics"
)

// State is the lifecycle state of a Driver.
type State int

const (
	// Idle is the state before Init.
	Idle State = iota
	// Running steps periodically.
	Running
	// Stopped is terminal: the host asked to stop or a step failed.
	Stopped
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Frame is one simulation output handed to the Renderer.
type Frame struct {
	Seq      uint64
	Viewport core.Viewport
	Nodes    []core.Node
	Edges    []core.Edge
}

// clone deep-copies the collections so the caller may keep f.
func (f Frame) clone() Frame {
	f.Nodes = append([]core.Node(nil), f.Nodes...)
	f.Edges = append([]core.Edge(nil), f.Edges...)
	return f
}

// DimensionProvider reports the host viewport size.
type DimensionProvider interface {
	Size() (core.Size, error)
}

// SizeFunc adapts a function to DimensionProvider.
type SizeFunc func() (core.Size, error)

// Size calls f.
func (f SizeFunc) Size() (core.Size, error) { return f() }

// FixedSize is a DimensionProvider that never changes.
type FixedSize core.Size

// Size returns s.
func (s FixedSize) Size() (core.Size, error) { return core.Size(s), nil }

// Renderer consumes frames. Render must not retain f past the call unless it
// copies the slices.
type Renderer interface {
	Render(f Frame) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Frame) error

// Render calls f.
func (f RenderFunc) Render(fr Frame) error { return f(fr) }

// Driver owns the simulation state between frames.
type Driver struct {
	mu       sync.Mutex
	state    State
	params   config.Params
	sim      *kinematics.Simulator
	vp       core.Viewport
	nodes    []core.Node
	edges    []core.Edge
	seq      uint64
	interval time.Duration
	log      *zap.Logger
	metrics  *Metrics
	runID    string

	stop     chan struct{}
	stopOnce sync.Once
}

type stepStats struct {
	spawned, removed int
	nodes, edges     int
	treeEdges        int
	elapsed          time.Duration
}

// NewDriver validates p and builds an Idle driver.
//
// Steps:
//  1. Validate p (wraps config.ErrInvalidParams).
//  2. Apply options over the defaults.
//  3. Seed the spawner: WithRand/WithSeed, else p.Seed (0 means the clock).
func NewDriver(p config.Params, opts ...Option) (*Driver, error) {
	// 1. Parameters.
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("NewDriver: %w", err)
	}

	// 2. Options.
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Randomness.
	rng := cfg.rng
	if rng == nil {
		rng = kinematics.RandFromSeed(p.Seed)
	}

	runID := uuid.NewString()

	return &Driver{
		state:    Idle,
		params:   p,
		sim:      kinematics.NewSimulator(rng),
		interval: cfg.interval,
		log:      cfg.log.With(zap.String("run_id", runID)),
		metrics:  cfg.metrics,
		runID:    runID,
		stop:     make(chan struct{}),
	}, nil
}

// RunID returns the identifier attached to every log line of this driver.
func (d *Driver) RunID() string { return d.runID }

// State returns the current lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Params returns the parameters the next step will use.
func (d *Driver) Params() config.Params {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.params
}

// SetParams validates p and, on success, makes it effective from the next
// step. On failure the live parameters are untouched.
func (d *Driver) SetParams(p config.Params) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("SetParams: %w", err)
	}
	d.mu.Lock()
	d.params = p
	d.mu.Unlock()
	d.log.Info("params updated",
		zap.Int("ideal_num_nodes", p.IdealNumNodes),
		zap.Int("max_extra_edges", p.MaxExtraEdges()),
		zap.String("method", p.SpanningMethod))

	return nil
}

// Init moves the driver from Idle to Running with an empty node set.
func (d *Driver) Init(size core.Size) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case Running:
		return ErrAlreadyInitialized
	case Stopped:
		return ErrStopped
	}
	vp, err := core.Normalize(size)
	if err != nil {
		return fmt.Errorf("Init: %w", err)
	}
	d.vp = vp
	d.nodes = nil
	d.edges = nil
	d.state = Running
	d.log.Info("driver running",
		zap.Float64("viewport_width", vp.Width),
		zap.Float64("viewport_height", vp.Height))

	return nil
}

// Step advances the simulation by one frame and returns a copy of it.
//
// Steps:
//  1. Recompute the viewport; an unusable size keeps the previous viewport.
//  2. Node kinematics.
//  3. Edge weighting, selection and reconciliation.
//  4. Commit the new collections and record metrics.
//
// A panic or error in 2–3 stops the driver and returns ErrStepFailed.
func (d *Driver) Step(size core.Size) (Frame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case Idle:
		return Frame{}, ErrNotRunning
	case Stopped:
		return Frame{}, ErrStopped
	}

	f, err := d.stepLocked(size)
	if err != nil {
		d.haltLocked()
		d.log.Error("step failed, stopping", zap.Uint64("seq", d.seq+1), zap.Error(err))
		return Frame{}, err
	}

	return f.clone(), nil
}

func (d *Driver) stepLocked(size core.Size) (f Frame, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrStepFailed, r)
		}
	}()
	start := time.Now()

	// 1. Viewport.
	if vp, nerr := core.Normalize(size); nerr == nil {
		d.vp = vp
	} else {
		d.log.Warn("ignoring unusable viewport size", zap.Error(nerr))
	}

	// 2. Nodes.
	p := d.params
	nodes := d.sim.Advance(d.vp, d.nodes, kinematics.Params{
		IdealNumNodes:  p.IdealNumNodes,
		DriftSpeed:     p.DriftSpeed,
		Repulsion:      p.Repulsion,
		RepulsionForce: p.RepulsionForce,
		ForcePasses:    p.ForcePasses,
	})

	// 3. Edges.
	live, ideal, err := edges.Update(nodes, d.edges, edges.Options{
		RadiiWeightPower: p.RadiiWeightPower,
		MaxExtraEdges:    p.MaxExtraEdges(),
		Method:           p.SpanningMethod,
	})
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %w", ErrStepFailed, err)
	}

	// 4. Commit.
	stats := populationDelta(d.nodes, nodes)
	d.nodes = nodes
	d.edges = live
	d.seq++

	stats.nodes = len(nodes)
	stats.edges = len(live)
	stats.treeEdges = ideal.TreeLen
	stats.elapsed = time.Since(start)
	d.metrics.observe(stats)
	d.log.Debug("step",
		zap.Uint64("seq", d.seq),
		zap.Int("nodes", stats.nodes),
		zap.Int("edges", stats.edges),
		zap.Int("spawned", stats.spawned),
		zap.Int("removed", stats.removed),
		zap.Duration("elapsed", stats.elapsed))

	return Frame{Seq: d.seq, Viewport: d.vp, Nodes: d.nodes, Edges: d.edges}, nil
}

// populationDelta counts nodes that appeared in or vanished from next.
func populationDelta(prev, next []core.Node) stepStats {
	before := core.IndexNodes(prev)
	var s stepStats
	kept := 0
	for _, n := range next {
		if _, ok := before[n.ID]; ok {
			kept++
		} else {
			s.spawned++
		}
	}
	s.removed = len(prev) - kept

	return s
}

// Snapshot returns a deep copy of the latest frame (Seq 0 before any step).
func (d *Driver) Snapshot() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Frame{Seq: d.seq, Viewport: d.vp, Nodes: d.nodes, Edges: d.edges}.clone()
}

// Stop halts the driver; no further steps are scheduled. Idempotent.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != Stopped {
		d.log.Info("driver stopped", zap.Uint64("seq", d.seq))
	}
	d.haltLocked()
}

func (d *Driver) haltLocked() {
	d.state = Stopped
	d.stopOnce.Do(func() { close(d.stop) })
}

// Run initialises the driver if needed and then steps, renders and waits
// d.interval until stopped.
//
// Returns nil on Stop or context cancellation. Any size, step or render error
// is fatal: the driver stops and the error is returned.
func (d *Driver) Run(ctx context.Context, dp DimensionProvider, r Renderer) error {
	// 1. Idle → Running.
	if d.State() == Idle {
		size, err := dp.Size()
		if err != nil {
			d.Stop()
			return fmt.Errorf("Run: size: %w", err)
		}
		if err := d.Init(size); err != nil && !errors.Is(err, ErrAlreadyInitialized) {
			return fmt.Errorf("Run: %w", err)
		}
	}

	// 2. One timer, reset after each render: at most one pending step.
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return nil
		case <-d.stop:
			return nil
		case <-timer.C:
		}
		if ctx.Err() != nil {
			d.Stop()
			return nil
		}

		size, err := dp.Size()
		if err != nil {
			d.Stop()
			return fmt.Errorf("Run: size: %w", err)
		}
		f, err := d.Step(size)
		if errors.Is(err, ErrStopped) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}
		if err := r.Render(f); err != nil {
			d.Stop()
			return fmt.Errorf("Run: render frame %d: %w", f.Seq, err)
		}

		timer.Reset(d.interval)
	}
}
