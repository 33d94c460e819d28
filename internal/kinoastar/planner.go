// Package kinoastar implements the kinodynamic A* search: the component
// that wires StateIntegrator, HeuristicSolver, ShotTrajectory, NodeIndex,
// and OpenSet into the expansion loop described in spec.md §4.7.
package kinoastar

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/basalt-robotics/kinoplan/internal/core"
	"github.com/basalt-robotics/kinoplan/internal/dynamics"
	"github.com/basalt-robotics/kinoplan/internal/heuristic"
	"github.com/basalt-robotics/kinoplan/internal/oracle"
	"github.com/basalt-robotics/kinoplan/internal/shot"
)

// controlSamples is the fixed acceleration grid enumerated at every
// expansion, iterated in a fixed order so ties in f_score resolve
// identically across runs (spec.md §9 "Determinism").
func controlSamples(aMax float64) []core.Vec3 {
	levels := [3]float64{-aMax, 0, aMax}
	samples := make([]core.Vec3, 0, 27)
	for _, x := range levels {
		for _, y := range levels {
			for _, z := range levels {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				samples = append(samples, core.NewVec3(x, y, z))
			}
		}
	}
	return samples
}

// Planner is the kinodynamic A* search core. It owns a node pool, the two
// hash indices, and an open set, and wires them together with an
// integrator, heuristic solver, oracle, and shot attempts per search.
type Planner struct {
	cfg    Config
	log    *zap.Logger
	origin core.Vec3
	bounds core.Bounds

	oracle  oracle.DistanceOracle
	heur    heuristic.Solver
	pool    *core.Pool
	index   *NodeIndex
	open    *OpenSet
	samples []core.Vec3

	hasPath    bool
	terminal   int // pool index of the terminal node, or core.NoParent
	shotToGoal shot.Trajectory
	goal       core.State
	visited    []int // pool indices, in pop order
	tStart     float64
	startAcc   core.Vec3 // caller-supplied as, for GetSamples' boundary condition
}

// NewPlanner constructs a Planner with a nop logger; use WithLogger to
// attach one.
func NewPlanner() *Planner {
	return &Planner{
		log:      zap.NewNop(),
		index:    NewNodeIndex(),
		open:     NewOpenSet(),
		terminal: core.NoParent,
	}
}

// WithLogger attaches a structured logger, returning the planner for
// chaining.
func (p *Planner) WithLogger(log *zap.Logger) *Planner {
	p.log = log
	return p
}

// Init sets the map bounds and the origin used for position-cell
// quantization (spec.md §6 "init").
func (p *Planner) Init(min, max, origin core.Vec3) {
	p.bounds = core.Bounds{Min: min, Max: max}
	p.origin = origin
}

// SetEnvironment supplies the DistanceOracle used for collision checks.
func (p *Planner) SetEnvironment(o oracle.DistanceOracle) {
	p.oracle = o
}

// SetParam validates and installs the search configuration, (re)builds
// the node pool, and wires the heuristic solver's velocity bound.
func (p *Planner) SetParam(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.cfg = cfg
	p.heur = heuristic.NewSolver(cfg.WTime, cfg.MaxVel)
	p.pool = core.NewPool(cfg.AllocateNum)
	p.samples = controlSamples(cfg.MaxAcc)
	return nil
}

// Reset rewinds the pool, clears both indices and the open set, and
// clears has_path (spec.md §6 "reset").
func (p *Planner) Reset() {
	p.pool.Reset()
	p.index.Clear()
	p.open.Clear()
	p.hasPath = false
	p.terminal = core.NoParent
	p.shotToGoal = shot.Trajectory{}
	p.visited = nil
}

// Search runs the kinodynamic A* loop from (ps,vs,as) to (pg,vg) and
// returns the terminal Status. ctx is checked once per popped node
// (spec.md's expansion is synchronous; cancellation is only observed
// between iterations, not mid-expansion) — a cancelled context yields
// NoPath exactly like open-set exhaustion.
//
// When dynamic is true, the search additionally indexes nodes by time
// cell so that the same position can be revisited at a different time,
// and the root's Time is seeded from tStart (0 otherwise, per spec.md
// §4.7 step 1). A negative tStart is clamped to 0 regardless of dynamic
// (spec.md §9 open question resolution). as is the caller's current
// acceleration; it plays no role in the search itself but is retained
// verbatim as GetSamples' start-acceleration boundary condition.
func (p *Planner) Search(ctx context.Context, ps, vs, as core.Vec3, pg, vg core.Vec3, dynamic bool, tStart float64) Status {
	searchID := uuid.NewString()
	log := p.log.With(zap.String("search_id", searchID))

	if tStart < 0 {
		tStart = 0
	}
	p.tStart = tStart
	p.startAcc = as

	start := core.State{Pos: ps, Vel: vs}
	goal := core.State{Pos: pg, Vel: vg}
	p.goal = goal

	root, ok := p.pool.Allocate()
	if !ok {
		log.Warn("node pool has zero capacity")
		return NoPath
	}
	root.State = start
	root.Parent = core.NoParent
	root.GScore = 0
	hCost, hT := p.heur.Estimate(start, goal)
	root.FScore = p.cfg.LambdaHeu * hCost
	if dynamic {
		root.Time = tStart
	} else {
		root.Time = 0
	}
	root.Cell = core.PosToCell(start.Pos, p.origin, p.cfg.Resolution)
	if dynamic {
		root.TCell = core.TimeToIndex(root.Time, p.tStart, p.cfg.TimeResolution)
	}

	p.index.Insert(root, dynamic)
	p.open.Push(root)

	withinHorizon := core.InfNorm(start.Pos, goal.Pos) < p.cfg.Horizon
	if shotTraj, ok := p.tryShot(start, goal, hT); ok && withinHorizon {
		p.hasPath = true
		p.terminal = root.Self
		p.shotToGoal = shotTraj
		root.ShotToGoal = true
		log.Info("reached goal on initial shot", zap.Float64("t_shot", shotTraj.T))
		return ReachEnd
	}

	p.visited = p.visited[:0]

	for {
		select {
		case <-ctx.Done():
			log.Info("search cancelled", zap.Int("iterations", len(p.visited)))
			return NoPath
		default:
		}

		n, ok := p.open.Pop()
		if !ok {
			log.Info("open set exhausted", zap.Int("iterations", len(p.visited)))
			return NoPath
		}
		// A duplicate heap slot for a node already closed by an earlier
		// pop of the same pointer; discard rather than re-expand it.
		if n.NodeState == core.InClosed {
			continue
		}
		n.NodeState = core.InClosed
		p.visited = append(p.visited, n.Self)

		if core.InfNorm(n.State.Pos, goal.Pos) >= p.cfg.Horizon {
			p.hasPath = true
			p.terminal = n.Self
			log.Info("reached horizon", zap.Int("iterations", len(p.visited)))
			return ReachHorizon
		}

		_, hT := p.heur.Estimate(n.State, goal)
		if shotTraj, ok := p.tryShot(n.State, goal, hT); ok {
			p.hasPath = true
			p.terminal = n.Self
			p.shotToGoal = shotTraj
			n.ShotToGoal = true
			log.Info("reached goal via shot", zap.Int("iterations", len(p.visited)), zap.Float64("t_shot", shotTraj.T))
			return ReachEnd
		}

		durations := p.expansionDurations(n)
		for _, tau := range durations {
			for _, u := range p.samples {
				p.expand(n, u, tau, goal, dynamic)
			}
		}

		if p.pool.Exhausted() {
			log.Info("pool exhausted", zap.Int("iterations", len(p.visited)))
			return NoPath
		}
	}
}

// expansionDurations returns the τ set for a node: a single
// first-expansion duration at the root, {0.5*max_tau, max_tau} otherwise.
func (p *Planner) expansionDurations(n *core.Node) []float64 {
	if n.Parent == core.NoParent {
		return []float64{p.cfg.InitMaxTau}
	}
	return []float64{0.5 * p.cfg.MaxTau, p.cfg.MaxTau}
}

// tryShot attempts a one-shot polynomial connection from x to goal using
// the heuristic's optimal time T.
func (p *Planner) tryShot(x, goal core.State, shotT float64) (shot.Trajectory, bool) {
	return shot.Attempt(x, goal, shotT, shot.FeasibilityParams{
		VMax:     p.cfg.MaxVel,
		AMax:     p.cfg.MaxAcc,
		Margin:   p.cfg.Margin,
		Bounds:   p.bounds,
		CheckNum: p.cfg.CheckNum,
		Oracle:   p.oracle,
	})
}

// expand evaluates one (u, tau) child of n and folds it into the open
// set / indices per spec.md §4.7 step 4.
func (p *Planner) expand(n *core.Node, u core.Vec3, tau float64, goal core.State, dynamic bool) {
	sPrime := dynamics.Integrate(n.State, u, tau)
	if core.MaxAbsComponent(sPrime.Vel) > p.cfg.MaxVel {
		return
	}
	if !p.bounds.Contains(sPrime.Pos) {
		return
	}

	cellPrime := core.PosToCell(sPrime.Pos, p.origin, p.cfg.Resolution)
	tPrime := n.Time + tau
	var tCellPrime int
	if dynamic {
		tCellPrime = core.TimeToIndex(tPrime, p.tStart, p.cfg.TimeResolution)
	}
	if cellPrime == n.Cell && (!dynamic || tCellPrime == n.TCell) {
		return
	}

	if !p.segmentClear(n.State, u, tau) {
		return
	}

	gPrime := n.GScore + (u.Dot(u)+p.cfg.WTime)*tau
	hCost, _ := p.heur.Estimate(sPrime, goal)
	fPrime := gPrime + p.cfg.LambdaHeu*hCost

	var existing *core.Node
	var found bool
	if dynamic {
		existing, found = p.index.FindDynamic(cellPrime, tCellPrime)
	} else {
		existing, found = p.index.Find(cellPrime)
	}

	if found {
		if existing.NodeState == core.InOpen && fPrime < existing.FScore {
			existing.Parent = n.Self
			existing.Input = u
			existing.Tau = tau
			existing.Time = tPrime
			existing.State = sPrime
			existing.GScore = gPrime
			existing.FScore = fPrime
			p.open.Push(existing) // old heap entry becomes stale, discriminated on pop
		}
		return
	}

	child, ok := p.pool.Allocate()
	if !ok {
		return
	}
	child.Cell = cellPrime
	child.TCell = tCellPrime
	child.State = sPrime
	child.Input = u
	child.Tau = tau
	child.Time = tPrime
	child.GScore = gPrime
	child.FScore = fPrime
	child.Parent = n.Self

	p.index.Insert(child, dynamic)
	p.open.Push(child)
}

// segmentClear samples the candidate segment at check_num points and
// rejects on any clearance or bounds violation (spec.md §4.7 step 4e).
func (p *Planner) segmentClear(s0 core.State, u core.Vec3, tau float64) bool {
	n := p.cfg.CheckNum
	if n < 2 {
		n = 2
	}
	for i := 0; i < n; i++ {
		t := tau * float64(i) / float64(n-1)
		st := dynamics.Integrate(s0, u, t)
		if !p.bounds.Contains(st.Pos) {
			return false
		}
		if p.oracle.Clearance(st.Pos) <= p.cfg.Margin {
			return false
		}
	}
	return true
}

// HasPath reports whether the most recent Search call produced a usable
// path (ReachHorizon or ReachEnd).
func (p *Planner) HasPath() bool { return p.hasPath }

// RetrievePath walks parent pointers from the terminal node back to the
// root and returns them in root-to-terminal order (spec.md §4.7
// "retrievePath").
func (p *Planner) RetrievePath() []*core.Node {
	if !p.hasPath || p.terminal == core.NoParent {
		return nil
	}
	var chain []*core.Node
	for idx := p.terminal; idx != core.NoParent; {
		node := p.pool.At(idx)
		chain = append(chain, node)
		idx = node.Parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// GetVisitedNodes returns every node popped from the open set during the
// most recent search, in pop order.
func (p *Planner) GetVisitedNodes() []*core.Node {
	out := make([]*core.Node, len(p.visited))
	for i, idx := range p.visited {
		out[i] = p.pool.At(idx)
	}
	return out
}

// ShotToGoal reports the accepted terminal shot trajectory and whether
// the last search ended in ReachEnd.
func (p *Planner) ShotToGoal() (shot.Trajectory, bool) {
	return p.shotToGoal, p.hasPath && p.terminal != core.NoParent && p.pool.At(p.terminal).ShotToGoal
}
