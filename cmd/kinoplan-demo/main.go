// Command kinoplan-demo runs the kinodynamic planner's canonical test
// scenarios against an in-process analytic environment and prints the
// outcome of each.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/basalt-robotics/kinoplan/internal/core"
	"github.com/basalt-robotics/kinoplan/internal/kinoastar"
	"github.com/basalt-robotics/kinoplan/internal/oracle"
)

type scenario struct {
	name        string
	description string
	bounds      core.Bounds
	oracle      func(core.Bounds) oracle.DistanceOracle
	configure   func(*kinoastar.Config)
	ps, pg      core.Vec3
	dynamic     bool
}

func scenarios() []scenario {
	return []scenario{
		{
			name:        "S1",
			description: "free space straight shot",
			bounds:      core.Bounds{Min: core.NewVec3(0, 0, 0), Max: core.NewVec3(10, 10, 10)},
			oracle:      func(b core.Bounds) oracle.DistanceOracle { return oracle.NewConstantField(b, 10) },
			configure:   func(c *kinoastar.Config) {},
			ps:          core.NewVec3(0, 0, 1),
			pg:          core.NewVec3(5, 0, 1),
		},
		{
			name:        "S2",
			description: "sphere obstacle between start and goal",
			bounds:      core.Bounds{Min: core.NewVec3(0, -5, 0), Max: core.NewVec3(10, 5, 10)},
			oracle: func(b core.Bounds) oracle.DistanceOracle {
				return oracle.NewSphereObstacle(b, core.NewVec3(2.5, 0, 1), 0.5, 10)
			},
			configure: func(c *kinoastar.Config) {},
			ps:        core.NewVec3(0, 0, 1),
			pg:        core.NewVec3(5, 0, 1),
		},
		{
			name:        "S3",
			description: "horizon cutoff on a far goal",
			bounds:      core.Bounds{Min: core.NewVec3(-1, -10, -1), Max: core.NewVec3(60, 10, 10)},
			oracle:      func(b core.Bounds) oracle.DistanceOracle { return oracle.NewConstantField(b, 10) },
			configure:   func(c *kinoastar.Config) { c.Horizon = 6 },
			ps:          core.NewVec3(0, 0, 1),
			pg:          core.NewVec3(50, 0, 1),
		},
		{
			name:        "S4",
			description: "pool exhaustion in a tangled field",
			bounds:      core.Bounds{Min: core.NewVec3(-5, -5, -5), Max: core.NewVec3(5, 5, 5)},
			oracle: func(b core.Bounds) oracle.DistanceOracle {
				return oracle.NewSphereObstacle(b, core.Zero3, 3.0, 10)
			},
			configure: func(c *kinoastar.Config) { c.AllocateNum = 20 },
			ps:        core.NewVec3(-4.9, -4.9, -4.9),
			pg:        core.NewVec3(4.9, 4.9, 4.9),
		},
		{
			name:        "S5",
			description: "dynamic mode determinism check",
			bounds:      core.Bounds{Min: core.NewVec3(0, -5, 0), Max: core.NewVec3(10, 5, 10)},
			oracle: func(b core.Bounds) oracle.DistanceOracle {
				return oracle.NewSphereObstacle(b, core.NewVec3(2.5, 0, 1), 0.5, 10)
			},
			configure: func(c *kinoastar.Config) {},
			ps:        core.NewVec3(0, 0, 1),
			pg:        core.NewVec3(5, 0, 1),
			dynamic:   true,
		},
		{
			name:        "S6",
			description: "tight velocity bound on a far goal",
			bounds:      core.Bounds{Min: core.NewVec3(-1, -5, -1), Max: core.NewVec3(20, 5, 5)},
			oracle:      func(b core.Bounds) oracle.DistanceOracle { return oracle.NewConstantField(b, 10) },
			configure:   func(c *kinoastar.Config) { c.MaxVel = 0.5; c.Horizon = 50; c.AllocateNum = 50000 },
			ps:          core.NewVec3(0, 0, 1),
			pg:          core.NewVec3(15, 0, 1),
		},
	}
}

func runScenario(log *zap.Logger, s scenario) error {
	cfg := kinoastar.DefaultConfig()
	cfg.Horizon = 1000
	cfg.LambdaHeu = 10
	cfg.Margin = 0.1
	cfg.AllocateNum = 20000
	cfg.CheckNum = 20
	cfg.Resolution = 0.2
	cfg.TimeResolution = 0.5
	s.configure(&cfg)

	o := s.oracle(s.bounds)
	p := kinoastar.NewPlanner().WithLogger(log)
	p.Init(s.bounds.Min, s.bounds.Max, core.Zero3)
	p.SetEnvironment(o)
	if err := p.SetParam(cfg); err != nil {
		return fmt.Errorf("scenario %s: %w", s.name, err)
	}

	start := time.Now()
	status := p.Search(context.Background(), s.ps, core.Zero3, core.Zero3, s.pg, core.Zero3, s.dynamic, 0)
	elapsed := time.Since(start)

	fmt.Printf("%s (%s): status=%s visited=%d elapsed=%v\n",
		s.name, s.description, status, len(p.GetVisitedNodes()), elapsed)

	if status == kinoastar.ReachEnd || status == kinoastar.ReachHorizon {
		traj := p.GetKinoTraj(0.1)
		if len(traj) > 0 {
			fmt.Printf("      start=%v end=%v samples=%d\n", traj[0], traj[len(traj)-1], len(traj))
		}
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "kinoplan-demo",
		Usage: "run the kinodynamic planner's canonical scenarios",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable structured debug logging"},
			&cli.StringFlag{Name: "only", Usage: "run a single scenario by name (S1..S6)"},
		},
		Action: func(c *cli.Context) error {
			var log *zap.Logger
			var err error
			if c.Bool("verbose") {
				log, err = zap.NewDevelopment()
			} else {
				log = zap.NewNop()
			}
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			only := c.String("only")
			for _, s := range scenarios() {
				if only != "" && s.name != only {
					continue
				}
				if err := runScenario(log, s); err != nil {
					return err
				}
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
