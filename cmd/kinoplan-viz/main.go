// Command kinoplan-viz runs one kinodynamic planner search and renders
// the clearance field, visited nodes, and accepted path in a Gio window.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"go.uber.org/zap"

	"github.com/basalt-robotics/kinoplan/internal/core"
	"github.com/basalt-robotics/kinoplan/internal/kinoastar"
	"github.com/basalt-robotics/kinoplan/internal/oracle"
	"github.com/basalt-robotics/kinoplan/internal/vis"
)

func main() {
	bounds := core.Bounds{Min: core.NewVec3(0, -5, 0), Max: core.NewVec3(10, 5, 2)}
	sphereCenter := core.NewVec3(2.5, 0, 1)
	o := oracle.NewSphereObstacle(bounds, sphereCenter, 0.5, 10)

	cfg := kinoastar.DefaultConfig()
	cfg.Horizon = 1000
	cfg.LambdaHeu = 10
	cfg.Margin = 0.1
	cfg.AllocateNum = 20000
	cfg.CheckNum = 20
	cfg.Resolution = 0.2
	cfg.TimeResolution = 0.5

	p := kinoastar.NewPlanner().WithLogger(zap.NewNop())
	p.Init(bounds.Min, bounds.Max, core.Zero3)
	p.SetEnvironment(o)
	if err := p.SetParam(cfg); err != nil {
		log.Fatalf("invalid search config: %v", err)
	}

	status := p.Search(context.Background(),
		core.NewVec3(0, 0, 1), core.Zero3, core.Zero3,
		core.NewVec3(5, 0, 1), core.Zero3,
		false, 0)
	fmt.Printf("search status: %s, visited: %d nodes\n", status, len(p.GetVisitedNodes()))

	var visited, path []core.Vec3
	for _, n := range p.GetVisitedNodes() {
		visited = append(visited, n.State.Pos)
	}
	for _, pt := range p.GetKinoTraj(0.05) {
		path = append(path, pt)
	}

	snap := vis.Snapshot{
		Bounds:  bounds,
		Oracle:  o,
		SliceZ:  1,
		Visited: visited,
		Path:    path,
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("kinoplan-viz"), app.Size(unit.Dp(900), unit.Dp(700)))
		if err := vis.NewApp(snap).Run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
