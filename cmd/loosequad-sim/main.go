package main

import (
	"flag"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/bmharper/loosequad-go"
	"github.com/tidwall/redlog"
)

type entity struct {
	vel loosequad.Point
}

func main() {
	var world, minSide, query, speed float64
	var n, steps int
	var seed int64
	var loglevel string

	flag.Float64Var(&world, "world", 1024, "World side length")
	flag.Float64Var(&minSide, "min", 4, "Smallest object side the tree is tuned for")
	flag.IntVar(&n, "n", 10000, "Number of entities")
	flag.IntVar(&steps, "steps", 100, "Simulation steps")
	flag.Float64Var(&query, "query", 64, "Side of the query window issued each step")
	flag.Float64Var(&speed, "speed", 2, "Maximum distance an entity moves per step")
	flag.Int64Var(&seed, "seed", 1, "Random seed")
	flag.StringVar(&loglevel, "loglevel", "notice", "Log level [quiet,warning,notice,verbose,debug]")
	flag.Parse()

	log := redlog.New(os.Stderr)
	switch strings.ToLower(loglevel) {
	default:
		log.Warningf("invalid loglevel '%v'", loglevel)
		os.Exit(1)
	case "quiet":
		log = redlog.New(io.Discard)
	case "warning":
		log.SetLevel(3)
	case "notice":
		log.SetLevel(2)
	case "verbose":
		log.SetLevel(1)
	case "debug":
		log.SetLevel(0)
	}

	tree, err := loosequad.New[*entity](
		loosequad.Point{X: world / 2, Y: world / 2}, world, minSide,
		&loosequad.Options{Logger: loosequad.RedLogger(log.Sub('Q'))},
	)
	if err != nil {
		log.Warningf("%v", err)
		os.Exit(1)
	}
	log.Printf("world %v, min side %v, %d levels", world, minSide, tree.MaxLevel()+1)

	rng := rand.New(rand.NewSource(seed))
	items := make([]*loosequad.Item[*entity], 0, n)
	start := time.Now()
	for i := 0; i < n; i++ {
		s := minSide * (0.5 + rng.Float64()*4)
		e := &entity{vel: loosequad.Point{X: (rng.Float64()*2 - 1) * speed, Y: (rng.Float64()*2 - 1) * speed}}
		it := loosequad.NewItem(e,
			loosequad.Point{X: rng.Float64() * world, Y: rng.Float64() * world},
			loosequad.Point{X: s, Y: s})
		if tree.Insert(it) {
			items = append(items, it)
		}
	}
	log.Printf("inserted %d entities in %v", tree.Len(), time.Since(start))
	log.Verbosef("items per level %v", tree.LevelCounts())

	bounds := tree.WorldRect()
	results := []*loosequad.Item[*entity]{}
	var moveTime, queryTime time.Duration
	var relocated, found int
	for step := 0; step < steps; step++ {
		start = time.Now()
		for _, it := range items {
			e := it.Value()
			p := it.Position().Add(e.vel)
			// bounce off the world edges so every entity stays in the tree
			if p.X < bounds.MinX || p.X > bounds.MaxX {
				e.vel.X = -e.vel.X
				p.X = it.Position().X + e.vel.X
			}
			if p.Y < bounds.MinY || p.Y > bounds.MaxY {
				e.vel.Y = -e.vel.Y
				p.Y = it.Position().Y + e.vel.Y
			}
			if it.SetPosition(p) {
				relocated++
			}
		}
		moveTime += time.Since(start)

		start = time.Now()
		c := loosequad.Point{X: rng.Float64() * world, Y: rng.Float64() * world}
		results = tree.QueryFast(loosequad.RectFromCenter(c, loosequad.Point{X: query, Y: query}), results)
		found += len(results)
		queryTime += time.Since(start)
		log.Debugf("step %d: %d in window at %v", step, len(results), c)
	}
	if steps > 0 {
		log.Printf("%d steps: %d relocations, %v per step moving, %v per query, %.1f results per query",
			steps, relocated, moveTime/time.Duration(steps), queryTime/time.Duration(steps), float64(found)/float64(steps))
	}
	log.Verbosef("items per level %v", tree.LevelCounts())
	if tree.Len() != len(items) {
		log.Warningf("%d entities fell out of the tree", len(items)-tree.Len())
	}
}
