package loosequad

import (
	"math/rand"
	"testing"
	"time"
)

func fillSquare(tr *Tree[int], sideLength int) []*Item[int] {
	items := make([]*Item[int], 0, sideLength*sideLength)
	for x := 0; x < sideLength; x++ {
		for y := 0; y < sideLength; y++ {
			it := NewItem(len(items), Point{float64(x) + 0.5, float64(y) + 0.5}, Point{0.8, 0.8})
			tr.Insert(it)
			items = append(items, it)
		}
	}
	return items
}

func newBenchTree(b *testing.B, dim int) *Tree[int] {
	tr, err := New[int](Point{float64(dim) / 2, float64(dim) / 2}, float64(dim), 1, &Options{Logger: NopLogger})
	if err != nil {
		b.Fatal(err)
	}
	return tr
}

func BenchmarkInsert(b *testing.B) {
	dim := 500
	start := time.Now()
	tr := newBenchTree(b, dim)
	fillSquare(tr, dim)
	end := time.Now()
	b.Logf("Time to insert %v elements: %.0f milliseconds", dim*dim, end.Sub(start).Seconds()*1000)
}

func BenchmarkQuery(b *testing.B) {
	dim := 500
	tr := newBenchTree(b, dim)
	fillSquare(tr, dim)

	start := time.Now()
	nquery := 1000 * 1000
	sx := 0
	sy := 0
	results := []*Item[int]{}
	nresults := 0
	for i := 0; i < nquery; i++ {
		minx := float64(sx % dim)
		miny := float64(sy % dim)
		results = tr.QueryFast(Rect{MinX: minx, MinY: miny, MaxX: minx + 5, MaxY: miny + 5}, results)
		nresults += len(results)
		sx++
		sy++
	}
	elapsedS := time.Since(start).Seconds()
	b.Logf("Time per query, returning average of %.0f elements: %.2f nanoseconds\n", float64(nresults)/float64(nquery), elapsedS*1e9/float64(nquery))
}

func BenchmarkMove(b *testing.B) {
	dim := 500
	tr := newBenchTree(b, dim)
	items := fillSquare(tr, dim)
	rng := rand.New(rand.NewSource(0))

	start := time.Now()
	relocated := 0
	for _, it := range items {
		p := it.Position()
		np := Point{p.X + rng.Float64() - 0.5, p.Y + rng.Float64() - 0.5}
		if it.SetPosition(np) {
			relocated++
		}
	}
	elapsedS := time.Since(start).Seconds()
	b.Logf("Moved %v elements, %v relocated: %.2f nanoseconds per move", len(items), relocated, elapsedS*1e9/float64(len(items)))
}
