package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphstore"
)

// ExampleShortestPath finds a→f in the eight-node letters graph. The route
// through c (314+16+16) beats the direct b→f edge.
func ExampleShortestPath() {
	g := graphstore.NewStore[string]()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		g.AddNode(name)
	}
	for _, e := range []graphstore.Edge{
		{From: 0, To: 1, Weight: 314},
		{From: 1, To: 3, Weight: 216},
		{From: 1, To: 4, Weight: 1337},
		{From: 1, To: 5, Weight: 512},
		{From: 1, To: 2, Weight: 16},
		{From: 2, To: 5, Weight: 16},
	} {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	res, err := dijkstra.ShortestPath(g, 0, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range res.Path {
		fmt.Println(n.ID, "-", n.Payload)
	}
	fmt.Println("total cost:", res.Cost)

	// Output:
	// 0 - a
	// 1 - b
	// 2 - c
	// 5 - f
	// total cost: 346
}

// ExampleResult_Found shows that an unreachable end is a normal result.
func ExampleResult_Found() {
	g := graphstore.NewStore[string]()
	a, b := g.AddNode("a"), g.AddNode("b")
	_ = g.AddEdge(b, a, 1)

	res, err := dijkstra.ShortestPath(g, a, b)
	fmt.Println(res.Found(), res.Cost, err)

	// Output:
	// false +Inf <nil>
}

// ExampleShortestPath_cityRoute finds the fastest drive between two
// intersections. Roads are two-way, so each one is stored as a pair of
// directed edges; the closed road C–D is simply left out.
func ExampleShortestPath_cityRoute() {
	g := graphstore.NewStore[string]()
	ids := map[string]int{}
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		ids[name] = g.AddNode(name)
	}

	roads := []struct {
		u, v string
		min  float64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "C", 1},
		{"B", "D", 5},
		{"C", "E", 10},
		{"D", "F", 6},
		{"E", "F", 3},
	}
	for _, r := range roads {
		_ = g.AddEdge(ids[r.u], ids[r.v], r.min)
		_ = g.AddEdge(ids[r.v], ids[r.u], r.min)
	}

	res, err := dijkstra.ShortestPath(g, ids["A"], ids["F"])
	if err != nil || !res.Found() {
		fmt.Println("no route:", err)
		return
	}

	fmt.Println("Fastest route from A to F:")
	for i := 0; i+1 < len(res.Path); i++ {
		u, v := res.Path[i], res.Path[i+1]
		e, _ := g.Edge(u.ID, v.ID)
		fmt.Printf("  %s → %s : %g min\n", u.Payload, v.Payload, e.Weight)
	}
	fmt.Printf("Total travel time: %g minutes\n", res.Cost)

	// Output:
	// Fastest route from A to F:
	//   A → C : 2 min
	//   C → B : 1 min
	//   B → D : 5 min
	//   D → F : 6 min
	// Total travel time: 14 minutes
}
