// Package pocketcube indexes every reachable configuration of a 2x2x2
// ("pocket") cube and answers shortest-solution queries against that index.
//
// # Features
//
//   - Compact uint64 state encoding with exact move algebra
//   - Move catalog derived from the U, F and R quarter turns
//   - Breadth-first exploration under the quarter-turn or half-turn metric
//   - Shortest routes for raw states or for typed move sequences
//
// # Quick Start
//
// Build the index and look up a scramble:
//
//	session := pocketcube.Explore(pocketcube.WithMetric(pocketcube.HalfTurn))
//
//	answer, err := session.RouteForText("R U R' U'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Shortest:", pocketcube.Format(answer.Route))
//	fmt.Println("Solve with:", pocketcube.Format(answer.Solution))
//
// # States
//
// A state packs eight corner slots into a uint64; slot i is byte i and
// holds orientation*8 + cubie. The solved state is 0x0706050403020100.
// Raw states can be queried directly:
//
//	answer, err := session.RouteForState(pocketcube.State(0x0706050403020001))
//	if errors.Is(err, pocketcube.ErrNoRoute) {
//	    fmt.Println("not reachable")
//	}
//
// # Depth Statistics
//
// Histogram runs the same traversal without recording routes:
//
//	counts := pocketcube.Histogram(pocketcube.QuarterTurn)
//	fmt.Println("God's number:", len(counts)-1) // 14
package pocketcube
