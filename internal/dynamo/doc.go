// Package dynamo simulates discrete-time linear dynamical systems.
//
// A run repeatedly applies a fixed square transition operator T to a state
// vector, x(k+1) = T·x(k), and returns every visited state as a [Trajectory].
// The same machinery drives Markov chains: when T is column-stochastic and
// x0 is a probability distribution, every state in the trajectory stays a
// distribution.
//
//   - [Simulate]: one run from one initial state
//   - [Simulator]: a reusable operator with observers
//   - [ValidateStochastic]: pre-flight gate for Markov chain inputs
//   - [DetectEquilibrium]: finds where successive states stop changing
//   - [SimulateEach]: independent runs over many initial states
//
// # Example
//
//	op := linalg.Matrix{{0.8, 0.1}, {0.2, 0.9}}
//	res, err := dynamo.Simulate(op, linalg.Vector{0.5, 0.5}, 20, dynamo.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Trajectory[1]) // [0.45 0.55]
//
// # Thread Safety
//
// Simulate and SimulateEach are safe for concurrent use. A [Simulator] with
// stateful observers is not.
package dynamo
