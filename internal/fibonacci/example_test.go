package fibonacci

import "fmt"

// ExampleEngine_Compute computes a few values without any injected delay.
func ExampleEngine_Compute() {
	engine := NewEngine(WithDelayPolicy(NoDelay))
	for _, n := range []uint64{5, 6, 7} {
		fmt.Println(engine.Compute(n, 0))
	}
	// Output:
	// 5
	// 8
	// 13
}
