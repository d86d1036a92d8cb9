package reduce_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmorse/builder"
	"github.com/katalvlaran/lvmorse/gradient"
	"github.com/katalvlaran/lvmorse/morse"
	"github.com/katalvlaran/lvmorse/reduce"
)

// ExampleReduce simplifies a noisy sphere all the way down to its topology.
func ExampleReduce() {
	ctx := context.Background()
	m, err := builder.BuildMesh(builder.Geodesic(2), builder.WithField(builder.WaveFn(6)))
	if err != nil {
		fmt.Println(err)
		return
	}
	f, err := gradient.Build(ctx, m)
	if err != nil {
		fmt.Println(err)
		return
	}
	c, err := morse.Extract(ctx, m, f)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, err := reduce.Reduce(ctx, c, m.Range())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.Counts())
	fmt.Println(out.MaximallyReduced)
	// Output:
	// 1 0 1
	// true
}
