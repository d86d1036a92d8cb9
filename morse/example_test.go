package morse_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmorse/builder"
	"github.com/katalvlaran/lvmorse/gradient"
	"github.com/katalvlaran/lvmorse/morse"
)

// ExampleExtract extracts the complex of a tetrahedron under a height
// field: one minimum, one maximum, no saddles.
func ExampleExtract() {
	m, err := builder.BuildMesh(builder.PlatonicSolid(builder.Tetrahedron), builder.WithField(builder.HeightFn(2)))
	if err != nil {
		fmt.Println(err)
		return
	}
	f, err := gradient.Build(context.Background(), m)
	if err != nil {
		fmt.Println(err)
		return
	}
	c, err := morse.Extract(context.Background(), m, f)
	if err != nil {
		fmt.Println(err)
		return
	}
	c0, c1, c2 := c.Counts()
	fmt.Println(c0, c1, c2, c.EulerCharacteristic())
	// Output: 1 0 1 2
}
