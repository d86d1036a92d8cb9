package lvmorse_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvmorse"
	"github.com/katalvlaran/lvmorse/builder"
)

func BenchmarkPipeline_Geodesic3(b *testing.B) {
	m, err := builder.BuildMesh(builder.Geodesic(3), builder.WithField(builder.WaveFn(8)))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mc, _ := lvmorse.New(m)
		if _, err := mc.ReduceMaximally(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
