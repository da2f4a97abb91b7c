package frw_test

import (
	"testing"

	"github.com/katalvlaran/spacetime/frw"
)

func BenchmarkMetric(b *testing.B) {
	for _, top := range frw.Topologies() {
		b.Run(top.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := frw.Metric(top); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLineElement(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := frw.LineElement(frw.Closed); err != nil {
			b.Fatal(err)
		}
	}
}
