package field_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/field"
)

// benchmarkAdd runs Add over two w×h fields filled with predictable data.
// It resets the timer before entering the loop and fails on errors.
func benchmarkAdd(b *testing.B, w, h int) {
	fa, err := field.NewScalar(w, h)
	if err != nil {
		b.Fatalf("NewScalar failed: %v", err)
	}
	fb := fa.Clone()
	fa.Fill(1.5) // predictable non-zero contents
	fb.Fill(2.5)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = field.Add(fa, fb); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// BenchmarkAdd_Small benchmarks the point-wise sum on a 128×128 field.
func BenchmarkAdd_Small(b *testing.B) {
	benchmarkAdd(b, 128, 128)
}

// BenchmarkAdd_Medium benchmarks the point-wise sum on a 512×512 field.
func BenchmarkAdd_Medium(b *testing.B) {
	benchmarkAdd(b, 512, 512)
}

// BenchmarkScalarAt benchmarks bounds-checked single-sample access.
func BenchmarkScalarAt(b *testing.B) {
	f, err := field.NewScalar(256, 256)
	if err != nil {
		b.Fatalf("NewScalar failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = f.At(i%256, (i/256)%256); err != nil {
			b.Fatalf("At failed: %v", err)
		}
	}
}
