package get_test

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/field"
	"github.com/katalvlaran/lvlimg/get"
	"github.com/katalvlaran/lvlimg/kernel"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGradientEnergyTensor
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Compute the GET of a 5×5 horizontal ramp f(x,y)=x with the minimal
//	3-tap kernel pair D=[0.5,0,-0.5], S=[3/16,10/16,3/16].
//
// Effect:
//
//	A pure x-gradient concentrates all tensor energy in t11; the center
//	pixel carries t11 = gxx² + gxy² − gx·gx3 = 0 + 0 − 1·(−0.5) = 0.5.
//
// Complexity: O(w·h) across seven 3-tap convolutions
func ExampleGradientEnergyTensor() {
	// Build the ramp.
	src, _ := field.NewScalar(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_ = src.Set(x, y, float64(x))
		}
	}

	// Destination tensor field: exactly 3 bands (t11, t12, t22).
	dst, _ := field.NewTensor(5, 5)

	opts := get.DefaultOptions()
	if err := get.GradientEnergyTensor(src, dst, kernel.CentralDifference(), kernel.Binomial3(), &opts); err != nil {
		fmt.Println("error:", err)

		return
	}

	t11, _ := dst.At(2, 2, 0)
	fmt.Printf("t11(2,2)=%.2f\n", t11)
	// Output:
	// t11(2,2)=0.50
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleOrientation
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Decode the dominant orientation from the tensor of a horizontal ramp:
//	the gradient points along x, so the angle is 0 rad (counter-clockwise
//	positive, x-axis at zero degrees).
func ExampleOrientation() {
	src, _ := field.NewScalar(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_ = src.Set(x, y, float64(x))
		}
	}
	dst, _ := field.NewTensor(5, 5)
	if err := get.GradientEnergyTensor(src, dst, kernel.CentralDifference(), kernel.Binomial3(), nil); err != nil {
		fmt.Println("error:", err)

		return
	}

	angles, err := get.Orientation(dst)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	a, _ := angles.At(2, 2)
	fmt.Printf("orientation(2,2)=%.2f rad\n", a)
	// Output:
	// orientation(2,2)=0.00 rad
}
