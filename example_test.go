package geomath_test

import (
	"fmt"

	"github.com/valtherin/geomath"
)

// ExampleTridiagonal solves a small band system in place.
func ExampleTridiagonal() {
	// Bands of the system 2x0+x1=1, x0+2x1+x2=2, x1+2x2=3,
	// laid out per row as sub | diag | super.
	a, _ := geomath.NewMatNFrom([]float64{
		0, 2, 1,
		1, 2, 1,
		1, 2, 0,
	}, 3, 3)
	b, _ := geomath.NewVecNFrom(1, 2, 3)

	if err := geomath.Tridiagonal(a, b); err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	fmt.Println(b)
	// Output: [0.5, 0, 1.5]
}

// ExampleQuatAxisAngle builds a quarter turn about the z axis and reads
// the rotation back.
func ExampleQuatAxisAngle() {
	q := geomath.QuatAxisAngle(geomath.Vec3{0, 0, 1}, geomath.HalfPi)
	axis := q.Axis()

	fmt.Printf("axis (%.0f, %.0f, %.0f), angle %.4f rad\n",
		axis[0], axis[1], axis[2], q.Angle())
	// Output: axis (0, 0, 1), angle 1.5708 rad
}

// ExampleGaussJordan inverts the coefficient matrix while solving.
func ExampleGaussJordan() {
	a, _ := geomath.NewMatNFrom([]float64{
		3, 1,
		1, 2,
	}, 2, 2)
	b, _ := geomath.NewMatNFrom([]float64{9, 8}, 2, 1)

	x, _ := geomath.NewMatN(1, 1)
	if err := geomath.GaussJordan(a, b, x); err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	fmt.Println(x)
	// Output:
	// [2]
	// [3]
}
