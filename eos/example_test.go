package eos_test

import (
	"fmt"

	"github.com/oceanum/seawater/eos"
	"github.com/oceanum/seawater/ndarray"
)

// ExampleDensity evaluates in-situ density for standard Atlantic surface
// water: S=35, T90=10 °C at atmospheric pressure.
func ExampleDensity() {
	rho, err := eos.Density(ndarray.Scalar(35), ndarray.Scalar(10), ndarray.Scalar(0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, err := rho.Float()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("density = %.0f kg/m³\n", v)
	// Output:
	// density = 1027 kg/m³
}

// ExamplePotentialTemperature references a deep sample to the surface:
// the parcel cools as it is raised adiabatically.
func ExamplePotentialTemperature() {
	theta, err := eos.PotentialTemperature(
		ndarray.Scalar(40),
		ndarray.Scalar(39.9904), // 40 °C on the IPTS-68 scale
		ndarray.Scalar(10000),
		ndarray.Scalar(0),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, err := theta.Float()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("theta = %.2f °C\n", v)
	// Output:
	// theta = 36.88 °C
}
