// Package factory_test provides runnable documentation examples for
// closed-set variant construction.
package factory_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fabrik/factory"
)

// ExampleCreate demonstrates tag-dispatched construction and the
// unknown-tag failure mode.
func ExampleCreate() {
	sedan, _ := factory.Create("sedan", "Toyota Camry", 2020)
	fmt.Println(factory.Describe(sedan))

	_, err := factory.Create("minivan", "Honda Odyssey", 2021)
	fmt.Println("minivan known:", !errors.Is(err, factory.ErrUnknownVariant))

	// Output:
	// Toyota Camry (2020 sedan, 4 doors)
	// minivan known: false
}

// ExampleCatalog_Create demonstrates the explicitly passed registry
// handle: build it once at process start and thread it through.
func ExampleCatalog_Create() {
	cat := factory.NewCatalog()

	suv, _ := cat.Create("SUV", "Subaru Outback", 2022) // tags are case-insensitive
	fmt.Println(suv.Kind, suv.Doors)

	// Output:
	// suv 5
}
