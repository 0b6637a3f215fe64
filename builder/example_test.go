package builder_test

import (
	"fmt"

	"github.com/katalvlaran/polymesh/builder"
)

// ExampleNewRectangle builds the border-only and the closed variant.
func ExampleNewRectangle() {
	open, _ := builder.NewRectangle(0, 0, 10, 20)
	closed, _ := builder.NewRectangle(0, 0, 10, 20, builder.WithClosedBack())

	a, _ := open.FacetArea(0)
	fmt.Println(open, a, open.EulerCharacteristic())
	fmt.Println(closed, closed.EulerCharacteristic())

	_, err := open.VertexDegree(0)
	fmt.Println(err != nil)

	// Output:
	// mesh{V=4 E=4 F=1} 200 3
	// mesh{V=4 E=8 F=2} 2
	// true
}
