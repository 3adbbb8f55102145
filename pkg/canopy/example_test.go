package canopy_test

import (
	"fmt"

	"github.com/jihenghu/canort/pkg/canopy"
)

func ExampleNew() {
	// Two layers given bottom first: a 0.5 m understory under a 1.5 m crown.
	under, _ := canopy.NewLayer(0.5, 0.4, 0.0002, 291)
	crown, _ := canopy.NewLayer(1.5, 2.1, 0.0003, 293)

	c, _ := canopy.New([]canopy.Layer{under, crown})

	fmt.Println("Layers:", c.LayerCount())
	fmt.Println("Height:", c.TotalHeight())
	fmt.Println("Interfaces:", c.Interfaces())
	// Output:
	// Layers: 2
	// Height: 2
	// Interfaces: [0 0.5 2]
}

func ExampleCanopy_LayerAtHeight() {
	a, _ := canopy.NewLayer(1, 0.5, 0.0002, 290)
	b, _ := canopy.NewLayer(1, 1.5, 0.0002, 295)
	c, _ := canopy.New([]canopy.Layer{a, b})

	// A boundary belongs to the layer above it; the canopy top to the top layer.
	for _, z := range []float64{0, 1, 2} {
		i, _ := c.IndexAtHeight(z)
		fmt.Printf("z=%g -> layer %d\n", z, i)
	}

	_, err := c.LayerAtHeight(2.5)
	fmt.Println(err)
	// Output:
	// z=0 -> layer 0
	// z=1 -> layer 1
	// z=2 -> layer 1
	// OUT_OF_RANGE: z: elevation 2.5 outside canopy [0, 2]
}

func ExampleStack() {
	a, _ := canopy.NewLayer(0.5, 0.75, 0.0001, 290)
	b, _ := canopy.NewLayer(1.5, 1.25, 0.0002, 295)
	lower, _ := canopy.New([]canopy.Layer{a})
	upper, _ := canopy.New([]canopy.Layer{b})

	combined := canopy.Stack(lower, upper)
	fmt.Println("Layers:", combined.LayerCount())
	fmt.Println("Tops:", combined.Tops())
	fmt.Println("LAI:", combined.TotalLAI())
	// Output:
	// Layers: 2
	// Tops: [0.5 2]
	// LAI: 2
}
