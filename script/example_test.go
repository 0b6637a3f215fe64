package script_test

import (
	"fmt"

	"github.com/katalvlaran/polymesh/builder"
	"github.com/katalvlaran/polymesh/script"
)

func ExampleRun() {
	m, _ := builder.NewRectangle(0, 0, 100, 100)

	res, err := script.Run(m, `
# fan the square, then take the fan back out
center 0
erase-center 4
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range res {
		fmt.Printf("%s %v -> %d\n", r.Verb, r.Args, r.Value)
	}
	fmt.Println(m)
	// Output:
	// center [0] -> 4
	// erase-center [4] -> 0
	// mesh{V=4 E=4 F=1}
}
