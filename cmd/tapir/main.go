// Package main provides the tapir command.
package main

import (
	"fmt"
	"os"

	"github.com/tapir-ml/tapir/ad"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("tapir %s\n", version)
		return
	}

	fmt.Println("tapir - reverse-mode automatic differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)

	// Tiny demo: d(x*y + x)/dx and /dy at (2, 5).
	ctx := ad.NewContext()
	x := ctx.NewVar(2.0)
	y := ctx.NewVar(5.0)
	z := x.Mul(y).Add(x)
	grad := ctx.Gradient(z, []ad.Var{x, y})
	fmt.Printf("z = x*y + x at (2, 5): value=%g dz/dx=%g dz/dy=%g\n", z.Value(), grad[0], grad[1])
}
