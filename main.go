package main

import (
	"fmt"

	"github.com/ericr/saturday/config"
	"github.com/ericr/saturday/simp"
	"github.com/ericr/saturday/solver"
)

func main() {
	printBanner()

	sat := simp.New(config.New())
	sat.AddClause([]int{-1, -3, 5})
	sat.AddClause([]int{-1, -3, -5})

	if sat.Solve([]int{1}) {
		fmt.Println("\nSAT")

		for _, p := range sat.Answer() {
			fmt.Printf("%d\n", p)
		}
	} else {
		fmt.Println("\nUNSAT")
	}
}

func printBanner() {
	fmt.Printf("Saturday Solver %s\n", solver.Version())
	fmt.Println("https://ericrafaloff.com/saturday")
	fmt.Println("")
}
