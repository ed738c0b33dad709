package main

import (
	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/cmd"
)

func main() {
	cmd.Execute()
}
