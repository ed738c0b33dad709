/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/FD1D"
	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/HSE1D"
	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/InputParameters"
	"github.com/k1151msarandega/Quantum-Algorithm-as-a-PDE-Solver-for-Computational-Fluid-Dynamics-CFD/validation"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the hydrodynamic Schrödinger solver for 1-D viscous Burgers",
	Long: `
Runs the Madelung-mapped spectral evolution engine for the configured
initial velocity profile and prints run diagnostics. With --compare the
classical finite-difference oracle runs on the same parameters and the
field-by-field error norms are reported.

qhse solve -n 16 --steps 60 --viscosity 0.1`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("solve called")
		sp := processSolveInput(cmd)
		doCompare, _ := cmd.Flags().GetBool("compare")
		doProfile, _ := cmd.Flags().GetBool("profile")
		shots, _ := cmd.Flags().GetInt("shots")
		if doProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		RunSolve(sp, doCompare, shots)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntP("n", "n", 16, "Number of grid points, must be a power of two")
	solveCmd.Flags().IntP("steps", "s", 60, "Number of time steps")
	solveCmd.Flags().Float64("length", 1.0, "Domain length")
	solveCmd.Flags().Float64("dt", 0.01, "Time step - decrease for stability")
	solveCmd.Flags().Float64("viscosity", 0.1, "Kinematic viscosity")
	solveCmd.Flags().Float64("hbar", 0.1, "Reduced Planck-like constant")
	solveCmd.Flags().Float64("mass", 1.0, "Mass constant")
	solveCmd.Flags().Float64("coupling", 1.0, "Inter-component advective coupling strength")
	solveCmd.Flags().IntP("maxBond", "b", 0, "Max tensor-train bond dimension, 0 = dense evolution")
	solveCmd.Flags().Int("shots", 0, "Measurement shots to sample from the final state, 0 = none")
	solveCmd.Flags().Bool("compare", false, "Also run the finite-difference oracle and report error norms")
	solveCmd.Flags().Bool("profile", false, "Write a CPU profile for this run")
	solveCmd.Flags().StringP("inputFile", "f", "", "YAML parameters file, overrides flags")
}

func processSolveInput(cmd *cobra.Command) (sp *InputParameters.SimulationParameters) {
	var (
		err error
	)
	sp = &InputParameters.SimulationParameters{Title: "HSE 1D"}
	sp.GridPoints, _ = cmd.Flags().GetInt("n")
	sp.StepCount, _ = cmd.Flags().GetInt("steps")
	sp.DomainLength, _ = cmd.Flags().GetFloat64("length")
	sp.Dt, _ = cmd.Flags().GetFloat64("dt")
	sp.Viscosity, _ = cmd.Flags().GetFloat64("viscosity")
	sp.Hbar, _ = cmd.Flags().GetFloat64("hbar")
	sp.Mass, _ = cmd.Flags().GetFloat64("mass")
	sp.Coupling, _ = cmd.Flags().GetFloat64("coupling")
	sp.MaxBondDimension, _ = cmd.Flags().GetInt("maxBond")
	if fileName, _ := cmd.Flags().GetString("inputFile"); fileName != "" {
		var data []byte
		if data, err = ioutil.ReadFile(fileName); err != nil {
			panic(fmt.Errorf("unable to read input file [%s]: %w", fileName, err))
		}
		if err = sp.Parse(data); err != nil {
			panic(fmt.Errorf("unable to parse input file [%s]: %w", fileName, err))
		}
	}
	if len(sp.InitialVelocity) == 0 {
		sp.InitialVelocity = RiemannStep(sp.GridPoints, sp.DomainLength)
	}
	sp.Print()
	return
}

// RiemannStep is the default initial profile: velocity 1 on the left half of
// the domain, 0 on the right.
func RiemannStep(n int, length float64) (u []float64) {
	u = make([]float64, n)
	dx := length / float64(n-1)
	for i := range u {
		if float64(i)*dx <= 0.5*length {
			u[i] = 1
		}
	}
	return
}

func RunSolve(sp *InputParameters.SimulationParameters, doCompare bool, shots int) {
	cfg, err := HSE1D.NewConfiguration(sp)
	if err != nil {
		fmt.Println(err)
		return
	}
	c := HSE1D.NewHSESolver(cfg)
	history, seconds, diagnostics, err := c.Solve()
	if err != nil {
		fmt.Printf("run failed after %d recorded steps: %s\n", len(history.Velocity)-1, err)
		return
	}
	var maxDiag float64
	for _, d := range diagnostics {
		if d > maxDiag {
			maxDiag = d
		}
	}
	final := history.Velocity[len(history.Velocity)-1]
	fmt.Printf("\nCompleted %d steps in %8.4f seconds, max diagnostic = %8.3e, flagged steps = %d\n",
		sp.StepCount, seconds, maxDiag, len(history.FlaggedSteps))
	fmt.Printf("final velocity field: %v\n", final)

	if shots > 0 {
		ms := HSE1D.SampleMeasurements(c.FinalWave(), cfg, shots, 4, 1)
		fmt.Printf("sampled %d shots: mean position = %8.5f, variance = %8.5f\n",
			ms.Shots, ms.Mean, ms.Variance)
	}

	if doCompare {
		fd, err := FD1D.NewBurgersFD(sp)
		if err != nil {
			fmt.Println(err)
			return
		}
		fdHistory, err := fd.Run()
		if err != nil {
			fmt.Println(err)
			return
		}
		errs := validation.HistoryError(history.Velocity, fdHistory)
		fmt.Printf("final-step error vs finite-difference oracle: L2 = %8.3e, Linf = %8.3e\n",
			validation.L2Error(final, fdHistory[len(fdHistory)-1]),
			validation.LinfError(final, fdHistory[len(fdHistory)-1]))
		fmt.Printf("max per-step L2 error over the run: %8.3e\n", maxFloat(errs))
	}
}

func maxFloat(v []float64) (m float64) {
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return
}
