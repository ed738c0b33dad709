package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SimulationParameters struct {
	Title                string    `yaml:"Title"`
	GridPoints           int       `yaml:"GridPoints"`   // must be a power of two
	DomainLength         float64   `yaml:"DomainLength"` // grid spans [0, L] inclusive
	Dt                   float64   `yaml:"Dt"`
	Viscosity            float64   `yaml:"Viscosity"`
	StepCount            int       `yaml:"StepCount"`
	Hbar                 float64   `yaml:"Hbar"`
	Mass                 float64   `yaml:"Mass"`
	Coupling             float64   `yaml:"Coupling"`         // advective inter-component coupling strength
	MaxBondDimension     int       `yaml:"MaxBondDimension"` // 0 = dense evolution
	DensityFloor         float64   `yaml:"DensityFloor"`
	MassDriftLimit       float64   `yaml:"MassDriftLimit"`
	DensityEnvelopeLimit float64   `yaml:"DensityEnvelopeLimit"`
	TruncationLimit      float64   `yaml:"TruncationLimit"`
	StrictFidelity       bool      `yaml:"StrictFidelity"` // abort instead of flagging truncation overruns
	InitialVelocity      []float64 `yaml:"InitialVelocity"`
}

func (sp *SimulationParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

// Dx is the spatial step of the endpoint-inclusive grid.
func (sp *SimulationParameters) Dx() float64 {
	return sp.DomainLength / float64(sp.GridPoints-1)
}

func (sp *SimulationParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%d]\t\t\t= Grid Points\n", sp.GridPoints)
	fmt.Printf("%8.5f\t\t= Domain Length\n", sp.DomainLength)
	fmt.Printf("%8.5f\t\t= Dt\n", sp.Dt)
	fmt.Printf("%8.5f\t\t= Viscosity\n", sp.Viscosity)
	fmt.Printf("[%d]\t\t\t= Step Count\n", sp.StepCount)
	fmt.Printf("%8.5f\t\t= Hbar\n", sp.Hbar)
	fmt.Printf("%8.5f\t\t= Mass\n", sp.Mass)
	fmt.Printf("%8.5f\t\t= Coupling\n", sp.Coupling)
	fmt.Printf("[%d]\t\t\t= Max Bond Dimension\n", sp.MaxBondDimension)
}
