package main

import (
	"fmt"
	"os"

	aashto "Stratum/internal/calc/aashto"
	bearing "Stratum/internal/calc/bearing"
	spt "Stratum/internal/calc/spt"
	uscs "Stratum/internal/calc/uscs"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "geoctl",
		Short: "Soil classification and foundation checks from the command line",
	}

	rootCmd.AddCommand(uscsCmd())
	rootCmd.AddCommand(aashtoCmd())
	rootCmd.AddCommand(bearingCmd())
	rootCmd.AddCommand(sptCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func uscsCmd() *cobra.Command {
	var in uscs.Input

	cmd := &cobra.Command{
		Use:   "uscs",
		Short: "Classify a soil by the Unified Soil Classification System",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := uscs.Calculate(in)
			if err != nil {
				return err
			}

			fmt.Printf("Symbol:      %s\n", res.Symbol)
			fmt.Printf("Description: %s\n", res.Description)
			fmt.Printf("PI:          %.1f\n", res.PlasticityIndex)
			if res.Cu != 0 {
				fmt.Printf("Cu:          %.2f\n", res.Cu)
				fmt.Printf("Cc:          %.2f\n", res.Cc)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.LiquidLimit, "ll", 0, "liquid limit, %")
	cmd.Flags().Float64Var(&in.PlasticLimit, "pl", 0, "plastic limit, %")
	cmd.Flags().Float64Var(&in.Fines, "fines", 0, "fines fraction, %")
	cmd.Flags().Float64Var(&in.Sand, "sand", 0, "sand fraction, %")
	cmd.Flags().Float64Var(&in.D10, "d10", 0, "D10 diameter, mm")
	cmd.Flags().Float64Var(&in.D30, "d30", 0, "D30 diameter, mm")
	cmd.Flags().Float64Var(&in.D60, "d60", 0, "D60 diameter, mm")
	cmd.Flags().BoolVar(&in.Organic, "organic", false, "organic fines")
	return cmd
}

func aashtoCmd() *cobra.Command {
	var in aashto.Input

	cmd := &cobra.Command{
		Use:   "aashto",
		Short: "Classify a soil by the AASHTO highway system",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := aashto.Calculate(in)
			if err != nil {
				return err
			}

			fmt.Printf("Symbol:      %s\n", res.Symbol)
			fmt.Printf("Description: %s\n", res.Description)
			fmt.Printf("Group index: %d\n", res.GroupIndex)
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.LiquidLimit, "ll", 0, "liquid limit, %")
	cmd.Flags().Float64Var(&in.PlasticLimit, "pl", 0, "plastic limit, %")
	cmd.Flags().Float64Var(&in.PlasticityIndex, "pi", 0, "plasticity index, used when no plastic limit is given")
	cmd.Flags().Float64Var(&in.Fines, "fines", 0, "fines fraction, %")
	return cmd
}

func bearingCmd() *cobra.Command {
	var in bearing.Input
	var method, shape string

	cmd := &cobra.Command{
		Use:   "bearing",
		Short: "Ultimate and allowable bearing capacity of a shallow footing",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Method = bearing.Method(method)
			in.Shape = bearing.Shape(shape)
			res, err := bearing.Calculate(in)
			if err != nil {
				return err
			}

			fmt.Printf("Method:    %s\n", res.MethodUsed)
			fmt.Printf("Nc:        %.2f\n", res.Nc)
			fmt.Printf("Nq:        %.2f\n", res.Nq)
			fmt.Printf("Ngamma:    %.2f\n", res.Ngamma)
			fmt.Printf("Ultimate:  %.1f kPa\n", res.UltimateKPa)
			fmt.Printf("Allowable: %.1f kPa\n", res.AllowableKPa)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "terzaghi", "terzaghi, hansen or vesic")
	cmd.Flags().StringVar(&shape, "shape", "strip", "strip, square, circle or rectangle")
	cmd.Flags().Float64Var(&in.WidthM, "width", 0, "footing width, m")
	cmd.Flags().Float64Var(&in.LengthM, "length", 0, "footing length, m (rectangle)")
	cmd.Flags().Float64Var(&in.DepthM, "depth", 0, "founding depth, m")
	cmd.Flags().Float64Var(&in.CohesionKPa, "cohesion", 0, "cohesion, kPa")
	cmd.Flags().Float64Var(&in.FrictionAngleDeg, "phi", 0, "friction angle, degrees")
	cmd.Flags().Float64Var(&in.UnitWeightKNM3, "gamma", 0, "unit weight, kN/m3")
	cmd.Flags().Float64Var(&in.FactorOfSafety, "fs", 0, "factor of safety (default 3)")
	return cmd
}

func sptCmd() *cobra.Command {
	var in spt.Input
	var method string

	cmd := &cobra.Command{
		Use:   "spt",
		Short: "Correct a standard penetration test blow count",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Method = spt.Method(method)
			res, err := spt.Calculate(in)
			if err != nil {
				return err
			}

			fmt.Printf("Method:      %s\n", res.MethodUsed)
			fmt.Printf("N60:         %.1f\n", res.N60)
			fmt.Printf("CN:          %.3f\n", res.CN)
			fmt.Printf("Corrected N: %.1f\n", res.CorrectedN)
			fmt.Printf("Design N:    %.1f\n", res.DesignN)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "gibbs-holtz", "overburden correction method")
	cmd.Flags().Float64Var(&in.RecordedN, "n", 0, "recorded blow count")
	cmd.Flags().Float64Var(&in.HammerEfficiency, "energy", 0, "hammer energy ratio (default 0.6)")
	cmd.Flags().Float64Var(&in.BoreholeDiameterCorr, "borehole", 0, "borehole diameter correction (default 1)")
	cmd.Flags().Float64Var(&in.SamplerCorr, "sampler", 0, "sampler correction (default 1)")
	cmd.Flags().Float64Var(&in.RodLengthCorr, "rod", 0, "rod length correction (default 1)")
	cmd.Flags().Float64Var(&in.OverburdenKPa, "sigma", 0, "effective overburden pressure, kPa")
	cmd.Flags().BoolVar(&in.Dilatancy, "dilatancy", false, "apply the Terzaghi-Peck dilatancy correction")
	return cmd
}
