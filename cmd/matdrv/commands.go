// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	goio "io"
	"path/filepath"

	"github.com/PaddySchmidt/gomat/inp"
	"github.com/PaddySchmidt/gomat/msolid"
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// driverParams holds the flags of the run command
type driverParams struct {
	matfile string  // materials file
	name    string  // material name
	path    string  // path file
	check   bool    // check consistent tangent
	tol     float64 // tolerance of tangent check
}

// viewParams holds the flags of the view command
type viewParams struct {
	matfile string  // materials file
	name    string  // material name
	lmin    float64 // smallest stretch
	lmax    float64 // largest stretch
	n       int     // number of stretches
}

func newRootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "matdrv",
		Short: "Evaluate material models along deformation paths",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			io.Verbose = verbose
			chk.Verbose = verbose
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print messages")
	root.AddCommand(newRunCommand(), newViewCommand(), newModelsCommand(), newListCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var p driverParams
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one material point along a path",
		Example: `  matdrv run --mat inp/data/rubber.mat --name rubber --path inp/data/uniaxial.json
  matdrv run --mat inp/data/rubber.mat --name steel --path inp/data/strain.json --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDriver(cmd.OutOrStdout(), &p)
		},
	}
	cmd.Flags().StringVar(&p.matfile, "mat", "", "materials file (.mat)")
	cmd.Flags().StringVar(&p.name, "name", "", "name of material")
	cmd.Flags().StringVar(&p.path, "path", "", "path file (.json)")
	cmd.Flags().BoolVar(&p.check, "check", false, "check consistent tangent")
	cmd.Flags().Float64Var(&p.tol, "tol", 1e-6, "tolerance of tangent check")
	for _, flag := range []string{"mat", "name", "path"} {
		_ = cmd.MarkFlagRequired(flag)
	}
	return cmd
}

func newViewCommand() *cobra.Command {
	var p viewParams
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the response of an incompressible material in uniaxial, planar and biaxial tension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.OutOrStdout(), &p)
		},
	}
	cmd.Flags().StringVar(&p.matfile, "mat", "", "materials file (.mat)")
	cmd.Flags().StringVar(&p.name, "name", "", "name of material")
	cmd.Flags().Float64Var(&p.lmin, "lmin", 1, "smallest stretch")
	cmd.Flags().Float64Var(&p.lmax, "lmax", 3, "largest stretch")
	cmd.Flags().IntVar(&p.n, "n", 11, "number of stretches")
	for _, flag := range []string{"mat", "name"} {
		_ = cmd.MarkFlagRequired(flag)
	}
	return cmd
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range msolid.Names() {
				write(w, "%s\n", name)
			}
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file.mat>",
		Short: "List materials in a materials file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mdb, err := readMat(args[0])
			if err != nil {
				return err
			}
			write(cmd.OutOrStdout(), "%v", mdb)
			return nil
		},
	}
}

// runDriver runs the driver and prints the stresses of each step
func runDriver(w goio.Writer, p *driverParams) error {
	mdl, err := getModel(p.matfile, p.name)
	if err != nil {
		return err
	}
	var pth msolid.Path
	if err = pth.ReadJSON(p.path); err != nil {
		return err
	}
	drv := msolid.Driver{CheckD: p.check, TolD: p.tol, VerD: io.Verbose}
	if err = drv.Init(mdl); err != nil {
		return err
	}
	runErr := drv.Run(&pth)
	printStresses(w, pth.F, drv.Res)
	if runErr != nil {
		return chk.Err("material %q:\n%v", p.name, runErr)
	}
	if p.check {
		write(w, "consistent tangent OK in %d steps\n", len(drv.Res))
	}
	return nil
}

// runView prints the view curves
func runView(w goio.Writer, p *viewParams) error {
	if p.n < 2 || p.lmin <= 0 || p.lmax <= p.lmin {
		return chk.Err("stretches need n >= 2 and 0 < lmin < lmax. n=%d lmin=%g lmax=%g", p.n, p.lmin, p.lmax)
	}
	mdl, err := getModel(p.matfile, p.name)
	if err != nil {
		return err
	}
	stretches := make([]float64, p.n)
	for k := range stretches {
		stretches[k] = p.lmin + float64(k)*(p.lmax-p.lmin)/float64(p.n-1)
	}
	curves, err := msolid.NewViewIncompressible(mdl, stretches).Evaluate()
	if err != nil {
		return err
	}
	for _, c := range curves {
		write(w, "# %s\n%12s%16s\n", c.Kind, "λ", "P")
		for k, λ := range c.Stretch {
			write(w, "%12.6f%16.8e\n", λ, c.Force[k])
		}
	}
	return nil
}

// getModel reads materials file and allocates model
func getModel(matfile, name string) (msolid.Model, error) {
	mdb, err := readMat(matfile)
	if err != nil {
		return nil, err
	}
	return mdb.Model(name)
}

func readMat(matfile string) (*inp.MatDb, error) {
	return inp.ReadMat(filepath.Dir(matfile), filepath.Base(matfile))
}

// printStresses prints F11 and the components of stress of each step
func printStresses(w goio.Writer, F []tsr.Ten2, res []tsr.Ten2) {
	write(w, "%6s%12s%16s%16s%16s%16s%16s%16s\n", "step", "F11", "s11", "s22", "s33", "s12", "s23", "s13")
	for k, s := range res {
		write(w, "%6d%12.6f%16.8e%16.8e%16.8e%16.8e%16.8e%16.8e\n", k, F[k][0][0], s[0][0], s[1][1], s[2][2], s[0][1], s[1][2], s[0][2])
	}
}

func write(w goio.Writer, msg string, prm ...interface{}) {
	_, _ = goio.WriteString(w, io.Sf(msg, prm...))
}
