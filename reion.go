package main

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/cosmoglot/reion/lib"
	"github.com/cosmoglot/reion/lib/camb"
	"github.com/cosmoglot/reion/lib/native"
	"github.com/cosmoglot/reion/lib/reion"
	"github.com/cosmoglot/reion/lib/table"
)

func main() {
	// Parse arguments.
	mode, configFile, cmdArgs := lib.ParseCommandLine()
	rawArgs := lib.ParseConfigFile(configFile)
	rawArgs.Overwrite(cmdArgs)
	args := rawArgs.Process()

	// Run the chosen mode.
	switch mode {
	case "help":
		lib.PrintHelp()
	case "check":
		Check(args)
	case "zre":
		Zre(args)
	case "history":
		History(args)
	default:
		lib.ExternalErrorf(
			"You attempted to run reion in the mode '%s', but the only "+
				"valid modes are 'help', 'check', 'zre', and 'history'.", mode,
		)
	}
}

// solverBackend picks between the compiled solver library and the built-in
// in-process solver, depending on whether SolverLib was set.
func solverBackend(args *lib.Args) reion.Solver {
	if args.SolverLib == "" {
		return native.New()
	}
	if err := camb.Load(args.SolverLib); err != nil {
		lib.ExternalErrorf("The solver library in '%s' couldn't be "+
			"loaded: %s", args.SolverLib, err.Error())
	}
	return camb.Solver{}
}

// Check runs reion's "check" mode, which tests for errors in the
// configuration arguments.
func Check(args *lib.Args) {
	ok := lib.Check(lib.WarnOnError, args)
	if ok {
		fmt.Println("No errors detected.")
	}
}

// Zre runs reion's "zre" mode, which resolves the mid-point reionization
// redshift of the configured tanh model.
func Zre(args *lib.Args) {
	lib.Check(lib.CrashOnError, args)

	if args.Model != "tanh" {
		lib.ExternalErrorf("The 'zre' mode inverts the tanh "+
			"parameterization, but Model is '%s'.", args.Model)
	}

	solver := solverBackend(args)
	m := args.TanhModel(solver)

	zre, err := m.GetZre(args.Cosmology(m))
	if err != nil {
		lib.ExternalErrorf("%s", err.Error())
	}
	fmt.Printf("z_re = %.6g\n", zre)
}

// History runs reion's "history" mode, which evaluates Xe(z) on a redshift
// grid and writes the resulting table. Evaluation always runs on the
// built-in solver: the compiled library exposes no Xe query entry point.
func History(args *lib.Args) {
	lib.Check(lib.CrashOnError, args)

	solver := native.New()
	var model reion.ReionModel
	if args.Model == "splined" {
		m, err := args.SplinedModel(solver)
		if err != nil {
			lib.ExternalErrorf("The table in '%s' couldn't be ingested: %s",
				args.TableFile, err.Error())
		}
		model = m
	} else {
		model = args.TanhModel(solver)
	}
	params := args.Cosmology(model)

	zs := make([]float64, args.Samples)
	if args.LogRegular {
		floats.LogSpan(zs, args.ZMin, args.ZMax)
	} else {
		floats.Span(zs, args.ZMin, args.ZMax)
	}

	xes := make([]float64, len(zs))
	for i := range zs {
		xe, err := solver.Xe(params, zs[i])
		if err != nil {
			lib.ExternalErrorf("%s", err.Error())
		}
		xes[i] = xe
	}

	if args.OutputFormat == "binary" {
		if err := table.Write(args.OutputFile, zs, xes); err != nil {
			lib.ExternalErrorf("The table couldn't be written to '%s': %s",
				args.OutputFile, err.Error())
		}
		return
	}

	out := os.Stdout
	if args.OutputFile != "" {
		fp, err := os.Create(args.OutputFile)
		if err != nil {
			lib.ExternalErrorf("The output file '%s' couldn't be "+
				"created: %s", args.OutputFile, err.Error())
		}
		defer fp.Close()
		out = fp
	}

	fmt.Fprintln(out, "# z Xe")
	for i := range zs {
		fmt.Fprintf(out, "%.8g %.8g\n", zs[i], xes[i])
	}
}
