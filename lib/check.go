package lib

/* check.go contains the core functions of reion's "check" mode. */

import (
	"fmt"
	"log"
	"os"
)

// CheckStrictness indicates how Check should behave when it encounters a
// problem with the configuration.
type CheckStrictness int

const (
	CrashOnError CheckStrictness = iota
	WarnOnError
)

// Check validates the processed configuration. Depending on strict it
// either crashes on the first report or prints every problem as a warning.
// It returns true if all tests passed and false otherwise.
func Check(strict CheckStrictness, args *Args) bool {
	problems := checkProblems(args)
	if len(problems) == 0 {
		return true
	}

	if strict == CrashOnError {
		msg := "The configuration has the following problems:\n"
		for _, p := range problems {
			msg += "  - " + p + "\n"
		}
		ExternalErrorf("%s", msg)
	}
	for _, p := range problems {
		log.Printf("Warning: %s", p)
	}
	return false
}

func checkProblems(args *Args) []string {
	var problems []string
	bad := func(format string, a ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, a...))
	}

	if args.Model != "tanh" && args.Model != "splined" {
		bad("Model is '%s', but the only valid models are 'tanh' and "+
			"'splined'.", args.Model)
	}

	if args.H0 <= 0 {
		bad("H0 = %g, but the Hubble constant must be positive (it's in "+
			"km/s/Mpc, so something like 67.5).", args.H0)
	}
	if args.OmegaB <= 0 {
		bad("OmegaB = %g, but the baryon density must be positive.",
			args.OmegaB)
	}
	if args.OmegaC < 0 || args.OmegaL < 0 {
		bad("OmegaC = %g and OmegaL = %g, but the density parameters "+
			"can't be negative.", args.OmegaC, args.OmegaL)
	}
	if args.YHe <= 0 || args.YHe >= 1 {
		bad("YHe = %g, but the helium mass fraction must be strictly "+
			"between 0 and 1.", args.YHe)
	}

	if args.DeltaRedshift < 0 {
		bad("DeltaRedshift = %g, but the transition width can't be "+
			"negative.", args.DeltaRedshift)
	}
	if args.Fraction != -1 && args.Fraction < 0 {
		bad("Fraction = %g, but the completed ionization fraction must "+
			"be non-negative, or exactly -1 for full hydrogen plus first "+
			"helium ionization.", args.Fraction)
	}
	if args.MaxRedshift <= 0 {
		bad("MaxRedshift = %g, but the tau inversion needs a positive "+
			"redshift range to search.", args.MaxRedshift)
	}
	if args.UseOpticalDepth && args.OpticalDepth < 0 {
		bad("OpticalDepth = %g, but an optical depth can't be negative.",
			args.OpticalDepth)
	}

	if args.Model == "splined" {
		if args.TableFile == "" {
			bad("Model is 'splined', but no TableFile was given to read " +
				"the (z, Xe) samples from.")
		} else if _, err := os.Stat(args.TableFile); err != nil {
			bad("TableFile is '%s', but that file can't be read: %s.",
				args.TableFile, err.Error())
		}
	}

	if args.ZMin < 0 {
		bad("ZMin = %g, but redshifts can't be negative.", args.ZMin)
	}
	if args.ZMax <= args.ZMin {
		bad("The history grid needs ZMin < ZMax, but ZMin = %g and "+
			"ZMax = %g.", args.ZMin, args.ZMax)
	}
	if args.Samples < 2 {
		bad("Samples = %d, but the history grid needs at least 2 points.",
			args.Samples)
	}
	if args.LogRegular && args.ZMin <= 0 {
		bad("LogRegular grids need ZMin > 0, but ZMin = %g.", args.ZMin)
	}

	switch args.OutputFormat {
	case "text", "binary":
	default:
		bad("OutputFormat is '%s', but the only valid formats are 'text' "+
			"and 'binary'.", args.OutputFormat)
	}
	if args.OutputFormat == "binary" && args.OutputFile == "" {
		bad("OutputFormat is 'binary', but binary tables can't go to " +
			"stdout: set OutputFile.")
	}

	return problems
}
