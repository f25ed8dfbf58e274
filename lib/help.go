package lib

import (
	"fmt"
)

/* help.go contains the text printed by reion's "help" mode. */

const helpText = `reion computes reionization histories from tanh or tabulated
ionization-fraction models.

Usage:
    $ reion <mode> <config file> [--<Var> <value>] [--<Var> <value>] ...

The config file is YAML and may be omitted. Flags overwrite config file
values. The modes are:

    help     Print this message.
    check    Validate the configuration and report any problems.
    zre      Print the mid-point reionization redshift. In optical depth
             mode this inverts tau through the solver; in redshift mode it
             just echoes the configured value.
    history  Evaluate Xe(z) on a redshift grid and write it out.

Model selection:
    Model                   'tanh' (default) or 'splined'
    TableFile               (z, Xe) text table, required for 'splined'
    SolverLib               directory with the compiled solver library;
                            when unset, the built-in solver is used

Cosmology (defaults are Planck-like):
    H0, OmegaB, OmegaC, OmegaL, TCMB, YHe

Tanh model:
    OpticalDepth            sets optical depth mode
    Redshift                mid-point redshift (default 10), used when
                            OpticalDepth is unset
    DeltaRedshift           transition width (default 0.5)
    Fraction                completed ionization fraction, or -1 (default)
                            for full hydrogen + first helium
    IncludeHeliumFullReion, HeliumRedshift, HeliumDeltaRedshift,
    HeliumRedshiftStart     second helium transition (on, 3.5, 0.4, 5.0)
    TauSolveAccuracyBoost, TimestepBoost, MaxRedshift
                            solver accuracy knobs (1, 1, 50)

History grid and output:
    ZMin, ZMax, Samples     grid bounds and size (0, 50, 256)
    LogRegular              space the grid log-uniformly (needs ZMin > 0)
    OutputFile              output path; stdout when unset
    OutputFormat            'text' (default) or 'binary'`

// PrintHelp prints reion's help text.
func PrintHelp() {
	fmt.Println(helpText)
}
