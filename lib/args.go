package lib

/* args.go contains the configuration pipeline. The config file and the
command line flags are each parsed into a RawArgs, flag values overwrite
file values, and Process fills in defaults to produce the Args everything
downstream consumes. */

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cosmoglot/reion/lib/catio"
	"github.com/cosmoglot/reion/lib/reion"
)

// RawArgs stores the unprocessed values which the user assigned to each
// config variable. A nil field was never set.
type RawArgs struct {
	// Model chooses the parameterization, "tanh" or "splined".
	Model *string `yaml:"Model"`
	// SolverLib is the directory holding the compiled solver library. When
	// it is unset the in-process solver is used instead.
	SolverLib *string `yaml:"SolverLib"`

	H0     *float64 `yaml:"H0"`
	OmegaB *float64 `yaml:"OmegaB"`
	OmegaC *float64 `yaml:"OmegaC"`
	OmegaL *float64 `yaml:"OmegaL"`
	TCMB   *float64 `yaml:"TCMB"`
	YHe    *float64 `yaml:"YHe"`

	OpticalDepth           *float64 `yaml:"OpticalDepth"`
	Redshift               *float64 `yaml:"Redshift"`
	DeltaRedshift          *float64 `yaml:"DeltaRedshift"`
	Fraction               *float64 `yaml:"Fraction"`
	IncludeHeliumFullReion *bool    `yaml:"IncludeHeliumFullReion"`
	HeliumRedshift         *float64 `yaml:"HeliumRedshift"`
	HeliumDeltaRedshift    *float64 `yaml:"HeliumDeltaRedshift"`
	HeliumRedshiftStart    *float64 `yaml:"HeliumRedshiftStart"`
	TauSolveAccuracyBoost  *float64 `yaml:"TauSolveAccuracyBoost"`
	TimestepBoost          *float64 `yaml:"TimestepBoost"`
	MaxRedshift            *float64 `yaml:"MaxRedshift"`

	// TableFile is a two-column (z, Xe) text file for the splined model.
	TableFile *string `yaml:"TableFile"`

	// ZMin, ZMax, Samples, and LogRegular control the redshift grid of the
	// "history" mode. OutputFile and OutputFormat control where it goes.
	ZMin       *float64 `yaml:"ZMin"`
	ZMax       *float64 `yaml:"ZMax"`
	Samples    *int     `yaml:"Samples"`
	LogRegular *bool    `yaml:"LogRegular"`

	OutputFile   *string `yaml:"OutputFile"`
	OutputFormat *string `yaml:"OutputFormat"`
}

// Args stores configuration information. It is a post-processed version of
// RawArgs with every default filled in.
type Args struct {
	Model     string
	SolverLib string

	H0, OmegaB, OmegaC, OmegaL, TCMB, YHe float64

	UseOpticalDepth        bool
	OpticalDepth, Redshift float64
	DeltaRedshift          float64
	Fraction               float64
	IncludeHeliumFullReion bool
	HeliumRedshift         float64
	HeliumDeltaRedshift    float64
	HeliumRedshiftStart    float64
	TauSolveAccuracyBoost  float64
	TimestepBoost          float64
	MaxRedshift            float64

	TableFile string

	ZMin, ZMax float64
	Samples    int
	LogRegular bool

	OutputFile   string
	OutputFormat string
}

// ParseCommandLine parses the command line arguments and returns the mode
// reion is being run in, the name of the config file, and any variables
// which were set. It expects the arguments in the order:
// $ reion <mode> <config file> [--<Var1> <value1>] [--<Var2> <value2>]
func ParseCommandLine() (mode, configFile string, args *RawArgs) {
	if len(os.Args) < 2 {
		ExternalErrorf("reion must be run as $ reion <mode> <config file> " +
			"[--<Var> <value>...]. The valid modes are 'help', 'check', " +
			"'zre', and 'history'.")
	}
	mode = os.Args[1]

	rest := os.Args[2:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "--") {
		configFile, rest = rest[0], rest[1:]
	}

	args = &RawArgs{}
	for i := 0; i < len(rest); i += 2 {
		if !strings.HasPrefix(rest[i], "--") {
			ExternalErrorf("The argument '%s' was found where a flag of "+
				"the form --<Var> was expected.", rest[i])
		}
		if i+1 >= len(rest) {
			ExternalErrorf("The flag '%s' wasn't given a value.", rest[i])
		}
		key := strings.TrimPrefix(rest[i], "--")
		if err := args.set(key, rest[i+1]); err != nil {
			ExternalErrorf("%s", err.Error())
		}
	}

	return mode, configFile, args
}

// ParseConfigFile parses variables from a YAML config file. An empty file
// name is allowed and sets nothing, since every variable has a default.
func ParseConfigFile(fileName string) *RawArgs {
	args := &RawArgs{}
	if fileName == "" {
		return args
	}

	b, err := os.ReadFile(fileName)
	if err != nil {
		ExternalErrorf("The config file %s couldn't be read: %s",
			fileName, err.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(args); err != nil {
		ExternalErrorf("The config file %s couldn't be parsed: %s",
			fileName, err.Error())
	}

	return args
}

// set assigns a single variable from its command line string form.
func (raw *RawArgs) set(key, value string) error {
	badValue := func(kind string) error {
		return fmt.Errorf("The flag --%s was given the value '%s', "+
			"which isn't a %s.", key, value, kind)
	}

	setF := func(dst **float64) error {
		x, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return badValue("number")
		}
		*dst = &x
		return nil
	}
	setB := func(dst **bool) error {
		x, err := strconv.ParseBool(value)
		if err != nil {
			return badValue("boolean")
		}
		*dst = &x
		return nil
	}
	setS := func(dst **string) error {
		s := value
		*dst = &s
		return nil
	}

	switch key {
	case "Model":
		return setS(&raw.Model)
	case "SolverLib":
		return setS(&raw.SolverLib)
	case "H0":
		return setF(&raw.H0)
	case "OmegaB":
		return setF(&raw.OmegaB)
	case "OmegaC":
		return setF(&raw.OmegaC)
	case "OmegaL":
		return setF(&raw.OmegaL)
	case "TCMB":
		return setF(&raw.TCMB)
	case "YHe":
		return setF(&raw.YHe)
	case "OpticalDepth":
		return setF(&raw.OpticalDepth)
	case "Redshift":
		return setF(&raw.Redshift)
	case "DeltaRedshift":
		return setF(&raw.DeltaRedshift)
	case "Fraction":
		return setF(&raw.Fraction)
	case "IncludeHeliumFullReion":
		return setB(&raw.IncludeHeliumFullReion)
	case "HeliumRedshift":
		return setF(&raw.HeliumRedshift)
	case "HeliumDeltaRedshift":
		return setF(&raw.HeliumDeltaRedshift)
	case "HeliumRedshiftStart":
		return setF(&raw.HeliumRedshiftStart)
	case "TauSolveAccuracyBoost":
		return setF(&raw.TauSolveAccuracyBoost)
	case "TimestepBoost":
		return setF(&raw.TimestepBoost)
	case "MaxRedshift":
		return setF(&raw.MaxRedshift)
	case "TableFile":
		return setS(&raw.TableFile)
	case "ZMin":
		return setF(&raw.ZMin)
	case "ZMax":
		return setF(&raw.ZMax)
	case "Samples":
		x, err := strconv.Atoi(value)
		if err != nil {
			return badValue("whole number")
		}
		raw.Samples = &x
		return nil
	case "LogRegular":
		return setB(&raw.LogRegular)
	case "OutputFile":
		return setS(&raw.OutputFile)
	case "OutputFormat":
		return setS(&raw.OutputFormat)
	}

	return fmt.Errorf("The flag --%s isn't a recognized config variable. "+
		"Run $ reion help for the full list.", key)
}

// Overwrite overwrites variables in arg1 which have been set in arg2.
func (arg1 *RawArgs) Overwrite(arg2 *RawArgs) {
	if arg2.Model != nil {
		arg1.Model = arg2.Model
	}
	if arg2.SolverLib != nil {
		arg1.SolverLib = arg2.SolverLib
	}
	if arg2.H0 != nil {
		arg1.H0 = arg2.H0
	}
	if arg2.OmegaB != nil {
		arg1.OmegaB = arg2.OmegaB
	}
	if arg2.OmegaC != nil {
		arg1.OmegaC = arg2.OmegaC
	}
	if arg2.OmegaL != nil {
		arg1.OmegaL = arg2.OmegaL
	}
	if arg2.TCMB != nil {
		arg1.TCMB = arg2.TCMB
	}
	if arg2.YHe != nil {
		arg1.YHe = arg2.YHe
	}
	if arg2.OpticalDepth != nil {
		arg1.OpticalDepth = arg2.OpticalDepth
	}
	if arg2.Redshift != nil {
		arg1.Redshift = arg2.Redshift
	}
	if arg2.DeltaRedshift != nil {
		arg1.DeltaRedshift = arg2.DeltaRedshift
	}
	if arg2.Fraction != nil {
		arg1.Fraction = arg2.Fraction
	}
	if arg2.IncludeHeliumFullReion != nil {
		arg1.IncludeHeliumFullReion = arg2.IncludeHeliumFullReion
	}
	if arg2.HeliumRedshift != nil {
		arg1.HeliumRedshift = arg2.HeliumRedshift
	}
	if arg2.HeliumDeltaRedshift != nil {
		arg1.HeliumDeltaRedshift = arg2.HeliumDeltaRedshift
	}
	if arg2.HeliumRedshiftStart != nil {
		arg1.HeliumRedshiftStart = arg2.HeliumRedshiftStart
	}
	if arg2.TauSolveAccuracyBoost != nil {
		arg1.TauSolveAccuracyBoost = arg2.TauSolveAccuracyBoost
	}
	if arg2.TimestepBoost != nil {
		arg1.TimestepBoost = arg2.TimestepBoost
	}
	if arg2.MaxRedshift != nil {
		arg1.MaxRedshift = arg2.MaxRedshift
	}
	if arg2.TableFile != nil {
		arg1.TableFile = arg2.TableFile
	}
	if arg2.ZMin != nil {
		arg1.ZMin = arg2.ZMin
	}
	if arg2.ZMax != nil {
		arg1.ZMax = arg2.ZMax
	}
	if arg2.Samples != nil {
		arg1.Samples = arg2.Samples
	}
	if arg2.LogRegular != nil {
		arg1.LogRegular = arg2.LogRegular
	}
	if arg2.OutputFile != nil {
		arg1.OutputFile = arg2.OutputFile
	}
	if arg2.OutputFormat != nil {
		arg1.OutputFormat = arg2.OutputFormat
	}
}

// Process converts the raw user input to a format which is more useful for
// internal functions, filling in defaults for everything the user didn't
// set. The defaults are a Planck-like cosmology and the standard tanh
// model. Only very simple processing happens here; validation that can
// actually fail lives in Check.
func (raw *RawArgs) Process() *Args {
	fl := func(p *float64, def float64) float64 {
		if p != nil {
			return *p
		}
		return def
	}
	b := func(p *bool, def bool) bool {
		if p != nil {
			return *p
		}
		return def
	}
	s := func(p *string, def string) string {
		if p != nil {
			return *p
		}
		return def
	}

	args := &Args{
		Model:     s(raw.Model, "tanh"),
		SolverLib: s(raw.SolverLib, ""),

		H0:     fl(raw.H0, 67.5),
		OmegaB: fl(raw.OmegaB, 0.049),
		OmegaC: fl(raw.OmegaC, 0.264),
		OmegaL: fl(raw.OmegaL, 0.685),
		TCMB:   fl(raw.TCMB, 2.7255),
		YHe:    fl(raw.YHe, 0.246),

		// When both primary parameters are given, the optical depth wins.
		UseOpticalDepth:        raw.OpticalDepth != nil,
		OpticalDepth:           fl(raw.OpticalDepth, 0),
		Redshift:               fl(raw.Redshift, 10),
		DeltaRedshift:          fl(raw.DeltaRedshift, 0.5),
		Fraction:               fl(raw.Fraction, -1),
		IncludeHeliumFullReion: b(raw.IncludeHeliumFullReion, true),
		HeliumRedshift:         fl(raw.HeliumRedshift, 3.5),
		HeliumDeltaRedshift:    fl(raw.HeliumDeltaRedshift, 0.4),
		HeliumRedshiftStart:    fl(raw.HeliumRedshiftStart, 5.0),
		TauSolveAccuracyBoost:  fl(raw.TauSolveAccuracyBoost, 1),
		TimestepBoost:          fl(raw.TimestepBoost, 1),
		MaxRedshift:            fl(raw.MaxRedshift, 50),

		TableFile: s(raw.TableFile, ""),

		ZMin:       fl(raw.ZMin, 0),
		ZMax:       fl(raw.ZMax, 50),
		Samples:    256,
		LogRegular: b(raw.LogRegular, false),

		OutputFile:   s(raw.OutputFile, ""),
		OutputFormat: s(raw.OutputFormat, "text"),
	}
	if raw.Samples != nil {
		args.Samples = *raw.Samples
	}

	return args
}

// TanhModel builds the tanh parameterization described by args, bound to
// the given solver backend.
func (args *Args) TanhModel(solver reion.Solver) *reion.Tanh {
	m := reion.NewTanh(solver)
	if args.UseOpticalDepth {
		m.SetTau(args.OpticalDepth, args.DeltaRedshift)
	} else {
		m.SetZrei(args.Redshift, args.DeltaRedshift)
	}
	m.Fraction = args.Fraction
	m.IncludeHeliumFullReion = args.IncludeHeliumFullReion
	m.HeliumRedshift = args.HeliumRedshift
	m.HeliumDeltaRedshift = args.HeliumDeltaRedshift
	m.HeliumRedshiftStart = args.HeliumRedshiftStart
	m.TauSolveAccuracyBoost = args.TauSolveAccuracyBoost
	m.TimestepBoost = args.TimestepBoost
	m.MaxRedshift = args.MaxRedshift
	return m
}

// SplinedModel builds the splined parameterization by reading TableFile
// and ingesting it into the given solver backend.
func (args *Args) SplinedModel(solver reion.Solver) (*reion.Splined, error) {
	z, Xe, err := catio.ReadZXe(args.TableFile)
	if err != nil {
		return nil, err
	}
	m, err := reion.NewSplinedTable(solver, z, Xe)
	if err != nil {
		return nil, err
	}
	m.TimestepBoost = args.TimestepBoost
	return m, nil
}

// Cosmology builds the parameter aggregate handed to the solver, with the
// given model attached.
func (args *Args) Cosmology(model reion.ReionModel) *reion.Params {
	return &reion.Params{
		H0: args.H0, OmegaB: args.OmegaB, OmegaC: args.OmegaC,
		OmegaL: args.OmegaL, TCMB: args.TCMB, YHe: args.YHe,
		Reion: model,
	}
}
