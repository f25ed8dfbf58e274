package camb

import (
	"fmt"

	"github.com/jupiterrider/ffi"
)

/* functions.go resolves the three contracted entry points. Scalars cross
the boundary by reference and tables as raw contiguous float64 buffers, so
every argument is a pointer at the call interface. */

var (
	setTableFunc      ffi.Fun
	setLogRegularFunc ffi.Fun
	getZreFromTauFunc ffi.Fun
)

func loadFuncs() error {
	var err error

	// SetTable(count *int32, z *float64, Xe *float64)
	if setTableFunc, err = lib.Prep("SetTable", &ffi.TypeVoid,
		&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer); err != nil {
		return fmt.Errorf("SetTable: %w", err)
	}

	// SetLogRegular(zmin *float64, zmax *float64, count *int32, Xe *float64)
	if setLogRegularFunc, err = lib.Prep("SetLogRegular", &ffi.TypeVoid,
		&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer,
		&ffi.TypePointer); err != nil {
		return fmt.Errorf("SetLogRegular: %w", err)
	}

	// GetZreFromTau(params *ParamsRecord, tau *float64) float64
	if getZreFromTauFunc, err = lib.Prep("GetZreFromTau", &ffi.TypeDouble,
		&ffi.TypePointer, &ffi.TypePointer); err != nil {
		return fmt.Errorf("GetZreFromTau: %w", err)
	}

	return nil
}
