/*package table reads and writes tabulated Xe(z) curves as small binary
files, so a computed reionization history can be cached and re-ingested
later without recomputing it. The two columns are stored as zstd-compressed
float64 arrays behind a magic number and version, in the byte order of the
machine that wrote the file.
*/
package table

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/DataDog/zstd"
)

const (
	// MagicNumber is an arbitrary number at the start of every table file
	// which should help identify when the code is run on something else by
	// accident.
	MagicNumber = 0x7eab10e0
	// ReverseMagicNumber is the magic number as read on a machine with
	// flipped endianness.
	ReverseMagicNumber = 0xe010ab7e
	Version            = 1
)

// Write writes the (z, Xe) table to fname. The two arrays must have equal,
// non-zero length.
func Write(fname string, z, Xe []float64) error {
	if len(z) != len(Xe) {
		return fmt.Errorf("the z and Xe columns must have the same "+
			"length, but they have lengths %d and %d", len(z), len(Xe))
	}
	if len(z) == 0 {
		return fmt.Errorf("an empty table can't be written to %s", fname)
	}

	order := binary.ByteOrder(binary.LittleEndian)
	raw := &bytes.Buffer{}
	if err := binary.Write(raw, order, z); err != nil {
		return err
	}
	if err := binary.Write(raw, order, Xe); err != nil {
		return err
	}

	comp, err := zstd.CompressLevel(nil, raw.Bytes(), 1)
	if err != nil {
		return err
	}

	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer fp.Close()

	hd := []interface{}{
		uint32(MagicNumber), uint32(Version),
		int64(len(z)), int64(len(comp)),
	}
	for _, x := range hd {
		if err := binary.Write(fp, order, x); err != nil {
			return err
		}
	}

	_, err = fp.Write(comp)
	return err
}

// Read reads a table written by Write and returns its two columns.
func Read(fname string) (z, Xe []float64, err error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	defer fp.Close()

	order, err := checkFile(fname, fp)
	if err != nil {
		return nil, nil, err
	}

	var n, nComp int64
	if err := binary.Read(fp, order, &n); err != nil {
		return nil, nil, err
	}
	if err := binary.Read(fp, order, &nComp); err != nil {
		return nil, nil, err
	}
	if n <= 0 || nComp <= 0 {
		return nil, nil, fmt.Errorf("the file %s claims to contain %d "+
			"samples in %d compressed bytes, so it is corrupted or "+
			"truncated", fname, n, nComp)
	}

	comp := make([]byte, nComp)
	if _, err := fp.Read(comp); err != nil {
		return nil, nil, err
	}
	raw, err := zstd.Decompress(nil, comp)
	if err != nil {
		return nil, nil, err
	}
	if int64(len(raw)) != 16*n {
		return nil, nil, fmt.Errorf("the file %s decompressed to %d "+
			"bytes, but %d samples need %d", fname, len(raw), n, 16*n)
	}

	z, Xe = make([]float64, n), make([]float64, n)
	buf := bytes.NewBuffer(raw)
	if err := binary.Read(buf, order, z); err != nil {
		return nil, nil, err
	}
	if err := binary.Read(buf, order, Xe); err != nil {
		return nil, nil, err
	}

	return z, Xe, nil
}

// checkFile reads in the file's magic number and version number and makes
// sure this is actually a table file that this version of the code can
// read. If it is, the byte order it was written with is returned.
func checkFile(fname string, fp *os.File) (binary.ByteOrder, error) {
	var magicNumber, version uint32

	order := binary.ByteOrder(binary.LittleEndian)
	if err := binary.Read(fp, order, &magicNumber); err != nil {
		return nil, err
	}

	switch magicNumber {
	case MagicNumber:
	case ReverseMagicNumber:
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%s is not an Xe table file. All table "+
			"files begin with either the 32-bit integer %x or %x, but "+
			"this file begins with %x.", fname, uint32(MagicNumber),
			uint32(ReverseMagicNumber), magicNumber)
	}

	if err := binary.Read(fp, order, &version); err != nil {
		return nil, err
	}
	if version > Version {
		return nil, fmt.Errorf("the file %s was written with table "+
			"format version %d, but this code only reads up to version "+
			"%d", fname, version, Version)
	}

	return order, nil
}
