/*package catio reads columns out of whitespace-separated numeric text
files, which is the format most tabulated ionization histories get passed
around in. Lines that are blank or start with '#' are skipped.
*/
package catio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadColumns reads the given zero-indexed columns from every data line of
// the file and returns one float64 array per requested column.
func ReadColumns(fname string, cols ...int) ([][]float64, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns were requested from %s", fname)
	}

	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	out := make([][]float64, len(cols))
	line := 0

	scan := bufio.NewScanner(fp)
	for scan.Scan() {
		line++
		text := strings.TrimSpace(scan.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		for i, col := range cols {
			if col >= len(fields) {
				return nil, fmt.Errorf("line %d of %s only has %d "+
					"columns, but column %d was requested", line, fname,
					len(fields), col)
			}
			x, err := strconv.ParseFloat(fields[col], 64)
			if err != nil {
				return nil, fmt.Errorf("column %d on line %d of %s is "+
					"'%s', which isn't a number", col, line, fname,
					fields[col])
			}
			out[i] = append(out[i], x)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}

	if len(out[0]) == 0 {
		return nil, fmt.Errorf("%s contains no data lines", fname)
	}
	return out, nil
}

// ReadZXe reads a two-column (z, Xe) table from the first two columns of
// the file.
func ReadZXe(fname string) (z, Xe []float64, err error) {
	cols, err := ReadColumns(fname, 0, 1)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}
