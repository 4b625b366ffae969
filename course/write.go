package course

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// WriteCosts writes one cost per run to w, three decimal places, run order
// preserved.
func WriteCosts(w io.Writer, costs []float64) error {
	bw := bufio.NewWriter(w)
	for _, c := range costs {
		if _, err := fmt.Fprintf(bw, "%.3f\n", c); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// OutputName maps an input course path to its result file: the extension is
// replaced by ".out" ("factory.txt" → "factory.out"; extensionless names
// just gain ".out").
func OutputName(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".out"
}
