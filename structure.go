package coevol

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Coord is the 3D position of a residue in a structure.
type Coord struct {
	X, Y, Z float64
}

// Distance will return the Euclidean distance between two residue coordinates
func Distance(a, b Coord) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DistancesFromCoords will build the symmetric pairwise distance matrix for an
// ordered slice of residue coordinates. An empty slice yields nil rather than
// a zero-dimension matrix.
func DistancesFromCoords(coords []Coord) *mat.SymDense {
	n := len(coords)
	if n == 0 {
		return nil
	}
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(i, j, Distance(coords[i], coords[j]))
		}
	}
	return d
}

// ReadCoords will read one residue coordinate per line as whitespace-separated
// x y z values. Blank lines and lines starting with '#' are skipped. Structure
// files themselves are not parsed here; extracting per-residue coordinates
// from a PDB chain is the caller's job.
func ReadCoords(r io.Reader) ([]Coord, error) {
	var coords []Coord
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want 3 coordinate fields, got %d", lineno, len(fields))
		}
		var vals [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineno, err)
			}
			vals[i] = v
		}
		coords = append(coords, Coord{X: vals[0], Y: vals[1], Z: vals[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return coords, nil
}

// ReadCoordsFile will read residue coordinates from a path
func ReadCoordsFile(path string) ([]Coord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCoords(f)
}
