// Package sparse implements row-major sparse matrices over
// field.Element, the representation R1CS/CCS matrices use (spec.md
// §4.1). Matrix-vector products are pure functions over immutable
// inputs and parallelize internally across row chunks once a matrix
// is large enough to make that worthwhile, following the same
// errgroup.WithContext fan-out shape the teacher uses to download
// artifacts concurrently (service/artifacts.go).
package sparse

import (
	"runtime"

	novaerrors "github.com/vocdoni/nova-go/errors"
	"github.com/vocdoni/nova-go/field"
	"golang.org/x/sync/errgroup"
)

// Entry is a single non-zero (value, column) pair within a row.
type Entry struct {
	Value field.Element
	Col   int
}

// Matrix is a sparse matrix in row-major form: Rows[i] lists the
// non-zero entries of row i.
type Matrix struct {
	NRows int
	NCols int
	Rows  [][]Entry
}

// New returns an nRows x nCols zero matrix ready to have entries set.
func New(nRows, nCols int) *Matrix {
	return &Matrix{
		NRows: nRows,
		NCols: nCols,
		Rows:  make([][]Entry, nRows),
	}
}

// Set appends (value, col) to row; callers are responsible for not
// duplicating columns within a row (duplicate columns would silently
// change eval_relation's result).
func (m *Matrix) Set(row, col int, value field.Element) {
	m.Rows[row] = append(m.Rows[row], Entry{Value: value, Col: col})
}

// parallelRowThreshold is the row count above which MulVec splits
// work across goroutines; below it the fixed cost of spawning workers
// outweighs the saving.
const parallelRowThreshold = 256

// MulVec computes m*z. Returns ShapeMismatch if len(z) != m.NCols.
func (m *Matrix) MulVec(z field.Vector) (field.Vector, error) {
	if len(z) != m.NCols {
		return nil, novaerrors.ErrShapeMismatch
	}
	out := make(field.Vector, m.NRows)
	if m.NRows < parallelRowThreshold {
		for i, row := range m.Rows {
			out[i] = evalRow(row, z)
		}
		return out, nil
	}

	workers := min(runtime.GOMAXPROCS(0), m.NRows)
	chunk := (m.NRows + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < m.NRows; start += chunk {
		end := min(start+chunk, m.NRows)
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = evalRow(m.Rows[i], z)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; guarded for future cancellable variants
	return out, nil
}

func evalRow(row []Entry, z field.Vector) field.Element {
	var acc, term field.Element
	for _, e := range row {
		term.Mul(&e.Value, &z[e.Col])
		acc.Add(&acc, &term)
	}
	return acc
}

// Hadamard returns the element-wise (entrywise) product of a and b,
// aligned by (row, col). Both matrices must share dimensions.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	if a.NRows != b.NRows || a.NCols != b.NCols {
		return nil, novaerrors.ErrShapeMismatch
	}
	out := New(a.NRows, a.NCols)
	for i := range a.Rows {
		bVals := make(map[int]field.Element, len(b.Rows[i]))
		for _, e := range b.Rows[i] {
			bVals[e.Col] = e.Value
		}
		for _, e := range a.Rows[i] {
			if bv, ok := bVals[e.Col]; ok {
				var prod field.Element
				prod.Mul(&e.Value, &bv)
				if !prod.IsZero() {
					out.Set(i, e.Col, prod)
				}
			}
		}
	}
	return out, nil
}

// Scale returns m with every entry multiplied by c.
func (m *Matrix) Scale(c field.Element) *Matrix {
	out := New(m.NRows, m.NCols)
	for i, row := range m.Rows {
		scaled := make([]Entry, len(row))
		for j, e := range row {
			var v field.Element
			v.Mul(&e.Value, &c)
			scaled[j] = Entry{Value: v, Col: e.Col}
		}
		out.Rows[i] = scaled
	}
	return out
}
