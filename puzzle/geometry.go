package puzzle

/*

Board geometry

A board with L cells has side length N = sqrt(L), and its
quadrants have side length sqrt(N).  Both roots must be exact:
a 9x9 board has 81 cells and 3x3 quadrants.  Quadrants are
addressed by their position (bx, by) in the sqrt(N) x sqrt(N)
grid of quadrants, not by raw cell coordinates.

*/

// Find the integer square root of val, if it exists.
func findIntSquareRoot(val int) (int, bool) {
	var i int
	for i = 1; i*i <= val; i++ {
		if i*i == val {
			return i, true
		}
	}
	return i - 1, false
}

// boardGeometry derives the side and quadrant lengths from a cell
// count, failing unless both square roots are exact.
func boardGeometry(size int) (sidelen, quadlen int, err error) {
	sidelen, ok := findIntSquareRoot(size)
	if !ok {
		return 0, 0, geometryError(BoardSizeAttribute, size)
	}
	quadlen, ok = findIntSquareRoot(sidelen)
	if !ok {
		return 0, 0, geometryError(SideLengthAttribute, sidelen)
	}
	return sidelen, quadlen, nil
}

func geometryError(attr ErrorAttribute, val int) Error {
	return Error{
		Scope:     GeometryScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: NonSquareCondition,
		Values:    ErrorData{val},
	}
}

/*

Section extraction

A section is the ephemeral slice of values used by one constraint
check: a full row, a full column, or a full quadrant.  Every
section of an N-sided board has exactly N values.

*/

// Row returns the values of row x, in column order.
func (b Board) Row(x int) []int {
	section := make([]int, b.sidelen)
	for y := 0; y < b.sidelen; y++ {
		section[y] = b.Get(x, y)
	}
	return section
}

// Col returns the values of column y, in row order.
func (b Board) Col(y int) []int {
	section := make([]int, b.sidelen)
	for x := 0; x < b.sidelen; x++ {
		section[x] = b.Get(x, y)
	}
	return section
}

// Quadrant returns the values of the quadrant at quadrant
// coordinates (bx, by), in row-major order: element i*quadlen+j
// is the cell at row bx*quadlen+i, column by*quadlen+j.
func (b Board) Quadrant(bx, by int) []int {
	section := make([]int, 0, b.sidelen)
	for i := 0; i < b.quadlen; i++ {
		for j := 0; j < b.quadlen; j++ {
			section = append(section, b.Get(bx*b.quadlen+i, by*b.quadlen+j))
		}
	}
	return section
}
