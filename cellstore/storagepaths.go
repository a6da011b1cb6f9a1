package cellstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forestrie/go-rollgrid/rollgrid"
	"github.com/google/uuid"
)

const (
	V1RollGridsPrefix = "v1/rollgrids/"
	V1CellExtSep      = "."
	V1CellExt         = "cell"

	// LenUUIDString is the length of the UUID string representation, per
	// https://www.rfc-editor.org/rfc/rfc9562.html#name-uuid-format
	LenUUIDString = 36
)

// StoragePrefix returns the prefix under which every cell of a grid is
// stored: v1/rollgrids/{uuid}/
func StoragePrefix(gridID uuid.UUID) string {
	return fmt.Sprintf("%s%s/", V1RollGridsPrefix, gridID.String())
}

func FmtCellPath2D(prefix string, c rollgrid.Coord2) string {
	return fmt.Sprintf("%s%d.%d%s%s", prefix, c.X, c.Y, V1CellExtSep, V1CellExt)
}

func FmtCellPath3D(prefix string, c rollgrid.Coord3) string {
	return fmt.Sprintf("%s%d.%d.%d%s%s", prefix, c.X, c.Y, c.Z, V1CellExtSep, V1CellExt)
}

// ParseGridID recovers the grid id from a storage path produced with
// StoragePrefix.
func ParseGridID(storagePath string) (uuid.UUID, error) {
	i := strings.Index(storagePath, V1RollGridsPrefix)
	if i == -1 {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrBadGridID, storagePath)
	}
	rest := storagePath[i+len(V1RollGridsPrefix):]

	// Allow the uuid to be followed by a slash or end of string.
	j := strings.Index(rest, "/")
	if j == -1 {
		j = len(rest)
	}
	if j != LenUUIDString {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrBadGridID, storagePath)
	}
	id, err := uuid.Parse(rest[:j])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrBadGridID, err)
	}
	return id, nil
}

// cellComponents returns the integer components of the base name of a cell
// path, "1.-2.cell" gives [1, -2].
func cellComponents(storagePath string, n int) ([]int32, error) {
	storagePath = strings.TrimSuffix(storagePath, "/")
	baseName := storagePath[strings.LastIndex(storagePath, "/")+1:]

	suffix := V1CellExtSep + V1CellExt
	if !strings.HasSuffix(baseName, suffix) {
		return nil, fmt.Errorf("%w: %s has no cell suffix", ErrBadCellPath, storagePath)
	}
	parts := strings.Split(strings.TrimSuffix(baseName, suffix), ".")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %s has %d components, want %d", ErrBadCellPath, storagePath, len(parts), n)
	}
	values := make([]int32, n)
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadCellPath, err)
		}
		values[i] = int32(v)
	}
	return values, nil
}

func Coord2FromPath(storagePath string) (rollgrid.Coord2, error) {
	v, err := cellComponents(storagePath, 2)
	if err != nil {
		return rollgrid.Coord2{}, err
	}
	return rollgrid.Coord2{X: v[0], Y: v[1]}, nil
}

func Coord3FromPath(storagePath string) (rollgrid.Coord3, error) {
	v, err := cellComponents(storagePath, 3)
	if err != nil {
		return rollgrid.Coord3{}, err
	}
	return rollgrid.Coord3{X: v[0], Y: v[1], Z: v[2]}, nil
}
