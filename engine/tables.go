package engine

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"cnchess/cnboard"
)

// Tables holds the evaluation data: a material value and a 10x9 positional
// bonus grid for each of the 14 piece symbols. A Tables value is never
// mutated after construction, so concurrent search workers share it without
// locks.
type Tables struct {
	material [256]int32
	position [256][cnboard.RealRows][cnboard.RealCols]int32
}

// pieceList enumerates the 14 piece symbols in config order.
var pieceList = [14]cnboard.Piece{
	cnboard.UpPawn, cnboard.UpCannon, cnboard.UpRook, cnboard.UpKnight,
	cnboard.UpBishop, cnboard.UpAdvisor, cnboard.UpGeneral,
	cnboard.DownPawn, cnboard.DownCannon, cnboard.DownRook, cnboard.DownKnight,
	cnboard.DownBishop, cnboard.DownAdvisor, cnboard.DownGeneral,
}

// pieceKey maps a piece symbol to its config key. Letter case cannot carry
// the side distinction because viper lowercases keys.
func pieceKey(p cnboard.Piece) string {
	side := "up"
	if p.Side() == cnboard.SideDown {
		side = "down"
	}
	var kind string
	switch p.Type() {
	case cnboard.TypePawn:
		kind = "pawn"
	case cnboard.TypeCannon:
		kind = "cannon"
	case cnboard.TypeRook:
		kind = "rook"
	case cnboard.TypeKnight:
		kind = "knight"
	case cnboard.TypeBishop:
		kind = "bishop"
	case cnboard.TypeAdvisor:
		kind = "advisor"
	case cnboard.TypeGeneral:
		kind = "general"
	}
	return side + "_" + kind
}

// Material returns the material value of a piece.
func (t *Tables) Material(p cnboard.Piece) int32 {
	return t.material[p]
}

// Position returns the positional bonus of a piece standing on playing-area
// coordinates (row 0..9, col 0..8).
func (t *Tables) Position(p cnboard.Piece, row, col int) int32 {
	return t.position[p][row][col]
}

// LoadTables reads the evaluation tables from a YAML config file. The file
// must carry a material value and a full 10x9 positional grid for every one
// of the 14 piece symbols; anything missing or misshapen is an error. The
// caller treats a failure as fatal.
func LoadTables(path string) (*Tables, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read evaluation config: %w", err)
	}

	t := &Tables{}
	for _, p := range pieceList {
		key := pieceKey(p)

		materialKey := "material." + key
		if !v.IsSet(materialKey) {
			return nil, fmt.Errorf("evaluation config %s: missing %s", path, materialKey)
		}
		t.material[p] = int32(v.GetInt(materialKey))

		grid, err := gridFromConfig(v, "position."+key)
		if err != nil {
			return nil, fmt.Errorf("evaluation config %s: %w", path, err)
		}
		t.position[p] = grid
	}
	return t, nil
}

// ExportConfig writes tables out in the format LoadTables reads. The config
// type is inferred from the path extension.
func ExportConfig(t *Tables, path string) error {
	v := viper.New()
	for _, p := range pieceList {
		key := pieceKey(p)
		v.Set("material."+key, int(t.material[p]))

		rows := make([][]int, cnboard.RealRows)
		for r := 0; r < cnboard.RealRows; r++ {
			row := make([]int, cnboard.RealCols)
			for c := 0; c < cnboard.RealCols; c++ {
				row[c] = int(t.position[p][r][c])
			}
			rows[r] = row
		}
		v.Set("position."+key, rows)
	}
	return v.WriteConfigAs(path)
}

func gridFromConfig(v *viper.Viper, key string) ([cnboard.RealRows][cnboard.RealCols]int32, error) {
	var grid [cnboard.RealRows][cnboard.RealCols]int32

	rows, ok := v.Get(key).([]interface{})
	if !ok {
		return grid, fmt.Errorf("%s: not a list of rows", key)
	}
	if len(rows) != cnboard.RealRows {
		return grid, fmt.Errorf("%s: want %d rows, got %d", key, cnboard.RealRows, len(rows))
	}
	for r, rawRow := range rows {
		row, ok := rawRow.([]interface{})
		if !ok {
			return grid, fmt.Errorf("%s: row %d is not a list", key, r)
		}
		if len(row) != cnboard.RealCols {
			return grid, fmt.Errorf("%s: row %d: want %d columns, got %d", key, r, cnboard.RealCols, len(row))
		}
		for c, cell := range row {
			n, err := cast.ToIntE(cell)
			if err != nil {
				return grid, fmt.Errorf("%s: row %d col %d: %w", key, r, c, err)
			}
			grid[r][c] = int32(n)
		}
	}
	return grid, nil
}
