package cnboard

// Piece is the symbol stored in a board cell. Upper-case letters belong to
// the up side, lower-case letters to the down side. Two extra symbols mark an
// empty cell and the sentinel border around the playing area.
type Piece byte

const (
	UpPawn    Piece = 'P'
	UpCannon  Piece = 'C'
	UpRook    Piece = 'R'
	UpKnight  Piece = 'N'
	UpBishop  Piece = 'B'
	UpAdvisor Piece = 'A'
	UpGeneral Piece = 'G'

	DownPawn    Piece = 'p'
	DownCannon  Piece = 'c'
	DownRook    Piece = 'r'
	DownKnight  Piece = 'n'
	DownBishop  Piece = 'b'
	DownAdvisor Piece = 'a'
	DownGeneral Piece = 'g'

	Empty    Piece = '.'
	Offboard Piece = '#'
)

// PieceType is a sideless representation of a piece used for rule dispatch.
type PieceType uint8

const (
	TypeNone PieceType = iota
	TypePawn
	TypeCannon
	TypeRook
	TypeKnight
	TypeBishop
	TypeAdvisor
	TypeGeneral
)

// Type returns the sideless type of the piece. Empty and Offboard map to TypeNone.
func (p Piece) Type() PieceType {
	switch p {
	case UpPawn, DownPawn:
		return TypePawn
	case UpCannon, DownCannon:
		return TypeCannon
	case UpRook, DownRook:
		return TypeRook
	case UpKnight, DownKnight:
		return TypeKnight
	case UpBishop, DownBishop:
		return TypeBishop
	case UpAdvisor, DownAdvisor:
		return TypeAdvisor
	case UpGeneral, DownGeneral:
		return TypeGeneral
	default:
		return TypeNone
	}
}

// Side returns the side that owns the piece. Empty and Offboard map to SideNone.
func (p Piece) Side() Side {
	switch p {
	case UpPawn, UpCannon, UpRook, UpKnight, UpBishop, UpAdvisor, UpGeneral:
		return SideUp
	case DownPawn, DownCannon, DownRook, DownKnight, DownBishop, DownAdvisor, DownGeneral:
		return SideDown
	default:
		return SideNone
	}
}

// Side identifies a player. The up side starts on the low rows of the grid
// and advances downward; the down side starts on the high rows and advances
// upward.
type Side uint8

const (
	SideUp Side = iota
	SideDown
	SideNone
)

// Flip returns the opposing side. Flipping SideNone returns SideNone.
func (s Side) Flip() Side {
	switch s {
	case SideUp:
		return SideDown
	case SideDown:
		return SideUp
	default:
		return SideNone
	}
}

func (s Side) String() string {
	switch s {
	case SideUp:
		return "up"
	case SideDown:
		return "down"
	default:
		return "none"
	}
}

// Board geometry. The real playing area is 10 rows by 9 columns, surrounded
// by a 2-cell sentinel border so that movement rules can probe offsets
// without bounds checks: any off-board probe reads Offboard.
const (
	RowNum = 14
	ColNum = 13

	RealRows = 10
	RealCols = 9

	RowBegin = 2
	ColBegin = 2
	RowEnd   = 11
	ColEnd   = 10

	// Last row of the up half and first row of the down half.
	RiverUp   = 6
	RiverDown = 7

	PalaceUpTop      = 2
	PalaceUpBottom   = 4
	PalaceDownTop    = 9
	PalaceDownBottom = 11
	PalaceLeft       = 5
	PalaceRight      = 7
)

// startLayout is the initial position, written row by row including the
// sentinel border.
const startLayout = "#############" +
	"#############" +
	"##RNBAGABNR##" +
	"##.........##" +
	"##.C.....C.##" +
	"##P.P.P.P.P##" +
	"##.........##" +
	"##.........##" +
	"##p.p.p.p.p##" +
	"##.c.....c.##" +
	"##.........##" +
	"##rnbagabnr##" +
	"#############" +
	"#############"

// Pos addresses a cell of the padded grid.
type Pos struct {
	Row int
	Col int
}

// Move is an ordered (from, to) pair of cells. Moves compare structurally.
type Move struct {
	From Pos
	To   Pos
}

// historyRecord remembers everything needed to restore the board to the
// state immediately before a move: the move itself and the pieces that sat
// on its endpoints.
type historyRecord struct {
	move Move
	from Piece
	to   Piece
}

// Board is the mutable game state: a padded grid of piece symbols plus a
// stack of applied moves. It has no rule knowledge; legality lives in the
// move generator.
type Board struct {
	cells   [RowNum * ColNum]Piece
	history []historyRecord
}

// New returns a board set up with the standard starting position.
func New() *Board {
	b := &Board{}
	for i := 0; i < len(startLayout); i++ {
		b.cells[i] = Piece(startLayout[i])
	}
	return b
}

// NewEmpty returns a board whose playing area is entirely empty. Used to
// build specific positions with SetPiece.
func NewEmpty() *Board {
	b := New()
	for r := RowBegin; r <= RowEnd; r++ {
		for c := ColBegin; c <= ColEnd; c++ {
			b.set(r, c, Empty)
		}
	}
	return b
}

// Get returns the piece at (r, c). Probing outside the playing area returns
// Offboard as long as the coordinates stay within the padded grid.
func (b *Board) Get(r, c int) Piece {
	return b.cells[r*ColNum+c]
}

// At returns the piece at the given position.
func (b *Board) At(p Pos) Piece {
	return b.Get(p.Row, p.Col)
}

func (b *Board) set(r, c int, p Piece) {
	b.cells[r*ColNum+c] = p
}

// SetPiece places a piece on a playing-area cell, replacing whatever was
// there. It does not touch the history stack.
func (b *Board) SetPiece(r, c int, p Piece) {
	b.set(r, c, p)
}

// ClearCell empties a playing-area cell.
func (b *Board) ClearCell(r, c int) {
	b.set(r, c, Empty)
}

// Apply mechanically performs a move: it records the pieces at both
// endpoints, empties the from-cell and writes the moved piece to the
// to-cell. No legality check of any kind is made.
func (b *Board) Apply(m Move) {
	fp := b.At(m.From)
	tp := b.At(m.To)

	b.history = append(b.history, historyRecord{move: m, from: fp, to: tp})

	b.set(m.From.Row, m.From.Col, Empty)
	b.set(m.To.Row, m.To.Col, fp)
}

// Undo reverts the most recently applied move, restoring both endpoint
// cells, including a captured piece if any. Undoing with empty history is a
// silent no-op.
func (b *Board) Undo() {
	n := len(b.history)
	if n == 0 {
		return
	}
	rec := b.history[n-1]
	b.history = b.history[:n-1]

	b.set(rec.move.From.Row, rec.move.From.Col, rec.from)
	b.set(rec.move.To.Row, rec.move.To.Col, rec.to)
}

// HistoryDepth reports how many applied moves have not been undone.
func (b *Board) HistoryDepth() int {
	return len(b.history)
}

// Clone returns a fully independent deep copy of the board, history
// included. Concurrent search workers each own a clone; no board is ever
// shared between goroutines.
func (b *Board) Clone() *Board {
	c := &Board{cells: b.cells}
	if len(b.history) > 0 {
		c.history = make([]historyRecord, len(b.history))
		copy(c.history, b.history)
	}
	return c
}

// FindGeneral scans the side's palace for its general. The second return is
// false when the general has been captured.
func (b *Board) FindGeneral(side Side) (Pos, bool) {
	top, bottom := PalaceUpTop, PalaceUpBottom
	want := UpGeneral
	if side == SideDown {
		top, bottom = PalaceDownTop, PalaceDownBottom
		want = DownGeneral
	}
	for r := top; r <= bottom; r++ {
		for c := PalaceLeft; c <= PalaceRight; c++ {
			if b.Get(r, c) == want {
				return Pos{Row: r, Col: c}, true
			}
		}
	}
	return Pos{}, false
}

// Validate checks internal consistency: the sentinel border must be intact
// and every playing-area cell must hold a known symbol. Returns true if
// consistent.
func (b *Board) Validate() bool {
	for r := 0; r < RowNum; r++ {
		for c := 0; c < ColNum; c++ {
			p := b.Get(r, c)
			inside := r >= RowBegin && r <= RowEnd && c >= ColBegin && c <= ColEnd
			if !inside {
				if p != Offboard {
					return false
				}
				continue
			}
			if p == Offboard {
				return false
			}
			if p != Empty && p.Type() == TypeNone {
				return false
			}
		}
	}
	return true
}
