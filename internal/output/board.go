// Package output draws a Dodo chess game for a terminal and words the
// messages shown to the players.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/dodochess-go/internal/chess"
	"github.com/lgbarn/dodochess-go/internal/config"
	"github.com/lgbarn/dodochess-go/internal/engine"
)

// Attributes used when colour is enabled.
var (
	whiteAttrs    = []color.Attribute{color.FgHiWhite, color.Bold}
	blackAttrs    = []color.Attribute{color.FgHiRed, color.Bold}
	markerAttrs   = []color.Attribute{color.FgHiGreen}
	lastMoveAttrs = []color.Attribute{color.BgBlue}
)

// cell is one printed token of the board grid.
type cell struct {
	text  string
	attrs []color.Attribute
}

// BoardWriter writes the board of a game to a terminal.
type BoardWriter struct {
	w   io.Writer
	cfg *config.DisplayConfig
}

// NewBoardWriter creates a board writer.
func NewBoardWriter(w io.Writer, cfg *config.DisplayConfig) *BoardWriter {
	return &BoardWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteBoard writes the board with file letters above and below and rank
// numbers on both sides, rank 8 first.
func (bw *BoardWriter) WriteBoard(g *engine.Game) error {
	for _, row := range RenderBoard(g, bw.cfg) {
		line := strings.TrimRight(strings.Join(row, " "), " ")
		if _, err := fmt.Fprintln(bw.w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderBoard returns the board grid, one slice of tokens per printed line.
// Tokens carry ANSI colour codes only when cfg.UseColour is set.
func RenderBoard(g *engine.Game, cfg *config.DisplayConfig) [][]string {
	cells := grid(g, cfg)
	rows := make([][]string, len(cells))
	for i, row := range cells {
		rows[i] = make([]string, len(row))
		for j, c := range row {
			rows[i][j] = paint(c, cfg.UseColour)
		}
	}
	return rows
}

func paint(c cell, useColour bool) string {
	if !useColour || len(c.attrs) == 0 {
		return c.text
	}
	style := color.New(c.attrs...)
	style.EnableColor()
	return style.Sprint(c.text)
}

func grid(g *engine.Game, cfg *config.DisplayConfig) [][]cell {
	files := fileRow()
	border := borderRow(cfg.UseUnicode)
	rows := [][]cell{files, border}

	var marks chess.SquareSet
	if cfg.ShowMoves {
		marks = g.ToMove().Moves()
	}
	last, moved := g.LastMove()
	board := g.Board()

	for row := 0; row < chess.BoardSize; row++ {
		rank := cell{text: string(rune(chess.LastRank - row))}
		line := []cell{rank, {text: "|"}}
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Square{Row: row, Col: col}
			c := squareCell(board.At(sq), marks.Has(sq), cfg.UseUnicode)
			if moved && (sq == last.From || sq == last.To) {
				c.attrs = append(c.attrs, lastMoveAttrs...)
			}
			line = append(line, c, cell{text: "|"})
		}
		line = append(line, rank)
		rows = append(rows, line, border)
	}
	return append(rows, files)
}

func squareCell(p *chess.Piece, marked, unicode bool) cell {
	switch {
	case p != nil:
		c := cell{text: string(p.Letter())}
		if unicode {
			c.text = p.Symbol()
		}
		if p.Colour == chess.White {
			c.attrs = append(c.attrs, whiteAttrs...)
		} else {
			c.attrs = append(c.attrs, blackAttrs...)
		}
		return c
	case marked && unicode:
		return cell{text: "·", attrs: markerAttrs}
	case marked:
		return cell{text: ".", attrs: markerAttrs}
	default:
		return cell{text: " "}
	}
}

func fileRow() []cell {
	row := []cell{{text: " "}}
	for col := 0; col < chess.BoardSize; col++ {
		row = append(row, cell{text: " "}, cell{text: string(rune(chess.ColBase + col))})
	}
	return append(row, cell{text: " "}, cell{text: " "})
}

func borderRow(unicode bool) []cell {
	corner := "+"
	if unicode {
		corner = "▪"
	}
	row := []cell{{text: " "}, {text: corner}}
	for i := 0; i < 2*chess.BoardSize-1; i++ {
		row = append(row, cell{text: "-"})
	}
	return append(row, cell{text: corner})
}
