package shogi

import (
	"errors"
	"strings"
	"unicode"
)

// 局面图：9 行用 "/" 隔开，空位用数字压缩（也接受 '.'），大写先手、小写后手；
// 空格后是持驹：先手的大写字母 + 后手的小写字母，按入手顺序，无持驹写 "-"。
// 只用于调试输出、测试局面和 HTTP 展示，不是存档格式。

var ErrInvalidDiagram = errors.New("invalid position diagram")

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	ch := p.Kind().Def().Letter
	if ch == 0 {
		return '.'
	}
	if p.Side() == First {
		return unicode.ToUpper(ch)
	}
	return ch
}

func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[SquareAt(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if len(p.Hands[First]) == 0 && len(p.Hands[Second]) == 0 {
		sb.WriteByte('-')
		return sb.String()
	}
	for _, side := range []Side{First, Second} {
		for _, k := range p.Hands[side] {
			sb.WriteRune(pieceToChar(MakePiece(side, k)))
		}
	}
	return sb.String()
}

func charToPiece(ch rune) (Piece, bool) {
	k, ok := kindByLetter[unicode.ToLower(ch)]
	if !ok {
		return 0, false
	}
	if unicode.IsUpper(ch) {
		return MakePiece(First, k), true
	}
	return MakePiece(Second, k), true
}

// DecodePosition 解析局面图；持驹部分可省略
func DecodePosition(s string) (*Position, error) {
	parts := strings.Fields(s)
	if len(parts) < 1 || len(parts) > 2 {
		return nil, ErrInvalidDiagram
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidDiagram
	}
	pos := &Position{}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, ErrInvalidDiagram
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				return nil, ErrInvalidDiagram
			}
			pos.Board.Squares[SquareAt(r, c)] = pc
			c++
		}
		if c != Cols {
			return nil, ErrInvalidDiagram
		}
	}
	if len(parts) == 2 && parts[1] != "-" {
		for _, ch := range parts[1] {
			pc, ok := charToPiece(ch)
			if !ok || pc.Kind().Royal() {
				return nil, ErrInvalidDiagram
			}
			pos.Hands[pc.Side()] = append(pos.Hands[pc.Side()], pc.Kind())
		}
	}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}

// String 多行棋盘，调试用
func (p *Position) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sb.WriteRune(pieceToChar(p.Board.Squares[SquareAt(r, c)]))
		}
		sb.WriteByte('\n')
	}
	enc := p.Encode()
	sb.WriteString("hands: ")
	sb.WriteString(enc[strings.LastIndexByte(enc, ' ')+1:])
	return sb.String()
}
