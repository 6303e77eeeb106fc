package source

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// normalizeNFC переводит текст в NFC, чтобы позиции рун совпадали с тем, что видит пользователь.
// Возвращает новый слайс и флаг: были ли изменения.
func normalizeNFC(content []byte) ([]byte, bool) {
	if norm.NFC.IsNormal(content) {
		return content, false
	}
	return norm.NFC.Bytes(content), true
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 4)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// lineStart returns the byte offset where the line containing off begins,
// together with the 0-based line index.
func lineStart(lineIdx []uint32, off uint32) (start uint32, line int) {
	// бинпоиск: находим наибольший lineIdx[i] < off
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if hi < 0 {
		return 0, 0
	}
	return lineIdx[hi] + 1, hi + 1
}

func toLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	if off > uint32(len(content)) {
		off = uint32(len(content))
	}
	start, line := lineStart(lineIdx, off)
	col := utf8.RuneCount(content[start:off]) + 1
	return LineCol{Line: uint32(line + 1), Col: uint32(col)}
}
