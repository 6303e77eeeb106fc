package fuzztests

import (
	"testing"
	"unicode/utf8"
)

const (
	maxSeedBytes = 4 << 10 // 4 KiB, одна строка кода не бывает длиннее
)

// seedLines are lines people actually feed the tool: ASCII, wide runes,
// combining marks, and tabs.
var seedLines = []string{
	`let x: i32 = "five";`,
	"fn main() { println!(\"hi\") }",
	"\tif err != nil {",
	"let 名前 = \"値\";",
	"cafe\u0301 = 1",
	"🦀🦀🦀",
	"a",
}

func addLineSeeds(f *testing.F) {
	for _, line := range seedLines {
		n := utf8.RuneCountInString(line)
		f.Add(line, 0, n-1, 1, 69)
		f.Add(line, n/2, n-1, 9999, 0)
	}
}

func clampLine(s string) string {
	if len(s) <= maxSeedBytes {
		return s
	}
	return s[:maxSeedBytes]
}
