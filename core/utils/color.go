package utils

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf16"
)

// MinChannel is the lowest value any RGB channel produced by StringToColor
// may take, which keeps generated colors away from black.
const MinChannel = 50

// StringToColor derives a deterministic "#rrggbb" color from text.
//
// The hash is the classic `h = c + (h<<5) - h` rolling hash over the UTF-16
// code units of text, with the shift operating on the 32-bit truncation of h.
// Each channel is then one byte of the hash, floored at MinChannel.
// Empty text has no color.
func StringToColor(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	var hash float64
	for _, c := range utf16.Encode([]rune(text)) {
		hash = float64(c) + (float64(toInt32(hash)<<5) - hash)
	}

	h := toInt32(hash)
	var b strings.Builder
	b.Grow(7)
	b.WriteByte('#')
	for i := 0; i < 3; i++ {
		channel := max(int((h>>(8*i))&0xff), MinChannel)
		fmt.Fprintf(&b, "%02x", channel)
	}
	return b.String(), true
}

// toInt32 truncates f to a signed 32-bit integer with modular wrap-around.
func toInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return int32(uint32(m))
}
