package game

import "strings"

// NormalizeCards upper-cases card codes ("kh" -> "KH") into a fresh slice.
// Codes are not validated; the detection pipeline owns card recognition.
func NormalizeCards(cards []string) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = strings.ToUpper(strings.TrimSpace(c))
	}
	return out
}
