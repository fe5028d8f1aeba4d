package portabletext

import "strings"

// wordsPerMinute is the reading speed used by ReadingMinutes.
const wordsPerMinute = 200

// CountWords returns the number of whitespace-separated words in the span
// children of text blocks. Images and other block types are ignored.
func CountWords(blocks Blocks) int {
	n := 0
	for _, b := range blocks {
		tb, ok := b.(*TextBlock)
		if !ok || tb == nil {
			continue
		}
		for _, s := range tb.Children {
			if s.Type == "span" {
				n += len(strings.Fields(s.Text))
			}
		}
	}
	return n
}

// ReadingMinutes estimates reading time, rounding up. Documents without
// words take 0 minutes.
func ReadingMinutes(blocks Blocks) int {
	words := CountWords(blocks)
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
