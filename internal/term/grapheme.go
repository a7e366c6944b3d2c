package term

import (
	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// GraphemeClusters splits text into user-perceived characters.
func GraphemeClusters(text string) []string {
	var clusters []string
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// GraphemeClusterWidth returns the display width in columns of one
// grapheme cluster. The width is that of the base codepoint, except
// that an emoji presentation selector (U+FE0F) anywhere in the cluster
// forces a width of 2.
func GraphemeClusterWidth(cluster []rune) int {
	if len(cluster) == 0 {
		return 0
	}
	for _, cp := range cluster[1:] {
		if cp == 0xFE0F {
			return 2
		}
	}
	return runewidth.RuneWidth(cluster[0])
}
