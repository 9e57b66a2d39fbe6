package smartstr

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// RuneCount returns the number of Unicode code points. This can be less
// than Len for multi-byte content.
func (s *String[M]) RuneCount() int {
	return utf8.RuneCountInString(s.view())
}

// GraphemeCount returns the number of user-perceived characters (grapheme
// clusters). Emoji sequences and combining marks count once each.
func (s *String[M]) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(s.view())
}

// Width returns the number of terminal cells the contents occupy, counting
// wide East Asian characters and emoji as two cells.
func (s *String[M]) Width() int {
	return uniseg.StringWidth(s.view())
}
