package ast

import (
	"sort"
)

// SortPreOrder orders constructs the way a depth-first tree walk would visit
// them: by first token ascending, outer before inner on ties.
func SortPreOrder(constructs []Construct) {
	sort.SliceStable(constructs, func(i, j int) bool {
		if constructs[i].FirstTok != constructs[j].FirstTok {
			return constructs[i].FirstTok < constructs[j].FirstTok
		}
		return constructs[i].LastTok > constructs[j].LastTok
	})
}
