package game

import "sort"

// DepthOrder returns entity indices back to front: entities higher on the
// screen are drawn first, ties fall back to collection order. The collection
// itself is left untouched since the player index points into it.
func DepthOrder(entities []Entity) []int {
	order := make([]int, len(entities))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ya := entities[order[a]].Position().Y
		yb := entities[order[b]].Position().Y
		if ya != yb {
			return ya < yb
		}
		return order[a] < order[b]
	})
	return order
}
