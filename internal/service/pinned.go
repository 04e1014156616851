package service

import "slices"

// sortPinnedFirst 将置顶项稳定地移到前面，其余项保持原有顺序。
func sortPinnedFirst[T any](items []T, pinned func(T) bool) {
	slices.SortStableFunc(items, func(a, b T) int {
		pa, pb := pinned(a), pinned(b)
		switch {
		case pa == pb:
			return 0
		case pa:
			return -1
		default:
			return 1
		}
	})
}
