package sort

// Bubble sorts data in place with n-1 passes of adjacent swaps. Each pass
// settles the largest remaining element, so the inner bound shrinks by one.
// Only strictly out-of-order neighbours are swapped, which keeps it stable.
func Bubble[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n < 2 {
		return
	}
	for pass := 1; pass < n; pass++ {
		for i := 0; i < n-pass; i++ {
			if less(data[i+1], data[i]) {
				data[i], data[i+1] = data[i+1], data[i]
			}
		}
	}
}

// Insertion sorts data in place by shifting every strictly greater
// predecessor of data[i] one slot right and dropping data[i] in the gap.
func Insertion[T any](data []T, less func(a, b T) bool) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
