package sorting

// InsertionSort returns a sorted copy of in. The input is never modified.
func InsertionSort(in []int) []int {
	result := make([]int, len(in))
	copy(result, in)

	for i := 1; i < len(result); i++ {
		key := result[i]
		j := i - 1
		for j >= 0 && result[j] > key {
			result[j+1] = result[j]
			j--
		}
		result[j+1] = key
	}
	return result
}

// BubbleSort returns a sorted copy of in. The input is never modified.
func BubbleSort(in []int) []int {
	result, _ := BubbleSortPasses(in)
	return result
}

// BubbleSortPasses is BubbleSort with the number of passes it made over the
// data. It stops after the first pass without a swap, so sorted input of
// length two or more takes exactly one pass.
func BubbleSortPasses(in []int) ([]int, int) {
	result := make([]int, len(in))
	copy(result, in)

	n := len(result)
	passes := 0
	for i := 0; i < n-1; i++ {
		passes++
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if result[j] > result[j+1] {
				result[j], result[j+1] = result[j+1], result[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return result, passes
}
