package game

import "math"

type float interface {
	~float32 | ~float64
}

// Mean ...
func Mean[T float](nums []T) T {
	if len(nums) == 0 {
		return 0
	}
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum / T(len(nums))
}

// Variance returns the population variance of nums.
func Variance[T float](nums []T) T {
	if len(nums) == 0 {
		return 0
	}
	mean := Mean(nums)

	var variance T
	for _, v := range nums {
		variance += (v - mean) * (v - mean)
	}
	return variance / T(len(nums))
}

// StandardDeviation ...
func StandardDeviation[T float](nums []T) T {
	return T(math.Sqrt(float64(Variance(nums))))
}
