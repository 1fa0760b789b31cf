package review

// Average returns the mean of ratings in hundredths, rounded half up, or nil
// when there is nothing to average.
func Average(ratings []Rating) *int64 {
	if len(ratings) == 0 {
		return nil
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r.tenths)
	}
	n := int64(len(ratings))
	avg := (sum*10*2 + n) / (2 * n)
	return &avg
}
