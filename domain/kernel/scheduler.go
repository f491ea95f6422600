package kernel

// MinScheduleIntervals returns the fewest time slots needed to run every task
// when two runs of the same task must be at least coolDown slots apart. Idle
// slots count. A negative coolDown is treated as zero.
func MinScheduleIntervals(tasks []byte, coolDown int) int {
	if len(tasks) == 0 {
		return 0
	}
	if coolDown < 0 {
		coolDown = 0
	}

	var freq [256]int
	maxFreq := 0
	for _, t := range tasks {
		freq[t]++
		maxFreq = max(maxFreq, freq[t])
	}
	countMax := 0
	for _, f := range freq {
		if f == maxFreq {
			countMax++
		}
	}

	return max(len(tasks), (maxFreq-1)*(coolDown+1)+countMax)
}
