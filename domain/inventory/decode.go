package inventory

// DecodeModulus bounds CountStringPossibilities results.
const DecodeModulus = 1_000_000_007

// CountStringPossibilities counts the original messages that autocorrect
// could have turned into s, where each "w" was typed as "uu" and each "m" as
// "nn". A literal 'w' or 'm' cannot appear in corrected text, so such input
// has zero readings. The count is taken modulo DecodeModulus.
func CountStringPossibilities(s string) int64 {
	for i := 0; i < len(s); i++ {
		if s[i] == 'w' || s[i] == 'm' {
			return 0
		}
	}

	// prev2, prev1 = readings of s[:i-2], s[:i-1]
	prev2, prev1 := int64(1), int64(1)
	for i := 1; i < len(s); i++ {
		cur := prev1
		if s[i] == s[i-1] && (s[i] == 'u' || s[i] == 'n') {
			cur = (cur + prev2) % DecodeModulus
		}
		prev2, prev1 = prev1, cur
	}
	return prev1
}
