package algo

func init() {
	Register("lcs", LCSDiff)
}

// LCSDiff counts the edits between old and new via a dynamic-programming
// longest common subsequence: every element outside the LCS is one delete or
// one insert. O(len(old)*len(new)) time and space.
func LCSDiff(old, new []string) (int, error) {
	m := len(old)
	n := len(new)
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if old[i-1] == new[j-1] {
				lcs[i][j] = lcs[i-1][j-1] + 1
			} else if lcs[i-1][j] >= lcs[i][j-1] {
				lcs[i][j] = lcs[i-1][j]
			} else {
				lcs[i][j] = lcs[i][j-1]
			}
		}
	}

	common := lcs[m][n]
	return (m - common) + (n - common), nil
}
