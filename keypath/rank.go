package keypath

// Rank scores how structurally similar a candidate key path is to the source
// key path. Higher is better; identical sequences score 1.
//
// The score combines two signals: the optimal-string-alignment
// Damerau-Levenshtein distance between the key sequences, normalized by the
// longer length, and a penalty counting the distinct candidate symbols that
// have no counterpart anywhere in the source. With d the normalized distance
// and p the penalty, the score is 1 - (d+p)/(maxLen+p): candidates that
// rearrange or trim shared concepts rank above candidates that introduce
// foreign ones. Two empty paths score 0; there is no structure to compare.
func Rank(source, candidate KeyPath) float64 {
	longest := len(source)
	if len(candidate) > longest {
		longest = len(candidate)
	}
	if longest == 0 {
		return 0
	}

	sourceSet := source.Distinct()
	penalty := 0
	for k := range candidate.Distinct() {
		if _, ok := sourceSet[k]; !ok {
			penalty++
		}
	}

	d := float64(osaDistance(source, candidate)) / float64(longest)
	p := float64(penalty)
	return 1 - (d+p)/(float64(longest)+p)
}

// osaDistance is the optimal-string-alignment Damerau-Levenshtein distance
// over key sequences: insert, delete, substitute, and adjacent transposition,
// each costing one. The string-level primitive in package similarity cannot
// serve here because keys render as multi-character symbols, so the sequences
// are compared element-wise.
func osaDistance(a, b KeyPath) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			min := d[i-1][j] + 1 // deletion
			if v := d[i][j-1] + 1; v < min {
				min = v // insertion
			}
			if v := d[i-1][j-1] + cost; v < min {
				min = v // substitution
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if v := d[i-2][j-2] + 1; v < min {
					min = v // transposition
				}
			}
			d[i][j] = min
		}
	}
	return d[la][lb]
}
