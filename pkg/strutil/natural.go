package strutil

// NaturalCompare compares a and b the way the listing engine's "version"
// sort key does: runs of ASCII digits are compared numerically rather
// than byte-by-byte, so "img2.txt" sorts before "img10.txt". Returns a
// negative number, zero, or a positive number, mirroring strings.Compare.
func NaturalCompare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]
		if isDigit(ca) && isDigit(cb) {
			na, ni := scanNumber(ra, i)
			nb, nj := scanNumber(rb, j)
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			i, j = ni, nj
			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case i < len(ra):
		return 1
	case j < len(rb):
		return -1
	default:
		return 0
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanNumber reads a maximal run of digits starting at i and returns its
// numeric value along with the index just past the run. Leading zeros
// are consumed without affecting the magnitude comparison.
func scanNumber(rs []rune, i int) (value int, next int) {
	start := i
	for i < len(rs) && isDigit(rs[i]) {
		i++
	}
	for _, r := range rs[start:i] {
		value = value*10 + int(r-'0')
	}
	return value, i
}
