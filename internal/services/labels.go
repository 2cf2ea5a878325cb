package services

// StopLabel returns the spreadsheet-style label for a 0-based stop index:
// 0 -> "A", 25 -> "Z", 26 -> "AA", 27 -> "AB".
func StopLabel(i int) string {
	if i < 0 {
		return ""
	}

	var buf []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}
	reverseBytes(buf)
	return string(buf)
}

func reverseBytes(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
