package registry

// foldASCII lower-cases the ASCII letters in s and leaves every other byte
// untouched. Applying the same fold to both entered hints and query text
// makes hint matching case-insensitive without needing Unicode case
// tables: the hint mechanism only needs a guaranteed substring, not an
// exact one, so folding never loses a match, only widens the byte pattern
// the keyword index looks for.
func foldASCII(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if c := b[i]; c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
