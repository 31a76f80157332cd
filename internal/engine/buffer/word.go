package buffer

// A word starts with a letter or underscore and continues with letters,
// digits, underscores or hyphens. Digits and hyphens cannot start a
// word: in "9th" the word is "th", in "-x" it is "x".

func isWordHead(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

func isWordTail(r rune) bool {
	return isWordHead(r) || r == '-' || (r >= '0' && r <= '9')
}
