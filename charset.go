package img2text

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
)

var (
	// ErrUnknownCharset reports a charset name outside the supported set.
	ErrUnknownCharset = errors.New("unknown charset")

	// ErrEmptyCharset reports a charset with no characters in it.
	ErrEmptyCharset = errors.New("charset contains no characters")
)

// CharsetNames lists the named charsets accepted by Charset, for use in
// CLI validation and help text.
var CharsetNames = []string{
	"latin",
	"cyrillic",
	"runic",
	"hebrew",
	"hiragana",
	"katakana",
	"hangul",
	"cjkunified",
	"greek",
	"emoticons",
	"decimal",
	"hexadecimal",
	"binary",
	"braille",
	"playingcards",
}

// Charset returns the candidate characters for a named charset. Names are
// case-insensitive. Script charsets are filtered to letter code points;
// symbol charsets (emoticons, braille, digits, playing cards) keep their
// full range.
func Charset(name string) ([]rune, error) {
	switch strings.ToLower(name) {
	case "latin":
		return letterRange(0x0041, 0x007A), nil
	case "cyrillic":
		return letterRange(0x0400, 0x04FF), nil
	case "runic":
		return letterRange(0x16A0, 0x16FF), nil
	case "hebrew":
		return letterRange(0x0590, 0x05FF), nil
	case "hiragana":
		return letterRange(0x3040, 0x309F), nil
	case "katakana":
		return letterRange(0x30A0, 0x30FF), nil
	case "hangul":
		return letterRange(0x1100, 0x11FF), nil
	case "cjkunified":
		return letterRange(0x4E00, 0x9FFF), nil
	case "greek":
		return letterRange(0x0370, 0x03E1), nil
	case "emoticons":
		return runeRange(0x1F600, 0x1F64F), nil
	case "decimal":
		return runeRange('0', '9'), nil
	case "hexadecimal":
		return append(runeRange('0', '9'), runeRange('A', 'F')...), nil
	case "binary":
		return []rune{'0', '1'}, nil
	case "braille":
		return runeRange(0x2800, 0x28FF), nil
	case "playingcards":
		return playingCards(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
}

// LoadCustomCharset reads a charset file: the trimmed file contents become
// the candidate set, one rune per character.
func LoadCustomCharset(path string) ([]rune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read charset file: %w", err)
	}
	runes := []rune(strings.TrimSpace(string(data)))
	if len(runes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCharset, path)
	}
	return runes, nil
}

// runeRange returns every code point in [lo, hi].
func runeRange(lo, hi rune) []rune {
	runes := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		runes = append(runes, r)
	}
	return runes
}

// letterRange returns the letter code points in [lo, hi].
func letterRange(lo, hi rune) []rune {
	var runes []rune
	for r := lo; r <= hi; r++ {
		if unicode.IsLetter(r) {
			runes = append(runes, r)
		}
	}
	return runes
}

// playingCards returns the Playing Cards block minus the four code points
// the block leaves unassigned between suits.
func playingCards() []rune {
	var runes []rune
	for r := rune(0x1F0A0); r <= 0x1F0DF; r++ {
		switch r {
		case 0x1F0AF, 0x1F0B0, 0x1F0C0, 0x1F0D0:
			continue
		}
		runes = append(runes, r)
	}
	return runes
}
