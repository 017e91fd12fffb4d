// internal/ui/name_field.go
package ui

import (
	"unicode"
	"unicode/utf8"
)

// NameField collects the player name typed on the menu screen.
type NameField struct {
	limit int
	runes []rune
}

func NewNameField(limit int) *NameField {
	return &NameField{limit: limit}
}

// Type appends printable characters up to the limit.
func (f *NameField) Type(chars []rune) {
	for _, r := range chars {
		if len(f.runes) >= f.limit {
			return
		}
		if unicode.IsPrint(r) && utf8.ValidRune(r) {
			f.runes = append(f.runes, r)
		}
	}
}

// Backspace removes the last character, if any.
func (f *NameField) Backspace() {
	if len(f.runes) > 0 {
		f.runes = f.runes[:len(f.runes)-1]
	}
}

func (f *NameField) String() string {
	return string(f.runes)
}
