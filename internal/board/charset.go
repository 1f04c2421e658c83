package board

import "image/color"

const (
	CodeBlank  = 0
	CodeRed    = 63
	CodeOrange = 64
	CodeYellow = 65
	CodeGreen  = 66
	CodeBlue   = 67
	CodeViolet = 68
	CodeWhite  = 69
	CodeBlack  = 70
	CodeFilled = 71

	maxCode = CodeFilled
)

const tile = '█'

// chars maps character codes below CodeRed. Codes the board leaves
// unassigned render as blank.
var chars = map[int]rune{
	37: '!', 38: '@', 39: '#', 40: '$', 41: '(', 42: ')',
	44: '-', 46: '+', 47: '&', 48: '=', 49: ';', 50: ':',
	52: '\'', 53: '"', 54: '%', 55: ',', 56: '.', 59: '/',
	60: '?', 62: '°',
}

var colors = map[int]color.Color{
	CodeRed:    color.RGBA{R: 0xDA, G: 0x29, B: 0x1C, A: 0xFF},
	CodeOrange: color.RGBA{R: 0xFF, G: 0x75, B: 0x00, A: 0xFF},
	CodeYellow: color.RGBA{R: 0xFF, G: 0xB8, B: 0x1F, A: 0xFF},
	CodeGreen:  color.RGBA{R: 0x00, G: 0x9A, B: 0x44, A: 0xFF},
	CodeBlue:   color.RGBA{R: 0x00, G: 0x84, B: 0xD5, A: 0xFF},
	CodeViolet: color.RGBA{R: 0x70, G: 0x2F, B: 0x8A, A: 0xFF},
	CodeWhite:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	CodeBlack:  color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	CodeFilled: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

func ValidCode(code int) bool {
	return code >= CodeBlank && code <= maxCode
}

func IsColor(code int) bool {
	return code >= CodeRed && code <= maxCode
}

// Char returns the printable rune for code.
func Char(code int) rune {
	switch {
	case code >= 1 && code <= 26:
		return rune('A' + code - 1)
	case code >= 27 && code <= 35:
		return rune('1' + code - 27)
	case code == 36:
		return '0'
	case IsColor(code):
		return tile
	}
	if r, ok := chars[code]; ok {
		return r
	}
	return ' '
}

// Color returns the tile color for a color code.
func Color(code int) (color.Color, bool) {
	c, ok := colors[code]
	return c, ok
}
