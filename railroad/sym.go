package railroad

// Box-drawing glyphs used by the diagram primitives. Read-only tables,
// fixed before any rendering starts.

// Start and end of diagram
const (
	symStart = '╟'
	symEnd   = '╢'
)

// Junctions
const (
	symCross  = '┼'
	symJLeft  = '┤'
	symJRight = '├'
	symJUp    = '┴'
	symJDown  = '┬'

	symJLeftB  = '┨'
	symJRightB = '┠'
)

// Box and path drawing
const (
	symHorz  = '─'
	symHorzB = '━'
	symHorzD = '╌'
	symVert  = '│'
	symVertD = '┆'

	symTLSqr = '┌'
	symTRSqr = '┐'
	symBLSqr = '└'
	symBRSqr = '┘'

	symTLSqrB = '┏'
	symTRSqrB = '┓'
	symBLSqrB = '┗'
	symBRSqrB = '┛'

	symTLRnd = '╭'
	symTRRnd = '╮'
	symBLRnd = '╰'
	symBRRnd = '╯'
)
