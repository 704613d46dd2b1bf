package render

// Board colors
var (
	RgbBackground = FromUnit(0.8, 1.0, 0.9) // Mint board
	RgbGrid       = RGB{180, 225, 205}

	RgbSlot          = RGB{150, 170, 160}
	RgbSlotHighlight = RGB{255, 215, 80}
	RgbSlotMarker    = RGB{90, 110, 100}

	RgbPieceEdge   = RGB{40, 40, 40}
	RgbPieceLocked = RGB{60, 160, 90}
	RgbPieceLifted = RGB{255, 255, 255}

	RgbStatusText = RGB{20, 40, 30}
	RgbStatusBg   = RGB{170, 215, 195}
	RgbBanner     = RGB{200, 60, 120}
)

// piecePalette cycles by piece ID
var piecePalette = []RGB{
	{230, 110, 90},  // Coral
	{90, 150, 230},  // Sky
	{240, 190, 60},  // Mustard
	{170, 110, 210}, // Lilac
	{70, 190, 190},  // Teal
	{240, 140, 190}, // Pink
}

// confettiPalette is sampled per particle
var confettiPalette = []RGB{
	{255, 80, 80},
	{255, 200, 40},
	{60, 200, 90},
	{70, 130, 255},
	{200, 90, 220},
}

// PieceColor returns the stable fill color of a piece
func PieceColor(id uint64) RGB {
	if id == 0 {
		return piecePalette[0]
	}
	return piecePalette[(id-1)%uint64(len(piecePalette))]
}
