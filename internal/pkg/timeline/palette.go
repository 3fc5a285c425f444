package timeline

import (
	"strconv"

	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
)

// FallbackColorHex is used for a color tag outside the palette.
const FallbackColorHex = "#9E9E9E"

var palette = map[dto.TripColor]string{
	dto.ColorBlue:   "#4A78C2",
	dto.ColorGreen:  "#2D9E6F",
	dto.ColorOrange: "#E08A2E",
	dto.ColorPurple: "#7A5AC8",
	dto.ColorTeal:   "#2AA7A0",
	dto.ColorPink:   "#E76AB1",
	dto.ColorBrown:  "#8A5A44",
	dto.ColorCyan:   "#3AA6D0",
	dto.ColorLime:   "#8BC34A",
	dto.ColorRed:    "#E05A5A",
}

func ColorHex(color dto.TripColor) string {
	if hex, ok := palette[color]; ok {
		return hex
	}

	return FallbackColorHex
}

// ColorRGB splits the palette entry into 0-255 channels for surfaces that need them.
func ColorRGB(color dto.TripColor) (int, int, int) {
	hex := ColorHex(color)

	return hexByte(hex[1:3]), hexByte(hex[3:5]), hexByte(hex[5:7])
}

func hexByte(s string) int {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}

	return int(v)
}
