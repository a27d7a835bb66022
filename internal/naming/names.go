// Package naming resolves colours to human-readable names: an exact
// lookup against the CSS named palette first, then a nearest-neighbour
// search over a larger reference table.
package naming

import "github.com/vimaki/colors-of-paintings/internal/colour"

type namedColour struct {
	rgb  colour.RGB
	name string
}

// cssPalette is the canonical CSS/X11 named palette used for exact
// matches. Order matters: several values carry two names (Aqua/Cyan,
// Fuchsia/Magenta, the Gray/Grey pairs) and the first entry wins.
var cssPalette = []namedColour{
	{colour.RGB{R: 240, G: 248, B: 255}, "Alice Blue"},
	{colour.RGB{R: 250, G: 235, B: 215}, "Antique White"},
	{colour.RGB{R: 0, G: 255, B: 255}, "Aqua"},
	{colour.RGB{R: 127, G: 255, B: 212}, "Aquamarine"},
	{colour.RGB{R: 240, G: 255, B: 255}, "Azure"},
	{colour.RGB{R: 245, G: 245, B: 220}, "Beige"},
	{colour.RGB{R: 255, G: 228, B: 196}, "Bisque"},
	{colour.RGB{R: 0, G: 0, B: 0}, "Black"},
	{colour.RGB{R: 255, G: 235, B: 205}, "Blanched Almond"},
	{colour.RGB{R: 0, G: 0, B: 255}, "Blue"},
	{colour.RGB{R: 138, G: 43, B: 226}, "Blue Violet"},
	{colour.RGB{R: 165, G: 42, B: 42}, "Brown"},
	{colour.RGB{R: 222, G: 184, B: 135}, "Burlywood"},
	{colour.RGB{R: 95, G: 158, B: 160}, "Cadet Blue"},
	{colour.RGB{R: 127, G: 255, B: 0}, "Chartreuse"},
	{colour.RGB{R: 210, G: 105, B: 30}, "Chocolate"},
	{colour.RGB{R: 255, G: 127, B: 80}, "Coral"},
	{colour.RGB{R: 100, G: 149, B: 237}, "Cornflower Blue"},
	{colour.RGB{R: 255, G: 248, B: 220}, "Cornsilk"},
	{colour.RGB{R: 220, G: 20, B: 60}, "Crimson"},
	{colour.RGB{R: 0, G: 255, B: 255}, "Cyan"},
	{colour.RGB{R: 0, G: 0, B: 139}, "Dark Blue"},
	{colour.RGB{R: 0, G: 139, B: 139}, "Dark Cyan"},
	{colour.RGB{R: 184, G: 134, B: 11}, "Dark Goldenrod"},
	{colour.RGB{R: 169, G: 169, B: 169}, "Dark Gray"},
	{colour.RGB{R: 0, G: 100, B: 0}, "Dark Green"},
	{colour.RGB{R: 189, G: 183, B: 107}, "Dark Khaki"},
	{colour.RGB{R: 139, G: 0, B: 139}, "Dark Magenta"},
	{colour.RGB{R: 85, G: 107, B: 47}, "Dark Olive Green"},
	{colour.RGB{R: 255, G: 140, B: 0}, "Dark Orange"},
	{colour.RGB{R: 153, G: 50, B: 204}, "Dark Orchid"},
	{colour.RGB{R: 139, G: 0, B: 0}, "Dark Red"},
	{colour.RGB{R: 233, G: 150, B: 122}, "Dark Salmon"},
	{colour.RGB{R: 143, G: 188, B: 143}, "Dark Sea Green"},
	{colour.RGB{R: 72, G: 61, B: 139}, "Dark Slate Blue"},
	{colour.RGB{R: 47, G: 79, B: 79}, "Dark Slate Gray"},
	{colour.RGB{R: 0, G: 206, B: 209}, "Dark Turquoise"},
	{colour.RGB{R: 148, G: 0, B: 211}, "Dark Violet"},
	{colour.RGB{R: 255, G: 20, B: 147}, "Deep Pink"},
	{colour.RGB{R: 0, G: 191, B: 255}, "Deep Sky Blue"},
	{colour.RGB{R: 105, G: 105, B: 105}, "Dim Gray"},
	{colour.RGB{R: 30, G: 144, B: 255}, "Dodger Blue"},
	{colour.RGB{R: 178, G: 34, B: 34}, "Firebrick"},
	{colour.RGB{R: 255, G: 250, B: 240}, "Floral White"},
	{colour.RGB{R: 34, G: 139, B: 34}, "Forest Green"},
	{colour.RGB{R: 255, G: 0, B: 255}, "Fuchsia"},
	{colour.RGB{R: 220, G: 220, B: 220}, "Gainsboro"},
	{colour.RGB{R: 248, G: 248, B: 255}, "Ghost White"},
	{colour.RGB{R: 255, G: 215, B: 0}, "Gold"},
	{colour.RGB{R: 218, G: 165, B: 32}, "Goldenrod"},
	{colour.RGB{R: 128, G: 128, B: 128}, "Gray"},
	{colour.RGB{R: 0, G: 128, B: 0}, "Green"},
	{colour.RGB{R: 173, G: 255, B: 47}, "Green Yellow"},
	{colour.RGB{R: 240, G: 255, B: 240}, "Honeydew"},
	{colour.RGB{R: 255, G: 105, B: 180}, "Hot Pink"},
	{colour.RGB{R: 205, G: 92, B: 92}, "Indian Red"},
	{colour.RGB{R: 75, G: 0, B: 130}, "Indigo"},
	{colour.RGB{R: 255, G: 255, B: 240}, "Ivory"},
	{colour.RGB{R: 240, G: 230, B: 140}, "Khaki"},
	{colour.RGB{R: 230, G: 230, B: 250}, "Lavender"},
	{colour.RGB{R: 255, G: 240, B: 245}, "Lavender Blush"},
	{colour.RGB{R: 124, G: 252, B: 0}, "Lawn Green"},
	{colour.RGB{R: 255, G: 250, B: 205}, "Lemon Chiffon"},
	{colour.RGB{R: 173, G: 216, B: 230}, "Light Blue"},
	{colour.RGB{R: 240, G: 128, B: 128}, "Light Coral"},
	{colour.RGB{R: 224, G: 255, B: 255}, "Light Cyan"},
	{colour.RGB{R: 250, G: 250, B: 210}, "Light Goldenrod Yellow"},
	{colour.RGB{R: 211, G: 211, B: 211}, "Light Gray"},
	{colour.RGB{R: 144, G: 238, B: 144}, "Light Green"},
	{colour.RGB{R: 255, G: 182, B: 193}, "Light Pink"},
	{colour.RGB{R: 255, G: 160, B: 122}, "Light Salmon"},
	{colour.RGB{R: 32, G: 178, B: 170}, "Light Sea Green"},
	{colour.RGB{R: 135, G: 206, B: 250}, "Light Sky Blue"},
	{colour.RGB{R: 119, G: 136, B: 153}, "Light Slate Gray"},
	{colour.RGB{R: 176, G: 196, B: 222}, "Light Steel Blue"},
	{colour.RGB{R: 255, G: 255, B: 224}, "Light Yellow"},
	{colour.RGB{R: 0, G: 255, B: 0}, "Lime"},
	{colour.RGB{R: 50, G: 205, B: 50}, "Lime Green"},
	{colour.RGB{R: 250, G: 240, B: 230}, "Linen"},
	{colour.RGB{R: 128, G: 0, B: 0}, "Maroon"},
	{colour.RGB{R: 102, G: 205, B: 170}, "Medium Aquamarine"},
	{colour.RGB{R: 0, G: 0, B: 205}, "Medium Blue"},
	{colour.RGB{R: 186, G: 85, B: 211}, "Medium Orchid"},
	{colour.RGB{R: 147, G: 112, B: 219}, "Medium Purple"},
	{colour.RGB{R: 60, G: 179, B: 113}, "Medium Sea Green"},
	{colour.RGB{R: 123, G: 104, B: 238}, "Medium Slate Blue"},
	{colour.RGB{R: 0, G: 250, B: 154}, "Medium Spring Green"},
	{colour.RGB{R: 72, G: 209, B: 204}, "Medium Turquoise"},
	{colour.RGB{R: 199, G: 21, B: 133}, "Medium Violet Red"},
	{colour.RGB{R: 25, G: 25, B: 112}, "Midnight Blue"},
	{colour.RGB{R: 245, G: 255, B: 250}, "Mint Cream"},
	{colour.RGB{R: 255, G: 228, B: 225}, "Misty Rose"},
	{colour.RGB{R: 255, G: 228, B: 181}, "Moccasin"},
	{colour.RGB{R: 255, G: 222, B: 173}, "Navajo White"},
	{colour.RGB{R: 0, G: 0, B: 128}, "Navy"},
	{colour.RGB{R: 253, G: 245, B: 230}, "Old Lace"},
	{colour.RGB{R: 128, G: 128, B: 0}, "Olive"},
	{colour.RGB{R: 107, G: 142, B: 35}, "Olive Drab"},
	{colour.RGB{R: 255, G: 165, B: 0}, "Orange"},
	{colour.RGB{R: 255, G: 69, B: 0}, "Orange Red"},
	{colour.RGB{R: 218, G: 112, B: 214}, "Orchid"},
	{colour.RGB{R: 238, G: 232, B: 170}, "Pale Goldenrod"},
	{colour.RGB{R: 152, G: 251, B: 152}, "Pale Green"},
	{colour.RGB{R: 175, G: 238, B: 238}, "Pale Turquoise"},
	{colour.RGB{R: 219, G: 112, B: 147}, "Pale Violet Red"},
	{colour.RGB{R: 255, G: 239, B: 213}, "Papaya Whip"},
	{colour.RGB{R: 255, G: 218, B: 185}, "Peach Puff"},
	{colour.RGB{R: 205, G: 133, B: 63}, "Peru"},
	{colour.RGB{R: 255, G: 192, B: 203}, "Pink"},
	{colour.RGB{R: 221, G: 160, B: 221}, "Plum"},
	{colour.RGB{R: 176, G: 224, B: 230}, "Powder Blue"},
	{colour.RGB{R: 128, G: 0, B: 128}, "Purple"},
	{colour.RGB{R: 102, G: 51, B: 153}, "Rebecca Purple"},
	{colour.RGB{R: 255, G: 0, B: 0}, "Red"},
	{colour.RGB{R: 188, G: 143, B: 143}, "Rosy Brown"},
	{colour.RGB{R: 65, G: 105, B: 225}, "Royal Blue"},
	{colour.RGB{R: 139, G: 69, B: 19}, "Saddle Brown"},
	{colour.RGB{R: 250, G: 128, B: 114}, "Salmon"},
	{colour.RGB{R: 244, G: 164, B: 96}, "Sandy Brown"},
	{colour.RGB{R: 46, G: 139, B: 87}, "Sea Green"},
	{colour.RGB{R: 255, G: 245, B: 238}, "Seashell"},
	{colour.RGB{R: 160, G: 82, B: 45}, "Sienna"},
	{colour.RGB{R: 192, G: 192, B: 192}, "Silver"},
	{colour.RGB{R: 135, G: 206, B: 235}, "Sky Blue"},
	{colour.RGB{R: 106, G: 90, B: 205}, "Slate Blue"},
	{colour.RGB{R: 112, G: 128, B: 144}, "Slate Gray"},
	{colour.RGB{R: 255, G: 250, B: 250}, "Snow"},
	{colour.RGB{R: 0, G: 255, B: 127}, "Spring Green"},
	{colour.RGB{R: 70, G: 130, B: 180}, "Steel Blue"},
	{colour.RGB{R: 210, G: 180, B: 140}, "Tan"},
	{colour.RGB{R: 0, G: 128, B: 128}, "Teal"},
	{colour.RGB{R: 216, G: 191, B: 216}, "Thistle"},
	{colour.RGB{R: 255, G: 99, B: 71}, "Tomato"},
	{colour.RGB{R: 64, G: 224, B: 208}, "Turquoise"},
	{colour.RGB{R: 238, G: 130, B: 238}, "Violet"},
	{colour.RGB{R: 245, G: 222, B: 179}, "Wheat"},
	{colour.RGB{R: 255, G: 255, B: 255}, "White"},
	{colour.RGB{R: 245, G: 245, B: 245}, "White Smoke"},
	{colour.RGB{R: 255, G: 255, B: 0}, "Yellow"},
	{colour.RGB{R: 154, G: 205, B: 50}, "Yellow Green"},
}

var exactNames = buildExactNames()

func buildExactNames() map[colour.RGB]string {
	m := make(map[colour.RGB]string, len(cssPalette))
	for _, nc := range cssPalette {
		if _, ok := m[nc.rgb]; !ok {
			m[nc.rgb] = nc.name
		}
	}
	return m
}

// ExactName looks a colour up in the CSS named palette by exact channel
// match.
func ExactName(c colour.RGB) (string, bool) {
	name, ok := exactNames[c]
	return name, ok
}
