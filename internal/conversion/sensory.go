package conversion

// ColorblindModifier is reported for every eyesight token without a
// numeric modifier, the colorblind category included.
const ColorblindModifier = "Colorblind stays, +2 to ANOTHER stat"

var eyesightModifiers = map[string]string{
	"eye0": "+1",
	"eye1": "0",
	"eye2": "-1",
	"eye3": "-3",
	"eye4": "-5",
	"eye8": "+3",
}

var hearingModifiers = map[string]string{
	"hear0": "-2",
	"hear1": "-1",
	"hear3": "+1",
	"hear4": "+2",
}

// EyesightModifier maps an eyesight token to its modifier. Unknown tokens
// map to ColorblindModifier.
func EyesightModifier(token string) string {
	if mod, ok := eyesightModifiers[token]; ok {
		return mod
	}
	return ColorblindModifier
}

// HearingModifier maps a hearing token to its modifier. Unknown tokens,
// normal hearing included, map to "0".
func HearingModifier(token string) string {
	if mod, ok := hearingModifiers[token]; ok {
		return mod
	}
	return "0"
}

// veteranThreshold is the last level that earns one point per level.
const veteranThreshold = 8

// VeteranPoints converts an experience level: levels up to 8 count once,
// each level above 8 counts twice.
func VeteranPoints(level int) int {
	if level > veteranThreshold {
		return level + (level - veteranThreshold)
	}
	return level
}
