package quiz

import (
	"fmt"
	"strings"
)

//Mode selects which kind of question the session asks.
type Mode string

const (
	//ModeAngle gives an angle and a distance and asks for the drop in centimeters.
	ModeAngle Mode = "angle"
	//ModeDrop gives a drop and a distance and asks for the angle.
	ModeDrop Mode = "drop"
	//ModeRandom picks ModeAngle or ModeDrop for every question.
	ModeRandom Mode = "random"
	//ModeTarget shows an impact on the target grid and asks for both angular offsets.
	ModeTarget Mode = "target"
)

//ParseMode converts a mode name into a Mode. "moa" is kept as an alias of "angle";
//"mil" is not, so it cannot be mistaken for the units setting.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "angle", "moa":
		return ModeAngle, nil
	case "drop":
		return ModeDrop, nil
	case "random":
		return ModeRandom, nil
	case "target":
		return ModeTarget, nil
	default:
		return "", fmt.Errorf("quiz: mode %q is not supported", name)
	}
}
