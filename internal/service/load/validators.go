package load

import "strings"

func isValidPlace(place string) bool {
	return strings.TrimSpace(place) != ""
}

func isValidRate(rate float64) bool {
	return rate > 0
}

func isValidWeight(weight float64) bool {
	return weight >= 0
}
