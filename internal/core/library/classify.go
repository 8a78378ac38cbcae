package library

import "strings"

// Category names created on demand by discovery.
const (
	CategoryVR = "VR"
	CategoryPC = "PC"
)

// Classifier maps a matched game name to a category name.
type Classifier func(name string) string

// ClassifyBySuffix is the default classifier: names ending in "vr"
// (case-insensitive) are VR, everything else is PC. This is a heuristic
// with a known false-positive risk for names that merely end in the
// letters "vr"; callers can swap in their own Classifier.
func ClassifyBySuffix(name string) string {
	if strings.HasSuffix(strings.ToLower(name), "vr") {
		return CategoryVR
	}
	return CategoryPC
}
