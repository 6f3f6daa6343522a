package session

import (
	"strings"

	"github.com/schollz/closestmatch"
)

// Voice describes one synthesis voice offered by the local engine.
type Voice struct {
	Name     string
	Language string // BCP 47 tag, e.g. "es-ES"
}

// PickVoice selects a synthesis voice. Preferred names are tried in order,
// first exactly and then by fuzzy match; when none applies, the first voice
// whose locale prefix matches the target language wins.
func PickVoice(available []Voice, preferred []string, language string) (Voice, bool) {
	if len(available) == 0 {
		return Voice{}, false
	}

	byName := make(map[string]Voice, len(available))
	names := make([]string, 0, len(available))
	for _, v := range available {
		byName[strings.ToLower(v.Name)] = v
		names = append(names, strings.ToLower(v.Name))
	}

	for _, want := range preferred {
		if v, ok := byName[strings.ToLower(want)]; ok {
			return v, true
		}
	}

	langPrefix := language
	if i := strings.IndexAny(language, "-_"); i > 0 {
		langPrefix = language[:i]
	}
	langPrefix = strings.ToLower(langPrefix)

	if len(preferred) > 0 {
		cm := closestmatch.New(names, []int{2})
		for _, want := range preferred {
			match := cm.Closest(strings.ToLower(want))
			if match == "" {
				continue
			}
			v := byName[match]
			if langPrefix == "" || strings.HasPrefix(strings.ToLower(v.Language), langPrefix) {
				return v, true
			}
		}
	}

	for _, v := range available {
		if strings.HasPrefix(strings.ToLower(v.Language), langPrefix) {
			return v, true
		}
	}

	return Voice{}, false
}
