package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/cheat"
)

// rfcCount is one past the highest RFC number listed by the rfc adapter.
const rfcCount = 8649

// Builtins returns the built-in adapters with relative commands anchored at
// baseDir.
func Builtins(baseDir string) []cheat.Adapter {
	adapters := []cheat.Adapter{Fosdem(), Translation(), RFC()}
	for i, a := range adapters {
		adapters[i] = Resolve(a, baseDir)
	}
	return adapters
}

// Fosdem shows the slide currently open in a presenter's terminal.
func Fosdem() cheat.Adapter {
	return cheat.Adapter{
		Name:    "fosdem",
		Output:  cheat.OutputANSI,
		Command: []string{"sudo", "/usr/local/bin/current-fosdem-slide"},
		Pages:   []string{":fosdem"},
	}
}

// Translation translates a phrase. Topics have the form FROM/PHRASE or
// FROM-TO/PHRASE; without TO the request language (default "en") is used.
func Translation() cheat.Adapter {
	return cheat.Adapter{
		Name:        "translation",
		Output:      cheat.OutputText,
		CacheNeeded: true,
		Command:     []string{"bin/get_translation", "{from}", "{to}", "{topic}"},
		Pattern:     `^[a-z]{2}(-[a-z]{2})?/.+$`,
		Parse:       parseTranslation,
	}
}

func parseTranslation(topic string, opts cheat.Options) (map[string]string, error) {
	from, phrase, ok := strings.Cut(topic, "/")
	if !ok {
		return nil, fmt.Errorf("translation topic %q: want FROM/PHRASE: %w", topic, cheat.ErrValidation)
	}
	to := opts.Lang
	if to == "" {
		to = "en"
	}
	if f, t, ok := strings.Cut(from, "-"); ok {
		from, to = f, t
	}
	return map[string]string{
		"from":  from,
		"to":    to,
		"topic": strings.ReplaceAll(phrase, "+", " "),
	}, nil
}

// RFC shows an RFC by number, e.g. "rfc/2616".
func RFC() cheat.Adapter {
	pages := make([]string, 0, rfcCount-1)
	for n := 1; n < rfcCount; n++ {
		pages = append(pages, "rfc/"+strconv.Itoa(n))
	}
	return cheat.Adapter{
		Name:        "rfc",
		Output:      cheat.OutputText,
		CacheNeeded: true,
		Command:     []string{"share/adapters/rfc.sh", "{topic}"},
		Prefix:      "rfc/",
		Pattern:     `^rfc/[0-9]+$`,
		Pages:       pages,
	}
}
