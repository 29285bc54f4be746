package dictionary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/spellhound/spellhound/internal/casing"
	"github.com/spellhound/spellhound/pkg/flagset"
)

// parseDic parses the decoded word list text into p.d.Words. The first line
// is an approximate entry count; each following line is a stem, optionally
// with /flags or tab-separated morphological fields.
func (p *parser) parseDic(text string) error {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return fmt.Errorf("empty dic file")
	}
	first := strings.TrimSpace(strings.TrimPrefix(lines[0], "\ufeff"))
	approx, err := strconv.Atoi(first)
	if err != nil {
		return fmt.Errorf("dic file must start with an entry count: %w", err)
	}
	p.d.Words = NewWordList(approx)

	for n, line := range lines[1:] {
		lineNum := n + 2
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		word, flags, err := p.splitDicLine(line)
		if err != nil {
			log.Warnf("Skipping dic line %d: %v", lineNum, err)
			continue
		}
		if word == "" {
			continue
		}
		p.insertDicWord(word, flags)
	}
	return nil
}

// splitDicLine separates the stem from its flags. Escaped slashes "\/" are
// part of the stem; the first unescaped slash starts the flag field, which
// runs to the next whitespace. Without a slash, a tab or a morphological
// field heuristic ends the stem.
func (p *parser) splitDicLine(line string) (string, flagset.Set, error) {
	slash := 0
	for {
		i := strings.IndexByte(line[slash:], '/')
		if i < 0 {
			slash = -1
			break
		}
		slash += i
		if slash == 0 {
			break
		}
		if line[slash-1] != '\\' {
			break
		}
		line = line[:slash-1] + line[slash:]
		// the slash moved one position left; resume searching there
	}
	if slash > 0 {
		word := line[:slash]
		rest := line[slash+1:]
		end := strings.IndexFunc(rest, func(r rune) bool { return r == ' ' || r == '\t' })
		if end >= 0 {
			rest = rest[:end]
		}
		flags, err := p.decodeFlagsPossibleAlias(rest)
		if err != nil {
			return "", flagset.Set{}, err
		}
		return word, flags, nil
	}
	if tab := strings.IndexByte(line, '\t'); tab >= 0 {
		return line[:tab], flagset.Set{}, nil
	}
	if end := dicFindEndOfWordHeuristics(line); end >= 0 {
		return line[:end], flagset.Set{}, nil
	}
	return line, flagset.Set{}, nil
}

// dicFindEndOfWordHeuristics scans for a space followed by a "xx:"
// morphological field and returns the end of the stem, or -1.
func dicFindEndOfWordHeuristics(line string) int {
	if len(line) < 4 {
		return -1
	}
	a := 0
	for {
		sp := strings.IndexByte(line[a:], ' ')
		if sp < 0 {
			return -1
		}
		a += sp
		b := a
		for b < len(line) && line[b] == ' ' {
			b++
		}
		if b == len(line) || b > len(line)-3 {
			return -1
		}
		if line[b] >= 'a' && line[b] <= 'z' &&
			line[b+1] >= 'a' && line[b+1] <= 'z' && line[b+2] == ':' {
			return a
		}
		a = b
	}
}

// insertDicWord inserts the stem, plus a hidden title-cased homonym for
// capitalized stems so case-folded lookups can still find them.
func (p *parser) insertDicWord(word string, flags flagset.Set) {
	d := p.d
	wide := eraseIgnored([]rune(word), d.IgnoredChars)
	if len(wide) == 0 {
		return
	}
	shape := casing.Classify(wide)
	inserted := d.Words.Insert(string(wide), flags)

	switch shape {
	case casing.AllCapital:
		if flags.Empty() {
			return
		}
		fallthrough
	case casing.Pascal, casing.Camel:
		// forbidden entries get no hidden twin, otherwise the twin
		// could shadow the ban for differently-cased lookups
		if hasUnsetSafe(inserted.Flags, d.ForbiddenWordFlag) {
			return
		}
		title := casing.Title(d.Lang, wide)
		hidden := flags.Union(flagset.New(flagset.HiddenHomonym))
		d.Words.Insert(string(title), hidden)
	}
}

func hasUnsetSafe(fs flagset.Set, f flagset.Flag) bool {
	return f != flagset.Unset && fs.Contains(f)
}
