package dictionary

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/spellhound/spellhound/pkg/flagset"
)

// Load reads a dictionary from two streams: the affix file and the word
// list. The affix file's SET directive decides the byte encoding of both.
func Load(affReader, dicReader io.Reader) (*Data, error) {
	affRaw, err := io.ReadAll(affReader)
	if err != nil {
		return nil, fmt.Errorf("reading affix data: %w", err)
	}
	dicRaw, err := io.ReadAll(dicReader)
	if err != nil {
		return nil, fmt.Errorf("reading word list data: %w", err)
	}

	enc, err := encodingByName(findSetDirective(affRaw))
	if err != nil {
		return nil, err
	}
	affText, err := decodeToUTF8(affRaw, enc)
	if err != nil {
		return nil, fmt.Errorf("affix file: %w", err)
	}
	dicText, err := decodeToUTF8(dicRaw, enc)
	if err != nil {
		return nil, fmt.Errorf("word list file: %w", err)
	}

	p := &parser{d: newData(), syntax: flagset.SyntaxSingle}
	if err := p.parseAff(affText); err != nil {
		return nil, err
	}
	if err := p.parseDic(dicText); err != nil {
		return nil, err
	}
	log.Debugf("Dictionary loaded: %d stems, lang=%v", p.d.Words.Size(), p.d.Lang)
	return p.d, nil
}

// LoadPath reads <path>.aff and <path>.dic. The argument is the shared path
// without either extension.
func LoadPath(path string) (*Data, error) {
	path = strings.TrimSuffix(strings.TrimSuffix(path, ".aff"), ".dic")
	affFile, err := os.Open(path + ".aff")
	if err != nil {
		return nil, fmt.Errorf("affix file: %w", err)
	}
	defer affFile.Close()
	dicFile, err := os.Open(path + ".dic")
	if err != nil {
		return nil, fmt.Errorf("word list file: %w", err)
	}
	defer dicFile.Close()
	return Load(affFile, dicFile)
}

// LoadStrings builds a dictionary from in-memory affix and word list text.
// Useful for tests and embedded dictionaries.
func LoadStrings(aff, dic string) (*Data, error) {
	return Load(strings.NewReader(aff), strings.NewReader(dic))
}
