package dictionary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/spellhound/spellhound/pkg/affix"
	"github.com/spellhound/spellhound/pkg/flagset"
	"github.com/spellhound/spellhound/pkg/tables"
)

// parser accumulates the affix file state before the immutable Data tables
// are built.
type parser struct {
	d       *Data
	syntax  flagset.Syntax
	aliases []flagset.Set

	prefixes  []*affix.Prefix
	suffixes  []*affix.Suffix
	breaks    []string
	breakSeen bool
	iconv     []tables.StringPairTable
	oconv     []tables.StringPairTable
	reps      []tables.StringPairTable
	phone     []tables.PhoneticRule
	maps      []tables.SimilarityGroup
	rules     [][]flagset.Flag
	patterns  []tables.CompoundPattern

	vecCounts   map[string]int
	affixGroups map[string]*affixGroup
	wordchars   string
}

type affixGroup struct {
	cross     bool
	remaining int
}

// parseAff parses the decoded affix file text into p.d.
func (p *parser) parseAff(text string) error {
	p.vecCounts = make(map[string]int)
	p.affixGroups = make(map[string]*affixGroup)

	lineNum := 0
	for _, line := range strings.Split(text, "\n") {
		lineNum++
		fields := strings.Fields(strings.TrimPrefix(line, "\ufeff"))
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		command := strings.ToUpper(fields[0])
		args := fields[1:]
		if err := p.dispatch(command, args, lineNum); err != nil {
			return fmt.Errorf("affix file line %d: %w", lineNum, err)
		}
	}
	return p.finish()
}

func (p *parser) dispatch(command string, args []string, lineNum int) error {
	d := p.d
	switch command {
	case "SFX":
		return p.parseAffixLine(command, args, lineNum)
	case "PFX":
		return p.parseAffixLine(command, args, lineNum)
	case "SET":
		// handled before decoding; nothing to do here
		return nil
	case "FLAG":
		if len(args) == 0 {
			return fmt.Errorf("FLAG needs a value")
		}
		syntax, err := flagset.ParseSyntax(args[0])
		if err != nil {
			return err
		}
		p.syntax = syntax
		return nil
	case "LANG":
		if len(args) == 0 {
			return fmt.Errorf("LANG needs a value")
		}
		tag, err := language.Parse(strings.ReplaceAll(args[0], "_", "-"))
		if err != nil {
			log.Warnf("Unknown language %q in LANG, keeping neutral casing rules", args[0])
			return nil
		}
		d.Lang = tag
		return nil
	case "IGNORE":
		if len(args) != 0 {
			d.IgnoredChars = []rune(args[0])
		}
		return nil
	case "KEY":
		if len(args) != 0 {
			d.KeyboardCloseness = []rune(args[0])
		}
		return nil
	case "TRY":
		if len(args) != 0 {
			d.TryChars = []rune(args[0])
		}
		return nil
	case "WORDCHARS":
		if len(args) != 0 {
			p.wordchars = args[0]
		}
		return nil
	case "COMPOUNDSYLLABLE":
		if len(args) < 2 {
			return fmt.Errorf("COMPOUNDSYLLABLE needs a count and a vowel set")
		}
		n, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return fmt.Errorf("COMPOUNDSYLLABLE count: %w", err)
		}
		d.CompoundSyllableMax = uint16(n)
		d.CompoundSyllableVowels = []rune(args[1])
		return nil
	case "AM":
		// morphological aliases are out of scope, swallow the block
		p.vecCount(command, args)
		return nil
	}

	if target, ok := p.boolTarget(command); ok {
		*target = true
		return nil
	}
	if target, ok := p.shortTarget(command); ok {
		if len(args) == 0 {
			return fmt.Errorf("%s needs a numeric value", command)
		}
		n, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return fmt.Errorf("%s value: %w", command, err)
		}
		*target = uint16(n)
		return nil
	}
	if target, ok := p.flagTarget(command); ok {
		if len(args) == 0 {
			return fmt.Errorf("%s needs a flag", command)
		}
		f, err := flagset.DecodeOne(args[0], p.syntax)
		if err != nil {
			return err
		}
		*target = f
		return nil
	}

	switch command {
	case "AF":
		if n, first := p.vecCount(command, args); !first {
			if n < 0 {
				log.Warnf("Extra entries of AF in line %d", lineNum)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("AF entry without flags")
			}
			fs, err := flagset.DecodeSet(args[0], p.syntax)
			if err != nil {
				return err
			}
			p.aliases = append(p.aliases, fs)
		}
	case "BREAK":
		p.breakSeen = true
		if n, first := p.vecCount(command, args); !first {
			if n < 0 {
				log.Warnf("Extra entries of BREAK in line %d", lineNum)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("BREAK entry without a pattern")
			}
			p.breaks = append(p.breaks, args[0])
		}
	case "MAP":
		if n, first := p.vecCount(command, args); !first {
			if n < 0 {
				log.Warnf("Extra entries of MAP in line %d", lineNum)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("MAP entry without characters")
			}
			p.maps = append(p.maps, tables.ParseSimilarityGroup(args[0]))
		}
	case "REP":
		return p.parsePairLine(command, args, &p.reps, lineNum)
	case "ICONV":
		return p.parsePairLine(command, args, &p.iconv, lineNum)
	case "OCONV":
		return p.parsePairLine(command, args, &p.oconv, lineNum)
	case "PHONE":
		if n, first := p.vecCount(command, args); !first {
			if n < 0 {
				log.Warnf("Extra entries of PHONE in line %d", lineNum)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("PHONE entry without a pattern")
			}
			rule := tables.PhoneticRule{From: []rune(args[0])}
			if len(args) > 1 {
				rule.To = []rune(args[1])
			}
			p.phone = append(p.phone, rule)
		}
	case "COMPOUNDRULE":
		if n, first := p.vecCount(command, args); !first {
			if n < 0 {
				log.Warnf("Extra entries of COMPOUNDRULE in line %d", lineNum)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("COMPOUNDRULE entry without a pattern")
			}
			rule, err := p.decodeCompoundRule(args[0])
			if err != nil {
				return err
			}
			p.rules = append(p.rules, rule)
		}
	case "CHECKCOMPOUNDPATTERN":
		if n, first := p.vecCount(command, args); !first {
			if n < 0 {
				log.Warnf("Extra entries of CHECKCOMPOUNDPATTERN in line %d", lineNum)
				return nil
			}
			pat, err := p.parseCompoundPattern(args)
			if err != nil {
				return err
			}
			p.patterns = append(p.patterns, pat)
		}
	default:
		log.Debugf("Ignoring unknown affix command %q in line %d", command, lineNum)
	}
	return nil
}

func (p *parser) boolTarget(command string) (*bool, bool) {
	d := p.d
	switch command {
	case "COMPLEXPREFIXES":
		return &d.ComplexPrefixes, true
	case "ONLYMAXDIFF":
		return &d.OnlyMaxDiff, true
	case "NOSPLITSUGS":
		return &d.NoSplitSuggestions, true
	case "SUGSWITHDOTS":
		return &d.SuggestWithDots, true
	case "FORBIDWARN":
		return &d.ForbidWarn, true
	case "COMPOUNDMORESUFFIXES":
		return &d.CompoundMoreSuffixes, true
	case "CHECKCOMPOUNDDUP":
		return &d.CompoundCheckDuplicate, true
	case "CHECKCOMPOUNDREP":
		return &d.CompoundCheckRep, true
	case "CHECKCOMPOUNDCASE":
		return &d.CompoundCheckCase, true
	case "CHECKCOMPOUNDTRIPLE":
		return &d.CompoundCheckTriple, true
	case "SIMPLIFIEDTRIPLE":
		return &d.CompoundSimplifiedTriple, true
	case "SYLLABLENUM":
		return &d.CompoundSyllableNum, true
	case "FULLSTRIP":
		return &d.FullStrip, true
	case "CHECKSHARPS":
		return &d.CheckSharps, true
	}
	return nil, false
}

func (p *parser) shortTarget(command string) (*uint16, bool) {
	d := p.d
	switch command {
	case "MAXCPDSUGS":
		return &d.MaxCompoundSuggestions, true
	case "MAXNGRAMSUGS":
		return &d.MaxNgramSuggestions, true
	case "MAXDIFF":
		return &d.MaxDiffFactor, true
	case "COMPOUNDMIN":
		return &d.CompoundMinLength, true
	case "COMPOUNDWORDMAX":
		return &d.CompoundMaxWordCount, true
	}
	return nil, false
}

func (p *parser) flagTarget(command string) (*flagset.Flag, bool) {
	d := p.d
	switch command {
	case "NOSUGGEST":
		return &d.NoSuggestFlag, true
	case "WARN":
		return &d.WarnFlag, true
	case "COMPOUNDFLAG":
		return &d.CompoundFlag, true
	case "COMPOUNDBEGIN":
		return &d.CompoundBeginFlag, true
	case "COMPOUNDEND":
		return &d.CompoundLastFlag, true
	case "COMPOUNDMIDDLE":
		return &d.CompoundMiddleFlag, true
	case "ONLYINCOMPOUND":
		return &d.CompoundOnlyInFlag, true
	case "COMPOUNDPERMITFLAG":
		return &d.CompoundPermitFlag, true
	case "COMPOUNDFORBIDFLAG":
		return &d.CompoundForbidFlag, true
	case "COMPOUNDROOT":
		return &d.CompoundRootFlag, true
	case "FORCEUCASE":
		return &d.CompoundForceUppercase, true
	case "CIRCUMFIX":
		return &d.CircumfixFlag, true
	case "FORBIDDENWORD":
		return &d.ForbiddenWordFlag, true
	case "KEEPCASE":
		return &d.KeepCaseFlag, true
	case "NEEDAFFIX":
		return &d.NeedAffixFlag, true
	case "SUBSTANDARD":
		return &d.SubstandardFlag, true
	}
	return nil, false
}

// vecCount tracks the "count line then N entry lines" shape of vector
// commands. It returns (remaining, isCountLine); remaining < 0 flags entries
// beyond the declared count.
func (p *parser) vecCount(command string, args []string) (int, bool) {
	if _, seen := p.vecCounts[command]; !seen {
		n := 0
		if len(args) != 0 {
			if v, err := strconv.Atoi(args[0]); err == nil {
				n = v
			} else {
				log.Errorf("Vector command %s has no count, ignoring all entries", command)
			}
		}
		p.vecCounts[command] = n
		return n, true
	}
	p.vecCounts[command]--
	return p.vecCounts[command], false
}

func (p *parser) parsePairLine(command string, args []string, out *[]tables.StringPairTable, lineNum int) error {
	if n, first := p.vecCount(command, args); !first {
		if n < 0 {
			log.Warnf("Extra entries of %s in line %d", command, lineNum)
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("%s entry without a pattern", command)
		}
		pair := tables.StringPairTable{From: args[0]}
		if len(args) > 1 {
			pair.To = args[1]
		}
		*out = append(*out, pair)
	}
	return nil
}

// splitWordFlags splits "word/flags" and decodes the flags, with numeric
// alias support.
func (p *parser) splitWordFlags(s string) (string, flagset.Set, error) {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return s, flagset.Set{}, nil
	}
	word, flagsStr := s[:i], s[i+1:]
	if flagsStr == "" {
		log.Warnf("No flags after slash in %q", s)
		return word, flagset.Set{}, nil
	}
	fs, err := p.decodeFlagsPossibleAlias(flagsStr)
	if err != nil {
		return "", flagset.Set{}, err
	}
	return word, fs, nil
}

func (p *parser) decodeFlagsPossibleAlias(s string) (flagset.Set, error) {
	if len(p.aliases) != 0 {
		n, err := strconv.Atoi(s)
		if err != nil {
			return flagset.Set{}, fmt.Errorf("flag alias %q: %w", s, err)
		}
		if n < 1 || n > len(p.aliases) {
			return flagset.Set{}, fmt.Errorf("flag alias %d out of range", n)
		}
		return p.aliases[n-1], nil
	}
	return flagset.DecodeSet(s, p.syntax)
}

// parseAffixLine handles both the "PFX A Y 2" header and the entry lines of
// an affix group.
func (p *parser) parseAffixLine(kind string, args []string, lineNum int) error {
	if len(args) < 2 {
		return fmt.Errorf("%s line needs at least a flag and one field", kind)
	}
	f, err := flagset.DecodeOne(args[0], p.syntax)
	if err != nil {
		return err
	}
	key := kind + "\x00" + args[0]
	group, seen := p.affixGroups[key]
	if !seen {
		// header: cross product char and entry count
		if len(args) < 3 {
			return fmt.Errorf("%s header needs cross product and count", kind)
		}
		if args[1] != "Y" && args[1] != "N" {
			return fmt.Errorf("%s cross product must be Y or N, got %q", kind, args[1])
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("%s entry count: %w", kind, err)
		}
		p.affixGroups[key] = &affixGroup{cross: args[1] == "Y", remaining: n}
		return nil
	}
	if group.remaining == 0 {
		log.Warnf("Extra entries of %s %s in line %d", kind, args[0], lineNum)
		return nil
	}
	group.remaining--

	stripping := args[1]
	if stripping == "0" {
		stripping = ""
	}
	if len(args) < 3 {
		return fmt.Errorf("%s entry needs an appending field", kind)
	}
	appending, contFlags, err := p.splitWordFlags(args[2])
	if err != nil {
		return err
	}
	if appending == "0" {
		appending = ""
	}
	condStr := "."
	if len(args) > 3 {
		condStr = args[3]
	}
	cond, err := affix.CompileCondition(condStr)
	if err != nil {
		return err
	}

	if kind == "PFX" {
		p.prefixes = append(p.prefixes, &affix.Prefix{
			Flag:         f,
			CrossProduct: group.cross,
			Stripping:    []rune(stripping),
			Appending:    []rune(appending),
			ContFlags:    contFlags,
			Condition:    cond,
		})
	} else {
		p.suffixes = append(p.suffixes, &affix.Suffix{
			Flag:         f,
			CrossProduct: group.cross,
			Stripping:    []rune(stripping),
			Appending:    []rune(appending),
			ContFlags:    contFlags,
			Condition:    cond,
		})
	}
	return nil
}

// decodeCompoundRule decodes a COMPOUNDRULE pattern. Single-char and UTF-8
// flag syntaxes use the characters directly; double-char and numeric
// syntaxes wrap each flag in parentheses.
func (p *parser) decodeCompoundRule(s string) ([]flagset.Flag, error) {
	switch p.syntax {
	case flagset.SyntaxSingle, flagset.SyntaxUTF8:
		return flagset.Decode(s, p.syntax)
	}
	var out []flagset.Flag
	for i := 0; i < len(s); {
		if s[i] == '?' || s[i] == '*' {
			out = append(out, flagset.Flag(s[i]))
			i++
			continue
		}
		if s[i] != '(' {
			return nil, fmt.Errorf("compound rule %q: expected '('", s)
		}
		j := strings.IndexByte(s[i:], ')')
		if j < 0 {
			return nil, fmt.Errorf("compound rule %q: missing ')'", s)
		}
		f, err := flagset.DecodeOne(s[i+1:i+j], p.syntax)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
		i += j + 1
	}
	return out, nil
}

// parseCompoundPattern decodes one CHECKCOMPOUNDPATTERN entry:
// first_end[/flag] second_begin[/flag] [replacement].
func (p *parser) parseCompoundPattern(args []string) (tables.CompoundPattern, error) {
	var pat tables.CompoundPattern
	if len(args) < 2 {
		return pat, fmt.Errorf("CHECKCOMPOUNDPATTERN entry needs two boundary fields")
	}
	first, firstFlags, err := p.splitWordFlags(args[0])
	if err != nil {
		return pat, err
	}
	second, secondFlags, err := p.splitWordFlags(args[1])
	if err != nil {
		return pat, err
	}
	if fl := firstFlags.Flags(); len(fl) != 0 {
		pat.FirstWordFlag = fl[0]
	}
	if fl := secondFlags.Flags(); len(fl) != 0 {
		pat.SecondWordFlag = fl[0]
	}
	if first == "0" {
		first = ""
		pat.MatchFirstOnlyUnaffixedOrZeroAffixed = true
	}
	fr := []rune(first)
	pat.BoundaryChars = tables.BoundaryChars{
		Runes: append(fr, []rune(second)...),
		Idx:   len(fr),
	}
	if len(args) > 2 {
		pat.Replacement = []rune(args[2])
	}
	return pat, nil
}

// finish moves the accumulated raw tables into their indexed forms.
func (p *parser) finish() error {
	d := p.d
	if !p.breakSeen {
		p.breaks = []string{"-", "^-", "-$"}
	}
	for i := range p.reps {
		p.reps[i].To = strings.ReplaceAll(p.reps[i].To, "_", " ")
	}
	for _, e := range p.prefixes {
		e.Appending = eraseIgnored(e.Appending, d.IgnoredChars)
	}
	for _, e := range p.suffixes {
		e.Appending = eraseIgnored(e.Appending, d.IgnoredChars)
	}
	d.Prefixes = affix.NewPrefixTable(p.prefixes)
	d.Suffixes = affix.NewSuffixTable(p.suffixes)
	d.BreakTable = tables.NewBreakTable(p.breaks)
	d.InputConversion = tables.NewSubstrReplacer(p.iconv)
	d.OutputConversion = tables.NewSubstrReplacer(p.oconv)
	d.Replacements = tables.NewReplacementTable(p.reps)
	d.Similarities = p.maps
	d.Phonetic = tables.NewPhoneticTable(p.phone)
	d.CompoundRules = tables.NewCompoundRuleTable(p.rules)
	d.CompoundPatterns = p.patterns
	return nil
}

func eraseIgnored(word []rune, ignored []rune) []rune {
	if len(ignored) == 0 {
		return word
	}
	out := word[:0:len(word)]
	for _, r := range word {
		skip := false
		for _, x := range ignored {
			if x == r {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, r)
		}
	}
	return out
}
