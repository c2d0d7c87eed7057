package matcher

import (
	"fmt"

	"github.com/exprscript/lang/internal/pattern"
	"github.com/exprscript/lang/internal/rank"
)

// Resolver is what the match engine calls when it reaches a %...%
// placeholder: given the declared type name and the candidate input span,
// attempt to resolve it to an Expr. Implemented by internal/resolve; kept
// as an interface here so this package never imports its caller.
//
// Resolve records its own diagnostics into best and returns
// ok=false (with Expr nil) when nothing could be resolved.
type Resolver interface {
	Resolve(best *rank.Best, typeName, span string, staticOnly bool) (Expr, bool)
}

// Context is a single parser's state: the input being matched, whether
// nested variable parsing is disabled (used for statically-resolvable
// literals such as event headers), whether a placeholder span may widen
// across a quoted region (config.Config.LenientQuotes), and the shared
// best-error slot that every recursive call (and every nested parser
// context a Resolver spawns) promotes into.
type Context struct {
	Input       string
	ParseStatic bool
	Resolver    Resolver
	Best        *rank.Best
	Pluralize   pattern.Pluralizer
	QuoteAware  bool
}

// New creates a parser context for matching against input. quoteAware
// mirrors config.Config.LenientQuotes: when true, a placeholder's
// candidate span never stops in the middle of a quoted region; when
// false, quotes are ordinary characters.
func New(input string, parseStatic bool, resolver Resolver, best *rank.Best, pluralize pattern.Pluralizer, quoteAware bool) *Context {
	return &Context{Input: input, ParseStatic: parseStatic, Resolver: resolver, Best: best, Pluralize: pluralize, QuoteAware: quoteAware}
}

// Match runs pattern p against the whole of c.Input, starting the
// recursive search at (0, 0). Patterns may not match an empty input.
func (c *Context) Match(p string) (*Result, error) {
	if len(c.Input) == 0 {
		return nil, &pattern.MalformedPatternError{Pattern: p, Reason: "empty expression"}
	}
	return c.matchAt(p, 0, 0)
}

func (c *Context) matchAt(p string, i, j int) (*Result, error) {
	matchedChars := 0

	for j < len(p) {
		switch p[j] {

		case '[':
			res, err := c.matchAt(p, i, j+1)
			if err != nil {
				return nil, err
			}
			if res != nil {
				return res, nil
			}
			end, err := pattern.NextMatching(p, '[', ']', j+1)
			if err != nil {
				return nil, err
			}
			if (pattern.HasOnly(p, "[(", 0, j) || (j > 0 && p[j-1] == ' ')) &&
				end < len(p)-1 && p[end+1] == ' ' {
				end++
			}
			j = end + 1

		case '(':
			end, err := pattern.NextMatching(p, '(', ')', j+1)
			if err != nil {
				return nil, err
			}
			for _, span := range pattern.SplitAlternation(p, j+1, end) {
				res, err := c.matchAt(p, i, span[0])
				if err != nil {
					return nil, err
				}
				if res != nil {
					return res, nil
				}
			}
			return nil, nil

		case '%':
			return c.matchPlaceholder(p, i, j, matchedChars)

		case '<':
			return c.matchRegex(p, i, j)

		case ')', ']':
			j++

		case '|':
			end, err := pattern.NextMatching(p, '(', ')', j+1)
			if err != nil {
				return nil, err
			}
			j = end + 1

		case ' ':
			if i == len(c.Input) || (i > 0 && c.Input[i-1] == ' ') {
				j++
				continue
			}
			if c.Input[i] != ' ' {
				return nil, nil
			}
			matchedChars++
			i++
			j++

		case '\\':
			j++
			if j == len(p) {
				return nil, &pattern.MalformedPatternError{Pattern: p, Reason: "must not end with a backslash"}
			}
			fallthrough

		default:
			if i == len(c.Input) || lower(p[j]) != lower(c.Input[i]) {
				return nil, nil
			}
			matchedChars++
			i++
			j++
		}
	}

	if i == len(c.Input) && j == len(p) {
		return &Result{
			Input:        c.Input,
			Bindings:     make([]Slot, pattern.CountPercent(p, len(p))/2),
			MatchedChars: matchedChars,
		}, nil
	}
	return nil, nil
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// matchPlaceholder chooses a candidate right boundary
// for the %...% at j, expanding it until the rest of the pattern matches
// the remainder of the input and the span resolves to a value of the
// declared type.
func (c *Context) matchPlaceholder(p string, i, j, matchedChars int) (*Result, error) {
	if i == len(c.Input) {
		return nil, nil
	}

	end := pattern.NextUnescaped(p, '%', j+1)
	if end == -1 {
		return nil, &pattern.MalformedPatternError{Pattern: p, Reason: "odd number of '%'"}
	}
	body := p[j+1 : end]
	vi, err := pattern.ParseVarInfo(body, c.Pluralize)
	if err != nil {
		return nil, err
	}

	var i2 int
	switch {
	case end == len(p)-1:
		i2 = len(c.Input)
	case c.QuoteAware && c.Input[i] == '"':
		q := pattern.NextUnescapedQuote(c.Input, i+1)
		if q == -1 {
			return nil, nil
		}
		i2 = q + 1
	default:
		i2 = i + 1
	}

	for ; i2 <= len(c.Input); i2++ {
		if c.QuoteAware && i2 < len(c.Input) && c.Input[i2] == '"' {
			q := pattern.NextUnescapedQuote(c.Input, i2+1)
			if q == -1 {
				return nil, nil
			}
			i2 = q + 1
		}

		res, err := c.matchAt(p, i2, end+1)
		if err != nil {
			return nil, err
		}
		if res == nil {
			continue
		}

		span := c.Input[i:i2]
		v, ok := c.Resolver.Resolve(c.Best, vi.TypeName, span, c.ParseStatic)
		if !ok {
			if res.MatchedChars+matchedChars >= 5 {
				c.Best.Record(rank.NotAVariable, fmt.Sprintf("%q is not %s", span, article(vi.TypeName)))
			}
			continue
		}

		if !vi.IsPlural && !v.IsSingle() {
			c.Best.Record(rank.SemanticError,
				fmt.Sprintf("this expression can only accept a single %s, but multiple are given.", vi.TypeName))
			return nil, nil
		}
		if vi.Time != 0 && !v.SetTime(vi.Time) {
			tense := "past"
			if vi.Time > 0 {
				tense = "future"
			}
			c.Best.Record(rank.SemanticError, fmt.Sprintf("%s does not have a %s state", v.String(), tense))
			return nil, nil
		}

		idx := pattern.CountPercent(p, j) / 2
		res.Bindings[idx] = Slot{Value: v, Bound: true}
		return res, nil
	}
	return nil, nil
}

// matchRegex implements the <regex> slot: find the first '>' after the
// '<' (a plain search, with no escape handling), then expand the candidate span until both the rest of the
// pattern matches the remainder and the regex fully matches the span.
func (c *Context) matchRegex(p string, i, j int) (*Result, error) {
	end := indexByte(p, '>', j+1)
	if end == -1 {
		return nil, &pattern.MalformedPatternError{Pattern: p, Reason: "missing closing regex bracket '>'"}
	}
	source := p[j+1 : end]
	re, reErr := compileRegex(source)

	for i2 := i + 1; i2 <= len(c.Input); i2++ {
		res, err := c.matchAt(p, i2, end+1)
		if err != nil {
			return nil, err
		}
		if res == nil {
			continue
		}
		if reErr != nil {
			return nil, reErr
		}
		span := c.Input[i:i2]
		m := re.FindStringSubmatch(span)
		if m == nil {
			continue
		}
		res.Regexes = append([]RegexMatch{{Pattern: source, Match: m}}, res.Regexes...)
		return res, nil
	}
	return nil, nil
}

func indexByte(s string, c byte, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func article(word string) string {
	if len(word) == 0 {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an " + word
	default:
		return "a " + word
	}
}
