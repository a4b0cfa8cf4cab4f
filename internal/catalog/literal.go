package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// The genres and cast columns hold Python-style literal lists of dicts,
// e.g. [{'id': 16, 'name': 'Animation'}, ...].  They are not JSON: the
// strings are usually single-quoted and switch to double quotes when
// the value itself contains an apostrophe.  This file implements a
// small scanner for exactly that format.

// Entry is one {id, name} pair extracted from a literal list.  All
// other keys in the dicts (character, order, profile_path, ...) are
// parsed only to advance the scanner and then discarded.
type Entry struct {
	ID   uint64
	Name string
}

// ParseEntries decodes a literal list of dicts into its {id, name}
// entries.  Dicts without a usable id or name are skipped.  An empty
// or blank input yields no entries and no error.
func ParseEntries(s string) ([]Entry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	sc := &literalScanner{src: s}
	v, err := sc.value()
	if err != nil {
		return nil, err
	}
	sc.skipSpace()
	if sc.pos != len(sc.src) {
		return nil, fmt.Errorf("trailing data at offset %d", sc.pos)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errors.New("top-level value is not a list")
	}
	entries := make([]Entry, 0, len(list))
	for _, item := range list {
		dict, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, okID := dict["id"].(float64)
		name, okName := dict["name"].(string)
		if !okID || !okName || id < 0 {
			continue
		}
		entries = append(entries, Entry{ID: uint64(id), Name: name})
	}
	return entries, nil
}

type literalScanner struct {
	src string
	pos int
}

func (s *literalScanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *literalScanner) peek() (byte, error) {
	s.skipSpace()
	if s.pos >= len(s.src) {
		return 0, errors.New("unexpected end of input")
	}
	return s.src[s.pos], nil
}

// value parses one literal value: list, dict, quoted string, number,
// or one of the bare words None/True/False.
func (s *literalScanner) value() (any, error) {
	c, err := s.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case c == '[':
		return s.list()
	case c == '{':
		return s.dict()
	case c == '\'' || c == '"':
		return s.quoted()
	case c == '-' || (c >= '0' && c <= '9'):
		return s.number()
	default:
		return s.word()
	}
}

func (s *literalScanner) list() (any, error) {
	s.pos++ // consume '['
	var out []any
	for {
		c, err := s.peek()
		if err != nil {
			return nil, err
		}
		if c == ']' {
			s.pos++
			return out, nil
		}
		v, err := s.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		c, err = s.peek()
		if err != nil {
			return nil, err
		}
		switch c {
		case ',':
			s.pos++
		case ']':
		default:
			return nil, fmt.Errorf("unexpected %q in list at offset %d", c, s.pos)
		}
	}
}

func (s *literalScanner) dict() (any, error) {
	s.pos++ // consume '{'
	out := map[string]any{}
	for {
		c, err := s.peek()
		if err != nil {
			return nil, err
		}
		if c == '}' {
			s.pos++
			return out, nil
		}
		key, err := s.quoted()
		if err != nil {
			return nil, err
		}
		c, err = s.peek()
		if err != nil {
			return nil, err
		}
		if c != ':' {
			return nil, fmt.Errorf("expected ':' at offset %d", s.pos)
		}
		s.pos++
		v, err := s.value()
		if err != nil {
			return nil, err
		}
		out[key] = v
		c, err = s.peek()
		if err != nil {
			return nil, err
		}
		switch c {
		case ',':
			s.pos++
		case '}':
		default:
			return nil, fmt.Errorf("unexpected %q in dict at offset %d", c, s.pos)
		}
	}
}

// quoted parses a single- or double-quoted string with backslash
// escapes (\', \", \\, \n, \t, \r, \xNN and \uNNNN are the forms the
// dataset actually contains).
func (s *literalScanner) quoted() (string, error) {
	c, err := s.peek()
	if err != nil {
		return "", err
	}
	if c != '\'' && c != '"' {
		return "", fmt.Errorf("expected quote at offset %d", s.pos)
	}
	quote := c
	s.pos++
	var b strings.Builder
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch ch {
		case quote:
			s.pos++
			return b.String(), nil
		case '\\':
			s.pos++
			if s.pos >= len(s.src) {
				return "", errors.New("unterminated escape")
			}
			esc := s.src[s.pos]
			s.pos++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'x':
				if s.pos+2 > len(s.src) {
					return "", errors.New("truncated \\x escape")
				}
				n, err := strconv.ParseUint(s.src[s.pos:s.pos+2], 16, 8)
				if err != nil {
					return "", fmt.Errorf("bad \\x escape at offset %d", s.pos)
				}
				b.WriteRune(rune(n))
				s.pos += 2
			case 'u':
				if s.pos+4 > len(s.src) {
					return "", errors.New("truncated \\u escape")
				}
				n, err := strconv.ParseUint(s.src[s.pos:s.pos+4], 16, 32)
				if err != nil {
					return "", fmt.Errorf("bad \\u escape at offset %d", s.pos)
				}
				b.WriteRune(rune(n))
				s.pos += 4
			default:
				// \' \" \\ and anything unknown: keep the char as-is.
				b.WriteByte(esc)
			}
		default:
			b.WriteByte(ch)
			s.pos++
		}
	}
	return "", errors.New("unterminated string")
}

func (s *literalScanner) number() (any, error) {
	start := s.pos
	if s.src[s.pos] == '-' {
		s.pos++
	}
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			s.pos++
			continue
		}
		break
	}
	f, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return nil, fmt.Errorf("bad number %q at offset %d", s.src[start:s.pos], start)
	}
	return f, nil
}

func (s *literalScanner) word() (any, error) {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			s.pos++
			continue
		}
		break
	}
	switch s.src[start:s.pos] {
	case "None":
		return nil, nil
	case "True":
		return true, nil
	case "False":
		return false, nil
	}
	return nil, fmt.Errorf("unexpected token %q at offset %d", s.src[start:s.pos], start)
}
