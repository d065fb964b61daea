package componentreader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// maxScannedLines bounds how far into a file the parser looks for the
// parameter lists.
const maxScannedLines = 1000

// ReadFile parses the component definition stored at path. The category is
// the name of the folder holding the file.
func ReadFile(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading component file %s: %w", path, err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	info := parse(strings.Split(text, "\n"))
	info.Name = componentName(path)
	info.Category = filepath.Base(filepath.Dir(path))
	info.Path = path
	return info, nil
}

func componentName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func parse(lines []string) *Info {
	info := newInfo()
	for i := 0; i < len(lines) && i < maxScannedLines; i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "* %P"):
			i = parseHeader(info, lines, i+1)
		case strings.HasPrefix(trimmed, "DEFINITION PARAMETERS"),
			strings.HasPrefix(trimmed, "SETTING PARAMETERS"):
			i = parseParameterList(info, lines, i)
		case strings.HasPrefix(line, "DECLARE"), strings.HasPrefix(line, "TRACE"):
			return info
		}
	}
	return info
}

// parseHeader reads the "%P" documentation block and returns the index of
// the DEFINE COMPONENT line that ends it.
func parseHeader(info *Info, lines []string, start int) int {
	for j := start; j < len(lines); j++ {
		if strings.HasPrefix(lines[j], "DEFINE COMPONENT") {
			return j
		}
		parseHeaderLine(info, lines[j])
	}
	return len(lines)
}

// parseHeaderLine understands "name: [unit] comment" and "name [unit] comment".
func parseHeaderLine(info *Info, line string) {
	colon := strings.Index(line, ":")
	bracket := strings.Index(line, "[")

	if colon >= 0 && (bracket < 0 || colon < bracket) {
		name := headerName(line[:colon])
		rest := strings.TrimSpace(line[colon+1:])
		if name == "" || rest == "" {
			return
		}
		if unit, comment, ok := splitUnit(rest); ok {
			info.ParameterUnits[name] = unit
			rest = comment
		}
		info.ParameterComments[name] = rest
		return
	}

	if bracket >= 0 {
		name := headerName(line[:bracket])
		if name == "" {
			return
		}
		if unit, comment, ok := splitUnit(line[bracket:]); ok {
			info.ParameterUnits[name] = unit
			info.ParameterComments[name] = comment
		}
	}
}

func headerName(s string) string {
	fields := strings.Fields(strings.ReplaceAll(s, "*", ""))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func splitUnit(s string) (unit, rest string, ok bool) {
	open := strings.Index(s, "[")
	end := strings.Index(s, "]")
	if open < 0 || end < open {
		return "", s, false
	}
	return s[open+1 : end], strings.TrimSpace(s[end+1:]), true
}

// parseParameterList consumes a parenthesised parameter list starting on
// lines[start], possibly spanning several lines, and returns the index of
// the line holding the closing parenthesis.
func parseParameterList(info *Info, lines []string, start int) int {
	open := strings.Index(lines[start], "(")
	if open < 0 {
		return start
	}

	s := &listScanner{}
	text := lines[start][open+1:]
	for i := start; i < len(lines); i++ {
		if i > start {
			text = lines[i]
		}
		if s.feed(text + "\n") {
			for _, part := range s.parts {
				addParameter(info, part)
			}
			return i
		}
	}
	for _, part := range s.parts {
		addParameter(info, part)
	}
	return len(lines)
}

// listScanner splits a C-like argument list on top-level commas while
// skipping comments and keeping quoted strings, braces and nested
// parentheses intact.
type listScanner struct {
	parts        []string
	current      strings.Builder
	depth        int
	braces       int
	inString     bool
	escaped      bool
	blockComment bool
}

// feed scans more text and reports whether the closing parenthesis of the
// list was reached.
func (s *listScanner) feed(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]

		if s.blockComment {
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				s.blockComment = false
				i++
			}
			continue
		}

		if s.inString {
			s.current.WriteByte(c)
			switch {
			case s.escaped:
				s.escaped = false
			case c == '\\':
				s.escaped = true
			case c == '"':
				s.inString = false
			}
			continue
		}

		switch {
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			// Line comment: skip to the newline.
			for i < len(text) && text[i] != '\n' {
				i++
			}
			s.current.WriteByte(' ')
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			s.blockComment = true
			i++
		case c == '"':
			s.inString = true
			s.current.WriteByte(c)
		case c == '(':
			s.depth++
			s.current.WriteByte(c)
		case c == ')':
			if s.depth == 0 {
				s.flush()
				return true
			}
			s.depth--
			s.current.WriteByte(c)
		case c == '{':
			s.braces++
			s.current.WriteByte(c)
		case c == '}':
			s.braces--
			s.current.WriteByte(c)
		case c == ',' && s.depth == 0 && s.braces <= 0:
			s.flush()
		case c == '\n' || c == '\t':
			s.current.WriteByte(' ')
		default:
			s.current.WriteByte(c)
		}
	}
	return false
}

func (s *listScanner) flush() {
	if part := strings.TrimSpace(s.current.String()); part != "" {
		s.parts = append(s.parts, part)
	}
	s.current.Reset()
}

var typePrefixes = []struct {
	keyword string
	typ     string
}{
	{"int", "int"},
	{"string", "string"},
	{"double", "double"},
	{"vector", "vector"},
	{"char", "string"},
}

func addParameter(info *Info, part string) {
	typ := "double"
	for _, p := range typePrefixes {
		rest, found := strings.CutPrefix(part, p.keyword)
		if !found || rest == "" || (rest[0] != ' ' && rest[0] != '*') {
			continue
		}
		typ = p.typ
		part = strings.TrimLeft(strings.TrimSpace(rest), "* ")
		break
	}

	name, value, hasDefault := strings.Cut(part, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if !hasDefault {
		info.addParameter(name, typ, nil)
		return
	}
	info.addParameter(name, typ, parseDefault(typ, strings.TrimSpace(value)))
}

func parseDefault(typ, value string) any {
	switch typ {
	case "double":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case "int":
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return value
}
