package data

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// SimFile is the name of the overview file mcrun writes to the data folder.
const SimFile = "mccode.sim"

const maxLineLength = 16 * 1024 * 1024

func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return s
}

// ParseSim reads the data blocks of a mccode.sim file. Everything outside
// "begin data" / "end data" is ignored.
func ParseSim(r io.Reader) ([]*Metadata, error) {
	var (
		blocks []*Metadata
		info   map[string]string
		start  int
		line   int
	)

	s := newScanner(r)
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())

		switch {
		case strings.HasPrefix(text, "begin data"):
			if info != nil {
				return nil, &FormatError{File: SimFile, Line: line, Err: errors.New("data block opened twice")}
			}
			info = make(map[string]string)
			start = line
		case strings.HasPrefix(text, "end data"):
			if info == nil {
				return nil, &FormatError{File: SimFile, Line: line, Err: errors.New("end data without begin data")}
			}
			m, err := newMetadata(info)
			if err != nil {
				return nil, &FormatError{File: SimFile, Line: start, Err: err}
			}
			blocks = append(blocks, m)
			info = nil
		case info != nil:
			key, value, ok := strings.Cut(text, ":")
			if !ok {
				continue
			}
			info[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if info != nil {
		return nil, &FormatError{File: SimFile, Line: start, Err: errors.New("data block is not closed")}
	}
	return blocks, nil
}
