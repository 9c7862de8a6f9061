package parser

import (
	"strings"

	"github.com/tsawler/marktree/internal/patterns"
	"github.com/tsawler/marktree/model"
)

// parseCodeBlock parses a fenced or an indented code block
func parseCodeBlock(lines []string, i int) (model.Block, int, bool) {
	if m := patterns.FenceStart.FindStringSubmatch(lines[i]); m != nil {
		language, filename := splitFenceInfo(m[1])
		block, next := parseFencedCode(lines, i, language, filename)
		return block, next, true
	}
	if patterns.IsIndented(lines[i]) {
		return parseIndentedCode(lines, i)
	}
	return nil, i, false
}

// splitFenceInfo reads "lang filename" from a fence info string. A lone
// token is a filename only if it contains '.' or '/'.
func splitFenceInfo(info string) (language, filename string) {
	fields := strings.Fields(info)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		if strings.ContainsAny(fields[0], "./") {
			return "", fields[0]
		}
		return fields[0], ""
	default:
		return fields[0], fields[1]
	}
}

// parseFencedCode collects lines until a closing fence or the end of input
func parseFencedCode(lines []string, start int, language, filename string) (*model.CodeBlock, int) {
	var code []string
	closed := false
	i := start + 1
	for i < len(lines) {
		if patterns.FenceEnd.MatchString(lines[i]) {
			closed = true
			i++
			break
		}
		code = append(code, strings.TrimRight(lines[i], " \t\r"))
		i++
	}
	if !closed {
		tracer().Debugf("parser: code fence at line %d closed by end of input", start)
	}

	return &model.CodeBlock{
		Language: language,
		Filename: filename,
		Code:     strings.Join(code, "\n"),
	}, i
}

// parseIndentedCode collects lines indented by four spaces or a tab. Blank
// lines are kept only when an indented line follows.
func parseIndentedCode(lines []string, start int) (model.Block, int, bool) {
	var code []string
	i := start
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			if i+1 < len(lines) && patterns.IsIndented(lines[i+1]) {
				code = append(code, "")
				i++
				continue
			}
			break
		}
		m := patterns.IndentCapture.FindStringSubmatch(line)
		if m == nil {
			break
		}
		code = append(code, strings.TrimRight(m[2], " \t\r"))
		i++
	}
	if len(code) == 0 {
		return nil, start, false
	}
	return &model.CodeBlock{Code: strings.Join(code, "\n")}, i, true
}
