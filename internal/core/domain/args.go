package domain

import "strings"

// ParseArgs splits a raw argument string on whitespace, joining runs of
// tokens enclosed in double quotes into a single argument. Malformed quoting
// degrades to the literal tokens rather than failing; a sequence of plain
// tokens comes back unchanged.
func ParseArgs(raw string) []string {
	tokens := strings.Fields(raw)
	args := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !strings.HasPrefix(tok, `"`) {
			args = append(args, tok)
			continue
		}

		if len(tok) > 1 && strings.HasSuffix(tok, `"`) {
			args = append(args, tok[1:len(tok)-1])
			continue
		}

		end := -1
		for j := i + 1; j < len(tokens); j++ {
			if strings.HasSuffix(tokens[j], `"`) {
				end = j
				break
			}
		}
		if end < 0 {
			// unterminated quote, keep the token as-is
			args = append(args, tok)
			continue
		}

		joined := strings.Join(tokens[i:end+1], " ")
		args = append(args, joined[1:len(joined)-1])
		i = end
	}

	return args
}
