package jsonc

// Strip rewrites JSONC into plain JSON: line comments, block comments and
// trailing commas are removed, string literals and everything inside them are
// preserved byte for byte. Line comments keep their terminating newline and
// block comments collapse to a single space, so token separation and line
// numbering of the surrounding JSON survive.
//
// Strip does not validate: malformed input passes through for the JSON parser
// to report.
func Strip(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	escaped := false
	lastComma := -1
	pendingComma := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			pendingComma = false
			out = append(out, c)

		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			for i < len(data) && data[i] != '\n' {
				i++
			}
			if i < len(data) {
				out = append(out, '\n')
			}

		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			i += 2
			for i+1 < len(data) && !(data[i] == '*' && data[i+1] == '/') {
				i++
			}
			i++
			out = append(out, ' ')

		case c == ',':
			pendingComma = true
			lastComma = len(out)
			out = append(out, c)

		case c == '}' || c == ']':
			if pendingComma && lastComma >= 0 {
				out = append(out[:lastComma], out[lastComma+1:]...)
			}
			pendingComma = false
			out = append(out, c)

		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			out = append(out, c)

		default:
			pendingComma = false
			out = append(out, c)
		}
	}
	return out
}
