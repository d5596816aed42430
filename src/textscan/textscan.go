package textscan

// ScanLines is a bufio.SplitFunc that splits lines on any of the three
// common newline conventions: "\n" (Unix), "\r\n" (Windows) and a lone
// "\r" (classic Mac OS). A final line without any terminator is still
// returned as a line. Line terminators are not included in the token.
//
// bufio.ScanLines only understands "\n" and "\r\n"; alphabet definition
// files are edited by hand on arbitrary platforms, so all three must work.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i, b := range data {
		switch b {
		case '\n':
			return i + 1, data[:i], nil
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if atEOF {
				return i + 1, data[:i], nil
			}
			// Need one more byte to tell a lone "\r" from "\r\n".
			return 0, nil, nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
