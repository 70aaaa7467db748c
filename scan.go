package parser

// scanNamespace reads the namespace segment beginning at start. A
// segment exists only when the byte at start is '/'; it runs up to the
// first comma or the end of the frame, and the comma is consumed with
// it. Returns the namespace, or the default "/" when there is no
// segment, and the next scan position.
func scanNamespace(frame string, start int) (string, int) {
	if start >= len(frame) || frame[start] != '/' {
		return defaultNamespace, start
	}

	end := start
	for end < len(frame) && frame[end] != ',' {
		end++
	}

	nsp := frame[start:end]
	if end < len(frame) {
		end++ // step over the comma
	}

	return nsp, end
}

// scanID reads consecutive decimal digits beginning at start. The
// second return reports whether any digit was read, which keeps an id
// of 0 distinct from no id.
func scanID(frame string, start int) (uint64, bool, int) {
	var id uint64
	var hasID bool

	pos := start
	for pos < len(frame) && '0' <= frame[pos] && frame[pos] <= '9' {
		id = id*10 + uint64(frame[pos]-'0')
		hasID = true
		pos++
	}

	return id, hasID, pos
}
