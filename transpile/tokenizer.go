package transpile

// tokenKind classifies one scanned run of a canonical SQL template.
// Grounded on the teacher's parser/token.go scanning style, pared down to
// what rewriting a known-shape template needs: word boundaries, named
// placeholders, and opaque string literals.
type tokenKind int

const (
	tokWord tokenKind = iota
	tokPlaceholder
	tokString
	tokOther
)

type token struct {
	kind tokenKind
	text string
}

// scan splits sql into tokens. Single-quoted string literals (with ''
// escaping) are scanned whole as tokString so rewriting never touches
// placeholder-shaped or keyword-shaped text sitting inside a literal.
func scan(sql string) []token {
	var toks []token
	i, n := 0, len(sql)
	for i < n {
		ch := sql[i]
		switch {
		case ch == '\'':
			j := i + 1
			for j < n {
				if sql[j] == '\'' {
					if j+1 < n && sql[j+1] == '\'' {
						j += 2
						continue
					}
					j++
					break
				}
				j++
			}
			if j > n {
				j = n
			}
			toks = append(toks, token{tokString, sql[i:j]})
			i = j
		case ch == ':':
			j := i + 1
			for j < n && isIdentByte(sql[j]) {
				j++
			}
			if j > i+1 {
				toks = append(toks, token{tokPlaceholder, sql[i:j]})
				i = j
			} else {
				toks = append(toks, token{tokOther, string(ch)})
				i++
			}
		case isIdentStart(ch):
			j := i + 1
			for j < n && isIdentByte(sql[j]) {
				j++
			}
			toks = append(toks, token{tokWord, sql[i:j]})
			i = j
		default:
			toks = append(toks, token{tokOther, string(ch)})
			i++
		}
	}
	return toks
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentByte(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
