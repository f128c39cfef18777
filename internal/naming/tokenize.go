package naming

import (
	"strings"
	"unicode"
)

// initialisms are rendered in upper case by Pascal and Camel.
var initialisms = map[string]bool{
	"API": true, "HTML": true, "HTTP": true, "ID": true, "JSON": true,
	"SQL": true, "UI": true, "URI": true, "URL": true, "UUID": true, "XML": true,
}

// Tokenize splits an identifier into its words.
// Examples:
//   - "userId" -> ["user", "Id"]
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "order-detail" -> ["order", "detail"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Handle separators - start a new token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// Pascal returns s in PascalCase: "user_id" -> "UserID".
func Pascal(s string) string {
	var b strings.Builder
	for _, tok := range Tokenize(s) {
		b.WriteString(titleToken(tok))
	}

	return b.String()
}

// Camel returns s in camelCase: "UserID" -> "userId".
func Camel(s string) string {
	tokens := Tokenize(s)

	var b strings.Builder
	for i, tok := range tokens {
		if i == 0 {
			b.WriteString(strings.ToLower(tok))
			continue
		}

		b.WriteString(capitalize(tok))
	}

	return b.String()
}

// Snake returns s in snake_case: "OrderDetail" -> "order_detail".
func Snake(s string) string {
	tokens := Tokenize(s)
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}

	return strings.Join(tokens, "_")
}

func titleToken(tok string) string {
	if upper := strings.ToUpper(tok); initialisms[upper] {
		return upper
	}

	return capitalize(tok)
}

func capitalize(tok string) string {
	runes := []rune(strings.ToLower(tok))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.' || r == '/'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// Transition from lowercase to uppercase: start new token
	// e.g., "orderID" -> split before 'I'
	if isUpper && !isPrevUpper {
		return true
	}

	// End of acronym: check if next character is lowercase
	// e.g., "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
