package locale

import (
	"fmt"
	"regexp"
	"strconv"
)

var placeholderRe = regexp.MustCompile(`\{(\d+)\}`)

// Format replaces positional {0}, {1}, ... tokens in template with the
// string form of the matching argument. Tokens without a matching argument
// are left untouched.
func Format(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(token string) string {
		n, err := strconv.Atoi(token[1 : len(token)-1])
		if err != nil || n >= len(args) {
			return token
		}
		return fmt.Sprint(args[n])
	})
}
