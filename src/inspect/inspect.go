package inspect

import (
	"fmt"
	"strings"

	"github.com/enescakir/emoji"
	"golang.org/x/text/unicode/runenames"
)

var emojiToAliasMap map[string]string

func init() {
	aliasToEmojiMap := emoji.Map()
	emojiToAliasMap = make(map[string]string, len(aliasToEmojiMap))
	for alias, e := range aliasToEmojiMap {
		emojiToAliasMap[e] = alias
	}
}

// DescribeEntry renders one alphabet entry for console output: the quoted
// entry text followed by the Unicode name of each of its codepoints, and
// the emoji alias when the entry as a whole is a known emoji.
func DescribeEntry(text string) string {
	names := make([]string, 0, 1)
	for _, r := range text {
		names = append(names, runenames.Name(r))
	}
	result := fmt.Sprintf("%q  %s", text, strings.Join(names, " + "))
	if alias, ok := emojiToAliasMap[text]; ok {
		result = fmt.Sprintf("%s %s", result, alias)
	}
	return result
}
