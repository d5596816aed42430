package inspect

import (
	"strings"
	"testing"

	"github.com/enescakir/emoji"
)

func TestDescribeEntryRuneNames(t *testing.T) {
	actual := DescribeEntry("a")
	if !strings.Contains(actual, "LATIN SMALL LETTER A") {
		t.Errorf("Expected rune name in %q", actual)
	}

	actual = DescribeEntry("ch")
	if !strings.Contains(actual, "LATIN SMALL LETTER C") || !strings.Contains(actual, " + ") {
		t.Errorf("Expected both rune names joined in %q", actual)
	}
}

func TestDescribeEntryEmojiAlias(t *testing.T) {
	var emojiText string
	for _, e := range emoji.Map() {
		emojiText = e
		break
	}
	if emojiText == "" {
		t.Fatalf("emoji map is empty")
	}
	// Aliases are colon-delimited (":thumbs_up:"); rune names never
	// contain a colon, so its presence shows the alias was appended.
	actual := DescribeEntry(emojiText)
	if !strings.Contains(actual, ":") {
		t.Errorf("Expected an emoji alias in %q", actual)
	}
}

func TestDescribeEntryNonEmoji(t *testing.T) {
	actual := DescribeEntry(" ")
	if !strings.Contains(actual, "SPACE") {
		t.Errorf("Expected SPACE in %q", actual)
	}
}
