package textscan

import (
	"bufio"
	"reflect"
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string) []string {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(ScanLines)
	result := []string{}
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}
	return result
}

func TestScanLines(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{}},
		{"unix", "a\nb\n", []string{"a", "b"}},
		{"windows", "a\r\nb\r\n", []string{"a", "b"}},
		{"classic mac", "a\rb\r", []string{"a", "b"}},
		{"mixed", "a\nb\r\nc\rd", []string{"a", "b", "c", "d"}},
		{"no final terminator", "a\nb", []string{"a", "b"}},
		{"lone cr at eof", "a\r", []string{"a"}},
		{"empty lines", "\n\na\n", []string{"", "", "a"}},
		{"crlf empty line", "a\r\n\r\nb", []string{"a", "", "b"}},
	}
	for _, tc := range testCases {
		actual := scanAll(t, tc.input)
		if !reflect.DeepEqual(actual, tc.expected) {
			t.Errorf("Expected %s input %q to yield %q, but got %q", tc.name, tc.input, tc.expected, actual)
		}
	}
}

func TestScanLinesTinyBuffer(t *testing.T) {
	// Force the \r / \r\n distinction across read boundaries.
	scanner := bufio.NewScanner(strings.NewReader("aa\r\nbb\rcc"))
	scanner.Buffer(make([]byte, 4), 4)
	scanner.Split(ScanLines)
	expected := []string{"aa", "bb", "cc"}
	actual := []string{}
	for scanner.Scan() {
		actual = append(actual, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected %q, but got %q", expected, actual)
	}
}
