package textutil

import (
	"reflect"
	"testing"

	"github.com/danmuck/genkit/internal/testutil/testlog"
)

func TestFirstCapital(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello world", "Hello world"},
		{"Hello", "Hello"},
		{"9 lives", "9 lives"},
		{"über", "Über"},
	}
	for _, c := range cases {
		if got := FirstCapital(c.in); got != c.want {
			t.Fatalf("FirstCapital(%q): got=%q want=%q", c.in, got, c.want)
		}
	}
}

func TestDigitFromText(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"file(1 ) and file (2) and file(3).txt", 2, true},
		{"copy(12)", 12, true},
		{"no digits here", 0, false},
		{"broken (1.5)", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := DigitFromText(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("DigitFromText(%q): got=%d,%v want=%d,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestFirstNonAlphabet(t *testing.T) {
	testlog.Start(t)
	if got := FirstNonAlphabet("HE_bro"); got != '_' {
		t.Fatalf("got %q want '_'", got)
	}
	if got := FirstNonAlphabet("abc-def", '-'); got != ' ' {
		t.Fatalf("ignored rune not skipped: got %q", got)
	}
	if got := FirstNonAlphabet("letters"); got != ' ' {
		t.Fatalf("all-letter string must yield space, got %q", got)
	}
	if got := FirstNonAlphabet("a1b2"); got != '1' {
		t.Fatalf("got %q want '1'", got)
	}
}

func TestReplaceHTMLTags(t *testing.T) {
	testlog.Start(t)
	in := "<p>hello <b>bold</b></p>"
	if got := ReplaceHTMLTags(in, ""); got != "hello bold" {
		t.Fatalf("got %q", got)
	}
	if got := ReplaceHTMLTags(in, "|"); got != "|hello |bold||" {
		t.Fatalf("got %q", got)
	}
}

func TestReplaceEach(t *testing.T) {
	testlog.Start(t)
	got := ReplaceEach("a.b,c.d", []string{".", ","}, "-", -1)
	if got != "a-b-c-d" {
		t.Fatalf("got %q", got)
	}
	got = ReplaceEach("aaa", []string{"a"}, "b", 2)
	if got != "bba" {
		t.Fatalf("count not honored: got %q", got)
	}
}

func TestReplacePairs(t *testing.T) {
	testlog.Start(t)
	pairs := []Replacement{{Old: "cat", New: "dog"}, {Old: "red", New: "blue"}}
	got := ReplacePairs("red cat, red cat", pairs, -1)
	if got != "blue dog, blue dog" {
		t.Fatalf("got %q", got)
	}
}

func TestSimilarized(t *testing.T) {
	testlog.Start(t)
	in := []string{"HE_bro", "SHE_why", "HE_yes", "SHE_ok"}
	want := [][]string{
		{"HE_bro", "HE_yes"},
		{"SHE_ok", "SHE_why"},
	}
	if got := Similarized(in, ""); !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
	if got := Similarized(in, "_"); !reflect.DeepEqual(got, want) {
		t.Fatalf("explicit sep: got=%v want=%v", got, want)
	}
	if got := Similarized(nil, ""); got != nil {
		t.Fatalf("empty input: got=%v", got)
	}
}

func TestReprString(t *testing.T) {
	testlog.Start(t)
	got := ReprString("Signal",
		Field{Key: "name", Value: "tick"},
		Field{Key: "threaded", Value: false},
	)
	want := "Signal(name = tick, threaded = false)"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
	if got := ReprString("Empty"); got != "Empty()" {
		t.Fatalf("got=%q", got)
	}
}
