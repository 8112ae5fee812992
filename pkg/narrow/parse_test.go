package narrow

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParseList_WellFormed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"PlainJSON", `["pen", "hammer", "key"]`, []string{"pen", "hammer", "key"}},
		{"SingleItem", `["credit card"]`, []string{"credit card"}},
		{"SurroundingWhitespace", "  \n[\"mug\", \"fork\"]\t\n", []string{"mug", "fork"}},
		{"ZeroWidthPadding", "\u200b[\"apple\"]\ufeff", []string{"apple"}},
		{"EmptyList", `[]`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseList(tt.raw)
			if err != nil {
				t.Fatalf("ParseList(%q) returned error: %v", tt.raw, err)
			}
			assertLabels(t, got, tt.want)
		})
	}
}

func TestParseList_LengthMatchesCommaCount(t *testing.T) {
	raw := `["a", "b", "c", "d", "e"]`
	got, err := ParseList(raw)
	if err != nil {
		t.Fatalf("ParseList returned error: %v", err)
	}
	wantLen := strings.Count(raw, ",") + 1
	if len(got) != wantLen {
		t.Errorf("Expected %d labels, got %d", wantLen, len(got))
	}
	for _, l := range got {
		if l != strings.TrimSpace(l) {
			t.Errorf("Label %q not trimmed", l)
		}
	}
}

func TestParseList_FallbackTokenizer(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"SingleQuotes", `['pen', 'hammer']`, []string{"pen", "hammer"}},
		{"UnquotedTokens", `[pen, hammer, wine glass]`, []string{"pen", "hammer", "wine glass"}},
		{"TrailingComma", `["pen", "hammer",]`, []string{"pen", "hammer"}},
		{"MixedQuoting", `['pen', "hammer", key]`, []string{"pen", "hammer", "key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseList(tt.raw)
			if err != nil {
				t.Fatalf("ParseList(%q) returned error: %v", tt.raw, err)
			}
			assertLabels(t, got, tt.want)
		})
	}
}

func TestParseList_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"NoLeadingBracket", `"pen", "hammer"]`},
		{"NoTrailingBracket", `["pen", "hammer"`},
		{"Prose", "The unsuitable items are pen and hammer."},
		{"Empty", ""},
		{"BareBracket", "["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseList(tt.raw)
			if !errors.Is(err, ErrNotBracketed) {
				t.Fatalf("Expected ErrNotBracketed, got err=%v labels=%v", err, got)
			}
		})
	}
}

func TestParseChoice(t *testing.T) {
	valid := map[string]Choice{
		"A": ChoiceA, "b": ChoiceB, " C ": ChoiceC, "d": ChoiceOther,
	}
	for token, want := range valid {
		got, ok := ParseChoice(token)
		if !ok || got != want {
			t.Errorf("ParseChoice(%q) = (%q, %v), want (%q, true)", token, got, ok, want)
		}
	}
	for _, token := range []string{"", "E", "AB", "1", "other"} {
		if _, ok := ParseChoice(token); ok {
			t.Errorf("ParseChoice(%q) accepted invalid token", token)
		}
	}
}

func TestParseCategories(t *testing.T) {
	question := strings.Join([]string{
		"Question: Which group of objects are you thinking about?",
		"A) Tools: [hammer, screwdriver]",
		"B) Kitchen: [fork, mug]",
		"C) Sports: [basketball]",
		"D) Other: [banana]",
	}, "\n")

	buckets := ParseCategories(question)
	assertLabels(t, buckets[ChoiceA], []string{"hammer", "screwdriver"})
	assertLabels(t, buckets[ChoiceB], []string{"fork", "mug"})
	assertLabels(t, buckets[ChoiceC], []string{"basketball"})
	assertLabels(t, buckets[ChoiceOther], []string{"banana"})
}

func TestParseCategories_SkipsNonMatchingLines(t *testing.T) {
	question := strings.Join([]string{
		"Question: Which group of objects are you thinking about?",
		"A) Tools: [hammer, screwdriver]",
		"B) Kitchen [fork, mug]", // missing colon
		"C) Sports: fork, mug",   // missing brackets
		"D) Other",               // leftover-free catch-all line
	}, "\n")

	buckets := ParseCategories(question)
	assertLabels(t, buckets[ChoiceA], []string{"hammer", "screwdriver"})
	if _, ok := buckets[ChoiceB]; ok {
		t.Error("Expected B bucket to be absent for malformed line")
	}
	if _, ok := buckets[ChoiceC]; ok {
		t.Error("Expected C bucket to be absent for malformed line")
	}
	if _, ok := buckets[ChoiceOther]; ok {
		t.Error("Expected D bucket to be absent for bracket-free catch-all")
	}
}

func assertLabels(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d labels %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Label %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
