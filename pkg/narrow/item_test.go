package narrow

import "testing"

func TestNewSet_DropsDuplicatesAndEmpties(t *testing.T) {
	set := NewSet("pen", "", "hammer", "pen", "mug")
	assertLabels(t, set.Items(), []string{"pen", "hammer", "mug"})
}

func TestSet_Equal(t *testing.T) {
	a := NewSet("pen", "hammer")
	if !a.Equal(NewSet("hammer", "pen")) {
		t.Error("Equal must ignore order")
	}
	if a.Equal(NewSet("pen")) || a.Equal(NewSet("pen", "mug")) {
		t.Error("Equal accepted a different set")
	}
	if a.Equal(NewSet("Pen", "hammer")) {
		t.Error("Equality must be case-sensitive")
	}
}

func TestSet_IntersectKeepsOrder(t *testing.T) {
	set := NewSet("pen", "hammer", "mug", "fork")
	got := set.Intersect([]string{"fork", "pen", "banana"})
	assertLabels(t, got.Items(), []string{"pen", "fork"})
}

func TestSet_Without(t *testing.T) {
	set := NewSet("pen", "hammer", "mug")
	got := set.Without(NewSet("hammer", "banana"))
	assertLabels(t, got.Items(), []string{"pen", "mug"})
}

func TestSet_KeyIsOrderInsensitive(t *testing.T) {
	a := NewSet("pen", "hammer")
	b := NewSet("hammer", "pen")
	if a.Key() != b.Key() {
		t.Errorf("Keys differ for equal sets: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() == NewSet("pen", "mug").Key() {
		t.Error("Distinct sets share a key")
	}
}

func TestSet_String(t *testing.T) {
	if got := NewSet("pen", "wine glass").String(); got != "[pen, wine glass]" {
		t.Errorf("Unexpected rendering: %q", got)
	}
	if got := NewSet().String(); got != "[]" {
		t.Errorf("Unexpected empty rendering: %q", got)
	}
}
