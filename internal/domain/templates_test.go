package domain

import "testing"

func TestTemplateSet_OrderedByName(t *testing.T) {
	ts := NewTemplateSet()
	ts.Add(Template{Name: "Rice"})
	ts.Add(Template{Name: "Apple"})
	ts.Add(Template{Name: "Milk"})

	got := ts.Filter("")
	if len(got) != 3 || got[0].Name != "Apple" || got[1].Name != "Milk" || got[2].Name != "Rice" {
		t.Errorf("Filter(\"\") = %v, want name order", got)
	}
}

func TestTemplateSet_FilterIsCaseSensitiveSubstring(t *testing.T) {
	ts := NewTemplateSet()
	ts.Add(Template{Name: "Apple"})
	ts.Add(Template{Name: "Pineapple"})
	ts.Add(Template{Name: "apple pie"})

	if got := ts.Filter("apple"); len(got) != 2 {
		t.Errorf("Filter(\"apple\") matched %d, want 2 (substring, case-sensitive)", len(got))
	}
	if got := ts.Filter("Apple"); len(got) != 1 || got[0].Name != "Apple" {
		t.Errorf("Filter(\"Apple\") = %v, want only the exact-case match", got)
	}
	if got := ts.Filter("zzz"); len(got) != 0 {
		t.Errorf("Filter(\"zzz\") = %v, want none", got)
	}
}

func TestTemplateSet_RemoveByName(t *testing.T) {
	ts := NewTemplateSet()
	ts.Add(Template{Name: "Apple", Calories: 52})
	ts.Add(Template{Name: "Apple", Calories: 60}) // duplicate name
	ts.Add(Template{Name: "Rice"})

	ts.Remove("Apple")
	if ts.Len() != 1 {
		t.Errorf("Remove should delete every template with the name, left %d", ts.Len())
	}
	ts.Remove("not there")
	if ts.Len() != 1 {
		t.Error("removing an unknown name must be a no-op")
	}
}

func TestTemplateSet_AddTruncatesName(t *testing.T) {
	ts := NewTemplateSet()
	ts.Add(Template{Name: "A very long template name indeed"})
	got := ts.Filter("")
	if len(got) != 1 || len([]rune(got[0].Name)) != MaxNameLen {
		t.Errorf("Add should truncate the name to %d chars, got %q", MaxNameLen, got[0].Name)
	}
}
