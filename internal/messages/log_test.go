package messages

import "testing"

func TestLogStacksRepeatedMessages(t *testing.T) {
	log := NewLog()
	log.Add("That way is blocked.", Impossible)
	log.Add("That way is blocked.", Impossible)
	log.Add("Hello", White)

	if log.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", log.Len())
	}

	first := log.Messages()[0]
	if first.Count != 2 {
		t.Errorf("first.Count = %d, want 2", first.Count)
	}
	if got := first.FullText(); got != "That way is blocked. (x2)" {
		t.Errorf("FullText() = %q", got)
	}

	last, ok := log.Last()
	if !ok || last.Text != "Hello" {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
}

func TestLogDifferentColorDoesNotStack(t *testing.T) {
	log := NewLog()
	log.Add("hit", PlayerAttack)
	log.Add("hit", EnemyAttack)

	if log.Len() != 2 {
		t.Errorf("Len() = %d, want 2", log.Len())
	}
}

func TestRecent(t *testing.T) {
	log := NewLog()
	for _, s := range []string{"a", "b", "c", "d"} {
		log.Add(s, White)
	}

	recent := log.Recent(2)
	if len(recent) != 2 || recent[0].Text != "c" || recent[1].Text != "d" {
		t.Errorf("Recent(2) = %+v", recent)
	}
	if len(log.Recent(10)) != 4 {
		t.Errorf("Recent(10) should return everything")
	}
}

func TestTextfFormats(t *testing.T) {
	got := Textf("%s attacks %s for %d hit points.", "Orc", "player", 3)
	if got != "Orc attacks player for 3 hit points." {
		t.Errorf("Textf() = %q", got)
	}
}

func TestEnglishCatalogueCoversTemplates(t *testing.T) {
	for _, id := range []string{"You died!", "Your inventory is full.", "%s is dead!"} {
		if !catalogue.Load().IsTranslated(id) {
			t.Errorf("%q missing from the embedded catalogue", id)
		}
	}
}

func TestLoadCatalogueTranslates(t *testing.T) {
	defer LoadCatalogue(enPO)

	LoadCatalogue([]byte(`msgid ""
msgstr ""
"Language: fr\n"

msgid "You died!"
msgstr "Vous êtes mort !"

msgid "You picked up the %s!"
msgstr "Vous ramassez : %s !"
`))

	tests := []struct {
		format string
		args   []any
		want   string
	}{
		{"You died!", nil, "Vous êtes mort !"},
		{"You picked up the %s!", []any{"potion"}, "Vous ramassez : potion !"},
		{"Nothing to attack.", nil, "Nothing to attack."},
	}
	for _, tt := range tests {
		if got := Textf(tt.format, tt.args...); got != tt.want {
			t.Errorf("Textf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
