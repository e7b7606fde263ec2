package vocabulary

import "testing"

func TestDefaultHasAtLeastTenWords(t *testing.T) {
	v, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if v.Len() < 10 {
		t.Fatalf("Len() = %d, want >= 10 (spec.md §8 scenario requirement)", v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if len(v.Word(i)) != WordLength {
			t.Errorf("word %d (%q) has length %d, want %d", i, v.Word(i), len(v.Word(i)), WordLength)
		}
	}
}

func TestNewRejectsWrongLength(t *testing.T) {
	_, err := New([]string{"ABCDE", "TOOLONGWORD"})
	if err == nil {
		t.Fatal("expected error for wrong-length word")
	}
}

func TestAnswerAndGuessSets(t *testing.T) {
	v, err := New([]string{"ABCDE", "FGHIJ", "KLMNO", "PQRST"})
	if err != nil {
		t.Fatal(err)
	}
	a := v.AnswerSet(2)
	if len(a) != 2 || a[0] != 0 || a[1] != 1 {
		t.Fatalf("AnswerSet(2) = %v, want [0 1]", a)
	}
	g := v.GuessSet(4)
	if len(g) != 4 {
		t.Fatalf("GuessSet(4) = %v, want length 4", g)
	}
	if !v.ValidGuess(3, 4) || v.ValidGuess(4, 4) {
		t.Fatal("ValidGuess bound check failed")
	}
}
