package words

import "testing"

// --- Tests pour Normalize --------------------------------------------------

func TestNormalize_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "contraction don't", in: "don't", want: "do"},
		{name: "contraction it's", in: "it's", want: "it"},
		{name: "contraction won't", in: "won't", want: "will"},
		{name: "contraction majuscules", in: "DON'T", want: "do"},
		{name: "apostrophe inconnue tronquée", in: "singer's", want: "singer"},
		{name: "minuscules", in: "Hello", want: "hello"},
		{name: "chiffres retirés", in: "abc123", want: "abc"},
		{name: "ponctuation retirée", in: "world!", want: "world"},
		{name: "filler um", in: "um", want: ""},
		{name: "filler uh", in: "uh", want: ""},
		{name: "filler hmm", in: "hmm", want: ""},
		{name: "trop court", in: "a", want: ""},
		{name: "uniquement chiffres", in: "42", want: ""},
		{name: "vide", in: "", want: ""},
		{name: "espaces", in: "  sign  ", want: "sign"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"don't", "it's", "Hello", "um", "singer's", "abc123", "", "we'll", "42nd"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize non idempotent pour %q : %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeWithMin_CustomLength(t *testing.T) {
	// avec minLen 3, "go" est rejeté ; avec la valeur par défaut, il passe
	if got := NormalizeWithMin("go", 3); got != "" {
		t.Errorf("NormalizeWithMin(go, 3) = %q; want vide", got)
	}
	if got := Normalize("go"); got != "go" {
		t.Errorf("Normalize(go) = %q; want go", got)
	}
}

// --- Tests pour Tokenize ---------------------------------------------------

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "phrase simple", in: "hello world", want: []string{"hello", "world"}},
		{name: "ponctuation", in: "wait, what?!", want: []string{"wait", "what"}},
		{name: "apostrophe coupe", in: "don't", want: []string{"don", "t"}},
		{name: "chiffres gardés", in: "top 10 signs", want: []string{"top", "10", "signs"}},
		{name: "vide", in: "", want: nil},
		{name: "séparateurs seuls", in: " ... !! ", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("Tokenize(%q) = %#v; want %#v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("token %d = %q; want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}
