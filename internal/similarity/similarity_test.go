package similarity

import (
	"reflect"
	"testing"

	"github.com/Kavirubc/gh-tracker/pkg/models"
)

func issues(titles ...string) []models.Issue {
	out := make([]models.Issue, len(titles))
	for i, t := range titles {
		out[i] = models.Issue{ID: t, Title: t}
	}
	return out
}

func titles(in []models.Issue) []string {
	out := make([]string, len(in))
	for i, issue := range in {
		out[i] = issue.Title
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "Login Button", []string{"login", "button"}},
		{"runs of whitespace", "  login \t\n button  ", []string{"login", "button"}},
		{"keeps punctuation", "crash: api/v2!", []string{"crash:", "api/v2!"}},
		{"no diacritic folding", "Café crash", []string{"café", "crash"}},
		{"empty", "", []string{}},
		{"whitespace only", " \t ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		record    string
		want      float64
	}{
		{"identical", "login button broken", "login button broken", 100},
		{"shared prefix tokens", "Login button broken", "Login button not working", 50},
		{"candidate token inside record token", "log", "login", 100},
		{"record token inside candidate token", "logins", "login", 100},
		{"longer record dilutes score", "login button broken", "login button broken today mobile", 60},
		{"no overlap", "Totally unrelated text", "Login button not working", 0},
		{"candidate token counted once", "a", "apple banana", 50},
		{"empty record", "login", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(Tokenize(tt.candidate), Tokenize(tt.record))
			if got != tt.want {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.candidate, tt.record, got, tt.want)
			}
		})
	}
}

func TestFindSimilar_EmptyCandidate(t *testing.T) {
	existing := issues("Login button not working", "a")

	for _, candidate := range []string{"", "   ", "\t\n"} {
		if got := FindSimilar(candidate, existing); len(got) != 0 {
			t.Errorf("FindSimilar(%q) = %v, want empty", candidate, titles(got))
		}
	}
}

func TestFindSimilar_EmptyExisting(t *testing.T) {
	if got := FindSimilar("Login button broken", nil); len(got) != 0 {
		t.Errorf("FindSimilar() = %v, want empty", titles(got))
	}
}

func TestFindSimilar_NoOverlap(t *testing.T) {
	got := FindSimilar("Totally unrelated text", issues("Login button not working"))
	if len(got) != 0 {
		t.Errorf("FindSimilar() = %v, want empty", titles(got))
	}
}

func TestFindSimilar_SharedTokens(t *testing.T) {
	// Two of four tokens overlap: 50 is below the default threshold.
	record := issues("Login button not working")
	if got := FindSimilar("Login button broken", record); len(got) != 0 {
		t.Errorf("FindSimilar() = %v, want empty at default threshold", titles(got))
	}

	engine := New(Options{Threshold: 45, MinTitleLength: DefaultMinTitleLength})
	got := engine.FindSimilar("Login button broken", record)
	if len(got) != 1 || got[0].Title != "Login button not working" {
		t.Errorf("FindSimilar() with threshold 45 = %v, want the login record", titles(got))
	}
}

func TestFindSimilar_ThresholdIsStrict(t *testing.T) {
	existing := issues(
		"login button broken today mobile", // 3/5 = 60
		"login button broken today",        // 3/4 = 75
	)

	got := FindSimilar("login button broken", existing)
	want := []string{"login button broken today"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("FindSimilar() = %v, want %v", titles(got), want)
	}
}

func TestFindSimilar_PreservesInputOrder(t *testing.T) {
	existing := issues(
		"Crash login",
		"Dark mode colours wrong",
		"Login crash",
		"Login crashes",
	)

	got := FindSimilar("login crash", existing)
	want := []string{"Crash login", "Login crash", "Login crashes"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("FindSimilar() = %v, want %v", titles(got), want)
	}
}

func TestFindSimilar_Deterministic(t *testing.T) {
	existing := issues("Login button not working", "Login broken", "Signup broken", "Login page broken")

	first := FindSimilar("login broken", existing)
	for i := 0; i < 5; i++ {
		again := FindSimilar("login broken", existing)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("FindSimilar() run %d = %v, want %v", i, titles(again), titles(first))
		}
	}
}

func TestFindSimilar_CaseInsensitive(t *testing.T) {
	got := FindSimilar("LOGIN CRASH", issues("login crash"))
	if len(got) != 1 {
		t.Errorf("FindSimilar() = %v, want one match", titles(got))
	}
}

func TestFindSimilar_ShortTokensMatchGenerously(t *testing.T) {
	got := FindSimilar("a", issues("Database"))
	if len(got) != 1 {
		t.Errorf("FindSimilar() = %v, want single-letter candidate to match", titles(got))
	}
}

func TestFindSimilar_DuplicateRecordsKept(t *testing.T) {
	got := FindSimilar("login crash", issues("Login crash", "Login crash"))
	if len(got) != 2 {
		t.Errorf("len(FindSimilar()) = %d, want 2", len(got))
	}
}

func TestEngine_Matches(t *testing.T) {
	got := New(DefaultOptions()).Matches("login crash", issues("Login crash", "Signup page"))
	if len(got) != 1 {
		t.Fatalf("len(Matches()) = %d, want 1", len(got))
	}
	if got[0].Score != 100 {
		t.Errorf("Score = %v, want 100", got[0].Score)
	}
}

func TestEngine_Check_MinTitleLength(t *testing.T) {
	engine := New(DefaultOptions())
	existing := issues("ab cd", "abc")

	tests := []struct {
		name      string
		candidate string
		wantLen   int
	}{
		{"too short", "ab", 0},
		{"too short after trim", "  ab  ", 0},
		{"long enough", "abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Check(tt.candidate, existing)
			if len(got) != tt.wantLen {
				t.Errorf("len(Check(%q)) = %d, want %d", tt.candidate, len(got), tt.wantLen)
			}
		})
	}
}

func TestEngine_Eligible(t *testing.T) {
	engine := New(Options{Threshold: DefaultThreshold, MinTitleLength: 5})

	if engine.Eligible("abcd") {
		t.Errorf("Eligible(abcd) = true, want false")
	}
	if !engine.Eligible("abcde") {
		t.Errorf("Eligible(abcde) = false, want true")
	}

	// Four bytes but two runes.
	if New(DefaultOptions()).Eligible("éé") {
		t.Errorf("Eligible(éé) = true, want false")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Threshold != 60 {
		t.Errorf("Threshold = %v, want 60", opts.Threshold)
	}
	if opts.MinTitleLength != 3 {
		t.Errorf("MinTitleLength = %v, want 3", opts.MinTitleLength)
	}
}
