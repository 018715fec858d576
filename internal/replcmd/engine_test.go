package replcmd

import "testing"

func TestAddAndContains(t *testing.T) {
	e := NewEngine()

	if got := e.Execute("ADD 5 100"); got != "OK" {
		t.Fatalf("ADD = %q, want OK", got)
	}
	if got := e.Execute("contains_pair 5 100"); got != "true" {
		t.Fatalf("CONTAINS_PAIR = %q, want true", got)
	}
	if got := e.Execute("CONTAINS_PAIR 5 101"); got != "false" {
		t.Fatalf("CONTAINS_PAIR = %q, want false", got)
	}
	if got := e.Execute("CONTAINS_KEY 9"); got != "false" {
		t.Fatalf("CONTAINS_KEY = %q, want false", got)
	}
}

func TestTraverseAndStats(t *testing.T) {
	e := NewEngine()
	e.Execute("ADD 2 20")
	e.Execute("ADD 1 10")
	e.Execute("ADD 1 11")

	if got, want := e.Execute("TRAVERSE"), "1 10\n1 11\n2 20"; got != want {
		t.Fatalf("TRAVERSE = %q, want %q", got, want)
	}
	if got, want := e.Execute("STATS"), "keys=2 values=3"; got != want {
		t.Fatalf("STATS = %q, want %q", got, want)
	}
}

func TestClear(t *testing.T) {
	e := NewEngine()
	e.Execute("ADD 1 1")
	e.Execute("CLEAR")

	if got, want := e.Execute("CONTAINS_KEY 1"), "false"; got != want {
		t.Fatalf("CONTAINS_KEY after CLEAR = %q, want %q", got, want)
	}
	if got, want := e.Execute("TRAVERSE"), ""; got != want {
		t.Fatalf("TRAVERSE after CLEAR = %q, want %q", got, want)
	}
}

func TestMalformedLines(t *testing.T) {
	e := NewEngine()

	cases := []string{
		"ADD 1",
		"ADD 1 2 3",
		"ADD abc 1",
		"ADD 1 abc",
		"CONTAINS_KEY",
		"TRAVERSE extra",
		"WHATEVER",
	}
	for _, c := range cases {
		got := e.Execute(c)
		if len(got) < len("error: ") || got[:len("error: ")] != "error: " {
			t.Fatalf("Execute(%q) = %q, want an error", c, got)
		}
	}

	// None of the malformed lines should have mutated the tree.
	if got, want := e.Execute("STATS"), "keys=0 values=0"; got != want {
		t.Fatalf("STATS after malformed lines = %q, want %q", got, want)
	}
}

func TestDone(t *testing.T) {
	e := NewEngine()
	if e.Done("ADD 1 1") {
		t.Fatal("ADD should not be done")
	}
	if !e.Done("exit") || !e.Done("QUIT") {
		t.Fatal("exit/QUIT should be done")
	}
}
