package input

import "testing"

func commands() []string {
	return []string{"help", "add", "remove", "show", "start", "reset", "removeall", "next", "prev", "chname", "chinit", "move", "version", "quit"}
}

func TestSubmitRecordsHistory(t *testing.T) {
	m := New(commands())

	m.text.SetValue("add Tasha 18")
	if got := m.Submit(); got != "add Tasha 18" {
		t.Fatalf("Submit = %q, want the typed line", got)
	}
	if got := m.Value(); got != "" {
		t.Fatalf("prompt not cleared after submit: %q", got)
	}

	m.HistoryPrev()
	if got := m.Value(); got != "add Tasha 18" {
		t.Fatalf("HistoryPrev = %q, want recalled line", got)
	}
}

func TestHistorySkipsBlankAndRepeatedLines(t *testing.T) {
	m := New(commands())

	m.text.SetValue("start")
	m.Submit()
	m.Submit() // empty line, not recorded
	m.text.SetValue("start")
	m.Submit() // duplicate of last, not recorded

	if len(m.history) != 1 {
		t.Fatalf("history = %v, want one entry", m.history)
	}
}

func TestHistoryWalksBothWays(t *testing.T) {
	m := New(commands())
	for _, line := range []string{"start", "next", "prev"} {
		m.text.SetValue(line)
		m.Submit()
	}

	m.HistoryPrev()
	m.HistoryPrev()
	if got := m.Value(); got != "next" {
		t.Fatalf("Value = %q, want next", got)
	}
	m.HistoryNext()
	if got := m.Value(); got != "prev" {
		t.Fatalf("Value = %q, want prev", got)
	}
	m.HistoryNext()
	if got := m.Value(); got != "" {
		t.Fatalf("Value = %q, want empty past newest", got)
	}
}

func TestHistoryIsBounded(t *testing.T) {
	m := New(commands())
	for i := 0; i < maxHistory+10; i++ {
		m.text.SetValue("add name" + string(rune('a'+i%26)) + " 10")
		m.Submit()
	}
	if len(m.history) > maxHistory {
		t.Fatalf("history length = %d, want at most %d", len(m.history), maxHistory)
	}
}

func TestCompletePrefix(t *testing.T) {
	m := New(commands())

	m.text.SetValue("che")
	m.Complete()
	if got := m.Value(); got != "che" {
		t.Fatalf("Complete with no match changed value to %q", got)
	}

	m.text.SetValue("st")
	m.completeMatches = nil
	m.Complete()
	if got := m.Value(); got != "start" {
		t.Fatalf("Complete = %q, want start", got)
	}
}

func TestCompleteCyclesThroughMatches(t *testing.T) {
	m := New(commands())

	m.text.SetValue("re")
	m.Complete()
	if got := m.Value(); got != "remove" {
		t.Fatalf("first Complete = %q, want remove", got)
	}
	m.Complete()
	if got := m.Value(); got != "reset" {
		t.Fatalf("second Complete = %q, want reset", got)
	}
	m.Complete()
	if got := m.Value(); got != "removeall" {
		t.Fatalf("third Complete = %q, want removeall", got)
	}
	m.Complete()
	if got := m.Value(); got != "remove" {
		t.Fatalf("fourth Complete = %q, want to cycle back to remove", got)
	}
}

func TestCompleteIgnoresArguments(t *testing.T) {
	m := New(commands())

	m.text.SetValue("add Ta")
	m.Complete()
	if got := m.Value(); got != "add Ta" {
		t.Fatalf("Complete on arguments changed value to %q", got)
	}
}
