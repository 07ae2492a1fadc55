package portfolio

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestDataLookups(t *testing.T) {
	for _, p := range Projects() {
		if got, ok := ProjectByID(p.ID); !ok || got.Title != p.Title {
			t.Errorf("project %q not found by id", p.ID)
		}
	}
	for _, s := range Skills() {
		if s.Level < 0 || s.Level > 100 {
			t.Errorf("skill %q level %d", s.ID, s.Level)
		}
	}
	if _, ok := CertificationByID("ibm"); !ok {
		t.Error("ibm certification missing")
	}
	if _, ok := ProjectByID("nope"); ok {
		t.Error("unknown project found")
	}
}

func TestModalOpenClose(t *testing.T) {
	var m Modal
	if m.OpenProject("nope", 3) || m.IsOpen() {
		t.Fatal("unknown project opened the modal")
	}
	if !m.OpenProject("flight-price", 7) {
		t.Fatal("project did not open")
	}
	if m.Kind() != ModalProject || !strings.Contains(m.Title(), "Flight Price") {
		t.Fatalf("modal %v %q", m.Kind(), m.Title())
	}
	joined := strings.Join(m.Lines(), "\n")
	for _, want := range []string{"Project Metrics", "96%", "Scikit-learn", "Customer sentiment analysis"} {
		if !strings.Contains(joined, want) {
			t.Errorf("modal body missing %q", want)
		}
	}
	for _, l := range m.Lines() {
		if len(l) > modalWrap {
			t.Errorf("line longer than %d: %q", modalWrap, l)
		}
	}

	restore, ok := m.Close()
	if !ok || restore != 7 || m.IsOpen() {
		t.Fatalf("close = %d, %v", restore, ok)
	}
	if _, ok := m.Close(); ok {
		t.Fatal("second close reported an open modal")
	}
}

func TestModalFocusTrap(t *testing.T) {
	var m Modal
	m.OpenProject("flight-price", 0) // one link + Close
	if m.Focused() != Projects()[0].GitHubURL {
		t.Fatalf("focused %q", m.Focused())
	}
	m.Tab(false)
	if m.Focused() != "Close" {
		t.Fatalf("focused %q", m.Focused())
	}
	m.Tab(false)
	if m.FocusIndex() != 0 {
		t.Fatal("tab did not wrap to the first item")
	}
	m.Tab(true)
	if m.Focused() != "Close" {
		t.Fatal("shift-tab did not wrap to the last item")
	}

	m.OpenProject("power-management", 0) // no links
	if len(m.Items()) != 1 || m.Focused() != "Close" {
		t.Fatalf("items %v", m.Items())
	}
}

func TestSkillAndCertificationModals(t *testing.T) {
	var m Modal
	if !m.OpenSkill("python", 1) || !strings.Contains(strings.Join(m.Lines(), "\n"), "Proficiency: 95%") {
		t.Fatalf("skill modal: %v", m.Lines())
	}
	if !m.OpenCertification("google", 1) || m.Kind() != ModalCertification {
		t.Fatal("certification modal")
	}
	if len(m.Items()) != 1 {
		t.Fatalf("certification without url has items %v", m.Items())
	}
}

func TestFocus(t *testing.T) {
	f := Focus{N: 3}
	f.Step(-1)
	if f.Index != 0 {
		t.Fatalf("step below zero: %d", f.Index)
	}
	f.Step(5)
	if f.Index != 2 {
		t.Fatalf("step past end: %d", f.Index)
	}
	f.Cycle(1)
	if f.Index != 0 {
		t.Fatalf("cycle: %d", f.Index)
	}
	f.Cycle(-4)
	if f.Index != 2 {
		t.Fatalf("cycle back: %d", f.Index)
	}
	empty := Focus{}
	empty.Cycle(1)
	empty.Step(1)
	if empty.Index != 0 {
		t.Fatal("empty focus moved")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("  one two three four", 10)
	want := []string{"  one two", "  three", "  four"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("wrap = %q", got)
	}
	if wrap("   ", 10) != nil {
		t.Fatal("blank input should wrap to nothing")
	}
}

func TestContactValidate(t *testing.T) {
	tests := []struct {
		name, email, msg string
		want             []error
	}{
		{"", "", "", []error{ErrNameRequired, ErrEmailRequired, ErrMessageRequired}},
		{"Ann", "ann", "hi", []error{ErrEmailInvalid}},
		{"Ann", "Ann <ann@example.com>", "hi", []error{ErrEmailInvalid}},
		{"Ann", "ann@localhost", "hi", []error{ErrEmailInvalid}},
		{"Ann", "ann@example.com", "  ", []error{ErrMessageRequired}},
		{"Ann", "ann@example.com", "hi", nil},
	}
	for _, tt := range tests {
		f := NewContactForm(nil)
		f.Set(FieldName, tt.name)
		f.Set(FieldEmail, tt.email)
		f.Set(FieldMessage, tt.msg)
		err := f.Validate()
		if tt.want == nil {
			if err != nil {
				t.Errorf("%+v: unexpected %v", tt, err)
			}
			continue
		}
		for _, w := range tt.want {
			if !errors.Is(err, w) {
				t.Errorf("%+v: error %v does not include %v", tt, err, w)
			}
		}
	}
}

func TestContactSubmit(t *testing.T) {
	f := NewContactForm(rand.New(rand.NewSource(1)))
	f.Type(FieldName, []rune("Ann"))
	f.Type(FieldEmail, []rune("ann@example.comx"))
	f.Backspace(FieldEmail)
	f.Type(FieldMessage, []rune("Hello"))

	now := time.Unix(0, 0)
	if err := f.Submit(now); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := f.Submit(now); !errors.Is(err, ErrSubmitPending) {
		t.Fatalf("second submit: %v", err)
	}
	if done, _ := f.Poll(now.Add(500 * time.Millisecond)); done {
		t.Fatal("finished before latency elapsed")
	}
	done, err := f.Poll(now.Add(time.Second))
	if !done {
		t.Fatal("not finished after latency")
	}
	if err == nil && f.Value(FieldName) != "" {
		t.Fatal("successful send did not reset the form")
	}
	if err != nil && !errors.Is(err, ErrSubmitFailed) {
		t.Fatalf("unexpected error %v", err)
	}
	if f.Pending() {
		t.Fatal("still pending")
	}
}

func TestContactSubmitSuccessRate(t *testing.T) {
	f := NewContactForm(rand.New(rand.NewSource(9)))
	ok := 0
	now := time.Unix(0, 0)
	for i := 0; i < 1000; i++ {
		f.Set(FieldName, "Ann")
		f.Set(FieldEmail, "ann@example.com")
		f.Set(FieldMessage, "hi")
		if err := f.Submit(now); err != nil {
			t.Fatal(err)
		}
		now = now.Add(time.Second)
		if _, err := f.Poll(now); err == nil {
			ok++
		}
	}
	if ok < 850 || ok > 950 {
		t.Fatalf("successes = %d of 1000", ok)
	}
}

func TestNotifier(t *testing.T) {
	var n Notifier
	n.Push("sent", Success)
	if got := n.Active()[0].Offset(); got != 1 {
		t.Fatalf("new notification offset %v", got)
	}
	n.Advance(250 * time.Millisecond)
	if got := n.Active()[0].Offset(); got != 0.5 {
		t.Fatalf("sliding offset %v", got)
	}
	n.Advance(time.Second)
	if got := n.Active()[0].Offset(); got != 0 {
		t.Fatalf("shown offset %v", got)
	}
	n.Advance(5 * time.Second)
	if len(n.Active()) != 0 {
		t.Fatalf("notification not removed: %+v", n.Active())
	}
}

func TestLiveRegion(t *testing.T) {
	var l LiveRegion
	if !l.Announce("Entered Projects section") {
		t.Fatal("first announcement dropped")
	}
	if l.Announce("Entered Projects section") {
		t.Fatal("repeat announced")
	}
	if l.Text() != "Entered Projects section" {
		t.Fatalf("text %q", l.Text())
	}
}
