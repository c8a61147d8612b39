package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls   []string
	lastTag string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) ShowNotes(ctx context.Context) error   { return f.record("notes") }
func (f *fakeExec) AddNote(ctx context.Context) error     { return f.record("addnote") }
func (f *fakeExec) DeleteNote(ctx context.Context) error  { return f.record("delnote") }
func (f *fakeExec) TogglePin(ctx context.Context) error   { return f.record("pinnote") }
func (f *fakeExec) SearchNotes(ctx context.Context) error { return f.record("search") }
func (f *fakeExec) ShowTags(ctx context.Context) error    { return f.record("tags") }
func (f *fakeExec) SelectTag(ctx context.Context, tag string) error {
	f.lastTag = tag
	return f.record("tag")
}
func (f *fakeExec) ShareNote(ctx context.Context) error        { return f.record("sharenote") }
func (f *fakeExec) ShowPayments(ctx context.Context) error     { return f.record("payments") }
func (f *fakeExec) AddPayment(ctx context.Context) error       { return f.record("addpayment") }
func (f *fakeExec) MarkPaid(ctx context.Context) error         { return f.record("pay") }
func (f *fakeExec) ShowUpcoming(ctx context.Context) error     { return f.record("upcoming") }
func (f *fakeExec) AttachReceipt(ctx context.Context) error    { return f.record("receipt") }
func (f *fakeExec) SharePayment(ctx context.Context) error     { return f.record("sharepay") }
func (f *fakeExec) ShowChecklist(ctx context.Context) error    { return f.record("checklist") }
func (f *fakeExec) AddChecklistItem(ctx context.Context) error { return f.record("additem") }
func (f *fakeExec) ToggleChecklistItem(ctx context.Context) error {
	return f.record("toggleitem")
}
func (f *fakeExec) ShowCalendar(ctx context.Context) error { return f.record("calendar") }
func (f *fakeExec) SyncCalendar(ctx context.Context) error { return f.record("synccal") }
func (f *fakeExec) ShowSettings(ctx context.Context) error { return f.record("settings") }
func (f *fakeExec) ToggleTheme(ctx context.Context) error  { return f.record("theme") }
func (f *fakeExec) SetPIN(ctx context.Context) error       { return f.record("setpin") }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func runScript(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
}

func TestRunREPLDispatch(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runScript(t, exec,
		"help",
		"login",
		"help",
		"notes",
		"addnote",
		"payments",
		"upcoming",
		"theme",
		"nonsense",
		"exit",
	)

	require.Equal(t, []string{"login", "notes", "addnote", "payments", "upcoming", "theme"}, exec.calls)
}

func TestRunREPLShortForms(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runScript(t, exec, "n", "p", "quit")

	require.Equal(t, []string{"notes", "payments"}, exec.calls)
}

func TestRunREPLTagArgument(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runScript(t, exec, "tag İş", "tag", "exit")

	// the second bare "tag" clears the filter
	require.Equal(t, []string{"tag", "tag"}, exec.calls)
	require.Equal(t, "", exec.lastTag)
}

func TestRunREPLEndsOnEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runScript(t, exec, "login")

	require.Equal(t, []string{"login"}, exec.calls)
}

func TestRunREPLSkipsBlankLines(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runScript(t, exec, "", "   ", "login", "exit")

	require.Equal(t, []string{"login"}, exec.calls)
}
