package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Add(ctx context.Context) error  { f.calls = append(f.calls, "add"); return nil }
func (f *fakeExec) Edit(ctx context.Context) error { f.calls = append(f.calls, "edit"); return nil }
func (f *fakeExec) CancelEdit(ctx context.Context) error {
	f.calls = append(f.calls, "cancel")
	return nil
}
func (f *fakeExec) Delete(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Retry(ctx context.Context) error {
	f.calls = append(f.calls, "retry")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"add",
		"l",
		"edit",
		"cancel",
		"delete",
		"whoami",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, sc, &out)

	want := []string{"login", "add", "list", "edit", "cancel", "delete", "whoami", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls: %+v", exec.calls)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %+v)", i, exec.calls[i], want[i], exec.calls)
		}
	}
	if !strings.Contains(out.String(), "Unknown command: foobar") {
		t.Fatalf("unknown command not reported:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Fatalf("no farewell:\n%s", out.String())
	}
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("list\n"))
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, sc, &out)

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("calls: %+v", exec.calls)
	}
}

func TestRunREPL_HelpDependsOnAuthState(t *testing.T) {
	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("help\nlogin\nhelp\nexit\n"))
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, sc, &out)

	s := out.String()
	if !strings.Contains(s, "register, login, exit") {
		t.Fatalf("logged-out help missing:\n%s", s)
	}
	if !strings.Contains(s, "logout") {
		t.Fatalf("logged-in help missing:\n%s", s)
	}
}
