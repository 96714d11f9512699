package editor

import (
	"errors"
	"os"
	"testing"
)

func newTestOpener(env map[string]string, installed ...string) *Opener {
	return &Opener{
		getenv: func(k string) string { return env[k] },
		lookup: func(name string) (string, error) {
			for _, i := range installed {
				if i == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", errors.New("not found")
		},
	}
}

func TestFindEditor(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		installed []string
		want      string
	}{
		{name: "visual wins", env: map[string]string{"VISUAL": "code --wait", "EDITOR": "vim"}, want: "code --wait"},
		{name: "editor", env: map[string]string{"EDITOR": "nano"}, want: "nano"},
		{name: "fallback", installed: []string{"vi"}, want: "/usr/bin/vi"},
		{name: "none", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOpener(tt.env, tt.installed...)
			if got := o.findEditor(); got != tt.want {
				t.Errorf("findEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrepare_RoundTrip(t *testing.T) {
	o := newTestOpener(map[string]string{"EDITOR": "true --flag"})

	edit, err := o.Prepare("hello")
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	args := edit.Cmd().Args
	if len(args) != 3 || args[0] != "true" || args[1] != "--flag" {
		t.Fatalf("unexpected args %v", args)
	}

	path := args[2]
	if err := os.WriteFile(path, []byte("edited\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := edit.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if got != "edited" {
		t.Errorf("Result() = %q, want %q", got, "edited")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("scratch file not removed")
	}
}

func TestPrepare_NoEditor(t *testing.T) {
	o := newTestOpener(nil)
	if _, err := o.Prepare("x"); err == nil {
		t.Error("expected error when no editor is available")
	}
}
