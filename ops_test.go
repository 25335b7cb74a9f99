package golisp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Each testdir/*.lisp file is a program; the matching .out file holds one
// rendered result per top-level form, and a .err file holds the expected
// error message for programs that must fail.
func TestOps(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.lisp")
	if err != nil {
		t.Fatal(err)
	}

	for _, fn := range fns {
		t.Log(fn)
		b, err := os.ReadFile(fn)
		if err != nil {
			t.Fatal(err)
		}

		env := NewEnv(nil)
		vals, err := EvalProgram(env, string(b))
		if err != nil {
			b, err2 := os.ReadFile(fn[:len(fn)-4] + "err")
			if err2 != nil || err.Error() != strings.TrimSpace(string(b)) {
				t.Error(err)
			}
			continue
		}

		var lines []string
		for _, v := range vals {
			lines = append(lines, v.String())
		}
		got := strings.Join(lines, "\n") + "\n"

		b, err = os.ReadFile(fn[:len(fn)-4] + "out")
		if err != nil {
			t.Fatal(err)
		}
		want := string(b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: %s", fn, diff)
		}
	}
}
