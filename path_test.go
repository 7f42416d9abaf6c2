package posixpath_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Jumpaku/go-posixpath"
	pperrors "github.com/Jumpaku/go-posixpath/errors"
)

func TestNew_EmptyIsNormalNotAbsolute(t *testing.T) {
	p := posixpath.New("")
	if !p.Empty() || !p.IsNormalized() || p.IsAbsolute() || !p.IsRelative() {
		t.Fatalf("New(\"\") = {empty:%v normalized:%v absolute:%v}", p.Empty(), p.IsNormalized(), p.IsAbsolute())
	}
	var zero posixpath.Path
	if !zero.Equal(p) || !zero.IsNormalized() {
		t.Fatalf("zero Path differs from New(\"\")")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"plain", "/foo/bar", false},
		{"empty", "", false},
		{"unicode", "/データ/ファイル", false},
		{"invalid-utf8", "/foo/\xff", true},
		{"nul", "/foo\x00bar", true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			p, err := posixpath.Parse(c.in)
			if c.wantErr {
				if !errors.Is(err, posixpath.ErrInvalidPath) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidPath", c.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", c.in, err)
			}
			if p.String() != c.in {
				t.Fatalf("Parse(%q) = %q", c.in, p)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParse() did not panic on invalid input")
		}
	}()
	posixpath.MustParse("\xff")
}

func TestErrorsReexported(t *testing.T) {
	if posixpath.ErrInvalidPath != pperrors.ErrInvalidPath {
		t.Fatalf("ErrInvalidPath is not the errors package sentinel")
	}
	if posixpath.ErrNotAbsolute != pperrors.ErrNotAbsolute {
		t.Fatalf("ErrNotAbsolute is not the errors package sentinel")
	}
}

func TestPath_CompareAndEqual(t *testing.T) {
	a, b := posixpath.New("/a"), posixpath.New("/b")
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(posixpath.New("/a")) != 0 {
		t.Fatalf("Compare() ordering is wrong")
	}
	n := posixpath.New("/a")
	n.ForceNormalized()
	if !a.Equal(n) {
		t.Fatalf("Equal() depends on hints")
	}
}

func TestPath_ForceAbsoluteAndClear(t *testing.T) {
	p := posixpath.New("relative")
	p.ForceAbsolute()
	if !p.IsAbsolute() {
		t.Fatalf("IsAbsolute() = false after ForceAbsolute")
	}
	p.Clear()
	if !p.Empty() || p.IsAbsolute() {
		t.Fatalf("Clear() left %q (absolute=%v)", p, p.IsAbsolute())
	}
}

func TestPath_TextMarshaling(t *testing.T) {
	type config struct {
		Root  posixpath.Path   `json:"root"`
		Paths []posixpath.Path `json:"paths"`
	}
	in := config{
		Root:  posixpath.New("//c:/work"),
		Paths: []posixpath.Path{posixpath.New("a/b"), posixpath.New("/x/")},
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"root":"//c:/work","paths":["a/b","/x/"]}`; string(b) != want {
		t.Fatalf("json.Marshal() = %s, want %s", b, want)
	}

	var out config
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(in, out, cmp.Comparer(posixpath.Path.Equal)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPath_UnmarshalTextRejectsNUL(t *testing.T) {
	var p posixpath.Path
	if err := p.UnmarshalText([]byte("a\x00b")); !errors.Is(err, posixpath.ErrInvalidPath) {
		t.Fatalf("UnmarshalText() error = %v, want ErrInvalidPath", err)
	}
}
