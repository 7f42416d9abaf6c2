package posixpath_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Jumpaku/go-posixpath"
)

func TestWin32Conversion(t *testing.T) {
	cases := []struct {
		posix string
		win32 string
	}{
		{"foobar", `foobar`},
		{"foo/bar", `foo\bar`},
		{"//c:/foo/bar", `c:\foo\bar`},
		{"//c:/", `c:\`},
		{"//c:", `c:`},
		{"//net.name.lan/foo/bar", `\\net.name.lan\foo\bar`},
		{"/foo/bar", `\foo\bar`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.posix, func(t *testing.T) {
			if got := posixpath.ToWin32(posixpath.New(c.posix)); got != c.win32 {
				t.Fatalf("ToWin32(%q) = %q, want %q", c.posix, got, c.win32)
			}
			if got := posixpath.FromWin32(c.win32).String(); got != c.posix {
				t.Fatalf("FromWin32(%q) = %q, want %q", c.win32, got, c.posix)
			}
		})
	}
}

func TestSystem_Native(t *testing.T) {
	p := posixpath.New("//c:/foo/bar")
	if got := posixpath.SystemPOSIX.ToNative(p); got != "//c:/foo/bar" {
		t.Fatalf("SystemPOSIX.ToNative() = %q, want %q", got, "//c:/foo/bar")
	}
	if got := posixpath.SystemWindows.ToNative(p); got != `c:\foo\bar` {
		t.Fatalf("SystemWindows.ToNative() = %q, want %q", got, `c:\foo\bar`)
	}
	if got := posixpath.SystemPOSIX.FromNative("/foo/bar"); !got.Equal(posixpath.New("/foo/bar")) {
		t.Fatalf("SystemPOSIX.FromNative() = %q, want %q", got, "/foo/bar")
	}
	if got := posixpath.SystemWindows.FromNative(`\foo\bar`); !got.Equal(posixpath.New("/foo/bar")) {
		t.Fatalf("SystemWindows.FromNative() = %q, want %q", got, "/foo/bar")
	}
}

func TestHostSystem(t *testing.T) {
	want := posixpath.SystemPOSIX
	if runtime.GOOS == "windows" {
		want = posixpath.SystemWindows
	}
	if got := posixpath.HostSystem(); got != want {
		t.Fatalf("HostSystem() = %v, want %v", got, want)
	}
	p := posixpath.New("/foo/bar")
	if got := p.Native(); got != want.ToNative(p) {
		t.Fatalf("Native() = %q, want %q", got, want.ToNative(p))
	}
	if got := posixpath.SystemWindows.String(); got != "Windows" {
		t.Fatalf("String() = %q, want %q", got, "Windows")
	}
}

func TestWin32UTF16_RoundTrip(t *testing.T) {
	inputs := []string{"//c:/foo/bar", "//host/share/ファイル.txt", "relative/dir/", ""}
	for _, in := range inputs {
		b, err := posixpath.EncodeWin32UTF16(posixpath.New(in))
		if err != nil {
			t.Fatalf("EncodeWin32UTF16(%q) error = %v", in, err)
		}
		got, err := posixpath.DecodeWin32UTF16(b)
		if err != nil {
			t.Fatalf("DecodeWin32UTF16() error = %v", err)
		}
		if got.String() != in {
			t.Fatalf("round trip of %q = %q", in, got)
		}
	}
}

func TestEncodeWin32UTF16_Layout(t *testing.T) {
	b, err := posixpath.EncodeWin32UTF16(posixpath.New("//c:/a"))
	if err != nil {
		t.Fatalf("EncodeWin32UTF16() error = %v", err)
	}
	want := []byte{'c', 0, ':', 0, '\\', 0, 'a', 0}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Fatalf("EncodeWin32UTF16() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeWin32UTF16_OddLength(t *testing.T) {
	_, err := posixpath.DecodeWin32UTF16([]byte{'a', 0, 'b'})
	if !errors.Is(err, posixpath.ErrInvalidPath) {
		t.Fatalf("DecodeWin32UTF16() error = %v, want ErrInvalidPath", err)
	}
}
