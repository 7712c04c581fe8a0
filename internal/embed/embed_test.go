package embed

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"
)

func TestResolve(t *testing.T) {
	var tests = []struct {
		link string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&modestbranding=1", true},
		{"https://youtu.be/abc123", "https://www.youtube.com/embed/abc123?rel=0&modestbranding=1", true},
		{"https://youtube.com/watch?feature=share&v=abc&t=10", "https://www.youtube.com/embed/abc?rel=0&modestbranding=1", true},
		{"https://m.youtube.com/watch?v=mobile", "https://www.youtube.com/embed/mobile?rel=0&modestbranding=1", true},
		{"https://WWW.YOUTUBE.COM/watch?v=upper", "https://www.youtube.com/embed/upper?rel=0&modestbranding=1", true},
		{"https://www.youtube.com/shorts/sh0rt", "https://www.youtube.com/embed/sh0rt?rel=0&modestbranding=1", true},
		{"https://www.youtube.com/shorts/sh0rt/extra?feature=share", "https://www.youtube.com/embed/sh0rt?rel=0&modestbranding=1", true},
		{"https://www.youtube.com/shorts/x?v=fromquery", "https://www.youtube.com/embed/fromquery?rel=0&modestbranding=1", true},
		{"https://youtu.be/abc123?t=42", "https://www.youtube.com/embed/abc123?rel=0&modestbranding=1", true},
		{"http://youtu.be/xyz", "https://www.youtube.com/embed/xyz?rel=0&modestbranding=1", true},
		{"https://www.youtube.com/watch?v=abc;def", "https://www.youtube.com/embed/abc%3Bdef?rel=0&modestbranding=1", true},
		{"https://www.youtube.com/watch?list=PL1;x&v=abc", "https://www.youtube.com/embed/abc?rel=0&modestbranding=1", true},
		{"https://www.youtube.com/watch?v=abc&v=def", "https://www.youtube.com/embed/abc?rel=0&modestbranding=1", true},
		{"https://www.youtube.com/watch?%76=encodedkey", "https://www.youtube.com/embed/encodedkey?rel=0&modestbranding=1", true},
		{"https://www.youtube.com/watch?v=%zz", "https://www.youtube.com/embed/%25zz?rel=0&modestbranding=1", true},
		{" https://youtu.be/abc ", "https://www.youtube.com/embed/abc?rel=0&modestbranding=1", true},
		{"\thttps://www.youtube.com/watch?v=abc\n", "https://www.youtube.com/embed/abc?rel=0&modestbranding=1", true},
		{"   ", "", false},
		{"https://example.com/video", "", false},
		{"https://example.com/watch?v=abc", "", false},
		{"https://www.youtube.com/watch?v=", "", false},
		{"https://www.youtube.com/watch", "", false},
		{"https://www.youtube.com/playlist?list=PL123", "", false},
		{"https://www.youtube.com/shorts/", "", false},
		{"https://youtu.be/", "", false},
		{"https://youtu.be", "", false},
		{"youtube.com/watch?v=abc", "", false},
		{"not a url", "", false},
		{"", "", false},
		{"://missing-scheme", "", false},
		{"https://www.youtube.com/watch?v=a\x7f", "", false},
		{"mailto:someone@youtube.com", "", false},
	}

	for _, tt := range tests {
		got, ok := Resolve(tt.link)
		if ok != tt.ok {
			t.Errorf("Resolve(%q) ok = %v, want %v", tt.link, ok, tt.ok)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}
}

func TestVideoID(t *testing.T) {
	var tests = []struct {
		link string
		id   string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/abc/def", "abc"},
		{"https://youtu.be/abc/def", "abc/def"},
		{"https://example.com/shorts/abc", ""},
	}

	for _, tt := range tests {
		id, _ := VideoID(tt.link)
		if id != tt.id {
			t.Errorf("VideoID(%q) = %q, want %q", tt.link, id, tt.id)
		}
	}
}

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// videoID generates identifiers shaped like real YouTube ids.
type videoID string

func (videoID) Generate(r *rand.Rand, size int) reflect.Value {
	n := 1 + r.Intn(16)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(idAlphabet[r.Intn(len(idAlphabet))])
	}
	return reflect.ValueOf(videoID(b.String()))
}

func TestResolveLinkShapes(t *testing.T) {
	shapes := map[string]string{
		"watch":  "https://www.youtube.com/watch?v=%s",
		"shorts": "https://www.youtube.com/shorts/%s",
		"short":  "https://youtu.be/%s",
	}
	for name, shape := range shapes {
		shape := shape
		t.Run(name, func(t *testing.T) {
			f := func(id videoID) bool {
				got, ok := Resolve(strings.Replace(shape, "%s", string(id), 1))
				return ok && got == "https://www.youtube.com/embed/"+string(id)+"?rel=0&modestbranding=1"
			}
			if err := quick.Check(f, nil); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestResolveOtherHosts(t *testing.T) {
	f := func(id videoID) bool {
		_, ok := Resolve("https://vimeo.com/watch?v=" + string(id))
		return !ok
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestResolveNeverPanics(t *testing.T) {
	f := func(s string) bool {
		got, ok := Resolve(s)
		return ok == (got != "")
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
