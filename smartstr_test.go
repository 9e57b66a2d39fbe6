package smartstr

import (
	"strings"
	"testing"
)

const overInline = "this string is longer than twenty-three bytes"

func mustCompact(t *testing.T, str string) CompactString {
	t.Helper()
	s, err := FromString[Compact](str)
	if err != nil {
		t.Fatalf("FromString(%q): %v", str, err)
	}
	return s
}

func mustLazy(t *testing.T, str string) LazyString {
	t.Helper()
	s, err := FromString[LazyCompact](str)
	if err != nil {
		t.Fatalf("FromString(%q): %v", str, err)
	}
	return s
}

func TestZeroValue(t *testing.T) {
	var s CompactString
	if !s.IsEmpty() {
		t.Error("zero value not empty")
	}
	if !s.IsInline() {
		t.Error("zero value not inline")
	}
	if got := s.Len(); got != 0 {
		t.Errorf("Len = %d, want 0", got)
	}
	if got := s.Capacity(); got != MaxInline {
		t.Errorf("Capacity = %d, want %d", got, MaxInline)
	}
	if err := s.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		inline bool
	}{
		{"empty", "", true},
		{"short", "hello", true},
		{"exactly max", strings.Repeat("x", MaxInline), true},
		{"one over max", strings.Repeat("x", MaxInline+1), false},
		{"long", overInline, false},
		{"multibyte short", "héllo wörld", true},
		{"multibyte long", strings.Repeat("é", 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustCompact(t, tt.in)
			defer s.Release()
			if got := s.IsInline(); got != tt.inline {
				t.Errorf("IsInline = %v, want %v", got, tt.inline)
			}
			if got := s.String(); got != tt.in {
				t.Errorf("String = %q, want %q", got, tt.in)
			}
			if got := s.Len(); got != len(tt.in) {
				t.Errorf("Len = %d, want %d", got, len(tt.in))
			}
			if err := s.CheckInvariants(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestFromStringInvalidUTF8(t *testing.T) {
	if _, err := FromString[Compact]("ab\xffcd"); err != ErrInvalidUTF8 {
		t.Errorf("err = %v, want ErrInvalidUTF8", err)
	}
}

func TestMustFromStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid UTF-8")
		}
	}()
	MustFromString[Compact]("\xff")
}

func TestWithCapacity(t *testing.T) {
	t.Run("small stays inline", func(t *testing.T) {
		s := WithCapacity[Compact](10)
		if !s.IsInline() {
			t.Error("expected inline")
		}
		if got := s.Capacity(); got != MaxInline {
			t.Errorf("Capacity = %d, want %d", got, MaxInline)
		}
	})
	t.Run("large pre-promotes", func(t *testing.T) {
		s := WithCapacity[Compact](100)
		defer s.Release()
		if s.IsInline() {
			t.Error("expected boxed")
		}
		if got := s.Capacity(); got < 100 {
			t.Errorf("Capacity = %d, want >= 100", got)
		}
		if got := s.Len(); got != 0 {
			t.Errorf("Len = %d, want 0", got)
		}
	})
}

func TestPromotionOnGrowth(t *testing.T) {
	s := mustCompact(t, "hello")
	defer s.Release()
	if err := s.PushString(" world world world!!"); err != nil {
		t.Fatal(err)
	}
	if got := s.Len(); got != 25 {
		t.Fatalf("Len = %d, want 25", got)
	}
	if s.IsInline() {
		t.Error("expected promotion past the inline limit")
	}
	if got := s.String(); got != "hello world world world!!" {
		t.Errorf("String = %q", got)
	}
	if err := s.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestTruncateDemotion(t *testing.T) {
	t.Run("compact re-inlines", func(t *testing.T) {
		s := mustCompact(t, "hello world world world!!")
		defer s.Release()
		if err := s.Truncate(5); err != nil {
			t.Fatal(err)
		}
		if !s.IsInline() {
			t.Error("expected demotion back inline")
		}
		if got := s.String(); got != "hello" {
			t.Errorf("String = %q, want %q", got, "hello")
		}
	})
	t.Run("lazy stays boxed", func(t *testing.T) {
		s := mustLazy(t, "hello world world world!!")
		defer s.Release()
		capBefore := s.Capacity()
		if err := s.Truncate(5); err != nil {
			t.Fatal(err)
		}
		if s.IsInline() {
			t.Error("expected string to stay boxed")
		}
		if got := s.Capacity(); got != capBefore {
			t.Errorf("Capacity = %d, want unchanged %d", got, capBefore)
		}
		if got := s.String(); got != "hello" {
			t.Errorf("String = %q, want %q", got, "hello")
		}
	})
}

func TestReserve(t *testing.T) {
	var s LazyString
	s.Reserve(100)
	defer s.Release()
	if s.IsInline() {
		t.Error("expected promotion")
	}
	if got := s.Capacity(); got < 100 {
		t.Errorf("Capacity = %d, want >= 100", got)
	}
	if !s.IsEmpty() {
		t.Error("Reserve must not change contents")
	}

	capBefore := s.Capacity()
	s.Reserve(10)
	if got := s.Capacity(); got != capBefore {
		t.Errorf("Capacity = %d after smaller Reserve, want %d", got, capBefore)
	}
}

func TestShrinkToFit(t *testing.T) {
	t.Run("compact demotes short content", func(t *testing.T) {
		s := mustCompact(t, overInline)
		defer s.Release()
		if err := s.Truncate(0); err != nil {
			t.Fatal(err)
		}
		s.ShrinkToFit()
		if !s.IsInline() {
			t.Error("expected inline after shrink")
		}
	})
	t.Run("lazy shrinks in place", func(t *testing.T) {
		s := mustLazy(t, overInline)
		defer s.Release()
		s.Reserve(500)
		s.ShrinkToFit()
		if s.IsInline() {
			t.Error("lazy must not re-inline")
		}
		if got := s.Capacity(); got != len(overInline) {
			t.Errorf("Capacity = %d, want %d", got, len(overInline))
		}
		if got := s.String(); got != overInline {
			t.Errorf("contents changed: %q", got)
		}
	})
	t.Run("lazy at length zero keeps a live buffer", func(t *testing.T) {
		s := mustLazy(t, overInline)
		defer s.Release()
		s.Clear()
		s.ShrinkToFit()
		if s.IsInline() {
			t.Error("lazy must not re-inline")
		}
		if got := s.Capacity(); got < minShrinkCapacity {
			t.Errorf("Capacity = %d, want >= %d", got, minShrinkCapacity)
		}
		if err := s.CheckInvariants(); err != nil {
			t.Error(err)
		}
	})
	t.Run("idempotent", func(t *testing.T) {
		s := mustLazy(t, overInline)
		defer s.Release()
		s.ShrinkToFit()
		capAfter := s.Capacity()
		s.ShrinkToFit()
		if got := s.Capacity(); got != capAfter {
			t.Errorf("second ShrinkToFit changed capacity %d -> %d", capAfter, got)
		}
	})
	t.Run("inline no-op", func(t *testing.T) {
		s := mustCompact(t, "short")
		s.ShrinkToFit()
		if got := s.String(); got != "short" {
			t.Errorf("String = %q", got)
		}
	})
}

func TestClear(t *testing.T) {
	t.Run("compact releases", func(t *testing.T) {
		s := mustCompact(t, overInline)
		s.Clear()
		if !s.IsInline() {
			t.Error("expected inline after Clear")
		}
		if !s.IsEmpty() {
			t.Error("expected empty")
		}
	})
	t.Run("lazy keeps capacity", func(t *testing.T) {
		s := mustLazy(t, overInline)
		defer s.Release()
		capBefore := s.Capacity()
		s.Clear()
		if s.IsInline() {
			t.Error("expected string to stay boxed")
		}
		if !s.IsEmpty() {
			t.Error("expected empty")
		}
		if got := s.Capacity(); got != capBefore {
			t.Errorf("Capacity = %d, want %d", got, capBefore)
		}
	})
}

func TestRelease(t *testing.T) {
	s := mustLazy(t, overInline)
	s.Release()
	if !s.IsInline() || !s.IsEmpty() {
		t.Error("expected empty inline after Release")
	}
	// Still usable afterwards.
	if err := s.PushString("again"); err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got != "again" {
		t.Errorf("String = %q", got)
	}
	// Release on an inline string is a no-op.
	s.Release()
}

func TestClone(t *testing.T) {
	t.Run("boxed clone is independent", func(t *testing.T) {
		s := mustLazy(t, overInline)
		defer s.Release()
		c := s.Clone()
		defer c.Release()
		if err := s.PushString(" more"); err != nil {
			t.Fatal(err)
		}
		if got := c.String(); got != overInline {
			t.Errorf("clone changed with source: %q", got)
		}
		if got := c.Capacity(); got < len(overInline) {
			t.Errorf("clone capacity %d too small", got)
		}
	})
	t.Run("inline clone", func(t *testing.T) {
		s := mustCompact(t, "inline")
		c := s.Clone()
		if got := c.String(); got != "inline" {
			t.Errorf("String = %q", got)
		}
	})
}

func TestAt(t *testing.T) {
	s := mustCompact(t, "aé魚")
	tests := []struct {
		name string
		i    int
		r    rune
		err  error
	}{
		{"ascii", 0, 'a', nil},
		{"two byte", 1, 'é', nil},
		{"three byte", 3, '魚', nil},
		{"continuation byte", 2, 0, ErrNotCharBoundary},
		{"past end", 6, 0, ErrOffsetOutOfRange},
		{"negative", -1, 0, ErrOffsetOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := s.At(tt.i)
			if err != tt.err {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if r != tt.r {
				t.Errorf("rune = %q, want %q", r, tt.r)
			}
		})
	}
}

func TestAmortizedGrowth(t *testing.T) {
	var s LazyString
	defer s.Release()
	reallocs := 0
	lastCap := s.Capacity()
	for i := 0; i < 1<<16; i++ {
		if err := s.Push('x'); err != nil {
			t.Fatal(err)
		}
		if c := s.Capacity(); c != lastCap {
			reallocs++
			lastCap = c
		}
	}
	if got := s.Len(); got != 1<<16 {
		t.Fatalf("Len = %d", got)
	}
	if reallocs > 20 {
		t.Errorf("capacity changed %d times over 65536 appends, want logarithmic growth", reallocs)
	}
}
