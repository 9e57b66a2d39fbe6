package smartstr

import (
	"strings"
	"testing"
	"testing/quick"
)

func TestQuickAppendMatchesJoin(t *testing.T) {
	f := func(parts []string) bool {
		var s LazyString
		defer s.Release()
		for _, p := range parts {
			if err := s.PushString(p); err != nil {
				return false
			}
		}
		if s.String() != strings.Join(parts, "") {
			return false
		}
		return s.CheckInvariants() == nil
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickCompareMatchesStrings(t *testing.T) {
	f := func(a, b string) bool {
		sa := MustFromString[Compact](a)
		sb := MustFromString[Compact](b)
		defer sa.Release()
		defer sb.Release()
		return Compare(&sa, &sb) == strings.Compare(a, b) &&
			Equal(&sa, &sb) == (a == b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickRoundTrip(t *testing.T) {
	f := func(in string) bool {
		s := MustFromString[LazyCompact](in)
		out := s.String()
		s.Release()
		return out == in
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickSplitOffPreservesContent(t *testing.T) {
	f := func(in string, at uint8) bool {
		s := MustFromString[Compact](in)
		defer s.Release()
		i := int(at) % (len(in) + 1)
		tail, err := s.SplitOff(i)
		if err != nil {
			// Only a mid-rune offset may fail, and it must not mutate.
			return err == ErrNotCharBoundary && s.String() == in
		}
		defer tail.Release()
		return s.String()+tail.String() == in
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
