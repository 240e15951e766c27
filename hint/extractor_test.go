package hint

import (
	"reflect"
	"testing"
)

func TestExtractAlternatingGroups(t *testing.T) {
	regex := `Hoist the (mizzen mast|main brace), ye (landlubbers|scurvy dogs)!`
	got := Extract(regex)
	want := []string{"Hoist the ", ", ye ", "!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract(%q) = %#v, want %#v", regex, got, want)
	}
}

func TestExtractNestedWildcardGroup(t *testing.T) {
	regex := `Squark!( Pieces of (.+)!)`
	got := Extract(regex)
	want := []string{"Squark!", " Pieces of ", "!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract(%q) = %#v, want %#v", regex, got, want)
	}
}

func TestExtractTopLevelAlternationYieldsNothing(t *testing.T) {
	got := Extract(`rum|grog`)
	if got != nil {
		t.Fatalf("Extract(rum|grog) = %#v, want nil", got)
	}
}

func TestExtractQuestionMarkDropsPrecedingByte(t *testing.T) {
	got := Extract(`ab?c`)
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractStarDropsPrecedingByte(t *testing.T) {
	got := Extract(`ab*c`)
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractBracesDropPrecedingByte(t *testing.T) {
	got := Extract(`ab{2,4}c`)
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractPlusKeepsPrecedingByte(t *testing.T) {
	got := Extract(`ab+c`)
	want := []string{"ab", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractCharacterClassContributesNothing(t *testing.T) {
	got := Extract(`ab[xyz]cd`)
	want := []string{"ab", "cd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractEscapedBracketInsideClassDoesNotClose(t *testing.T) {
	got := Extract(`a[\]x]b`)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractEscapedParenInsideGroupDoesNotClose(t *testing.T) {
	got := Extract(`(a\)b)`)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractBackslashEscapeContributesNothing(t *testing.T) {
	got := Extract(`a\.b`)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractShorthandClassBreaksRun(t *testing.T) {
	got := Extract(`a\db`)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractNamedGroupParticipates(t *testing.T) {
	got := Extract(`foo(?P<body>bar)baz`)
	want := []string{"foo", "bar", "baz"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractNonCapturingGroupIsIgnored(t *testing.T) {
	got := Extract(`foo(?:bar)baz`)
	want := []string{"foo", "baz"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractLookaheadIsIgnored(t *testing.T) {
	got := Extract(`foo(?=bar)baz`)
	want := []string{"foo", "baz"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractOptionalGroupDropsEntireGroup(t *testing.T) {
	got := Extract(`a(bcd)?e`)
	want := []string{"a", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractNoLiteralContent(t *testing.T) {
	got := Extract(`\d+`)
	if got != nil {
		t.Fatalf("got %#v, want nil", got)
	}
}

func TestExtractTruncatesToMaxHintLength(t *testing.T) {
	got := ExtractWithConfig("aaaaaaaaaa", Config{MaxHintLength: 3})
	want := []string{"aaa"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestShortlistPicksLongest(t *testing.T) {
	got := Shortlist([]string{"ab", "abcdef", "xyz"})
	want := []string{"abcdef"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestShortlistTiesGoToLast(t *testing.T) {
	got := Shortlist([]string{"abc", "xyz"})
	want := []string{"xyz"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestShortlistEmpty(t *testing.T) {
	if got := Shortlist(nil); got != nil {
		t.Fatalf("got %#v, want nil", got)
	}
}
