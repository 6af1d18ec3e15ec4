package utils

import "testing"

func TestStripTags(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"<p>A detective drama.</p>", "A detective drama."},
		{"<p><b>Bold</b> and <i>italic</i> text</p>", "Bold and italic text"},
		{"no markup here", "no markup here"},
		{"", ""},
		{" <p> padded </p> ", "padded"},
	}

	for _, c := range cases {
		if got := StripTags(c.input); got != c.expected {
			t.Errorf("StripTags(%q) = %q, expected %q", c.input, got, c.expected)
		}
	}
}

func TestStableBucketIsStable(t *testing.T) {
	first := StableBucket("Some Obscure Network", 30)
	for i := 0; i < 10; i++ {
		if got := StableBucket("Some Obscure Network", 30); got != first {
			t.Fatalf("bucket changed between calls: %d != %d", got, first)
		}
	}
	if first < 1 || first > 30 {
		t.Errorf("bucket %d out of range [1, 30]", first)
	}
}

func TestStableBucketCaseInsensitive(t *testing.T) {
	if StableBucket("The CW", 30) != StableBucket("the cw", 30) {
		t.Error("bucket should be case-insensitive")
	}
}

func TestStableBucketDegenerate(t *testing.T) {
	if got := StableBucket("anything", 0); got != 1 {
		t.Errorf("expected bucket 1 for zero channels, got %d", got)
	}
}
