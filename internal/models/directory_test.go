package models

import "testing"

func TestDirectoryReturnsCopies(t *testing.T) {
	first := Directory()
	first[0].Programs = append(first[0].Programs, Program{ID: "x"})
	first[0].Name = "mutated"

	second := Directory()
	if second[0].Name == "mutated" {
		t.Error("Directory() must hand out copies, not shared entries")
	}
	if len(second[0].Programs) != 0 {
		t.Error("program lists must not leak between Directory() calls")
	}
}

func TestDirectoryChannel(t *testing.T) {
	channel, found := DirectoryChannel(6)
	if !found {
		t.Fatal("expected channel 6 to exist")
	}
	if channel.Name != "ESPN" {
		t.Errorf("expected channel 6 to be ESPN, got %s", channel.Name)
	}
	if channel.EPGChannelID == nil || *channel.EPGChannelID != 403793 {
		t.Error("expected ESPN to carry its guide provider id")
	}

	if _, found := DirectoryChannel(999); found {
		t.Error("expected channel 999 to not exist")
	}
}

func TestChannelsByCategory(t *testing.T) {
	sports := ChannelsByCategory("Sports")
	if len(sports) != 4 {
		t.Fatalf("expected 4 sports channels, got %d", len(sports))
	}
	for _, channel := range sports {
		switch channel.Name {
		case "ESPN", "ESPN2", "FS1", "NFL Network":
		default:
			t.Errorf("unexpected channel %s in Sports category", channel.Name)
		}
	}

	movies := ChannelsByCategory("Movies")
	if len(movies) != 6 {
		t.Errorf("expected 6 movie channels, got %d", len(movies))
	}
}

func TestChannelsByCategoryUnknownFallsBack(t *testing.T) {
	all := ChannelsByCategory("Cooking With Gas")
	if len(all) != DirectorySize() {
		t.Errorf("unknown category should return the full lineup, got %d channels", len(all))
	}
}

func TestDirectoryChannelIDsUnique(t *testing.T) {
	seen := make(map[int]string)
	for _, channel := range Directory() {
		if other, dup := seen[channel.ID]; dup {
			t.Errorf("channel id %d used by both %s and %s", channel.ID, other, channel.Name)
		}
		seen[channel.ID] = channel.Name
	}
}
