package xmltv

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const exampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<tv date="20250529" source-info-name="epg.pw">
  <channel id="403793">
    <display-name>ESPN</display-name>
    <icon src="http://example.com/espn.png" width="200" height="200"/>
  </channel>
  <programme start="20250529000000 +0000" stop="20250529003000 +0000" channel="403793">
    <title lang="en">Live: SportsCenter</title>
    <desc lang="en">Comprehensive sports coverage.</desc>
    <category lang="en">Sports</category>
  </programme>
  <programme start="20250529003000 +0000" stop="20250529013000 +0000" channel="403793">
    <title lang="en">NFL Live</title>
  </programme>
</tv>`

func TestDecode(t *testing.T) {
	tv, err := Decode(strings.NewReader(exampleDocument))
	if err != nil {
		t.Fatal(err)
	}

	if tv.Date != "20250529" {
		t.Errorf("expected tv date 20250529, got %q", tv.Date)
	}

	ch := Channel{
		ID: "403793",
		DisplayNames: []CommonElement{
			{Value: "ESPN"},
		},
		Icons: []Icon{
			{Source: "http://example.com/espn.png", Width: 200, Height: 200},
		},
	}
	got := tv.Channels[0]
	got.XMLName.Local = ""
	got.XMLName.Space = ""
	if !reflect.DeepEqual(ch, got) {
		t.Errorf("\texpected: %# v\n\t\tactual:   %# v\n", pretty.Formatter(ch), pretty.Formatter(got))
	}

	if len(tv.Programmes) != 2 {
		t.Fatalf("expected 2 programmes, got %d", len(tv.Programmes))
	}

	pr := tv.Programmes[0]
	if pr.Start != "20250529000000 +0000" {
		t.Errorf("unexpected start attribute: %q", pr.Start)
	}
	if pr.Stop != "20250529003000 +0000" {
		t.Errorf("unexpected stop attribute: %q", pr.Stop)
	}
	if pr.Title() != "Live: SportsCenter" {
		t.Errorf("unexpected title: %q", pr.Title())
	}
	if pr.Description() != "Comprehensive sports coverage." {
		t.Errorf("unexpected description: %q", pr.Description())
	}
	if pr.Channel != "403793" {
		t.Errorf("unexpected channel attribute: %q", pr.Channel)
	}
}

func TestDecodeAlternateRoot(t *testing.T) {
	doc := `<epg><programme start="20250529120000 +0000" stop="20250529130000 +0000" channel="1"><title>Midday Update</title></programme></epg>`

	tv, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	if len(tv.Programmes) != 1 {
		t.Fatalf("expected 1 programme, got %d", len(tv.Programmes))
	}
	if tv.Programmes[0].Title() != "Midday Update" {
		t.Errorf("unexpected title: %q", tv.Programmes[0].Title())
	}
}

func TestDecodeEmptyProgramme(t *testing.T) {
	tv, err := Decode(strings.NewReader(`<tv></tv>`))
	if err != nil {
		t.Fatal(err)
	}
	if len(tv.Programmes) != 0 {
		t.Errorf("expected no programmes, got %d", len(tv.Programmes))
	}

	empty := &Programme{}
	if empty.Title() != "" || empty.Description() != "" {
		t.Error("empty programme should have empty title and description")
	}
}
