// Package xmltv provides structures for parsing XMLTV guide data.
//
// The start/stop attributes are kept as raw strings: the guide providers that
// consume this package parse them with the fixed-width rules of their upstream
// feed rather than a single timestamp layout.
package xmltv

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
)

// TV is the root element.
type TV struct {
	XMLName           xml.Name    `xml:"tv"                                 json:"-"`
	Channels          []Channel   `xml:"channel"                            json:"channels"`
	Programmes        []Programme `xml:"programme"                          json:"programmes"`
	Date              string      `xml:"date,attr,omitempty"                json:"date,omitempty"`
	SourceInfoURL     string      `xml:"source-info-url,attr,omitempty"     json:"sourceInfoURL,omitempty"`
	SourceInfoName    string      `xml:"source-info-name,attr,omitempty"    json:"sourceInfoName,omitempty"`
	GeneratorInfoName string      `xml:"generator-info-name,attr,omitempty" json:"generatorInfoName,omitempty"`
}

// Channel details of a channel
type Channel struct {
	XMLName      xml.Name        `xml:"channel"        json:"-"`
	DisplayNames []CommonElement `xml:"display-name"   json:"displayNames"`
	Icons        []Icon          `xml:"icon,omitempty" json:"icons,omitempty"`
	ID           string          `xml:"id,attr"        json:"id,omitempty"`
}

// Programme details of a single programme transmission
type Programme struct {
	XMLName      xml.Name        `xml:"programme"                json:"-"`
	ID           string          `xml:"id,attr,omitempty"        json:"id,omitempty"` // not defined by standard, but often present
	Titles       []CommonElement `xml:"title"                    json:"titles"`
	Descriptions []CommonElement `xml:"desc,omitempty"           json:"descriptions,omitempty"`
	Categories   []CommonElement `xml:"category,omitempty"       json:"categories,omitempty"`
	Icons        []Icon          `xml:"icon,omitempty"           json:"icons,omitempty"`
	Start        string          `xml:"start,attr"               json:"start"`
	Stop         string          `xml:"stop,attr,omitempty"      json:"stop,omitempty"`
	Channel      string          `xml:"channel,attr"             json:"channel"`
}

// CommonElement element structure that is common, i.e. <title lang="en">News</title>
type CommonElement struct {
	Lang  string `xml:"lang,attr,omitempty" json:"lang,omitempty"`
	Value string `xml:",chardata"           json:"value,omitempty"`
}

// Icon associated with the element that contains it
type Icon struct {
	Source string `xml:"src,attr"              json:"source"`
	Width  int    `xml:"width,attr,omitempty"  json:"width,omitempty"`
	Height int    `xml:"height,attr,omitempty" json:"height,omitempty"`
}

// Title returns the first title of the programme, or the empty string.
func (p *Programme) Title() string {
	if len(p.Titles) == 0 {
		return ""
	}
	return p.Titles[0].Value
}

// Description returns the first description of the programme, or the empty string.
func (p *Programme) Description() string {
	if len(p.Descriptions) == 0 {
		return ""
	}
	return p.Descriptions[0].Value
}

// Decode reads an XMLTV document. Guide feeds are not consistent about the
// root element name, so programme elements are collected wherever they appear
// in the document, matching how the feeds are consumed in practice.
func Decode(r io.Reader) (*TV, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	tv := &TV{}

	for {
		token, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return nil, tokenErr
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "programme":
			programme := Programme{}
			if decodeErr := decoder.DecodeElement(&programme, &start); decodeErr != nil {
				return nil, decodeErr
			}
			tv.Programmes = append(tv.Programmes, programme)
		case "channel":
			channel := Channel{}
			if decodeErr := decoder.DecodeElement(&channel, &start); decodeErr != nil {
				return nil, decodeErr
			}
			tv.Channels = append(tv.Channels, channel)
		case "tv":
			for _, attr := range start.Attr {
				switch attr.Name.Local {
				case "date":
					tv.Date = attr.Value
				case "source-info-url":
					tv.SourceInfoURL = attr.Value
				case "source-info-name":
					tv.SourceInfoName = attr.Value
				case "generator-info-name":
					tv.GeneratorInfoName = attr.Value
				}
			}
		}
	}

	return tv, nil
}
