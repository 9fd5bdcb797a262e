// Package scrape extracts headline/subtitle pairs from a news listing page.
package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"

	"titulares/internal/fetch"
)

// Record is one extracted title/subtitle/timestamp tuple. Subtitle may be
// empty when the page carries fewer decks than headlines.
type Record struct {
	Title       string
	Subtitle    string
	ExtractedAt time.Time
}

// Scraper fetches a listing page and extracts records from it.
type Scraper struct {
	Client           *fetch.Client
	URL              string
	TitleSelector    string
	SubtitleSelector string
}

// Extract fetches the configured page and returns its records in markup
// order. Fetch and parse failures surface as errors; callers degrade to an
// empty result rather than aborting.
func (s *Scraper) Extract(ctx context.Context) ([]Record, error) {
	body, err := s.Client.Get(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	records, err := FromHTML(body, time.Now(), s.TitleSelector, s.SubtitleSelector)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.URL, err)
	}
	return records, nil
}

// FromHTML builds records from a page body. Every non-empty trimmed title
// yields a record stamped with now; subtitle i is then assigned to record i
// while in range, excess subtitles are dropped.
//
// The pairing is positional, not structural: it assumes the page lists
// headline and deck elements in the same document order. If the markup
// interleaves them differently the associations are silently wrong. This is
// a documented best-effort policy, not a join.
func FromHTML(body []byte, now time.Time, titleSel, subtitleSel string) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var records []Record
	doc.Find(titleSel).Each(func(_ int, sel *goquery.Selection) {
		title := cleanText(sel.Text())
		if title == "" {
			return
		}
		records = append(records, Record{Title: title, ExtractedAt: now})
	})

	doc.Find(subtitleSel).Each(func(i int, sel *goquery.Selection) {
		if i >= len(records) {
			return
		}
		records[i].Subtitle = cleanText(sel.Text())
	})

	return records, nil
}

// cleanText trims whitespace and NFC-normalizes scraped text so that
// accented characters compare and count consistently downstream.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
