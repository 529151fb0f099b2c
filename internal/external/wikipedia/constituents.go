package wikipedia

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseConstituents extracts the symbol column of the constituents table
func parseConstituents(html string, limit int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	// 두번째 wikitable이 구성종목 테이블
	tables := doc.Find("table.wikitable")
	if tables.Length() < 2 {
		return nil, fmt.Errorf("constituents table not found (%d wikitables)", tables.Length())
	}
	table := tables.Eq(1)

	rows := table.Find("tr")
	col := symbolColumn(rows.First().Find("th"))
	if col < 0 {
		return nil, errors.New("could not locate the Symbol column in the scraped table")
	}

	var raw []string
	rows.Slice(1, rows.Length()).Each(func(i int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td, th")
		if cells.Length() <= col {
			return
		}
		raw = append(raw, strings.TrimSpace(cells.Eq(col).Text()))
	})

	// 상위 limit개 행만 사용 (필터 전)
	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}

	var symbols []string
	for _, s := range raw {
		if s == "" || strings.HasPrefix(s, "INE") {
			continue
		}
		if sym := CleanSymbol(s); sym != "" {
			symbols = append(symbols, sym)
		}
	}

	if len(symbols) == 0 {
		return nil, errors.New("the scraped stock list was empty after processing")
	}

	return symbols, nil
}

// symbolColumn finds the header containing "Symbol" but not "Exchange"
func symbolColumn(headers *goquery.Selection) int {
	col := -1
	headers.EachWithBreak(func(i int, th *goquery.Selection) bool {
		text := strings.TrimSpace(th.Text())
		if strings.Contains(text, "Symbol") && !strings.Contains(text, "Exchange") {
			col = i
			return false
		}
		return true
	})
	return col
}

// CleanSymbol normalizes a scraped ticker ("reliance.: NSE" → "RELIANCE")
func CleanSymbol(s string) string {
	s, _, _ = strings.Cut(s, ":")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	return strings.ToUpper(s)
}
