package wpcraft

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wallcraft/internal/domain"
)

// parseListing extracts (id, score) rows from a listing page. A page
// without the wallpapers container (the site serves a styled 404 with
// status 200 on some paths) yields no rows.
func parseListing(doc *goquery.Document) []domain.Listing {
	var rows []domain.Listing
	doc.Find("div.wallpapers li.wallpapers__item").Each(func(_ int, item *goquery.Selection) {
		href, ok := item.Find("a").First().Attr("href")
		if !ok {
			return
		}
		id := idFromHref(href)
		if id == "" {
			return
		}
		score := parseFloat(item.Find(".wallpapers__info-rating").First().Text())
		rows = append(rows, domain.Listing{ID: domain.WallpaperID(id), Score: score})
	})
	return rows
}

// idFromHref pulls the wallpaper identifier out of an item link such as
// "/wallpaper/city_night_lights_12345/1920x1080/". The identifier is the
// second-to-last path segment when the link carries a trailing resolution,
// the last one otherwise.
func idFromHref(href string) string {
	parts := strings.Split(strings.Trim(href, "/"), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "" || parts[i] == "wallpaper" {
			continue
		}
		if _, err := domain.ParseResolution(parts[i]); err == nil {
			continue
		}
		return parts[i]
	}
	return ""
}

// parsePageCount reads the pager of a listing page. No pager means a
// single page of results. The last pager link carries the total: search
// pages encode it as a "page=" query argument, tag and catalog pages as a
// trailing "pageN" path segment.
func parsePageCount(doc *goquery.Document) int {
	links := doc.Find("ul.pager__list a.pager__link")
	if links.Length() == 0 {
		if doc.Find("div.wallpapers").Length() == 0 {
			return 0
		}
		return 1
	}
	href, ok := links.Last().Attr("href")
	if !ok {
		return 1
	}

	if i := strings.Index(href, "page="); i >= 0 {
		arg := href[i+len("page="):]
		if j := strings.IndexByte(arg, '&'); j >= 0 {
			arg = arg[:j]
		}
		if n, err := strconv.Atoi(arg); err == nil && n > 0 {
			return n
		}
		return 1
	}

	last := href[strings.LastIndexByte(strings.TrimRight(href, "/"), '/')+1:]
	last = strings.TrimRight(last, "/")
	if n, err := strconv.Atoi(strings.TrimPrefix(last, "page")); err == nil && n > 0 {
		return n
	}
	return 1
}

// parseMetadata extracts tags and rating from a wallpaper detail page.
// Tag links end in boilerplate ("city wallpapers", "sky backgrounds")
// which is stripped.
func parseMetadata(doc *goquery.Document) *domain.Metadata {
	md := &domain.Metadata{}
	doc.Find("div.wallpaper__tags a").Each(func(_ int, a *goquery.Selection) {
		tag := cleanTag(a.Text())
		if tag != "" {
			md.Tags = append(md.Tags, tag)
		}
	})
	md.Score = parseFloat(doc.Find(".wallpaper__rating").First().Text())
	md.Author = strings.TrimSpace(doc.Find(".wallpaper__author").First().Text())
	md.License = strings.TrimSpace(doc.Find(".wallpaper__license").First().Text())
	if src, ok := doc.Find(".wallpaper__source a").First().Attr("href"); ok {
		md.Source = src
	}
	return md
}

func cleanTag(text string) string {
	text = strings.ReplaceAll(text, "wallpapers", "")
	text = strings.ReplaceAll(text, "backgrounds", "")
	return strings.TrimSpace(text)
}

// parseDownloadImage returns the preview image src from a download page,
// empty when the wallpaper is not served at the requested size.
func parseDownloadImage(doc *goquery.Document) string {
	src, _ := doc.Find("img.wallpaper__image").First().Attr("src")
	return src
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
