package fileconv

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FeedConverter converts RSS and Atom feeds into delimited records or a
// plain-text digest. Each feed item becomes one row with title, link,
// published date, and description columns.
//
// Parameters: includeHeaders (bool, default true) for the delimited legs.
type FeedConverter struct{}

// NewFeedConverter creates a new FeedConverter.
func NewFeedConverter() *FeedConverter {
	return &FeedConverter{}
}

func (c *FeedConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatRss, FormatAtom}
}

func (c *FeedConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv, FormatTxt}
}

func (c *FeedConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Reading feed...")

	content, err := readTextFile(inputPath, params)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(30, "Parsing feed...")
	feed, err := gofeed.NewParser().ParseString(content)
	if err != nil {
		return fmt.Errorf("parse feed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(65, "Writing items...")
	outFormat := DetectFormat(outputPath)
	var output string
	if outFormat == FormatTxt {
		output = feedToText(feed)
	} else {
		rows := make([][]string, 0, len(feed.Items)+1)
		if params.Bool("includeHeaders", true) {
			rows = append(rows, []string{"title", "link", "published", "description"})
		}
		for _, item := range feed.Items {
			published := item.Published
			if published == "" {
				published = item.Updated
			}
			rows = append(rows, []string{item.Title, item.Link, published, item.Description})
		}
		output = renderRows(rows, outFormat, params)
	}

	if err := writeTextFile(outputPath, output); err != nil {
		return err
	}
	progress.report(100, "Conversion complete")
	return nil
}

func feedToText(feed *gofeed.Feed) string {
	var b strings.Builder
	if feed.Title != "" {
		b.WriteString(feed.Title)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", len(feed.Title)))
		b.WriteString("\n\n")
	}
	if feed.Description != "" {
		b.WriteString(feed.Description)
		b.WriteString("\n\n")
	}
	for _, item := range feed.Items {
		b.WriteString(item.Title)
		b.WriteString("\n")
		if item.Published != "" {
			b.WriteString("Published: " + item.Published + "\n")
		}
		if item.Link != "" {
			b.WriteString(item.Link + "\n")
		}
		if item.Description != "" {
			b.WriteString(item.Description + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
