package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fachebot/vid-summify/internal/model"
	"github.com/fachebot/vid-summify/internal/playback"
)

func writeSummaryTable(w io.Writer, items []model.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tTYPE\tLENGTH\tTITLE")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			item.ID,
			model.FormatDate(item.CreatedAt),
			item.Type,
			item.Length,
			model.TruncateText(item.DisplayTitle(), 50),
		)
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, item model.Summary, plain bool) {
	fmt.Fprintf(w, "%s\n", item.DisplayTitle())
	fmt.Fprintf(w, "ID:        %s\n", item.ID)
	fmt.Fprintf(w, "Video:     %s\n", item.VideoURL)
	if thumb := item.DisplayThumbnail(); thumb != "" {
		fmt.Fprintf(w, "Thumbnail: %s\n", thumb)
	}
	fmt.Fprintf(w, "Type:      %s\n", item.Type)
	fmt.Fprintf(w, "Length:    %s\n", item.Length)
	if date := model.FormatDate(item.CreatedAt); date != "" {
		fmt.Fprintf(w, "Created:   %s\n", date)
	}
	fmt.Fprintln(w)

	body := item.Text
	if plain {
		body = playback.PlainText(body)
	}
	fmt.Fprintln(w, body)
}
