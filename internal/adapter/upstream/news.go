package upstream

import (
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/carloworks/covid-data-api/internal/domain"
)

// ParseNews converts an RSS payload into news items. A plain format
// conversion: channel items pass through with no derived state.
func ParseNews(xml string) ([]domain.NewsItem, error) {
	feed, err := gofeed.NewParser().ParseString(xml)
	if err != nil {
		return nil, fmt.Errorf("news feed: %w: %w", domain.ErrParse, err)
	}

	items := make([]domain.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		items = append(items, domain.NewsItem{
			Title:       it.Title,
			Description: it.Description,
			Link:        it.Link,
			GUID:        it.GUID,
			PubDate:     it.Published,
		})
	}
	return items, nil
}
