package topics

import (
	"fmt"
	"log"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const (
	workerCount      = 5
	extractorTimeout = 30 * time.Second
	maxSummaryLen    = 600
)

// ExtractAll replaces each suggestion's feed summary with readable article
// text pulled from its URL, using a bounded worker pool. Extraction
// failures leave the feed summary in place.
func ExtractAll(suggestions []*Suggestion) {
	var wg sync.WaitGroup
	queue := make(chan *Suggestion, len(suggestions))

	for i := 0; i < workerCount; i++ {
		go func(workerID int) {
			for s := range queue {
				if err := extract(s); err != nil {
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, s.URL, err)
				}
				wg.Done()
			}
		}(i)
	}

	for _, s := range suggestions {
		wg.Add(1)
		queue <- s
	}

	wg.Wait()
	close(queue)
}

func extract(s *Suggestion) error {
	if s.URL == "" {
		return fmt.Errorf("suggestion URL is empty")
	}

	article, err := readability.FromURL(s.URL, extractorTimeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	text := article.TextContent
	if len(text) > maxSummaryLen {
		text = text[:maxSummaryLen]
	}
	if text != "" {
		s.Summary = text
	}
	return nil
}
