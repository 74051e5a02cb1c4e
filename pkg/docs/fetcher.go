/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fetcher.go
Description: PageRenderer using chromedp. Renders documentation pages in
headless Chrome so attribute tables that only materialize under JavaScript
can be extracted, with a per-page timeout.
*/

package docs

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// PageFetcher implements PageRenderer using chromedp
type PageFetcher struct {
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
	alloc   context.CancelFunc
}

// NewPageFetcher creates a fetcher with a per-page render timeout
func NewPageFetcher(timeout time.Duration) *PageFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PageFetcher{timeout: timeout}
}

// Start launches the headless browser
func (f *PageFetcher) Start(ctx context.Context) error {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	f.ctx = browserCtx
	f.cancel = browserCancel
	f.alloc = allocCancel

	if err := chromedp.Run(f.ctx, network.Enable()); err != nil {
		return fmt.Errorf("failed to start headless browser: %w", err)
	}

	return nil
}

// Stop closes the browser
func (f *PageFetcher) Stop() error {
	if f.cancel != nil {
		f.cancel()
	}
	if f.alloc != nil {
		f.alloc()
	}
	return nil
}

// FetchPage navigates to the URL, waits for the body to render, and returns
// the outer HTML snapshot
func (f *PageFetcher) FetchPage(url string) (string, error) {
	if f.ctx == nil {
		return "", fmt.Errorf("fetcher not started")
	}

	ctx, cancel := context.WithTimeout(f.ctx, f.timeout)
	defer cancel()

	var html string
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", url, err)
	}

	return html, nil
}
