package printing

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	orgapp "github.com/carbyfah/backend/internal/application/organization"
	"github.com/carbyfah/backend/internal/domain/organization"
	"go.uber.org/zap"
)

const defaultChromeTimeout = 30 * time.Second

// A4 landscape, inches
const (
	paperWidth  = 11.69
	paperHeight = 8.27
	pageMargin  = 0.4
)

var _ orgapp.OrganigramPrinter = (*ChromedpPrinter)(nil)

// ChromedpPrinterConfig configures the headless-Chrome PDF printer
type ChromedpPrinterConfig struct {
	// RemoteURL points at an already-running Chrome instance. Empty
	// launches a local headless browser.
	RemoteURL string
	// NoSandbox is required when Chrome runs as root inside a container
	NoSandbox bool
	Timeout   time.Duration
	Logger    *zap.Logger
}

// ChromedpPrinter renders the organigram tree to PDF through the Chrome
// DevTools protocol.
type ChromedpPrinter struct {
	cfg         ChromedpPrinterConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpPrinter creates the printer and its browser allocator
func NewChromedpPrinter(cfg ChromedpPrinterConfig) *ChromedpPrinter {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultChromeTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &ChromedpPrinter{cfg: cfg, logger: logger}

	if cfg.RemoteURL != "" {
		p.allocCtx, p.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
		return p
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	p.allocCtx, p.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)

	return p
}

// RenderPDF renders the tree to a PDF document
func (p *ChromedpPrinter) RenderPDF(ctx context.Context, tree []*organization.OrganigramNode) ([]byte, error) {
	html, err := RenderOrganigramHTML(tree, time.Now())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(p.allocCtx)
	defer browserCancel()

	start := time.Now()
	var pdfData []byte

	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(pageMargin).
				WithMarginRight(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("organigram PDF rendering timed out after %v: %w", p.cfg.Timeout, err)
		}
		p.logger.Error("Organigram PDF rendering failed", zap.Error(err))
		return nil, fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("generated PDF is empty")
	}

	p.logger.Info("Organigram PDF rendered",
		zap.Int("bytes", len(pdfData)),
		zap.Duration("took", time.Since(start)),
	)

	return pdfData, nil
}

// Close releases the browser allocator
func (p *ChromedpPrinter) Close() {
	if p.allocCancel != nil {
		p.allocCancel()
	}
}
