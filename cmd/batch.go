package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/ftahirops/irqtop/engine"
	"github.com/ftahirops/irqtop/model"
	"github.com/ftahirops/irqtop/ui"
)

// runBatch prints the table every interval without the interactive view:
// clear-and-redraw when attached to a terminal, plain append when piped.
// Piped output is never clamped to a screen size.
func runBatch(sampler *engine.Sampler, pol model.ViewPolicy) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	// Establish the baseline right away so the first tick already has
	// rates to show.
	if _, _, err := sampler.Tick(); err != nil {
		return err
	}

	ticker := time.NewTicker(pol.Interval)
	defer ticker.Stop()

	fd := int(os.Stdout.Fd())
	isTTY := term.IsTerminal(fd)
	rendered := 0

	for {
		select {
		case <-sig:
			return nil
		case <-ticker.C:
			rows, cpus, err := sampler.Tick()
			if err != nil {
				if errors.Is(err, engine.ErrInvalidInterval) {
					continue // pair discarded, resample next tick
				}
				fmt.Fprintf(os.Stderr, "irqtop: %v\n", err)
				continue
			}
			if rows == nil {
				continue
			}

			selected := engine.Select(rows, &pol)

			// The screen size can change between ticks; re-query it.
			width, height := -1, -1
			if isTTY {
				width, height, _ = term.GetSize(fd)
				fmt.Print("\033[2J\033[H")
			}
			rendered++
			printBatchHeader(pol, rendered)
			plan := ui.Layout(selected, &pol, width, height, cpus)
			fmt.Println(ui.RenderTable(plan))

			if pol.Remaining > 0 && rendered >= pol.Remaining {
				return nil
			}
		}
	}
}

func printBatchHeader(pol model.ViewPolicy, iteration int) {
	iter := fmt.Sprintf("#%d", iteration)
	if pol.Remaining > 0 {
		iter = fmt.Sprintf("#%d/%d", iteration, pol.Remaining)
	}
	fmt.Printf("irqtop  %s  %s  %s\n",
		time.Now().Format("15:04:05"), pol.Interval, iter)
}
