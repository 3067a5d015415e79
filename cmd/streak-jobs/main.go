// Command streak-jobs runs the background scheduler: end-of-day streak
// reconciliation and the evening practice reminder sweep.
//
// It runs until SIGINT or SIGTERM, then stops the scheduler gracefully.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/luminalearn/streaks/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("streak-jobs: %v", err)
		os.Exit(1)
	}
}
