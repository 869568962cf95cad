// Command listfeedback prints the most recent customer feedback as JSON.
package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bottleshop/internal/config"
	"bottleshop/internal/database"
	"bottleshop/internal/models"
	"bottleshop/internal/repositories"
	"bottleshop/internal/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		limit  int
		filter models.FeedbackFilter
	)

	cmd := &cobra.Command{
		Use:          "listfeedback",
		Short:        "Print the latest feedback, newest first",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			config.SetupLogging(cfg)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			store, err := database.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(context.Background()); err != nil {
					logrus.WithError(err).Warn("Error closing store")
				}
			}()

			return printFeedback(ctx, cmd.OutOrStdout(), store.Repos, filter, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of records to print (max 200)")
	cmd.Flags().StringVar(&filter.Type, "type", "", "only feedback of this type (bug, suggestion, compliment, other)")
	cmd.Flags().StringVar(&filter.Status, "status", "", "only feedback with this status (new, reviewed, closed)")
	cmd.Flags().StringVar(&filter.ProductID, "product", "", "only feedback about this product id")
	return cmd
}

func printFeedback(ctx context.Context, w io.Writer, repos *repositories.Set, filter models.FeedbackFilter, limit int) error {
	items, err := services.NewFeedbackService(repos.Feedback, nil).ListLatest(ctx, filter, limit)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
