package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"chatmint-studio/internal/adapter/http/dto"
	"chatmint-studio/internal/adapter/storage"
	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/internal/service"

	"github.com/spf13/cobra"
)

// openGallery opens the configured storage backend and returns a gallery
// service on top of it. The caller must call the returned close func.
func openGallery(ctx context.Context, opts *options) (ports.GalleryService, func(), error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := opts.logger()
	stores, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("opening storage: %w", err)
	}
	return service.NewGalleryService(stores.Gallery, log), stores.Close, nil
}

func newGalleryCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Inspect and prune per-wallet galleries",
	}
	cmd.AddCommand(newGalleryListCmd(opts))
	cmd.AddCommand(newGalleryRemoveCmd(opts))
	return cmd
}

func newGalleryListCmd(opts *options) *cobra.Command {
	var wallet string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a wallet's registered assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := domain.ParseWalletAddress(wallet)
			if err != nil {
				return fmt.Errorf("--wallet: %w", err)
			}

			gallery, closeFn, err := openGallery(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer closeFn()

			records, err := gallery.List(cmd.Context(), owner)
			if err != nil {
				return err
			}
			return printGallery(cmd.OutOrStdout(), opts, records)
		},
	}
	cmd.Flags().StringVar(&wallet, "wallet", "", "Wallet that owns the gallery")
	_ = cmd.MarkFlagRequired("wallet")
	return cmd
}

func newGalleryRemoveCmd(opts *options) *cobra.Command {
	var (
		wallet string
		id     int64
	)

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove"},
		Short:   "Remove one asset from a wallet's gallery",
		Long: `Remove one asset from a wallet's gallery.

Only the local record is removed. The on-chain registration and pinned
files are not touched. Removing an unknown id is not an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := domain.ParseWalletAddress(wallet)
			if err != nil {
				return fmt.Errorf("--wallet: %w", err)
			}

			gallery, closeFn, err := openGallery(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := gallery.Delete(cmd.Context(), owner, id); err != nil {
				return err
			}
			records, err := gallery.List(cmd.Context(), owner)
			if err != nil {
				return err
			}
			return printGallery(cmd.OutOrStdout(), opts, records)
		},
	}
	cmd.Flags().StringVar(&wallet, "wallet", "", "Wallet that owns the gallery")
	cmd.Flags().Int64Var(&id, "id", 0, "Asset id to remove")
	_ = cmd.MarkFlagRequired("wallet")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func printGallery(out io.Writer, opts *options, records []domain.AssetRecord) error {
	resp := dto.GalleryResponse{Items: records, Total: len(records)}
	return opts.print(out, resp, func(w io.Writer) error {
		if len(records) == 0 {
			fmt.Fprintln(w, "No assets registered.")
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tASSET ID\tOWNER SHARE\tREGISTERED")
		for _, r := range records {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s%%\t%s\n",
				r.ID, r.Name, r.AssetID, r.PrimaryOwnerSharePercent,
				time.UnixMilli(r.ID).UTC().Format(time.RFC3339))
		}
		fmt.Fprintf(tw, "\nTotal: %d\n", len(records))
		return tw.Flush()
	})
}
