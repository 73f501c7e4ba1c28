package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"chatmint-studio/internal/adapter/http/dto"
	"chatmint-studio/internal/adapter/storage/memory"
	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/service"

	"github.com/spf13/cobra"
)

// newSplitCmd previews an ownership split by running each share through
// the same builder the dashboard uses.
func newSplitCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Ownership split helpers",
	}

	var owner string
	preview := &cobra.Command{
		Use:   "preview <address>=<percent>...",
		Short: "Build an ownership allocation and print the resulting shares",
		Example: `  chatmintctl split preview --owner 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed \
    0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359=25 \
    0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB=12.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			primary, err := domain.ParseWalletAddress(owner)
			if err != nil {
				return fmt.Errorf("--owner: %w", err)
			}

			draft, err := buildSplit(cmd.Context(), opts, primary, args)
			if err != nil {
				return err
			}

			resp := dto.NewDraftResponse(draft)
			return opts.print(cmd.OutOrStdout(), resp, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "WALLET\tROLE\tSHARE")
				fmt.Fprintf(tw, "%s\tprimary\t%s%%\n", resp.PrimaryOwner, resp.PrimaryOwnerSharePercent)
				for _, co := range resp.CoOwners {
					fmt.Fprintf(tw, "%s\tco-owner\t%s%%\n", co.WalletAddress, co.Percent)
				}
				fmt.Fprintf(tw, "\tco-owner total\t%s%%\n", resp.TotalCoOwnerPercent)
				fmt.Fprintf(tw, "\tremaining\t%s%%\n", resp.RemainingPercent)
				return tw.Flush()
			})
		},
	}
	preview.Flags().StringVar(&owner, "owner", "", "Primary owner wallet")
	_ = preview.MarkFlagRequired("owner")

	cmd.AddCommand(preview)
	return cmd
}

func buildSplit(ctx context.Context, opts *options, primary domain.WalletAddress, shares []string) (*domain.OwnershipDraft, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	builder := service.NewAllocationBuilder(memory.NewDraftStore(0), opts.logger())

	for _, arg := range shares {
		wallet, percent, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("share %q must look like <address>=<percent>", arg)
		}
		if _, err := builder.SetDraftPercentage(ctx, primary, percent); err != nil {
			return nil, err
		}
		if _, err := builder.SetDraftWallet(ctx, primary, wallet); err != nil {
			return nil, err
		}
		if _, err := builder.CommitDraft(ctx, primary); err != nil {
			return nil, fmt.Errorf("share %q: %w", arg, err)
		}
	}

	return builder.GetDraft(ctx, primary)
}
