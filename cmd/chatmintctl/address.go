package main

import (
	"fmt"
	"io"

	"chatmint-studio/internal/core/domain"

	"github.com/spf13/cobra"
)

type addressResult struct {
	Input   string `json:"input"`
	Valid   bool   `json:"valid"`
	Address string `json:"address,omitempty"`
}

func newAddressCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Wallet address helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <address>...",
		Short: "Check wallet addresses and print their checksummed form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]addressResult, 0, len(args))
			invalid := 0
			for _, raw := range args {
				res := addressResult{Input: raw}
				if addr, err := domain.ParseWalletAddress(raw); err == nil {
					res.Valid = true
					res.Address = addr.String()
				} else {
					invalid++
				}
				results = append(results, res)
			}

			err := opts.print(cmd.OutOrStdout(), results, func(w io.Writer) error {
				for _, r := range results {
					if r.Valid {
						fmt.Fprintf(w, "%s\tvalid\t%s\n", r.Input, r.Address)
					} else {
						fmt.Fprintf(w, "%s\tinvalid\n", r.Input)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d addresses are invalid", invalid, len(args))
			}
			return nil
		},
	})

	return cmd
}
