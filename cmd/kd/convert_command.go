package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spenweb/kd/internal/currency"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var rate float64

	cmd := &cobra.Command{
		Use:   "convert <won>",
		Short: "Convert Korean won to US dollars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.ReplaceAll(strings.TrimSpace(args[0]), ",", "")
			won, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("invalid won amount %q", args[0])
			}
			if !cmd.Flags().Changed("rate") {
				rate = currency.DefaultKRWPerUSD
				if cfg, err := ctx.ensureConfig(); err == nil && cfg != nil {
					rate = cfg.Currency.KRWPerUSD
				}
			}

			out := cmd.OutOrStdout()
			wonText := strconv.FormatFloat(won, 'f', -1, 64)
			fmt.Fprintf(out, "Converting %s won to usd...\n", wonText)
			usd, err := currency.KRWToUSD(won, rate)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s won = %s usd\n", wonText, currency.FormatUSD(usd))
			return nil
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", currency.DefaultKRWPerUSD, "Won per US dollar (defaults to the configured rate)")
	return cmd
}
