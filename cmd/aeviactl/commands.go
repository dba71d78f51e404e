package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"aevia-legacy/config"
	"aevia-legacy/internal/adapter/http/dto"
	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/service"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var tokenCmd = &cli.Command{
	Name:  "token",
	Usage: "service tokens",
	Subcommands: []*cli.Command{
		{
			Name:  "issue",
			Usage: "sign a service token with the configured JWT secret",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "subject", Value: "operator", Usage: "token subject"},
			},
			Action: func(cctx *cli.Context) error {
				cfg, err := config.Load(cctx.String("config"))
				if err != nil {
					return err
				}
				if cfg.JWT.Secret == "" {
					return fmt.Errorf("jwt.secret is not configured")
				}
				tokens := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
				token, exp, err := tokens.Generate(cctx.String("subject"))
				if err != nil {
					return err
				}
				fmt.Fprintln(cctx.App.Writer, token)
				fmt.Fprintln(cctx.App.ErrWriter, color.CyanString("expires %s", exp.Format(time.RFC3339)))
				return nil
			},
		},
	},
}

var legacyCmd = &cli.Command{
	Name:  "legacy",
	Usage: "legacy operations over the API",
	Flags: []cli.Flag{
		&cli.DurationFlag{Name: "timeout", Value: 15 * time.Minute, Usage: "request timeout; sagas can take minutes"},
	},
	Subcommands: []*cli.Command{
		{Name: "execute", Usage: "execute a legacy", ArgsUsage: "<legacy-id>", Action: legacyExecute},
		{Name: "stake", Usage: "stake the investment wallet", ArgsUsage: "<legacy-id>", Action: legacyStake},
		{Name: "claim", Usage: "claim staking rewards", ArgsUsage: "<legacy-id>", Action: legacySweep("claim")},
		{Name: "withdraw", Usage: "withdraw unstaked principal", ArgsUsage: "<legacy-id>", Action: legacySweep("withdraw")},
		{Name: "balance", Usage: "show staking balances", ArgsUsage: "<legacy-id>", Action: legacyBalance},
	},
}

func clientFrom(cctx *cli.Context) *apiClient {
	return newAPIClient(cctx.String("api"), cctx.String("token"), cctx.Duration("timeout"))
}

func legacyArg(cctx *cli.Context) (uuid.UUID, error) {
	if cctx.NArg() != 1 {
		return uuid.Nil, fmt.Errorf("expected exactly one legacy id")
	}
	id, err := uuid.Parse(cctx.Args().First())
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid legacy id: %w", err)
	}
	return id, nil
}

func legacyExecute(cctx *cli.Context) error {
	id, err := legacyArg(cctx)
	if err != nil {
		return err
	}

	var result domain.ExecutionResult
	if err := clientFrom(cctx).do(cctx.Context, http.MethodPost, "/api/v1/legacies/"+id.String()+"/execute", &result); err != nil {
		return err
	}

	w := cctx.App.Writer
	if result.Legacy != nil {
		fmt.Fprintf(w, "legacy %s: %s\n", id, stateString(result.Legacy.ExecutionState))
	}
	if result.TransactionHash != "" {
		fmt.Fprintf(w, "transaction %s\n", result.TransactionHash)
	}
	if result.Staking != nil {
		printAction(w, result.Staking)
	}
	return nil
}

func legacyStake(cctx *cli.Context) error {
	id, err := legacyArg(cctx)
	if err != nil {
		return err
	}

	var result domain.ActionResult
	if err := clientFrom(cctx).do(cctx.Context, http.MethodPost, "/api/v1/legacies/"+id.String()+"/stake", &result); err != nil {
		return err
	}
	printAction(cctx.App.Writer, &result)
	return nil
}

func legacySweep(op string) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		id, err := legacyArg(cctx)
		if err != nil {
			return err
		}

		var result dto.SweepResponse
		if err := clientFrom(cctx).do(cctx.Context, http.MethodPost, "/api/v1/legacies/"+id.String()+"/"+op, &result); err != nil {
			return err
		}

		w := cctx.App.Writer
		fmt.Fprintf(w, "%s: %s (%d submitted)\n", op, result.Status, result.Submitted)
		for i := range result.Actions {
			printAction(w, &result.Actions[i])
		}
		return nil
	}
}

func legacyBalance(cctx *cli.Context) error {
	id, err := legacyArg(cctx)
	if err != nil {
		return err
	}

	var balances []domain.BalanceView
	if err := clientFrom(cctx).do(cctx.Context, http.MethodGet, "/api/v1/legacies/"+id.String()+"/balance", &balances); err != nil {
		return err
	}

	w := cctx.App.Writer
	if len(balances) == 0 {
		fmt.Fprintln(w, color.YellowString("no balances"))
		return nil
	}
	for _, b := range balances {
		date := "-"
		if b.Date != nil {
			date = *b.Date
		}
		fmt.Fprintf(w, "%-12s %24s %-8s %-10s %s %v\n", b.Type, b.Amount, b.TokenSymbol, b.Network, date, b.PendingActions)
	}
	return nil
}

func printAction(w io.Writer, a *domain.ActionResult) {
	fmt.Fprintf(w, "%s %s session=%s\n", a.Kind, a.IntegrationID, a.SessionID)
	for _, leg := range a.Legs {
		line := fmt.Sprintf("  #%d %-14s %s", leg.StepIndex, leg.Type, legStatus(leg.Status))
		if leg.Hash != "" {
			line += " " + leg.Hash
		}
		if leg.Error != "" {
			line += " " + color.RedString(leg.Error)
		}
		fmt.Fprintln(w, line)
	}
}

func legStatus(s domain.TxStatus) string {
	switch s {
	case domain.TxStatusConfirmed:
		return color.GreenString(string(s))
	case domain.TxStatusFailed:
		return color.RedString(string(s))
	case domain.TxStatusSkipped:
		return color.CyanString(string(s))
	default:
		return color.YellowString(string(s))
	}
}

func stateString(s domain.ExecutionState) string {
	if s == domain.ExecutionStateExecuted {
		return color.GreenString(string(s))
	}
	return color.YellowString(string(s))
}
