package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "corebank-cli",
		Short: "CoreBank CLI tool",
		Long:  `A command line interface for interacting with the CoreBank API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the CoreBank API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(movementCmd())
	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func movementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movement",
		Short: "Movement operations",
	}

	var accountNumber, amount, kind, idempotencyKey string

	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Post a movement against an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{
				"account_number": accountNumber,
				"amount":         amount,
			}
			if kind != "" {
				payload["kind"] = kind
			}
			return doPost("/api/v1/movements", payload, idempotencyKey)
		},
	}
	postCmd.Flags().StringVar(&accountNumber, "account", "", "Account number")
	postCmd.Flags().StringVar(&amount, "amount", "", "Signed amount (positive credit, negative debit)")
	postCmd.Flags().StringVar(&kind, "kind", "", "Optional movement label")
	postCmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency-Key header value")
	_ = postCmd.MarkFlagRequired("account")
	_ = postCmd.MarkFlagRequired("amount")

	cmd.AddCommand(postCmd)
	return cmd
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	balanceCmd := &cobra.Command{
		Use:   "balance [account-id]",
		Short: "Show the current balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/accounts/" + url.PathEscape(args[0]) + "/balance")
		},
	}

	movementsCmd := &cobra.Command{
		Use:   "movements [account-id]",
		Short: "List movements of an account, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/accounts/" + url.PathEscape(args[0]) + "/movements")
		},
	}

	cmd.AddCommand(balanceCmd)
	cmd.AddCommand(movementsCmd)
	return cmd
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report operations",
	}

	var clientID, from, to string

	statementCmd := &cobra.Command{
		Use:   "statement",
		Short: "Account statement for a client over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("client_id", clientID)
			if from != "" {
				q.Set("from", from)
			}
			if to != "" {
				q.Set("to", to)
			}
			return doGet("/api/v1/reports/statement?" + q.Encode())
		},
	}
	statementCmd.Flags().StringVar(&clientID, "client", "", "Client ID")
	statementCmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	statementCmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD)")
	_ = statementCmd.MarkFlagRequired("client")

	cmd.AddCommand(statementCmd)
	return cmd
}

func doGet(path string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func doPost(path string, payload any, idempotencyKey string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(truncate(string(body), 2048))
	} else {
		printJSON(parsed)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request rejected (status %d)", resp.StatusCode)
	}

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to format response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
