// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// peopleCmd groups the client subcommands that talk to a running instance
// over its HTTP API.
var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Query persons through a running people-service instance",
	Long:  `Query persons through a running people-service instance over HTTP.`,
}

var peopleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persons with their role flags",
	Run: func(cmd *cobra.Command, args []string) {
		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")
		search, _ := cmd.Flags().GetString("search")

		query := url.Values{}
		query.Set("page", fmt.Sprintf("%d", page))
		query.Set("size", fmt.Sprintf("%d", size))
		if search != "" {
			query.Set("search", search)
		}

		if err := apiGet(cmd.Context(), fmt.Sprintf("/api/v0/people?%s", query.Encode()), cmd.OutOrStdout()); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
	},
}

var peopleGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get one person with aggregated roles",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := apiGet(cmd.Context(), fmt.Sprintf("/api/v0/people/%s", args[0]), cmd.OutOrStdout()); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
	},
}

var peopleSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search active persons by first or last name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := url.Values{}
		query.Set("name", args[0])

		if err := apiGet(cmd.Context(), fmt.Sprintf("/api/v0/people/search?%s", query.Encode()), cmd.OutOrStdout()); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
	},
}

func init() {
	peopleListCmd.Flags().Int64("page", 1, "Page number")
	peopleListCmd.Flags().Int64("size", 10, "Page size")
	peopleListCmd.Flags().String("search", "", "Filter by dni or name")

	peopleCmd.AddCommand(peopleListCmd)
	peopleCmd.AddCommand(peopleGetCmd)
	peopleCmd.AddCommand(peopleSearchCmd)
	rootCmd.AddCommand(peopleCmd)
}

func apiGet(ctx context.Context, path string, out io.Writer) error {
	endpoint := strings.TrimSuffix(httpEndpoint, "/")
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	var pretty json.RawMessage = body
	encoded, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		_, err = out.Write(body)
		return err
	}

	fmt.Fprintln(out, string(encoded))
	return nil
}
