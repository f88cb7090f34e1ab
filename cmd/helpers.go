package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/frontgo/filter"
	"github.com/s0up4200/frontgo/frontgo"
)

// maxConcurrentLookups bounds the fan-out when several identifiers are given
const maxConcurrentLookups = 5

// Call shapes match method expressions on frontgo.API, e.g. frontgo.API.CancelOrder.
type (
	bodyCall   func(api frontgo.API, ctx context.Context, body any) (*frontgo.Response, error)
	idBodyCall func(api frontgo.API, ctx context.Context, id string, body any) (*frontgo.Response, error)
	lookupCall func(api frontgo.API, ctx context.Context, id string) (*frontgo.Response, error)
	listCall   func(api frontgo.API, ctx context.Context, args []string, params url.Values) (*frontgo.Response, error)
)

// newBodyCmd builds a command that posts a JSON body from --data
func newBodyCmd(a *app, use, short string, call bodyCall) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(cmd, nil)
			if err != nil {
				return err
			}
			resp, err := call(a.client, cmd.Context(), body)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), resp)
		},
	}
	addDataFlag(cmd)
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

// newIDBodyCmd builds a command acting on one identifier with an optional
// body. defaultBody is sent when --data is omitted; nil makes --data required.
func newIDBodyCmd(a *app, use, short string, defaultBody any, call idBodyCall) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(cmd, defaultBody)
			if err != nil {
				return err
			}
			resp, err := call(a.client, cmd.Context(), args[0], body)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), resp)
		},
	}
	addDataFlag(cmd)
	if defaultBody == nil {
		_ = cmd.MarkFlagRequired("data")
	}
	return cmd
}

// newLookupCmd builds a command fetching one or more identifiers concurrently
func newLookupCmd(a *app, use, short string, call lookupCall) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := lookupAll(cmd.Context(), a.client, args, call)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), results...)
		},
	}
}

// newListCmd builds a command for list endpoints with --query and --where
func newListCmd(a *app, use, short string, args cobra.PositionalArgs, call listCall) *cobra.Command {
	var (
		query []string
		where string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseQuery(query)
			if err != nil {
				return err
			}

			var f *filter.Filter
			if where != "" {
				f, err = filter.Compile(where)
				if err != nil {
					return fmt.Errorf("invalid --where expression: %w", err)
				}
			}

			resp, err := call(a.client, cmd.Context(), args, params)
			if err != nil {
				return err
			}

			if f != nil && len(resp.Data) > 0 {
				filtered, err := f.Apply(resp.Data)
				if err != nil {
					return fmt.Errorf("failed to filter response: %w", err)
				}
				a.logger.Debug().
					Str("where", where).
					Int("before_bytes", len(resp.Data)).
					Int("after_bytes", len(filtered)).
					Msg("Applied filter")
				resp.Data = filtered
			}

			return a.render(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringArrayVarP(&query, "query", "q", nil, "query parameter as key=value (repeatable)")
	cmd.Flags().StringVarP(&where, "where", "w", "", `filter expression, e.g. 'status == "PAID"'`)
	return cmd
}

func addDataFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "", "JSON request body: inline, @file, or - for stdin")
}

// readBody resolves --data into a JSON value. The raw bytes are validated
// and passed through so the caller's formatting and number precision survive.
func readBody(cmd *cobra.Command, defaultBody any) (any, error) {
	data, err := cmd.Flags().GetString("data")
	if err != nil {
		return nil, err
	}
	if data == "" {
		return defaultBody, nil
	}

	var raw []byte
	switch {
	case data == "-":
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read body from stdin: %w", err)
		}
	case strings.HasPrefix(data, "@"):
		raw, err = os.ReadFile(strings.TrimPrefix(data, "@"))
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
	default:
		raw = []byte(data)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("--data is not valid JSON")
	}
	return json.RawMessage(raw), nil
}

func parseQuery(pairs []string) (url.Values, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := url.Values{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --query %q (want key=value)", pair)
		}
		params.Add(key, value)
	}
	return params, nil
}

// lookupAll fetches every id with bounded concurrency, keeping argument order
func lookupAll(ctx context.Context, api frontgo.API, ids []string, call lookupCall) ([]*frontgo.Response, error) {
	results := make([]*frontgo.Response, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, id := range ids {
		g.Go(func() error {
			resp, err := call(api, ctx, id)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
