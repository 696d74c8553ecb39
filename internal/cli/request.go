package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/httpmaker/httpmaker/internal/emitter"
	"github.com/httpmaker/httpmaker/internal/spec"
	"github.com/spf13/cobra"
)

// RequestConfig captures all inputs of the request command after merging
// defaults and CLI values.
type RequestConfig struct {
	Method  string
	URL     string
	Headers []string
	Body    string
	Format  string
	Output  string
	Verbose bool
}

var requestRunner = runRequest

func newRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request METHOD URL",
		Short: "Render a single HTTP request",
		Long: "Render one HTTP request described on the command line as a request file " +
			"in the chosen output format.",
		Example: strings.TrimSpace(`  httpmaker request GET https://api.example.com/users
  httpmaker request POST https://api.example.com/users -H 'Content-Type: application/json' -b '{"name": "John"}'
  httpmaker request GET https://api.example.com/users --format curl --output request.sh`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveRequestConfig(cmd, args)
			if err != nil {
				return err
			}
			return requestRunner(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayP("header", "H", nil, "HTTP header as 'Key: Value' (repeatable)")
	flags.StringP("body", "b", "", "Request body content")
	flags.StringP("format", "f", "", "Output format (rest-client|httpie|curl); defaults to rest-client")
	flags.StringP("output", "o", "", "Output file path (default: stdout)")

	return cmd
}

func resolveRequestConfig(cmd *cobra.Command, args []string) (*RequestConfig, error) {
	cfg := &RequestConfig{
		Method: strings.ToUpper(strings.TrimSpace(args[0])),
		URL:    strings.TrimSpace(args[1]),
	}

	flags := cmd.Flags()
	var err error
	if cfg.Headers, err = flags.GetStringArray("header"); err != nil {
		return nil, err
	}
	if cfg.Body, err = flags.GetString("body"); err != nil {
		return nil, err
	}
	if cfg.Format, err = flags.GetString("format"); err != nil {
		return nil, err
	}
	if cfg.Output, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
		return nil, err
	}

	if cfg.Method == "" || cfg.URL == "" {
		return nil, newUsageError("request: METHOD and URL are required")
	}
	return cfg, nil
}

func runRequest(cmd *cobra.Command, cfg *RequestConfig) error {
	format, err := emitter.ParseFormat(cfg.Format)
	if err != nil {
		return newUsageError("request: " + err.Error())
	}

	headers := parseHeaders(cmd.ErrOrStderr(), cfg.Headers)
	text, err := emitter.Render(emitter.Request{
		Method:  cfg.Method,
		URL:     cfg.URL,
		Headers: headers,
		Body:    cfg.Body,
	}, format)
	if err != nil {
		return err
	}
	return writeOutput(cmd, cfg.Output, text)
}

// parseHeaders splits raw 'Key: Value' strings on the first colon.
// Malformed entries are skipped with a warning rather than aborting.
// Repeating a key keeps its first position and its last value.
func parseHeaders(warn io.Writer, raw []string) []spec.Header {
	var headers []spec.Header
	for _, entry := range raw {
		key, value, found := strings.Cut(entry, ":")
		if !found {
			fmt.Fprintf(warn, "Warning: invalid header format %q, skipping.\n", entry)
			continue
		}
		headers = spec.SetHeader(headers, strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return headers
}

// writeOutput writes content to the named file, or to stdout when no file
// is given. File writes are confirmed on stderr so stdout stays clean for
// piping.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "HTTP request file written to: %s\n", path)
	return nil
}
