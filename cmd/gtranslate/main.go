// Command gtranslate translates text, detects languages and lists the
// languages supported by the translation service.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pricofy/translate-client/internal/config"
	"github.com/pricofy/translate-client/internal/logging"
	"github.com/pricofy/translate-client/translate"
)

type options struct {
	key         string
	baseURL     string
	largeQuery  bool
	prettyPrint bool
	verbose     bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "gtranslate",
		Short:        "Google Translate from the command line",
		SilenceUsage: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.key, "key", "", "API key (default $GOOGLE_TRANSLATE_API_KEY)")
	flags.StringVar(&opts.baseURL, "base-url", "", "service endpoint (default $GOOGLE_TRANSLATE_BASE_URL)")
	flags.BoolVar(&opts.largeQuery, "large-query", false, "send requests as POST, allowing up to 5000 characters")
	flags.BoolVar(&opts.prettyPrint, "pretty-print", false, "ask the service for human-readable output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newTranslateCmd(opts),
		newDetectCmd(opts),
		newLanguagesCmd(opts),
	)
	return root
}

// newClient merges flags over the environment configuration.
func newClient(cmd *cobra.Command, opts *options) (*translate.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.key != "" {
		cfg.APIKey = opts.key
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.New(level, "development")
	if err != nil {
		return nil, err
	}

	clientOpts := []translate.Option{
		translate.WithBaseURL(cfg.BaseURL),
		translate.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		translate.WithLogger(logger),
		translate.WithLargeQuery(cfg.LargeQuery || opts.largeQuery),
	}
	if cmd.Flags().Changed("pretty-print") {
		clientOpts = append(clientOpts, translate.WithPrettyPrint(opts.prettyPrint))
	} else if cfg.PrettyPrint != nil {
		clientOpts = append(clientOpts, translate.WithPrettyPrint(*cfg.PrettyPrint))
	}

	return translate.New(cfg.APIKey, clientOpts...)
}

func parseLanguage(code string) (translate.Language, error) {
	lang, ok := translate.ParseLanguage(code)
	if !ok {
		return translate.Unknown, fmt.Errorf("unsupported language: %s", code)
	}
	return lang, nil
}

func newTranslateCmd(opts *options) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "translate TEXT...",
		Short: "Translate one or more texts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := parseLanguage(from)
			if err != nil {
				return err
			}
			target, err := parseLanguage(to)
			if err != nil {
				return err
			}
			if target == translate.Automatic {
				return fmt.Errorf("--to is required")
			}

			client, err := newClient(cmd, opts)
			if err != nil {
				return err
			}
			results, err := client.Translate(commandContext(cmd), source, target, args...)
			if err != nil {
				return err
			}

			for _, r := range results {
				if r.DetectedSourceLanguage != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", r.DetectedSourceLanguage, r.TranslatedText)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), r.TranslatedText)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "auto", "source language code, or auto")
	cmd.Flags().StringVar(&to, "to", "", "target language code")
	return cmd
}

func newDetectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "detect TEXT...",
		Short: "Detect the language of one or more texts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, opts)
			if err != nil {
				return err
			}
			results, err := client.DetectLanguage(commandContext(cmd), args...)
			if err != nil {
				return err
			}

			for _, d := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.4f\treliable=%t\n", d.Language, d.Confidence, d.IsReliable)
			}
			return nil
		},
	}
}

func newLanguagesCmd(opts *options) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lang := translate.Unknown
			if target != "" {
				var err error
				if lang, err = parseLanguage(target); err != nil {
					return err
				}
			}

			client, err := newClient(cmd, opts)
			if err != nil {
				return err
			}
			results, err := client.SupportedLanguages(commandContext(cmd), lang)
			if err != nil {
				return err
			}

			for _, l := range results {
				if l.Name != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.Language, l.Name)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), l.Language)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "language to name the entries in")
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
