package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/mineral/internal/config"
	"github.com/jmylchreest/mineral/internal/logger"
	"github.com/jmylchreest/mineral/internal/output"
	"github.com/jmylchreest/mineral/pkg/cleaner"
	"github.com/jmylchreest/mineral/pkg/fetcher"
	"github.com/jmylchreest/mineral/pkg/mineral"
)

var pruneCmd = &cobra.Command{
	Use:   "prune [file|url|-]",
	Short: "Minify and prune an HTML document",
	Long: `Prune reads an HTML document from a file, a URL or stdin, runs the
pruning pipeline over it and writes the result.

Steps run in a fixed order: before hooks, minify, --css, --style, --script,
after hooks. Hooks are referenced by name; see "mineral hooks".

Examples:
  mineral prune page.html -o page.min.html
  mineral prune --css --style --script page.html
  mineral prune --before trim --after html-minify page.html
  mineral prune https://example.com --stats --report report.yaml --report-format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)

	flags := pruneCmd.Flags()

	// Pipeline
	flags.Bool("css", false, `remove double-quoted style="..." attributes`)
	flags.Bool("style", false, "remove <style> blocks")
	flags.Bool("script", false, "empty inline <script> bodies")
	flags.StringSlice("before", nil, "named hook(s) to run before minifying")
	flags.StringSlice("after", nil, "named hook(s) to run after pruning")

	// Output
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.Bool("final-newline", false, "end the output with a single newline")
	flags.Bool("stats", false, "print per-step statistics to stderr")
	flags.String("report", "", "write a run report to this file")
	flags.String("report-format", "json", "report format: json, jsonl, yaml")

	// Input
	flags.String("fetch-mode", "static", "fetch mode for URLs: static, dynamic")
	flags.Duration("timeout", 30*time.Second, "fetch timeout")
	flags.String("user-agent", "", "user agent for URL fetches")
	flags.String("wait-selector", "", "CSS selector to wait for (dynamic fetch mode)")
	flags.String("max-size", "", "max input size (e.g. 5MB, 0=unlimited)")

	_ = viper.BindPFlag("css", flags.Lookup("css"))
	_ = viper.BindPFlag("style", flags.Lookup("style"))
	_ = viper.BindPFlag("script", flags.Lookup("script"))
	_ = viper.BindPFlag("before_pruning", flags.Lookup("before"))
	_ = viper.BindPFlag("after_pruning", flags.Lookup("after"))
	_ = viper.BindPFlag("report_format", flags.Lookup("report-format"))
	_ = viper.BindPFlag("fetch.mode", flags.Lookup("fetch-mode"))
	_ = viper.BindPFlag("fetch.timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("fetch.user_agent", flags.Lookup("user-agent"))
	_ = viper.BindPFlag("fetch.wait_selector", flags.Lookup("wait-selector"))
	_ = viper.BindPFlag("max_size", flags.Lookup("max-size"))
}

func runPrune(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}

	doc, err := readInput(ctx, cmd.InOrStdin(), source, cfg)
	if err != nil {
		return err
	}
	logger.Debug("input loaded", "source", source, "title", doc.title, "size", humanize.Bytes(uint64(len(doc.html))))

	stage := &pruneStage{pruner: mineral.New(opts)}
	var finish cleaner.Cleaner
	if finalNewline, _ := cmd.Flags().GetBool("final-newline"); finalNewline {
		finish = cleaner.NewFunc("final-newline", ensureFinalNewline)
	}
	chain := cleaner.NewChain(stage, finish)
	logger.Debug("pipeline", "cleaners", chain.Name())

	content, err := chain.Clean(doc.html)
	if err != nil {
		return fmt.Errorf("pruning %s: %w", source, err)
	}
	result := stage.result

	outPath, _ := cmd.Flags().GetString("output")
	if err := writeOutput(cmd.OutOrStdout(), outPath, content); err != nil {
		return err
	}

	if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
		fmt.Fprint(cmd.ErrOrStderr(), result.Stats.String())
	}

	reportPath, _ := cmd.Flags().GetString("report")
	if reportPath != "" {
		report := output.NewReport(source, opts, cfg.BeforePruning, cfg.AfterPruning, result.Stats)
		report.Title = doc.title
		if err := writeReport(reportPath, cfg.ReportFormat, report); err != nil {
			return err
		}
	}

	logger.Info("pruned",
		"source", source,
		"input", humanize.Bytes(uint64(result.Stats.InputBytes)),
		"output", humanize.Bytes(uint64(result.Stats.OutputBytes)),
		"reduction", fmt.Sprintf("%.1f%%", result.Stats.ReductionPercent()))
	return nil
}

// pruneStage runs the pruner as the first link of the cleaner chain and
// keeps the statistics of its last run.
type pruneStage struct {
	pruner *mineral.Pruner
	result *mineral.Result
}

func (s *pruneStage) Clean(html string) (string, error) {
	res, err := s.pruner.ProcessWithStats(html)
	if err != nil {
		return "", err
	}
	s.result = res
	return res.Content, nil
}

func (s *pruneStage) Name() string {
	return s.pruner.Name()
}

func ensureFinalNewline(content string) string {
	return strings.TrimRight(content, "\n") + "\n"
}

// document is a loaded input. title is only known for fetched pages.
type document struct {
	html  string
	title string
}

// readInput loads the document from a URL, a file, or stdin for "-",
// enforcing the configured size limit.
func readInput(ctx context.Context, stdin io.Reader, source string, cfg *config.Config) (*document, error) {
	limit, err := cfg.MaxSizeBytes()
	if err != nil {
		return nil, err
	}

	doc := &document{}
	switch {
	case source == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		doc.html = string(data)
	case fetcher.IsURL(source):
		f, err := fetcher.New(cfg.Fetch.Mode, fetcher.Config{
			UserAgent: cfg.Fetch.UserAgent,
			Timeout:   cfg.Fetch.Timeout,
		})
		if err != nil {
			return nil, err
		}
		defer f.Close()

		content, err := f.Fetch(ctx, source, fetcher.Options{WaitSelector: cfg.Fetch.WaitSelector})
		if err != nil {
			return nil, err
		}
		if content.ContentType != "" && !mineral.IsPrunable(content.ContentType) {
			logger.Warn("pruning non-HTML content", "url", source, "content_type", content.ContentType)
		}
		doc.html = content.HTML
		doc.title = content.Title
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
		doc.html = string(data)
	}

	if limit > 0 && uint64(len(doc.html)) > limit {
		return nil, fmt.Errorf("input is %s, exceeds max size %s",
			humanize.Bytes(uint64(len(doc.html))), humanize.Bytes(limit))
	}
	return doc, nil
}

func writeOutput(stdout io.Writer, path, content string) error {
	if path == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeReport(path, format string, report *output.Report) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer file.Close()

	w, err := output.NewWriter(file, f)
	if err != nil {
		return err
	}
	if err := w.Write(report); err != nil {
		return err
	}
	return w.Close()
}
