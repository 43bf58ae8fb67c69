package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `mapstructure:"no_color"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

type Option func(*Reporter)

func WithWriter(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.writer = w
		}
	}
}

func NewReporter(cfg Config, logger ports.Logger, opts ...Option) (*Reporter, error) {
	if cfg.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	r := &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, s domain.RunSummary) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, bold("AxonOps Kafka Terraform Import"))
	fmt.Fprintln(tw, "==============================")
	fmt.Fprintf(tw, "Host:\t%s\n", s.Host)
	fmt.Fprintf(tw, "Org:\t%s\n", s.Scope.OrgID)
	fmt.Fprintf(tw, "Cluster:\t%s\n", s.Scope.ClusterName)
	fmt.Fprintf(tw, "Output:\t%s\n", s.OutputDir)
	if s.RunID != "" {
		fmt.Fprintf(tw, "Run:\t%s\n", s.RunID)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Status\tKind\tResources\tSkipped\tFailed requests\tFile")
	fmt.Fprintln(tw, "------\t----\t---------\t-------\t---------------\t----")
	for _, k := range s.Kinds {
		status := green("[OK]")
		switch {
		case k.Failed():
			status = red("[FAILED]")
		case k.Fetch.Degraded():
			status = red("[DEGRADED]")
		case k.Resources == 0:
			status = yellow("[EMPTY]")
		}
		file := k.File
		if file == "" {
			file = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", status, k.Kind.Info().Title, k.Resources, k.Skipped, k.Fetch.Failures, file)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Total resources:\t%d\n", s.TotalResources())
	fmt.Fprintf(tw, "Import commands:\t%d\n", s.Commands)
	if failures := s.TotalFailures(); failures > 0 {
		fmt.Fprintf(tw, "Failed requests:\t%s\n", red(failures))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, k := range s.Kinds {
		if k.Failed() {
			fmt.Fprintf(r.writer, "%s %s were not written: %s\n", red("!"), k.Kind.Info().Title, k.Error)
		}
	}

	fmt.Fprintln(r.writer)
	fmt.Fprintf(r.writer, "Generated files in %s:\n", s.OutputDir)
	for _, f := range s.Files {
		fmt.Fprintf(r.writer, "  %s (%d bytes)\n", f.Name, f.Size)
	}
	fmt.Fprintln(r.writer)
	fmt.Fprintln(r.writer, "Next steps:")
	fmt.Fprintln(r.writer, "1. Review the generated .tf files")
	fmt.Fprintln(r.writer, "2. Set your API key: export TF_VAR_axonops_api_key='your-api-key'")
	fmt.Fprintln(r.writer, "3. Initialize Terraform: terraform init")
	fmt.Fprintf(r.writer, "4. Run the import commands: bash %s\n", s.ScriptPath)
	fmt.Fprintln(r.writer, "5. Verify the state: terraform plan")

	r.logger.Debugf(ctx, "Text summary written.")
	return nil
}
