package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
	"github.com/olusolaa/axonops-importer/internal/errors"
)

const (
	ProviderFileName = "provider.tf"
	ScriptFileName   = "import_commands.sh"

	fileMode   os.FileMode = 0o644
	scriptMode os.FileMode = 0o755
)

type Config struct {
	Dir      string
	Provider tfhcl.ProviderSettings
	Header   ScriptHeader
}

// Sink writes the output bundle into one directory. Adoption commands are
// accumulated across WriteTranscript calls in call order.
type Sink struct {
	fs       afero.Fs
	dir      string
	provider tfhcl.ProviderSettings
	header   ScriptHeader
	commands []domain.AdoptionCommand
	written  map[string]string
	logger   ports.Logger
}

type SinkOption func(*Sink)

// WithFs replaces the OS filesystem.
func WithFs(fs afero.Fs) SinkOption {
	return func(s *Sink) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// NewSink creates the output directory. Failing to create it is fatal.
func NewSink(cfg Config, logger ports.Logger, opts ...SinkOption) (*Sink, error) {
	if cfg.Dir == "" {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation, "output directory is empty", "Pass an output directory or omit it to use ./imported.")
	}
	s := &Sink{
		fs:       afero.NewOsFs(),
		dir:      filepath.Clean(cfg.Dir),
		provider: cfg.Provider,
		header:   cfg.Header,
		written:  make(map[string]string),
		logger:   logger.WithFields(map[string]any{"output_dir": cfg.Dir}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeOutputWriteError,
			fmt.Sprintf("cannot create output directory %s", s.dir),
			"Check the path and its permissions, or choose another output directory.")
	}
	return s, nil
}

func (s *Sink) Dir() string {
	return s.dir
}

func (s *Sink) WriteBootstrap(ctx context.Context) error {
	content := tfhcl.RenderProvider(s.provider)
	if err := tfhcl.Validate(ProviderFileName, content); err != nil {
		return err
	}
	_, err := s.write(ctx, ProviderFileName, content, fileMode)
	return err
}

// WriteTranscript writes the kind's file only when it has blocks.
func (s *Sink) WriteTranscript(ctx context.Context, t domain.Transcript) (string, error) {
	if err := t.Validate(); err != nil {
		return "", errors.Wrap(err, errors.CodeInvariantError, "transcript is inconsistent")
	}
	if t.Len() == 0 {
		s.logger.Debugf(ctx, "No %s found, not writing %s", t.Kind.Info().Noun, t.Kind.Info().FileName)
		return "", nil
	}

	info := t.Kind.Info()
	var buf bytes.Buffer
	buf.WriteString("# " + info.Title + "\n\n")
	for i, block := range t.Blocks {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(block.Text)
	}
	content := buf.Bytes()

	parsed, err := tfhcl.ParseResources(info.FileName, content)
	if err != nil {
		return "", err
	}
	got := make([]string, 0, len(parsed))
	for _, r := range parsed {
		got = append(got, r.Address())
	}
	want := make([]string, 0, t.Len())
	for _, b := range t.Blocks {
		want = append(want, b.Address())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		return "", errors.New(errors.CodeHCLRenderError,
			fmt.Sprintf("%s does not hold the expected resource blocks (-want +got):\n%s", info.FileName, diff))
	}

	path, err := s.write(ctx, info.FileName, content, fileMode)
	if err != nil {
		return "", err
	}
	s.commands = append(s.commands, t.Commands...)
	return path, nil
}

// WriteAdoptionScript is always written, even with no commands.
func (s *Sink) WriteAdoptionScript(ctx context.Context) (string, error) {
	path, err := s.write(ctx, ScriptFileName, RenderScript(s.header, s.commands), scriptMode)
	if err != nil {
		return "", err
	}
	// The umask may have stripped the execute bits.
	if err := s.fs.Chmod(path, scriptMode); err != nil {
		return "", errors.Wrap(err, errors.CodeOutputWriteError, fmt.Sprintf("cannot mark %s executable", path))
	}
	return path, nil
}

func (s *Sink) Commands() []domain.AdoptionCommand {
	return s.commands
}

// Files lists what this run wrote, sorted by name.
func (s *Sink) Files() ([]domain.OutputFile, error) {
	names := make([]string, 0, len(s.written))
	for name := range s.written {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]domain.OutputFile, 0, len(names))
	for _, name := range names {
		path := s.written[name]
		info, err := s.fs.Stat(path)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeOutputWriteError, fmt.Sprintf("cannot stat %s", path))
		}
		files = append(files, domain.OutputFile{Name: name, Path: path, Size: info.Size()})
	}
	return files, nil
}

func (s *Sink) write(ctx context.Context, name string, content []byte, mode os.FileMode) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, name)
	if err := afero.WriteFile(s.fs, path, content, mode); err != nil {
		return "", errors.Wrap(err, errors.CodeOutputWriteError, fmt.Sprintf("cannot write %s", path))
	}
	s.written[name] = path
	s.logger.Debugf(ctx, "Wrote %s (%d bytes)", path, len(content))
	return path, nil
}
