package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/minilisp"
	"github.com/xiam/minilisp/internal/config"
	"github.com/xiam/minilisp/internal/report"
	"github.com/xiam/minilisp/lexer"
)

// session carries what a single command run needs.
type session struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *report.Printer
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	var logOut io.Writer = io.Discard
	if verbose {
		logOut = cmd.ErrOrStderr()
	}

	return &session{
		cfg:     cfg,
		logger:  log.New(logOut, "minilisp: ", 0),
		printer: report.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output.Color),
	}, nil
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("no-color") {
		cfg.Output.Color = !noColor
	}
	if flags.Changed("auto-close") {
		cfg.Parser.AutoCloseOnEOF = autoClose
	}
	if flags.Changed("max-depth") {
		cfg.Parser.MaxDepth = maxDepth
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *session) read(path string) ([]byte, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		s.printer.Failure(fmt.Errorf("could not read file: %w", err))
		return nil, errReported
	}
	s.logger.Printf("read %d bytes from %s", len(in), path)
	return in, nil
}

func (s *session) printScan(tokens []lexer.Token, table lexer.Table) {
	if s.cfg.Output.Tokens {
		s.printer.Tokens(tokens)
	}
	if s.cfg.Output.Table {
		s.printer.Table(table)
	}
}

// scan prints the token stream and table of the file at path.
func (s *session) scan(path string) error {
	in, err := s.read(path)
	if err != nil {
		return err
	}

	tokens, table, err := lexer.Scan(in)
	if err != nil {
		s.logger.Printf("scan: %v", err)
		s.printer.Failure(err)
		return errReported
	}
	s.logger.Printf("scanned %d tokens", len(tokens))

	s.printScan(tokens, table)
	return nil
}

// parse scans the file at path, prints the scanner report and then checks
// the token stream against the grammar.
func (s *session) parse(path string) error {
	in, err := s.read(path)
	if err != nil {
		return err
	}

	r := minilisp.NewReader(bytes.NewReader(in))
	r.SetOptions(s.cfg.ParserOptions())

	res, err := r.Check()
	if res == nil {
		s.logger.Printf("scan: %v", err)
		s.printer.Failure(err)
		return errReported
	}
	s.logger.Printf("scanned %d tokens", len(res.Tokens))

	s.printer.Header("Scanner")
	s.printScan(res.Tokens, res.Table)

	s.printer.Header("Parser")
	if err != nil {
		s.logger.Printf("parse: %v", err)
		s.printer.Failure(err)
		return errReported
	}
	s.logger.Printf("parsed %d tokens", len(res.Tokens))

	s.printer.Success()
	return nil
}
