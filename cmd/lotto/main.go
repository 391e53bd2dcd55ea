// Package main is the command-line front end for the lotto search.
//
// The command collects a ticket either from flags or interactively, runs the
// parallel search and prints every progress and win message as it arrives.
// With --nats-url the messages are additionally relayed to a NATS subject so
// the run can be followed from another process.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/dbyte/lotto"
	"github.com/dbyte/lotto/internal/logging"
	"github.com/dbyte/lotto/relay"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type cliOptions struct {
	numbers     string
	bonus       int
	parallelism int
	interval    time.Duration
	natsURL     string
	debug       bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "lotto",
		Short: "Brute-force search for your lottery ticket",
		Long: `lotto draws random number series in parallel until one of them matches
your ticket, then reports how many games it took.

Without --numbers the ticket is collected interactively.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flag parse errors are still reported by cobra; past this point
			// the command does its own error reporting. Ticket errors were
			// already printed line by line, everything else gets one line.
			cmd.SilenceErrors = true

			err := run(cmd, opts)
			if err != nil && !errors.Is(err, lotto.ErrInvalidTicket) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}

			return err
		},
	}

	cmd.Flags().StringVarP(&opts.numbers, "numbers", "n", "",
		"comma-separated ticket series, e.g. \"1,45,38,5,23,19\"")
	cmd.Flags().IntVarP(&opts.bonus, "bonus", "b", 0,
		"bonus number, distinct from the series")
	cmd.Flags().IntVarP(&opts.parallelism, "parallelism", "p", 0,
		"logical execution units including the coordinator (0 = all CPUs)")
	cmd.Flags().DurationVarP(&opts.interval, "interval", "i", 0,
		"minimum time between progress messages per worker (0 = default 3s)")
	cmd.Flags().StringVar(&opts.natsURL, "nats-url", "",
		"relay progress messages to this NATS server (also LOTTO_NATS_URL)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false,
		"enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *cliOptions) error {
	// Optional .env file for local defaults; a missing file is fine.
	_ = godotenv.Load()

	if opts.natsURL == "" {
		opts.natsURL = os.Getenv("LOTTO_NATS_URL")
	}
	if opts.parallelism == 0 {
		if v, err := strconv.Atoi(os.Getenv("LOTTO_PARALLELISM")); err == nil {
			opts.parallelism = v
		}
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	logger := logging.NewSlog(slog.New(handler))

	cfg := lotto.DefaultConfig()
	if opts.parallelism != 0 {
		cfg.Parallelism = opts.parallelism
	}
	if opts.interval != 0 {
		cfg.ProgressInterval = opts.interval
	}

	ticket, err := collectTicket(cmd, opts, &cfg)
	if err != nil {
		return err
	}
	logger.Info("your ticket", "numbers", ticket.Numbers, "bonus", ticket.Bonus)

	// The tee starts with the local printer; the relay joins after the
	// searcher exists, since the relay subject carries the run ID.
	tee := &teeSink{}
	tee.add(lotto.SinkFunc(func(msg string) {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}))

	s, err := lotto.NewSearcher(&cfg, ticket, lotto.WithLogger(logger), lotto.WithSink(tee))
	if err != nil {
		printTicketErrors(cmd, err)

		return err
	}

	if opts.natsURL != "" {
		nc, err := nats.Connect(opts.natsURL)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer nc.Close()

		r, err := relay.NewNATS(nc, s.RunID(), logger)
		if err != nil {
			return err
		}
		defer func() { _ = r.Flush() }()

		tee.add(r)
		logger.Info("relaying progress", "subject", r.Subject())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := s.Run(ctx)
	if err != nil {
		return err
	}

	logger.Debug("run complete",
		"run_id", summary.RunID,
		"total_games", summary.TotalGames,
		"duration", summary.Elapsed,
		"games_per_second", summary.GamesPerSecond,
	)

	return nil
}

// collectTicket builds the ticket from flags, or interactively when no series
// flag was given. Interactive mode keeps prompting until the input validates;
// flag mode fails immediately so scripts get a non-zero exit.
func collectTicket(cmd *cobra.Command, opts *cliOptions, cfg *lotto.Config) (lotto.Ticket, error) {
	if opts.numbers != "" {
		ticket := lotto.Ticket{Numbers: parseSeries(opts.numbers), Bonus: opts.bonus}
		if err := ticket.Validate(cfg); err != nil {
			printTicketErrors(cmd, err)

			return lotto.Ticket{}, err
		}

		return ticket, nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		ticket, err := promptTicket(cmd, reader, cfg)
		if err != nil {
			return lotto.Ticket{}, err
		}

		if err := ticket.Validate(cfg); err != nil {
			printTicketErrors(cmd, err)
			fmt.Fprintln(cmd.OutOrStdout(), "Please try again.")

			continue
		}

		return ticket, nil
	}
}

func promptTicket(cmd *cobra.Command, reader *bufio.Reader, cfg *lotto.Config) (lotto.Ticket, error) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Enter your ticket series (max. %d numbers between %d and %d, separated by commas): ",
		cfg.MaxNumbers, cfg.NumberMin, cfg.NumberMax)
	series, err := readLine(reader)
	if err != nil {
		return lotto.Ticket{}, err
	}

	fmt.Fprintf(out, "Enter your bonus number between %d and %d: ", cfg.NumberMin, cfg.NumberMax)
	bonus, err := readLine(reader)
	if err != nil {
		return lotto.Ticket{}, err
	}

	return lotto.Ticket{
		Numbers: parseSeries(series),
		Bonus:   parseNumber(bonus),
	}, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// parseSeries extracts one number per comma-separated token, ignoring any
// non-digit noise around it. "1, 45,x38" parses to [1 45 38]. Tokens without
// digits parse to 0 and fail range validation later.
func parseSeries(input string) []int {
	input = strings.Trim(input, ", \t\r\n")
	if input == "" {
		return nil
	}

	tokens := strings.Split(input, ",")
	numbers := make([]int, 0, len(tokens))
	for _, token := range tokens {
		numbers = append(numbers, parseNumber(token))
	}

	return numbers
}

func parseNumber(token string) int {
	var digits strings.Builder
	for _, r := range token {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}

	return n
}

// teeSink fans one message out to several sinks in order. Sinks are added
// before Run starts; Emit itself is only called from the coordinator.
type teeSink struct {
	sinks []lotto.Sink
}

func (t *teeSink) add(sink lotto.Sink) {
	t.sinks = append(t.sinks, sink)
}

func (t *teeSink) Emit(msg string) {
	for _, sink := range t.sinks {
		sink.Emit(msg)
	}
}

// printTicketErrors writes every joined validation message on its own line.
func printTicketErrors(cmd *cobra.Command, err error) {
	if !errors.Is(err, lotto.ErrInvalidTicket) {
		return
	}

	for line := range strings.SplitSeq(err.Error(), "\n") {
		fmt.Fprintln(cmd.ErrOrStderr(), line)
	}
}
