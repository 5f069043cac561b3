package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/SscSPs/currency_converter/internal/adapters/providers"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/core/services"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/internal/platform/store"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/shopspring/decimal"
)

const updatedLayout = "2006-01-02 15:04:05"

func main() {
	// Prompts own stdout; logs go to stderr and only when something is wrong.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repos, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open rate store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	source := providers.NewDefaultAggregator(
		providers.NewHTTPClient(cfg.ProviderTimeout),
		providers.URLs{ECB: cfg.ECBURL, Frankfurter: cfg.FrankfurterURL, CoinGecko: cfg.CoinGeckoURL},
		logger,
		nil,
	)

	container, err := services.NewServiceContainer(ctx, cfg, repos, source, nil)
	if err != nil {
		logger.Error("Failed to initialize converter", slog.String("error", err.Error()))
		_ = repos.RateRepo.Close()
		os.Exit(1)
	}
	defer container.Converter.Close()

	if err := run(ctx, os.Stdin, os.Stdout, container.Converter); err != nil {
		logger.Error("Session ended", slog.String("error", err.Error()))
	}
}

// session reads answers line by line and writes prompts and results.
type session struct {
	in   *bufio.Scanner
	out  io.Writer
	lang string
}

// run asks for a language, a pair and an amount, then prints the conversion.
// Conversion errors are printed for the user; only an input failure is returned.
func run(ctx context.Context, in io.Reader, out io.Writer, conv portssvc.ConverterSvc) error {
	s := &session{in: bufio.NewScanner(in), out: out}

	if err := s.chooseLanguage(); err != nil {
		return err
	}
	pair, err := s.ask(s.text(`Enter currencies like: "RUB - USD": `, `Введите валюты в формате, например: "RUB - USD": `))
	if err != nil {
		return err
	}
	amount, err := s.askAmount()
	if err != nil {
		return err
	}

	res, err := conv.ConvertPair(ctx, pair, amount)
	if err != nil {
		fmt.Fprintln(s.out, s.text("Error: ", "Ошибка: ")+err.Error())
		return nil
	}

	fmt.Fprintf(s.out, "%s %s = %s %s\n",
		utils.FormatAmount(amount, s.lang), res.Base,
		utils.FormatAmount(res.Result, s.lang), res.Quote)
	fmt.Fprintf(s.out, "%s: %s | %s: %s | %s: %s\n",
		s.text("Rate", "Курс"), utils.FormatRate(res.Rate, s.lang),
		s.text("Updated", "Обновлено"), res.FetchedAt.Local().Format(updatedLayout),
		s.text("Source", "Источник"), res.Source)
	return nil
}

func (s *session) chooseLanguage() error {
	for {
		answer, err := s.ask("Choose language: русский/english (ru/eng): ")
		if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case utils.LangRussian:
			s.lang = utils.LangRussian
			return nil
		case utils.LangEnglish:
			s.lang = utils.LangEnglish
			return nil
		}
		fmt.Fprintln(s.out, "Please type 'ru' or 'eng' / Пожалуйста, введите 'ru' или 'eng'.")
	}
}

func (s *session) askAmount() (decimal.Decimal, error) {
	for {
		raw, err := s.ask(s.text("Enter amount: ", "Введите сумму: "))
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := utils.ParseAmount(raw)
		if err == nil {
			return amount, nil
		}
		fmt.Fprintln(s.out, s.text("Invalid amount, try again.", "Некорректная сумма, попробуйте ещё раз."))
	}
}

func (s *session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) text(eng, ru string) string {
	if s.lang == utils.LangRussian {
		return ru
	}
	return eng
}
