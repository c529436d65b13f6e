package main

import (
	"errors"
	"flag"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/card-war/config"
	"github.com/luca-patrignani/card-war/domain/war"
	"github.com/luca-patrignani/card-war/store"
)

func main() {
	configPath := flag.String("config", "", "JSON configuration file")
	backend := flag.String("backend", "", "where games are saved: file or sqlite")
	savePath := flag.String("save", "", "saved game file (file backend)")
	dbPath := flag.String("db", "", "database path (sqlite backend)")
	slot := flag.String("slot", "", "save slot (sqlite backend)")
	debug := flag.Bool("debug", false, "log round details")
	flag.Parse()

	cfg, problems := resolveConfig(loadConfig(*configPath), flagValues{
		backend:  *backend,
		savePath: *savePath,
		dbPath:   *dbPath,
		slot:     *slot,
		debug:    *debug,
	})
	for _, p := range problems {
		pterm.Warning.Println(p.Error())
	}

	level := pterm.LogLevelInfo
	if cfg.Debug {
		level = pterm.LogLevelDebug
	}
	// Create a new slog logger backed by the PTerm logger
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Card ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("War", pterm.FgRed.ToStyle()),
	).Render()

	st, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open the save store", "error", err)
		pterm.Warning.Println("Saving and loading are disabled for this game.")
	}
	defer closeStore()

	var session *war.Session
	opts := []war.Option{
		war.WithLogger(logger),
		war.OnRound(func(o war.Outcome) { printRound(session, o) }),
	}

	if st != nil && confirm("Do you want to load a saved game?") {
		session = loadSession(st, opts)
	}
	if session == nil {
		session = newSession(opts)
	}
	pterm.Info.Printfln("%s vs %s, %d cards in the deck", session.Players[0].Name, session.Players[1].Name, session.Deck.Remaining())

	play(session)

	if st != nil && confirm("Do you want to save the game?") {
		if err := st.Save(session); err != nil {
			logger.Error("failed to save the game", "error", err)
			pterm.Error.Printfln("Could not save the game: %s", err)
		} else {
			pterm.Success.Println("Game state saved successfully!")
		}
	}
}

// flagValues holds the command line settings; empty strings mean unset.
type flagValues struct {
	backend  string
	savePath string
	dbPath   string
	slot     string
	debug    bool
}

// resolveConfig applies the flags over base and resets only the fields that
// end up invalid, returning one problem per reset field.
func resolveConfig(base config.Config, f flagValues) (config.Config, []error) {
	cfg := base
	if f.backend != "" {
		cfg.Backend = f.backend
	}
	if f.savePath != "" {
		cfg.SavePath = f.savePath
	}
	if f.dbPath != "" {
		cfg.DBPath = f.dbPath
	}
	if f.slot != "" {
		cfg.Slot = f.slot
	}
	cfg.Debug = cfg.Debug || f.debug
	return cfg.Repair()
}

// loadConfig reads the config file. A file that parses but holds invalid
// values is kept, resolveConfig repairs it field by field.
func loadConfig(path string) config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, config.ErrInvalid):
		return cfg
	case err != nil:
		pterm.Warning.Printfln("%s, using the defaults", err)
		return config.Default()
	}
	return cfg
}

// openStore returns the configured store and a function releasing it.
func openStore(cfg config.Config, logger *slog.Logger) (*store.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		b, err := store.NewSQLiteBackend(cfg.DBPath, cfg.Slot)
		if err != nil {
			return nil, func() {}, err
		}
		return store.New(b, logger), func() { b.Close() }, nil
	default:
		return store.New(store.NewFileBackend(cfg.SavePath), logger), func() {}, nil
	}
}

// loadSession returns the saved session, or nil when a new game must be
// started instead.
func loadSession(st *store.Store, opts []war.Option) *war.Session {
	s, err := st.Load(opts...)
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		pterm.Info.Println("No saved game found. Starting a new game.")
		return nil
	case err != nil:
		pterm.Error.Printfln("Could not load the saved game: %s", err)
		pterm.Info.Println("Starting a new game.")
		return nil
	}
	pterm.Success.Println("Game state loaded successfully!")
	return s
}

func newSession(opts []war.Option) *war.Session {
	for {
		s, err := war.New(askName(1), askName(2), opts...)
		if err == nil {
			return s
		}
		pterm.Warning.Println(err.Error())
	}
}

func askName(n int) string {
	for {
		name, err := pterm.DefaultInteractiveTextInput.WithDefaultText(pterm.Sprintf("Please enter name for Player %d", n)).Show()
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		pterm.Println()
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
		pterm.Warning.Println("The name must not be empty")
	}
}

// play asks for the round limit and runs the game. An invalid limit skips
// the play phase.
func play(s *war.Session) {
	text, err := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter the number of rounds to play").Show()
	pterm.Println()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	limit, err := war.ParseRoundLimit(text)
	if err != nil {
		pterm.Error.Printfln("Invalid input (%s). Please enter a valid number of rounds.", err)
		return
	}
	res, err := s.Run(limit)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	printResult(s, res)
	printHistory(s)
}

func confirm(question string) bool {
	ok, err := pterm.DefaultInteractiveConfirm.WithDefaultText(question).WithDefaultValue(false).Show()
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	return ok
}
