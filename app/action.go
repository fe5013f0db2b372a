package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/HSellappan/railfocus/config"
	"github.com/HSellappan/railfocus/internal/timeutil"
	"github.com/HSellappan/railfocus/internal/ui"
	"github.com/HSellappan/railfocus/journey"
	"github.com/HSellappan/railfocus/store"
	"github.com/HSellappan/railfocus/trip"
)

const (
	envNoColor          = "NO_COLOR"
	envRailfocusNoColor = "RAILFOCUS_NO_COLOR"
)

// initLogger routes slog output to a rotated log file in the data
// directory. Must run after the configuration paths are initialised.
func initLogger() {
	w := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, nil)))
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// defaultAction configures a new journey and boards it.
func defaultAction(ctx *cli.Context) error {
	cfg := config.Journey(ctx)

	initLogger()

	ui.DarkTheme = cfg.DarkTheme

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	t, err := trip.New(db, cfg)
	if err != nil {
		return err
	}

	slog.Info(
		"starting journey",
		slog.String("origin", cfg.Origin),
		slog.String("destination", cfg.Destination),
		slog.Duration("duration", cfg.Duration),
	)

	_, err = tea.NewProgram(t).Run()

	return err
}

// resumeAction reboards a suspended journey from its snapshot.
func resumeAction(ctx *cli.Context) error {
	cfg := config.Journey(ctx)

	initLogger()

	ui.DarkTheme = cfg.DarkTheme

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	t, err := trip.Resume(db, cfg)
	if err != nil {
		return err
	}

	slog.Info(
		"resuming suspended journey",
		slog.String("origin", t.Engine.Origin()),
		slog.String("destination", t.Engine.Destination()),
	)

	if t.Engine.Completed() {
		// the reduced background rate carried the journey all the way in
		pterm.Success.Printfln(
			"While you were away, your train arrived at %s!",
			t.Engine.Destination(),
		)

		return nil
	}

	_, err = tea.NewProgram(t).Run()

	return err
}

// historyAction prints a table of journeys started within a time period.
func historyAction(ctx *cli.Context) error {
	cfg := config.Journey(ctx)

	ui.DarkTheme = cfg.DarkTheme

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	days := int(ctx.Uint("days"))
	since := time.Now().AddDate(0, 0, -days)

	records, err := db.GetJourneys(since, time.Now())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		pterm.Info.Printfln("No journeys in the last %d days", days)
		return nil
	}

	tableBody := make([][]string, len(records))

	for i, rec := range records {
		outcome := ui.Green("arrived")
		if !rec.Completed {
			outcome = ui.Magenta("abandoned")
		}

		tableBody[i] = []string{
			rec.StartTime.Format("Jan 02, 2006 03:04 PM"),
			ui.Blue(rec.Origin + " → " + rec.Destination),
			rec.Duration.String(),
			fmt.Sprintf("%d/%d", rec.StopsPassed, rec.StopsTotal),
			outcome,
		}
	}

	tableBody = append([][]string{
		{"DATE", "ROUTE", "DURATION", "STOPS", "OUTCOME"},
	}, tableBody...)

	ui.PrintTable(tableBody, os.Stdout)

	return nil
}

// statusAction prints the status of the active journey, if any.
func statusAction(ctx *cli.Context) error {
	cfg := config.Journey(ctx)

	ui.DarkTheme = cfg.DarkTheme

	s, err := trip.ReadStatus()
	if err != nil {
		// missing file means no journey is running
		return nil
	}

	remaining := time.Until(s.EndTime)
	if remaining < 0 {
		return nil
	}

	pterm.Printfln(
		"[%s] %s: %s",
		s.Phase,
		ui.Highlight(s.Origin+" → "+s.Destination),
		timeutil.FormatRemaining(remaining),
	)

	return nil
}

// quickAction runs the bare countdown used before the journey framing
// existed. No stops, no phases, just the remaining time.
func quickAction(ctx *cli.Context) error {
	mins := 25

	if arg := ctx.Args().First(); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid minutes value: %q", arg)
		}

		mins = n
	}

	c := journey.NewCountdown(time.Duration(mins) * time.Minute)

	fmt.Fprint(os.Stdout, "\033[s")

	last := time.Now()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		c.Tick(now.Sub(last))
		last = now

		fmt.Fprint(os.Stdout, "\033[u\033[K")
		fmt.Fprintf(
			os.Stdout,
			"🕒%s",
			pterm.Yellow(timeutil.FormatRemaining(c.Remaining())),
		)

		if c.Done() {
			fmt.Printf("\nSession completed!\n")
			break
		}
	}

	return nil
}

// editConfigAction opens the config file in the user's default editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := config.Journey(ctx)

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envRailfocusNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting railfocus")

	return nil
}
