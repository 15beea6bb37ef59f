// Package main is the keywatch demo: it loads a rule set, listens for
// terminal key events, and shows which rules fire.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keywatch/internal/catalog"
	"github.com/dshills/keywatch/internal/dispatch"
	"github.com/dshills/keywatch/internal/key"
	"github.com/dshills/keywatch/internal/platform"
	"github.com/dshills/keywatch/internal/rules"
	"github.com/dshills/keywatch/internal/source"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	rulesPath string
	watch     bool
	userAgent string
}

func main() {
	os.Exit(run())
}

func run() int {
	log.SetFlags(0)
	opts := parseFlags()

	if opts.userAgent == "" {
		opts.userAgent = defaultUserAgent()
	}
	platform.SetUserAgent(opts.userAgent)

	var fired []string
	record := func(action string, ev key.Event) error {
		fired = append(fired, fmt.Sprintf("%s  (key %s)", action, ev))
		if len(fired) > 10 {
			fired = fired[len(fired)-10:]
		}
		return nil
	}

	dispatcher, watcher, err := buildDispatcher(opts, record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if watcher != nil {
		defer watcher.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	var last key.Event
	var dispatchErr error
	for {
		draw(screen, opts, dispatcher, last, fired, dispatchErr)

		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return 0
			}
			kev, ok := source.FromTcell(tev)
			if !ok {
				continue
			}
			last = kev
			dispatchErr = dispatcher.Dispatch(kev)
		}
	}
}

// buildDispatcher loads the rule file, or installs a demo rule set when no
// file was given.
func buildDispatcher(opts options, action rules.ActionFunc) (*dispatch.Dispatcher, *rules.Watcher, error) {
	dispatcher := dispatch.NewDispatcher()

	if opts.rulesPath == "" {
		for _, r := range demoRules(action) {
			dispatcher.Add(r)
		}
		return dispatcher, nil, nil
	}

	loader := rules.NewLoader(catalog.Default())
	loaded, err := loader.LoadFile(opts.rulesPath, action)
	if err != nil {
		return nil, nil, err
	}
	dispatcher.SetRules(loaded)

	if !opts.watch {
		return dispatcher, nil, nil
	}
	watcher, err := rules.WatchFile(opts.rulesPath, loader, action, dispatcher)
	if err != nil {
		return nil, nil, err
	}
	return dispatcher, watcher, nil
}

// demoRules is the built-in rule set used when no rules file is given.
func demoRules(action rules.ActionFunc) []dispatch.Rule {
	mk := func(tag string) dispatch.Callback {
		return func(ev key.Event) error { return action(tag, ev) }
	}
	return []dispatch.Rule{
		dispatch.NewRule(mk("confirm"), catalog.Enter).WithName("confirm"),
		dispatch.NewRule(mk("cancel"), catalog.Escape).WithName("cancel"),
		dispatch.NewRule(mk("primary-modifier"), catalog.Mod1).WithName("primary-modifier"),
		dispatch.NewRule(mk("move"), catalog.Or(catalog.Up, catalog.Down, catalog.Left, catalog.Right)).WithName("move"),
		dispatch.NewRule(mk("space-no-shift"), catalog.Spacebar).WithExcluded(catalog.Shift).WithName("space-no-shift"),
	}
}

func draw(screen tcell.Screen, opts options, d *dispatch.Dispatcher, last key.Event, fired []string, dispatchErr error) {
	screen.Clear()
	style := tcell.StyleDefault

	puts(screen, 0, 0, style.Bold(true), fmt.Sprintf("keywatch %s  (Ctrl+C quits)", version))
	puts(screen, 0, 1, style, fmt.Sprintf("user agent: %s  macOS=%v", opts.userAgent, platform.IsMacOS()))
	puts(screen, 0, 2, style, fmt.Sprintf("rules: %d", d.Len()))
	if last.Key != "" {
		puts(screen, 0, 4, style, fmt.Sprintf("last key: %s", last))
	}

	puts(screen, 0, 6, style.Underline(true), "fired:")
	for i, line := range fired {
		puts(screen, 2, 7+i, style, line)
	}
	if dispatchErr != nil {
		puts(screen, 0, 18, style.Foreground(tcell.ColorRed), fmt.Sprintf("error: %v", dispatchErr))
	}

	screen.Show()
}

func puts(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// defaultUserAgent synthesizes an ambient user agent from the build OS so
// the OS-aware predicates behave sensibly out of the box.
func defaultUserAgent() string {
	switch runtime.GOOS {
	case "darwin":
		return "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
	case "windows":
		return "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	default:
		return "Mozilla/5.0 (X11; Linux x86_64)"
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.rulesPath, "rules", "", "Path to a TOML rules file")
	flag.StringVar(&opts.rulesPath, "r", "", "Path to a TOML rules file (shorthand)")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the rules file on change")
	flag.StringVar(&opts.userAgent, "ua", "", "Override the ambient user agent")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keywatch - keystroke rule matcher demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keywatch [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keywatch                        Run with the built-in demo rules\n")
		fmt.Fprintf(os.Stderr, "  keywatch -rules my.toml -watch  Load rules and reload on change\n")
		fmt.Fprintf(os.Stderr, "  keywatch -ua \"Macintosh\"        Pretend to be macOS\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("keywatch %s\n", version)
		os.Exit(0)
	}

	return opts
}
