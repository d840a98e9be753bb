package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/viktordanov/turtlesystem/config"
	"github.com/viktordanov/turtlesystem/svg"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	configPath = flag.String("config", "", "system description (.toml, .yaml)")
	steps      = flag.Int("steps", -1, "generations to expand (default: from the description)")
	seed       = flag.Uint64("seed", 0, "seed for stochastic actions (default: from the description)")
	out        = flag.String("out", "", "svg output path (default: <name>.svg)")
	printOnly  = flag.Bool("print", false, "print the expanded generation instead of drawing it")
	stats      = flag.String("stats", "", "serve a growth chart on this address, e.g. :8081")
	verbose    = flag.Int("v", 0, "log verbosity")
)

var log = commonlog.GetLogger("lsystem.cmd")

func main() {
	flag.Parse()
	commonlog.Configure(*verbose, nil)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		pprof.StopCPUProfile()
		fatal(err)
	}
}

func run() error {
	path := *configPath
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		return fmt.Errorf("no system description given, see -config")
	}

	desc, err := config.Load(path)
	if err != nil {
		return err
	}
	if *seed != 0 {
		desc.Seed = *seed
	}
	generations := desc.Steps
	if *steps >= 0 {
		generations = *steps
	}

	system, renderer, err := desc.Build()
	if err != nil {
		return err
	}

	if *stats != "" {
		http.HandleFunc("/", system.HandleStatistics(generations))
		log.Noticef("serving growth chart of %s on %s", desc.Name, *stats)
		return http.ListenAndServe(*stats, nil)
	}

	system.StepBy(generations)
	log.Infof("%s: generation %d has %d tokens", desc.Name, system.Generation(), system.Len())

	if *printOnly {
		fmt.Println(system.RenderWith(" "))
		return nil
	}

	opts, err := desc.Options()
	if err != nil {
		return err
	}

	target := *out
	if target == "" {
		target = strings.ReplaceAll(desc.Name, " ", "_") + ".svg"
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := renderer.Render(system, svg.NewRasterizer(f), opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Noticef("wrote %s", target)
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
