/*

primeforge reads an unmodified disc image, a seed, and a JSON
configuration document, and writes a patched disc image. It applies the
DOL patch catalog to the main executable; it registers no pickup or door
patches.

*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/tallonforge/primeforge/disc"
	"github.com/tallonforge/primeforge/dol"
	"github.com/tallonforge/primeforge/patcher"
	"github.com/tallonforge/primeforge/patchcfg"
	"github.com/tallonforge/primeforge/res"
)

const (
	appName    = "primeforge"
	appVersion = "v0.1.0"
)

const (
	ExitCodeMissingArguments    = 1
	ExitCodeFailedToReadConfig  = 2
	ExitCodeFailedToOpenImage   = 3
	ExitCodeFailedToPatch       = 4
	ExitCodeFailedToWriteOutput = 5
)

var (
	version    = flag.Bool("version", false, "print version info and exit")
	configPath = flag.String("config", "", "path to the JSON patch configuration")
	inputISO   = flag.String("input", "", "override config's inputIso")
	outputISO  = flag.String("output", "", "override config's outputIso")
	seed       = flag.Uint64("seed", 0, "override config's seed (0 keeps the config value)")
)

func main() {
	flag.Parse()

	if *version {
		printVersion()
		return
	}

	if *configPath == "" {
		printUsage()
		os.Exit(ExitCodeMissingArguments)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
		os.Exit(ExitCodeFailedToReadConfig)
	}
	if *inputISO != "" {
		cfg.InputISO = *inputISO
	}
	if *outputISO != "" {
		cfg.OutputISO = *outputISO
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	raw, err := os.ReadFile(cfg.InputISO)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input image: %v\n", err)
		os.Exit(ExitCodeFailedToOpenImage)
	}

	img, err := disc.Open(raw, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open disc image: %v\n", err)
		os.Exit(ExitCodeFailedToOpenImage)
	}

	if err := run(img, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to patch image: %v\n", err)
		os.Exit(ExitCodeFailedToPatch)
	}

	img.MarkPatched(cfg.GameConfig.Comment)

	out, err := os.Create(cfg.OutputISO)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output file: %v\n", err)
		os.Exit(ExitCodeFailedToWriteOutput)
	}
	defer func() {
		if err := out.Close(); err != nil {
			panic(err)
		}
	}()
	if err := writeImage(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(ExitCodeFailedToWriteOutput)
	}
}

func loadConfig(path string) (*patchcfg.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg patchcfg.Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// run builds the driver, registers the DOL patch catalog against the
// disc's own version tuple, and walks the archive tree.
func run(img *disc.Image, cfg *patchcfg.Config) error {
	st, err := dol.NewSymbolTable(disc.Tuple{
		GameID:  string(img.Header.GameID[:]),
		DiscID:  img.Header.DiscID,
		Version: img.Header.Version,
	})
	if err != nil {
		return err
	}

	kernel := res.NewKernel()
	pool := patcher.NewPool(cfg.Seed, kernel)
	driver := patcher.NewDriver(kernel, pool)

	const mainDolPath = "&&systemdata/Default.dol"
	driver.RegisterFilePatch(mainDolPath, func(f *disc.File) error {
		dolImg, err := dol.Decode(f.Data)
		if err != nil {
			return err
		}
		for _, p := range dol.Patches() {
			if err := p.Func(dolImg, st, cfg); err != nil {
				return fmt.Errorf("dol patch %s: %w", p.Name, err)
			}
		}
		f.Data = dolImg.Encode()
		return nil
	})

	return driver.Drive(img)
}

// writeImage streams the patched file tree to w. The real container
// (ISO/GCZ/CISO) encoder is out of scope; callers that need one supply
// a disc.Sink wrapping this function's destination.
func writeImage(w disc.Sink, img *disc.Image) error {
	for _, f := range img.Files {
		if _, err := w.Write(f.Data); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	return nil
}

func printVersion() {
	fmt.Println(appName, "version:", appVersion)
	fmt.Println("Supported disc tuples:", len(disc.SupportedTuples))
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Printf("\t%s -config patch.json [-input in.iso] [-output out.iso] [-seed N]\n", os.Args[0])
	fmt.Println("\tRun with '-h' to see a list of available flags.")
}
