// Command stillness-preview renders colouring-book patterns to image
// files for review.
//
// Usage:
//
//	stillness-preview -pattern mandala
//	stillness-preview -all -format svg -out previews
//	stillness-preview -pattern 13 -seed 7 -caption -thumb 160
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/stillness"
	"github.com/gogpu/stillness/patterns"
	"github.com/gogpu/stillness/render"
	_ "github.com/gogpu/stillness/render/pdf"
	"github.com/gogpu/stillness/render/raster"
	_ "github.com/gogpu/stillness/render/svg"
)

// extensions maps backend names to file extensions.
var extensions = map[string]string{
	"png": ".png",
	"svg": ".svg",
	"pdf": ".pdf",
}

type config struct {
	format  string
	theme   string
	seed    uint64
	size    int
	out     string
	caption bool
	thumb   int
}

func main() {
	var (
		pattern = flag.String("pattern", "", "pattern name or index")
		all     = flag.Bool("all", false, "render every pattern")
		list    = flag.Bool("list", false, "list patterns and themes, then exit")
		format  = flag.String("format", "png", "output format: "+strings.Join(render.Backends(), ", "))
		theme   = flag.String("theme", stillness.DefaultTheme, "colour theme")
		seed    = flag.Uint64("seed", 1, "random seed for randomised patterns")
		size    = flag.Int("size", stillness.Size, "output width and height")
		out     = flag.String("out", "previews", "output directory")
		caption = flag.Bool("caption", false, "add the pattern name below PNG output")
		thumb   = flag.Int("thumb", 0, "also write a PNG thumbnail of this size")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	stillness.SetLogger(logger)

	if *list {
		printList()
		return
	}

	indices, err := selectPatterns(*pattern, *all)
	if err != nil {
		log.Printf("%v", err)
		usage()
		os.Exit(2)
	}
	if _, ok := extensions[*format]; !ok || !render.IsRegistered(*format) {
		log.Printf("unknown format %q", *format)
		usage()
		os.Exit(2)
	}
	if _, err := stillness.Theme(*theme); err != nil {
		log.Printf("%v", err)
		usage()
		os.Exit(2)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	cfg := config{
		format:  *format,
		theme:   *theme,
		seed:    *seed,
		size:    *size,
		out:     *out,
		caption: *caption,
		thumb:   *thumb,
	}
	for _, i := range indices {
		if err := renderPattern(cfg, i); err != nil {
			log.Fatalf("Failed to render %s: %v", patterns.Default.Pattern(i).Name, err)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: stillness-preview [flags] (-pattern name|index | -all)\n\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPatterns: %s\n", strings.Join(patterns.Default.Names(), ", "))
}

func printList() {
	for i, name := range patterns.Default.Names() {
		fmt.Printf("%2d  %s\n", i, name)
	}
	fmt.Println()
	for _, name := range stillness.ThemeNames() {
		fmt.Printf("theme  %s\n", name)
	}
}

// selectPatterns resolves the -pattern and -all flags to registry indices.
func selectPatterns(pattern string, all bool) ([]int, error) {
	if all {
		indices := make([]int, patterns.Default.Count())
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}
	if pattern == "" {
		return nil, fmt.Errorf("no pattern selected")
	}
	if i, err := strconv.Atoi(pattern); err == nil {
		if i < 0 || i >= patterns.Default.Count() {
			return nil, fmt.Errorf("pattern index %d out of range [0, %d)", i, patterns.Default.Count())
		}
		return []int{i}, nil
	}
	i, err := patterns.Default.Lookup(pattern)
	if err != nil {
		return nil, err
	}
	return []int{i}, nil
}

func renderPattern(cfg config, index int) error {
	c := stillness.NewContext(stillness.WithTheme(cfg.theme), stillness.WithSeed(cfg.seed))
	art := patterns.Default.Generate(c, index)

	var b render.Backend
	if cfg.format == "png" {
		b = raster.NewBackend(raster.WithCaption(cfg.caption))
	} else {
		var err error
		if b, err = render.NewBackend(cfg.format); err != nil {
			return err
		}
	}
	if err := render.Playback(art, b, cfg.size); err != nil {
		return err
	}

	base := cases.Lower(language.Und).String(art.Name)
	path := filepath.Join(cfg.out, base+extensions[cfg.format])
	fb, ok := b.(render.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", cfg.format)
	}
	if err := fb.SaveToFile(path); err != nil {
		return err
	}
	slog.Info("pattern written", "pattern", art.Name, "path", path, "shapes", len(art.Shapes))

	if cfg.thumb > 0 {
		rb, ok := b.(*raster.Backend)
		if !ok {
			rb = raster.NewBackend()
			if err := render.Playback(art, rb, cfg.size); err != nil {
				return err
			}
		}
		return writeThumbnail(rb, cfg.thumb, filepath.Join(cfg.out, base+"-thumb.png"))
	}
	return nil
}

func writeThumbnail(b *raster.Backend, side int, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, b.Thumbnail(side)); err != nil {
		return err
	}
	slog.Info("thumbnail written", "path", path, "size", side)
	return nil
}
