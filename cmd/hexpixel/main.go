package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"unicode/utf8"

	"github.com/bodgit/hexpixel"
	"github.com/bodgit/hexpixel/b64"
	"github.com/bodgit/hexpixel/config"
	"github.com/bodgit/hexpixel/grid"
	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-colorable"
	"github.com/urfave/cli/v2"
)

const (
	previewEncoded = 60
	previewColors  = 10
)

var errNoDB = errors.New("history requires a database, set --db")

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if c.String("config") == "" {
		return config.Default(), nil
	}
	return config.Load(c.String("config"))
}

// open returns a HexPixel and the loaded config. The returned function
// closes the history database if one was opened.
func open(c *cli.Context) (*hexpixel.HexPixel, *config.Config, func(), error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, nil, err
	}

	var db *hexpixel.HistoryDB
	closer := func() {}
	if file := c.String("db"); file != "" {
		if db, err = hexpixel.NewHistoryDB(file); err != nil {
			return nil, nil, nil, err
		}
		closer = func() { db.Close() }
	}

	return hexpixel.New(db, newLogger(c)), cfg, closer, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func status(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAILED"
}

func stringFlag(c *cli.Context, name, fallback string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return fallback
}

func encodeAction(c *cli.Context) error {
	h, cfg, closer, err := open(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer closer()

	text := c.Args().First()
	if c.NArg() < 1 {
		prompt := promptui.Prompt{
			Label: fmt.Sprintf("Enter text to encode (will be saved base64 to %s)", stringFlag(c, "output", cfg.HexText)),
		}
		if text, err = prompt.Run(); err != nil {
			return cli.NewExitError(fmt.Errorf("aborted: %w", err), 1)
		}
	}

	file := stringFlag(c, "output", cfg.HexText)

	if c.Bool("json") {
		codes := h.Table().Codes(text)
		b, err := prettyjson.Marshal(codes)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintln(c.App.Writer, string(b))
	}

	var s string
	var ok bool
	if c.Bool("colors") {
		s, ok, err = h.EncodeColors(text, file)
	} else {
		s, ok, err = h.EncodeText(text, file)
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintf(c.App.Writer, "Base64 encoded and saved to %s (%s)\n", file, status(ok))
	fmt.Fprintf(c.App.Writer, "Base64: %s\n", truncate(s, previewEncoded))

	return nil
}

func imageAction(c *cli.Context) error {
	h, cfg, closer, err := open(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer closer()

	layout, err := grid.ParseLayout(stringFlag(c, "layout", cfg.Layout))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	input := stringFlag(c, "input", cfg.HexText)
	output := stringFlag(c, "output", cfg.Image)

	codesFrom := h.TextFileToCodes
	if c.Bool("hex") {
		codesFrom = h.HexFileToCodes
	}

	codes, err := codesFrom(input)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if len(codes) > previewColors {
		fmt.Fprintf(c.App.Writer, "Encoded text: %v...\n", codes[:previewColors])
	} else {
		fmt.Fprintf(c.App.Writer, "Encoded text: %v\n", codes)
	}

	m, err := h.WriteImage(codes, output, layout)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintf(c.App.Writer, "Image saved as %s\n", output)
	fmt.Fprintf(c.App.Writer, "Image size: %dx%d pixels (%d color pixels)\n", m.Bounds().Dx(), m.Bounds().Dy(), len(codes))

	if preview := c.String("preview"); preview != "" {
		scale := cfg.PreviewScale
		if c.IsSet("scale") || scale == 0 {
			scale = c.Int("scale")
		}
		if err := h.WritePreview(m, preview, scale); err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintf(c.App.Writer, "Preview saved as %s\n", preview)
	}

	return nil
}

func decodeAction(c *cli.Context) error {
	h, cfg, closer, err := open(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer closer()

	img := cfg.Image
	if c.NArg() > 0 {
		img = c.Args().First()
	}
	raw := stringFlag(c, "raw", cfg.DecodedBase64)
	out := stringFlag(c, "output", cfg.DecodedText)

	fmt.Fprintf(c.App.Writer, "Decoding image: %s\n", img)

	text, result, err := h.DecodeFiles(img, raw, out)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintf(c.App.Writer, "\nDecoded characters from image:\n%s\n", text)
	fmt.Fprintf(c.App.Writer, "Saved decoded characters to %s\n", raw)

	switch result.Kind {
	case b64.Text:
		fmt.Fprintf(c.App.Writer, "Base64 decode successful, saved to %s\n", out)
		fmt.Fprintf(c.App.Writer, "\nDecoded text:\n%s\n", result.String())
	case b64.Bytes:
		fmt.Fprintf(c.App.Writer, "Base64 decode successful, saved %d raw bytes to %s (not UTF-8)\n", len(result.Data), out)
	default:
		fmt.Fprintln(c.App.Writer, "Decoded characters do not appear to be valid base64.")
	}

	return nil
}

func historyAction(c *cli.Context) error {
	if c.String("db") == "" {
		return cli.NewExitError(errNoDB, 1)
	}

	db, err := hexpixel.NewHistoryDB(c.String("db"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	records, err := db.History(c.Int("limit"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	for _, r := range records {
		fmt.Fprintf(c.App.Writer, "%s  %-6s  %3dx%-3d  %.12s  %s  %s\n",
			r.Created.Format("2006-01-02 15:04:05"), r.Direction, r.Width, r.Height, r.SHA1, r.Path, truncate(r.Payload, previewEncoded))
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "hexpixel"
	app.Usage = "Hide text in images, one colored pixel per character"
	app.Version = "1.0.0"
	app.Writer = colorable.NewColorableStdout()

	configPath, err := config.DefaultPath()
	if err != nil {
		configPath = ""
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"HEXPIXEL_CONFIG"},
			Value:   configPath,
			Usage:   "path to config file",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"HEXPIXEL_DB"},
			Usage:   "path to history database, history is not kept if unset",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "table",
			Usage:       "Print the character to color mapping",
			Description: "With TEXT, only the characters used by TEXT are printed.",
			ArgsUsage:   "[TEXT]",
			Action:      tableAction,
		},
		{
			Name:        "encode",
			Usage:       "Base64 encode text and save it for painting",
			Description: "Text is read from the first argument or prompted for.",
			ArgsUsage:   "[TEXT]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "payload file to write",
				},
				&cli.BoolFlag{
					Name:  "colors",
					Usage: "save the color list as base64 JSON instead of the raw text",
				},
				&cli.BoolFlag{
					Name:  "json",
					Usage: "print the color list of the text as JSON",
				},
			},
			Action: encodeAction,
		},
		{
			Name:        "image",
			Usage:       "Paint a payload file into an image",
			Description: "",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "input",
					Aliases: []string{"i"},
					Usage:   "payload file to read",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "image file to write, .png or .tiff",
				},
				&cli.StringFlag{
					Name:  "layout",
					Usage: "pixel layout, square or linear",
				},
				&cli.BoolFlag{
					Name:  "hex",
					Usage: "read #RRGGBB codes from the payload instead of characters",
				},
				&cli.StringFlag{
					Name:  "preview",
					Usage: "also write an enlarged preview image",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 16,
					Usage: "preview enlargement factor",
				},
			},
			Action: imageAction,
		},
		{
			Name:        "decode",
			Usage:       "Read the characters back out of an image",
			Description: "",
			ArgsUsage:   "[IMAGE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "raw",
					Usage: "file to write the raw decoded characters to",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "file to write the base64 decoded text to",
				},
			},
			Action: decodeAction,
		},
		{
			Name:        "history",
			Usage:       "List images previously written or read",
			Description: "",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "limit",
					Value: 20,
					Usage: "maximum number of entries, 0 for all",
				},
			},
			Action: historyAction,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
