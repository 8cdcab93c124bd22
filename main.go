package main

import (
	"fmt"
	"github.com/cwkr/famous-people/internal/fileutil"
	"github.com/cwkr/famous-people/internal/people"
	"github.com/cwkr/famous-people/internal/server"
	"github.com/cwkr/famous-people/internal/settings"
	"github.com/cwkr/famous-people/internal/views"
	"github.com/urfave/cli/v2"
	"log"
	"net/http"
	"os"
	"time"
)

var version = "v0.0.0-dev"

func main() {
	log.SetOutput(os.Stdout)

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "famous-people",
		Usage:   "Serve a small directory of famous people",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "settings file name (Hjson or JSON with comments)",
				EnvVars: []string{"PEOPLE_CONFIG"},
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "port to listen on",
				EnvVars: []string{"PORT"},
				Value:   settings.DefaultPort,
			},
			&cli.StringFlag{
				Name:  "public",
				Usage: "directory with static files",
			},
			&cli.BoolFlag{
				Name:  "minify",
				Usage: "minify rendered HTML",
			},
			&cli.BoolFlag{
				Name:  "save",
				Usage: "save settings and exit",
			},
		},
		Action: run,
	}
}

// loadSettings applies defaults, then the settings file, then command line
// flags and environment variables.
func loadSettings(c *cli.Context) (*settings.Server, string, error) {
	var settingsFilename = fileutil.ProbeSettingsFilename(c.String("config"))
	var serverSettings = settings.NewDefault(settings.DefaultPort)

	if err := serverSettings.Load(settingsFilename); err != nil {
		return nil, settingsFilename, err
	}

	if c.IsSet("port") {
		serverSettings.Port = c.Int("port")
	}
	if c.IsSet("public") {
		serverSettings.PublicDir = c.String("public")
	}
	if c.IsSet("minify") {
		serverSettings.Minify = c.Bool("minify")
	}

	return serverSettings, settingsFilename, serverSettings.Validate()
}

func run(c *cli.Context) error {
	var serverSettings, settingsFilename, err = loadSettings(c)
	if err != nil {
		return err
	}

	if c.Bool("save") {
		log.Printf("Saving settings file %s", settingsFilename)
		return serverSettings.Save(settingsFilename)
	}

	peopleStore, err := people.NewEmbeddedStore(serverSettings.Dataset())
	if err != nil {
		return err
	}

	renderer, err := views.New(serverSettings.Title, serverSettings.Minify)
	if err != nil {
		return err
	}

	var router = server.NewRouter(peopleStore, renderer, server.RouterOptions{
		PublicDir: serverSettings.PublicDir,
		Version:   version,
	})

	var httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", serverSettings.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	log.Printf("Listening on http://localhost:%d/", serverSettings.Port)
	return httpServer.ListenAndServe()
}
