package main

import (
	"flag"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sangoku/internal/engine"
	"sangoku/internal/server/game"
	httpserver "sangoku/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 没有图形界面时打不开也无所谓
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "./web", "directory with index.html / mobile.html / assets")
	depth := flag.Int("depth", engine.DefaultDepth, "engine search depth after the root move")
	seed := flag.Uint64("seed", 0, "tie-break seed (0 = time based)")
	noBrowser := flag.Bool("no-browser", false, "do not open the browser")
	logLevel := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	opts := []engine.Option{engine.WithDepth(*depth), engine.WithLogger(log.Logger)}
	if *seed != 0 {
		opts = append(opts, engine.WithSeed(*seed))
	}
	srv := httpserver.NewServer(game.NewManager(engine.NewEngine(opts...)), *webDir, "")

	log.Info().Str("addr", *addr).Str("web", *webDir).Int("depth", *depth).Msg("listening")

	if !*noBrowser {
		// 稍等服务器起来再开浏览器
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
