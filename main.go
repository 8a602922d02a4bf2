package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/lonng/mjeff/db"
	"github.com/lonng/mjeff/internal/cache"
	"github.com/lonng/mjeff/internal/game"
	"github.com/lonng/mjeff/internal/hint"
	"github.com/lonng/mjeff/internal/hooks"
	"github.com/lonng/mjeff/internal/web"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "mjeff"
	app.Author = "MaJong"
	app.Version = "0.1.0"
	app.Copyright = "majong team reserved"
	app.Usage = "mahjong hand efficiency (shanten & ukeire) server"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "cpuprofile",
			Usage: "enable cpu profile",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "start the web and game servers",
			Action: serve,
		},
		{
			Name:      "analyze",
			Usage:     "analyze a hand in the terminal",
			ArgsUsage: "TILE...",
			Action:    analyze,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "rule, r",
					Usage: "rule name, default/changsha",
				},
				cli.BoolFlag{
					Name:  "advise, a",
					Usage: "rank every discard of a 3k+2 hand",
				},
			},
		},
	}

	app.Action = serve
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) {
	viper.SetConfigType("toml")
	viper.SetConfigFile(c.GlobalString("config"))
	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("read config: %v", err)
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
		log.AddHook(hooks.NewHook())
	}
}

func profile(c *cli.Context) func() {
	if !c.GlobalBool("cpuprofile") {
		return func() {}
	}

	filename := fmt.Sprintf("cpuprofile-%d.pprof", time.Now().Unix())
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE, os.ModePerm)
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}
}

func dbStartup() func() {
	dsn := db.BuildDSN(
		viper.GetString("database.host"),
		viper.GetInt("database.port"),
		viper.GetString("database.username"),
		viper.GetString("database.password"),
		viper.GetString("database.dbname"),
		viper.GetString("database.args"))

	return db.MustStartup(
		dsn,
		db.MaxIdleConns(viper.GetInt("database.max_idle_conns")),
		db.MaxOpenConns(viper.GetInt("database.max_open_conns")),
		db.ShowSQL(viper.GetBool("database.show_sql")))
}

func serve(c *cli.Context) error {
	setup(c)
	defer profile(c)()

	svc, err := hint.NewService(log.WithField("component", "main"), hint.ConfigFromViper())
	if err != nil {
		return err
	}

	if viper.GetBool("database.enable") {
		closer := dbStartup()
		defer closer()
	}

	if viper.GetBool("cache.enable") {
		closer := cache.MustBootUp(
			viper.GetString("cache.addr"),
			cache.Database(viper.GetInt("cache.db")),
			cache.Password(viper.GetString("cache.password")),
			cache.Expire(viper.GetInt("cache.expire")))
		defer closer()
	}

	wg := sync.WaitGroup{}
	if viper.GetBool("game-server.enable") {
		wg.Add(1)
		go func() { defer wg.Done(); game.Startup(svc) }() // 开启实时提示服
	}
	if viper.GetBool("webserver.enable") {
		wg.Add(1)
		go func() { defer wg.Done(); web.Startup(svc) }() // 开启web服务器
	}

	wg.Wait()
	return nil
}
