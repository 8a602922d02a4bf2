package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lonng/mjeff/internal/hint"
	"github.com/lonng/mjeff/pkg/mahjong"
	"github.com/lonng/mjeff/protocol"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func analyze(c *cli.Context) error {
	setup(c)
	defer profile(c)()

	if c.NArg() == 0 {
		return cli.NewExitError("no tiles, e.g. mjeff analyze 123m 456p 789s EEE 1s", 1)
	}

	svc, err := hint.NewService(log.WithField("component", "cli"), hint.ConfigFromViper())
	if err != nil {
		return err
	}

	req := &protocol.AnalyzeRequest{
		Hand: strings.Join(c.Args(), " "),
		Rule: c.String("rule"),
	}
	return runAnalyze(os.Stdout, svc, req, c.Bool("advise"))
}

func runAnalyze(w io.Writer, svc hint.Service, req *protocol.AnalyzeRequest, advise bool) error {
	meta := hint.Meta{Source: "cli"}
	ctx := context.Background()

	tiles, err := mahjong.Parse(req.Hand)
	if err != nil {
		return err
	}

	if len(tiles)%3 != 2 {
		res, err := svc.Analyze(ctx, req, meta)
		if err != nil {
			return err
		}
		printAnalysis(w, res)
		return nil
	}

	win, err := svc.CheckWin(ctx, req, meta)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "手牌: %s (%s)\n", strings.Join(win.Tiles, " "), win.Rule)
	if win.Win {
		fmt.Fprintln(w, "和牌")
	}
	if !advise {
		return nil
	}

	advice, err := svc.Advise(ctx, req, meta)
	if err != nil {
		return err
	}
	for _, cd := range advice.Candidates {
		fmt.Fprintf(w, "打 %-3s 向听: %d 进张: %s (%d张)\n", cd.Discard, cd.Distance, strings.Join(cd.Ukeire, " "), cd.Copies)
	}
	return nil
}

func printAnalysis(w io.Writer, res *protocol.Analysis) {
	fmt.Fprintf(w, "手牌: %s (%s)\n", strings.Join(res.Tiles, " "), res.Rule)
	fmt.Fprintf(w, "向听: %d\n", res.Distance)
	fmt.Fprintf(w, "进张: %s (%d张)\n", strings.Join(res.Ukeire, " "), res.UkeireCount)
	for _, s := range res.Steps {
		if s.Distance == res.Distance {
			continue
		}
		fmt.Fprintf(w, "  %d向听: %s\n", s.Distance, strings.Join(s.Tiles, " "))
	}
	if res.Best == nil {
		return
	}
	for _, c := range res.Best.Combinations {
		fmt.Fprintf(w, "  [%s] %s\n", c.Shape, strings.Join(c.Tiles, " "))
	}
	if len(res.Best.Singles) > 0 {
		fmt.Fprintf(w, "  孤张: %s\n", strings.Join(res.Best.Singles, " "))
	}
}
