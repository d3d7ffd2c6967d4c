// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/siraben/bf-crunch/internal/cruncher"
	"github.com/siraben/bf-crunch/internal/target"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	cli.HelpFlag = cli.BoolFlag{
		Name:  "help, ?",
		Usage: "show help",
	}

	myApp := cli.NewApp()
	myApp.Name = "bfcrunch"
	myApp.Usage = "search for short Brainfuck programs that print a given string"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "max-init, i",
			Value: 0,
			Usage: "upper bound on initialization length, 0 for unbounded",
		},
		cli.IntFlag{
			Name:  "min-init, I",
			Value: 14,
			Usage: "lower bound on initialization length",
		},
		cli.IntFlag{
			Name:  "max-tape, t",
			Value: 1250,
			Usage: "maximum tape span",
		},
		cli.IntFlag{
			Name:  "min-tape, T",
			Value: 1,
			Usage: "minimum tape span",
		},
		cli.IntFlag{
			Name:  "max-node-cost, n",
			Value: 20,
			Usage: "per-node cost cap in the output-sequence search",
		},
		cli.IntFlag{
			Name:  "max-loops, l",
			Value: 30000,
			Usage: "reserved; accepted for compatibility, never consulted",
		},
		cli.IntFlag{
			Name:  "max-slen, s",
			Value: 0,
			Usage: "upper bound on s segment length, 0 for unbounded",
		},
		cli.IntFlag{
			Name:  "min-slen, S",
			Value: 1,
			Usage: "lower bound on s segment length",
		},
		cli.IntFlag{
			Name:  "max-clen, c",
			Value: 0,
			Usage: "upper bound on c segment length, 0 for unbounded",
		},
		cli.IntFlag{
			Name:  "min-clen, C",
			Value: 1,
			Usage: "lower bound on c segment length",
		},
		cli.BoolFlag{
			Name:  "rolling-limit, r",
			Usage: "tighten the search limit whenever a shorter program is found",
		},
		cli.BoolFlag{
			Name:  "unique-cells, u",
			Usage: "forbid two output nodes from sharing a tape cell",
		},
		cli.BoolFlag{
			Name:  "full-program",
			Usage: "print the reconstructed full program instead of just the init segment",
		},
		cli.IntFlag{
			Name:  "jobs, j",
			Value: 1,
			Usage: "number of initialization-length workers to run in parallel",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		args := c.Args()
		if len(args) < 1 {
			return cli.NewExitError("expected a target text argument", 1)
		}
		text := args.Get(0)

		var limit int32
		if args.Get(1) != "" {
			v, err := strconv.Atoi(args.Get(1))
			if err != nil {
				return cli.NewExitError(fmt.Sprintf("limit must be an integer: %v", err), 1)
			}
			limit = int32(v)
		}

		opts := cruncher.Options{
			MinTape:      int32(c.Int("min-tape")),
			MaxTape:      int32(c.Int("max-tape")),
			MaxNodeCost:  int32(c.Int("max-node-cost")),
			MaxLoops:     int32(c.Int("max-loops")),
			MinSlen:      int32(c.Int("min-slen")),
			MaxSlen:      int32(c.Int("max-slen")),
			MinClen:      int32(c.Int("min-clen")),
			MaxClen:      int32(c.Int("max-clen")),
			Limit:        limit,
			RollingLimit: c.Bool("rolling-limit"),
			UniqueCells:  c.Bool("unique-cells"),
			FullProgram:  c.Bool("full-program"),
			Jobs:         int32(c.Int("jobs")),
		}
		if opts.Jobs < 1 {
			opts.Jobs = 1
		}

		minInit := int32(c.Int("min-init"))
		maxInit := int32(c.Int("max-init"))

		goal, err := target.Prepare(text)
		fatalIfErr(errors.Wrap(err, "preparing target"))

		cr := cruncher.New(goal, opts)

		log.Println("target:", strconv.Quote(text))
		log.Println("goal bytes:", len(goal))
		log.Println("min-init:", minInit, "max-init:", maxInit)
		log.Println("min-tape:", opts.MinTape, "max-tape:", opts.MaxTape)
		log.Println("max-node-cost:", opts.MaxNodeCost)
		log.Println("max-loops:", opts.MaxLoops)
		log.Println("min-slen:", opts.MinSlen, "max-slen:", opts.MaxSlen)
		log.Println("min-clen:", opts.MinClen, "max-clen:", opts.MaxClen)
		log.Println("rolling-limit:", opts.RollingLimit)
		log.Println("unique-cells:", opts.UniqueCells)
		log.Println("full-program:", opts.FullProgram)
		log.Println("jobs:", opts.Jobs)
		log.Println("initial limit:", cr.Limit())

		if limit == 0 && !opts.RollingLimit {
			color.Red("WARNING: limit was derived from the target; rolling-limit has been turned on so the limit tightens as shorter programs are found.")
		}
		if c.Int("max-loops") != 30000 {
			color.Red("WARNING: --max-loops is accepted for compatibility but is never consulted by the candidate simulator.")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sweep(ctx, cr, minInit, maxInit, opts.Jobs)
		return nil
	}

	if err := myApp.Run(os.Args); err != nil {
		fatalIfErr(err)
	}
}

// sweep runs the search across every initialization length from
// minInit upward, inclusive and finite when maxInit > 0,
// otherwise until ctx is cancelled (e.g. by Ctrl-C). With jobs > 1, up
// to jobs lengths are crunched concurrently; Cruncher.Crunch's own
// rolling-limit tightening is safe across goroutines via CAS, so
// running several lengths at once only changes the interleaving of
// emitted solutions, never their correctness.
func sweep(ctx context.Context, cr *cruncher.Cruncher, minInit, maxInit int32, jobs int32) {
	var mu sync.Mutex
	emit := func(sol cruncher.Solution) {
		mu.Lock()
		defer mu.Unlock()
		printSolution(sol)
	}

	if jobs <= 1 {
		for length := minInit; maxInit <= 0 || length <= maxInit; length++ {
			select {
			case <-ctx.Done():
				return
			default:
			}
			cr.Crunch(length, emit)
		}
		return
	}

	var next atomic.Int32
	next.Store(minInit)

	var wg sync.WaitGroup
	for worker := int32(0); worker < jobs; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}
				length := next.Add(1) - 1
				if maxInit > 0 && length > maxInit {
					return
				}
				cr.Crunch(length, emit)
			}
		}()
	}
	wg.Wait()
}

func printSolution(sol cruncher.Solution) {
	if sol.FullProgram != "" {
		fmt.Printf("%d: %s\n", sol.ProgramLength, sol.FullProgram)
		return
	}
	fmt.Printf("%d: %s\n", sol.ProgramLength, sol.InitSegment)
	fmt.Printf("%d, %s\n", sol.Pointer, sol.Path.String())
	fmt.Println(cruncher.FormatCellLine(sol))
}

func fatalIfErr(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
