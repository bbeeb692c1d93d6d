// Command measure reports how many comparisons BST, AVL and PopularityTree make per Retrieve,
// and how tall they grow, as the number of inserted keys increases. Retrievals follow a Zipf
// distribution over the inserted keys so a few of them are much more popular than the rest.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/g-m-twostay/go-structs/Trees"
	"github.com/urfave/cli"
	"gonum.org/v1/gonum/stat"
)

type variant struct {
	name string
	mk   func() Trees.Tree[int]
}

var variants = []variant{
	{"BST", func() Trees.Tree[int] { return Trees.NewBST[int]() }},
	{"AVL", func() Trees.Tree[int] { return Trees.NewAVL[int]() }},
	{"PopularityTree", func() Trees.Tree[int] { return Trees.NewPopularityTree[int]() }},
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(app.ErrWriter, "error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "measure"
	app.Usage = "compare retrieve costs of the trees"
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "size, n",
			Value: 1 << 14,
			Usage: " largest number of keys to insert `N`",
		},
		cli.IntFlag{
			Name:  "steps, s",
			Value: 8,
			Usage: " number of sizes to measure, evenly spaced up to size, at least 2 `COUNT`",
		},
		cli.IntFlag{
			Name:  "retrieves, r",
			Value: 1 << 16,
			Usage: " retrievals made at every size `COUNT`",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 0,
			Usage: " random `SEED`",
		},
	}
	app.Action = run
	return app
}

// validate rejects flag values run can't work with. At least 2 steps are needed for a
// standard deviation.
func validate(size, steps, retrieves int) error {
	if steps < 2 || size < steps {
		return fmt.Errorf("invalid size %d for %d steps", size, steps)
	}
	if retrieves <= 0 {
		return fmt.Errorf("invalid retrieves: %d", retrieves)
	}
	return nil
}

// workload returns the order to insert the keys 0..n-1 in and retrieves keys to look up.
// Popularity ranks are drawn apart from insertion order so the hottest keys don't start out
// at the root of BST.
func workload(rg *rand.Rand, n, retrieves int) (adds, qrys []int) {
	adds, ranks := rg.Perm(n), rg.Perm(n)
	zipf := rand.NewZipf(rg, 1.1, 1, uint64(n-1))
	qrys = make([]int, retrieves)
	for j := range qrys {
		qrys[j] = ranks[zipf.Uint64()]
	}
	return
}

func run(c *cli.Context) error {
	size, steps, retrieves := c.Int("size"), c.Int("steps"), c.Int("retrieves")
	if err := validate(size, steps, retrieves); nil != err {
		return err
	}
	rg := rand.New(rand.NewSource(c.Int64("seed")))

	// cs[v][i] is the comparisons per retrieve of variant v at step i.
	cs := make([][]float64, len(variants))
	fmt.Fprintf(c.App.Writer, "%8s", "keys")
	for _, v := range variants {
		fmt.Fprintf(c.App.Writer, " %16s %6s", v.name, "height")
	}
	fmt.Fprintln(c.App.Writer)
	for i := 1; i <= steps; i++ {
		n := size / steps * i
		adds, qrys := workload(rg, n, retrieves)
		fmt.Fprintf(c.App.Writer, "%8d", n)
		for vi, v := range variants {
			tree := v.mk()
			for _, k := range adds {
				tree.Insert(Trees.Key(k))
			}
			for _, k := range qrys {
				if _, ok := tree.Retrieve(k); !ok {
					return fmt.Errorf("%s lost key %d", v.name, k)
				}
			}
			if !tree.IsValid() {
				return fmt.Errorf("%s is invalid after %d keys", v.name, n)
			}
			per := float64(tree.Comparisons()) / float64(retrieves)
			cs[vi] = append(cs[vi], per)
			fmt.Fprintf(c.App.Writer, " %16.3f %6d", per, tree.Height())
		}
		fmt.Fprintln(c.App.Writer)
	}
	for vi, v := range variants {
		avg, dev := stat.MeanStdDev(cs[vi], nil)
		fmt.Fprintf(c.App.Writer, "%s: average %f comparisons/retrieve, stddev %f\n", v.name, avg, dev)
	}
	return nil
}
