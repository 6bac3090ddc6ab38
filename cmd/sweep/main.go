// 收敛性扫描工具
// 在多个路径数下对同一合约估值，观察蒙特卡洛标准误随路径数下降
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wyfcoding/exoticpricing/internal/exotic/application"
	"github.com/wyfcoding/exoticpricing/pkg/logger"
)

func main() {
	var (
		symbol     = flag.String("symbol", "DEMO", "underlying symbol")
		optType    = flag.String("type", "CALL", "option type: CALL or PUT")
		direction  = flag.String("direction", "UP_AND_OUT", "barrier direction: UP_AND_OUT or DOWN_AND_OUT")
		spot       = flag.Float64("spot", 100, "initial price")
		strike     = flag.Float64("strike", 105, "strike price")
		barrier    = flag.Float64("barrier", 150, "barrier price")
		rate       = flag.Float64("rate", 0.055, "risk free rate")
		vol        = flag.Float64("vol", 0.2, "annualized volatility")
		horizon    = flag.Float64("horizon", 1.0, "horizon in years")
		stepSize   = flag.Float64("step", 1.0/252, "step size in years")
		seed       = flag.Int64("seed", 0, "random seed, 0 means time based")
		pathCounts = flag.String("paths", "1000,10000,50000", "comma separated path counts")
	)
	flag.Parse()

	if err := logger.Init(logger.Config{Level: "warn", Format: "text", Output: "stdout"}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	counts, err := parsePathCounts(*pathCounts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -paths: %v\n", err)
		os.Exit(1)
	}

	svc := application.NewPricingCommandService(nil, nil, nil, nil, nil, 0)
	records, err := svc.RunConvergenceSweep(context.Background(), application.SweepCommand{
		Symbol:           *symbol,
		OptionType:       *optType,
		BarrierDirection: *direction,
		StrikePrice:      *strike,
		BarrierPrice:     *barrier,
		InitialPrice:     *spot,
		RiskFreeRate:     *rate,
		Volatility:       *vol,
		Horizon:          *horizon,
		StepSize:         *stepSize,
		PathCounts:       counts,
		Seed:             *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sweep failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-12s %-14s %-14s %-14s\n", "paths", "asian", "barrier", "elapsed(s)")
	for _, rec := range records {
		fmt.Printf("%-12d %-14.6f %-14.6f %-14.4f\n",
			rec.PathCount, rec.AsianPrice, rec.BarrierPrice, rec.ElapsedSeconds)
	}
}

func parsePathCounts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", p, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("path count must be positive, got %d", n)
		}
		counts = append(counts, n)
	}
	return counts, nil
}
