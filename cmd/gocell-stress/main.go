// Command gocell-stress hammers one token with concurrent shared readers and
// a contending writer, then reports throughput, conflict counts, and latency
// percentiles for the read and write phases.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrEthical07/goCell"
)

func main() {
	var (
		cells       = flag.Int("cells", 1024, "number of cells under the token")
		readers     = flag.Int("readers", 64, "concurrent reader goroutines")
		reads       = flag.Int("reads", 500000, "total read operations")
		writes      = flag.Int("writes", 50000, "total write operations")
		auditBuffer = flag.Int("audit-buffer", 256, "audit buffer size (0 disables audit)")
	)
	flag.Parse()

	if *cells <= 0 || *readers <= 0 || *reads <= 0 || *writes <= 0 {
		fmt.Fprintln(os.Stderr, "cells, readers, reads, and writes must be > 0")
		os.Exit(2)
	}

	cfg := goCell.DefaultConfig()
	if *auditBuffer > 0 {
		cfg.Audit.Enabled = true
		cfg.Audit.BufferSize = *auditBuffer
		cfg.Audit.DropIfFull = true
		cfg.Audit.Sink = goCell.NoOpSink{}
	}

	err := goCell.WithTokenConfig(cfg, func(tok *goCell.Token) error {
		web := make([]*goCell.Cell[int], *cells)
		for i := range web {
			c, err := goCell.NewCell(tok, i)
			if err != nil {
				return fmt.Errorf("seed cell %d: %w", i, err)
			}
			web[i] = c
		}
		fmt.Printf("seeded %d cells under brand %s\n", len(web), tok.Brand())

		readStats := runReadPhase(tok, web, *reads, *readers)
		writeStats := runWritePhase(tok, web, *writes)

		fmt.Println("---- results ----")
		printStats("read", readStats)
		printStats("write", writeStats)

		snap := tok.MetricsSnapshot()
		fmt.Printf("metrics: shared=%d exclusive=%d conflicts=%d dropped-audit=%d\n",
			snap.Counters[goCell.MetricSharedBorrow],
			snap.Counters[goCell.MetricExclusiveBorrow],
			snap.Counters[goCell.MetricBorrowConflict],
			tok.AuditDropped())
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "stress run failed: %v\n", err)
		os.Exit(1)
	}
}

func runReadPhase(tok *goCell.Token, web []*goCell.Cell[int], ops, concurrency int) phaseStats {
	var (
		cursor    atomic.Int64
		conflicts atomic.Int64
		mu        sync.Mutex
		latencies = make([]time.Duration, 0, ops)
	)

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < concurrency; w++ {
		worker := w
		g.Go(func() error {
			for {
				i := int(cursor.Add(1)) - 1
				if i >= ops {
					return nil
				}
				cell := web[(i+worker)%len(web)]

				t0 := time.Now()
				err := tok.Do(func(acc *goCell.SharedAccessor) error {
					_, err := cell.Read(acc)
					return err
				})
				d := time.Since(t0)

				if err != nil {
					if !errors.Is(err, goCell.ErrExclusiveHeld) {
						return err
					}
					conflicts.Add(1)
				}

				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "read phase failed: %v\n", err)
		os.Exit(1)
	}
	return computeStats(time.Since(start), latencies, conflicts.Load())
}

func runWritePhase(tok *goCell.Token, web []*goCell.Cell[int], ops int) phaseStats {
	var (
		conflicts int64
		latencies = make([]time.Duration, 0, ops)
	)

	start := time.Now()
	for i := 0; i < ops; {
		cell := web[i%len(web)]

		t0 := time.Now()
		err := tok.DoExclusive(func(acc *goCell.ExclusiveAccessor) error {
			return cell.Set(acc, i)
		})
		d := time.Since(t0)
		latencies = append(latencies, d)

		switch {
		case err == nil:
			i++
		case errors.Is(err, goCell.ErrSharedHeld), errors.Is(err, goCell.ErrExclusiveHeld):
			conflicts++
		default:
			fmt.Fprintf(os.Stderr, "write phase failed: %v\n", err)
			os.Exit(1)
		}
	}
	return computeStats(time.Since(start), latencies, conflicts)
}

type phaseStats struct {
	total     time.Duration
	ops       int
	conflicts int64
	p50       time.Duration
	p95       time.Duration
	p99       time.Duration
	opsPerS   float64
}

func computeStats(total time.Duration, samples []time.Duration, conflicts int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:     total,
		ops:       len(samples),
		conflicts: conflicts,
		p50:       samples[len(samples)/2],
		p95:       samples[len(samples)*95/100],
		p99:       samples[len(samples)*99/100],
		opsPerS:   float64(len(samples)) / total.Seconds(),
	}
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: %d ops in %s (%.0f ops/s), conflicts=%d, p50=%s p95=%s p99=%s\n",
		name, s.ops, s.total.Round(time.Millisecond), s.opsPerS, s.conflicts,
		s.p50, s.p95, s.p99)
}
